package model

import (
	"time"

	"gorm.io/datatypes"
)

// WordModel is one entry in the vocabulary corpus.
// Entries are immutable once created.
type WordModel struct {
	ID          uint   `gorm:"column:id;primaryKey" json:"id"`
	WordText    string `gorm:"column:word_text;size:100;unique;not null" json:"text"`
	WordMeaning string `gorm:"column:word_meaning;type:text;not null" json:"meaning"`
	WordExample string `gorm:"column:word_example;type:text" json:"example"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (WordModel) TableName() string {
	return "words"
}

// WordAIDefinition caches definitions fetched from the external
// language-model API so repeated lookups skip the network call.
type WordAIDefinition struct {
	ID         uint           `gorm:"column:id;primaryKey" json:"id"`
	WordText   string         `gorm:"column:word_text;size:100;unique;not null" json:"word_text"`
	Definition string         `gorm:"column:definition;type:text;not null" json:"definition"`
	Raw        datatypes.JSON `gorm:"column:raw" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (WordAIDefinition) TableName() string {
	return "word_ai_definitions"
}
