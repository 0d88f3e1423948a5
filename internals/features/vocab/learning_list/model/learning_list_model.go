package model

import (
	"time"

	"github.com/google/uuid"

	wordModel "lingolift_backend/internals/features/vocab/words/model"
)

// LearningListModel joins a user with a word they are learning.
// (user_id, word_id) is unique so a word can only be added once.
type LearningListModel struct {
	ID     uint      `gorm:"column:id;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_learning_list_user_word" json:"user_id"`
	WordID uint      `gorm:"column:word_id;not null;uniqueIndex:idx_learning_list_user_word" json:"word_id"`

	Word wordModel.WordModel `gorm:"foreignKey:WordID;constraint:OnDelete:CASCADE" json:"word"`

	AddedAt time.Time `gorm:"column:added_at;autoCreateTime" json:"added_at"`
}

func (LearningListModel) TableName() string {
	return "learning_list"
}
