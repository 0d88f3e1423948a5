package model

import (
	"time"

	"github.com/google/uuid"
)

// QuizAttemptModel is one completed quiz session for a user.
// Immutable after creation except updated_at.
type QuizAttemptModel struct {
	ID             uint      `gorm:"column:id;primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	Score          int       `gorm:"column:score;not null" json:"score"`
	TotalQuestions int       `gorm:"column:total_questions;not null" json:"total_questions"`

	Questions []AttemptedQuestionModel `gorm:"foreignKey:QuizAttemptID;constraint:OnDelete:CASCADE" json:"questions"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (QuizAttemptModel) TableName() string {
	return "quiz_attempts"
}

// AttemptedQuestionModel is one graded question inside an attempt.
// Exactly total_questions rows exist per attempt; they live and die
// with their parent (cascade).
type AttemptedQuestionModel struct {
	ID            uint   `gorm:"column:id;primaryKey" json:"id"`
	QuizAttemptID uint   `gorm:"column:quiz_attempt_id;not null;index" json:"quiz_attempt_id"`
	QuestionText  string `gorm:"column:question_text;type:text;not null" json:"question_text"`
	SelectedAnswer string `gorm:"column:selected_answer;type:text;not null" json:"selected_answer"`
	CorrectAnswer  string `gorm:"column:correct_answer;type:text;not null" json:"correct_answer"`
	IsCorrect      bool   `gorm:"column:is_correct;not null" json:"is_correct"`
}

func (AttemptedQuestionModel) TableName() string {
	return "attempted_questions"
}
