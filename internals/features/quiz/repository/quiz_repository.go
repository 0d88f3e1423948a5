package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	quizModel "lingolift_backend/internals/features/quiz/model"
	wordModel "lingolift_backend/internals/features/vocab/words/model"
)

// WordReader is the corpus view the quiz generator needs.
type WordReader interface {
	AllWords(ctx context.Context) ([]wordModel.WordModel, error)
}

// AttemptStore persists and reads quiz attempts.
type AttemptStore interface {
	// CreateAttempt writes the attempt and its question rows in one
	// transaction: either all rows commit or none do.
	CreateAttempt(ctx context.Context, attempt *quizModel.QuizAttemptModel) error
	AttemptsByUserDesc(ctx context.Context, userID uuid.UUID) ([]quizModel.QuizAttemptModel, error)
	RecentAttempts(ctx context.Context, userID uuid.UUID, limit int) ([]quizModel.QuizAttemptModel, error)
	AttemptWithQuestions(ctx context.Context, userID uuid.UUID, attemptID uint) (quizModel.QuizAttemptModel, error)
}

type QuizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{db: db}
}

func (r *QuizRepository) AllWords(ctx context.Context) ([]wordModel.WordModel, error) {
	var words []wordModel.WordModel
	if err := r.db.WithContext(ctx).Find(&words).Error; err != nil {
		return nil, err
	}
	return words, nil
}

func (r *QuizRepository) CreateAttempt(ctx context.Context, attempt *quizModel.QuizAttemptModel) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Create writes the parent first, then the question rows with
		// the assigned attempt id; the surrounding transaction keeps
		// partial attempts invisible to readers.
		return tx.Create(attempt).Error
	})
}

func (r *QuizRepository) AttemptsByUserDesc(ctx context.Context, userID uuid.UUID) ([]quizModel.QuizAttemptModel, error) {
	var attempts []quizModel.QuizAttemptModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&attempts).Error
	if err != nil {
		return nil, err
	}
	return attempts, nil
}

func (r *QuizRepository) RecentAttempts(ctx context.Context, userID uuid.UUID, limit int) ([]quizModel.QuizAttemptModel, error) {
	var attempts []quizModel.QuizAttemptModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&attempts).Error
	if err != nil {
		return nil, err
	}
	return attempts, nil
}

func (r *QuizRepository) AttemptWithQuestions(ctx context.Context, userID uuid.UUID, attemptID uint) (quizModel.QuizAttemptModel, error) {
	var attempt quizModel.QuizAttemptModel
	err := r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Where("id = ? AND user_id = ?", attemptID, userID).
		First(&attempt).Error
	if err != nil {
		return quizModel.QuizAttemptModel{}, err
	}
	return attempt, nil
}
