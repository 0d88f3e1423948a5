package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lingolift_backend/internals/features/quiz/dto"
	quizModel "lingolift_backend/internals/features/quiz/model"
	"lingolift_backend/internals/features/quiz/repository"
)

const (
	DefaultQuestionCount      = 5
	DefaultOptionsPerQuestion = 4
	DefaultRecentLimit        = 5
)

var (
	ErrNoQuestions     = errors.New("no questions provided")
	ErrAttemptNotFound = errors.New("quiz attempt not found")
)

type QuizService struct {
	words    repository.WordReader
	attempts repository.AttemptStore

	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

func NewQuizService(words repository.WordReader, attempts repository.AttemptStore) *QuizService {
	return &QuizService{
		words:    words,
		attempts: attempts,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
	}
}

// WithRand swaps the random source (seeded in tests for determinism).
func (s *QuizService) WithRand(rng *rand.Rand) *QuizService {
	s.rng = rng
	return s
}

// WithNow swaps the clock (frozen in tests).
func (s *QuizService) WithNow(now func() time.Time) *QuizService {
	s.now = now
	return s
}

/* ==========================
   Quiz generation
========================== */

// GenerateQuiz samples questionCount distinct words and builds one
// multiple-choice question per word. Sparse corpora degrade (fewer
// questions, fewer options) instead of erroring; an empty corpus
// yields an empty slice.
func (s *QuizService) GenerateQuiz(ctx context.Context, questionCount, optionsPerQuestion int) ([]dto.QuizQuestionResponse, error) {
	if questionCount <= 0 {
		questionCount = DefaultQuestionCount
	}
	if optionsPerQuestion <= 0 {
		optionsPerQuestion = DefaultOptionsPerQuestion
	}

	words, err := s.words.AllWords(ctx)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return []dto.QuizQuestionResponse{}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// sample without replacement
	picked := s.rng.Perm(len(words))
	if questionCount < len(picked) {
		picked = picked[:questionCount]
	}

	questions := make([]dto.QuizQuestionResponse, 0, len(picked))
	for _, wi := range picked {
		word := words[wi]

		// distractors: other words' meanings, without replacement
		pool := make([]string, 0, len(words)-1)
		for j, other := range words {
			if j == wi {
				continue
			}
			pool = append(pool, other.WordMeaning)
		}
		wrongCount := optionsPerQuestion - 1
		if wrongCount > len(pool) {
			wrongCount = len(pool)
		}
		options := make([]string, 0, wrongCount+1)
		for _, pi := range s.rng.Perm(len(pool))[:wrongCount] {
			options = append(options, pool[pi])
		}
		options = append(options, word.WordMeaning)

		s.rng.Shuffle(len(options), func(a, b int) {
			options[a], options[b] = options[b], options[a]
		})

		correctIdx := 0
		for i, opt := range options {
			if opt == word.WordMeaning {
				correctIdx = i
				break
			}
		}

		questions = append(questions, dto.QuizQuestionResponse{
			ID:            word.ID,
			Word:          word.WordText,
			Question:      fmt.Sprintf("What is the meaning of '%s'?", word.WordText),
			Options:       options,
			CorrectAnswer: correctIdx,
		})
	}

	return questions, nil
}

/* ==========================
   Attempt recording
========================== */

// RecordAttempt regrades every answer server-side and persists the
// attempt with its question rows atomically.
func (s *QuizService) RecordAttempt(ctx context.Context, userID uuid.UUID, answered []dto.AnsweredQuestionInput) (quizModel.QuizAttemptModel, error) {
	if len(answered) == 0 {
		return quizModel.QuizAttemptModel{}, ErrNoQuestions
	}

	score := 0
	rows := make([]quizModel.AttemptedQuestionModel, 0, len(answered))
	for _, q := range answered {
		isCorrect := q.SelectedAnswer == q.CorrectAnswer
		if isCorrect {
			score++
		}
		rows = append(rows, quizModel.AttemptedQuestionModel{
			QuestionText:   q.QuestionText,
			SelectedAnswer: q.SelectedAnswer,
			CorrectAnswer:  q.CorrectAnswer,
			IsCorrect:      isCorrect,
		})
	}

	attempt := quizModel.QuizAttemptModel{
		UserID:         userID,
		Score:          score,
		TotalQuestions: len(answered),
		Questions:      rows,
	}
	if err := s.attempts.CreateAttempt(ctx, &attempt); err != nil {
		return quizModel.QuizAttemptModel{}, err
	}
	return attempt, nil
}

/* ==========================
   Statistics
========================== */

// StreakCount counts consecutive calendar days with at least one
// attempt, ending today. The walk stops at the first gap; a repeated
// same-day attempt after the head also stops it (legacy behavior the
// frontend depends on).
func (s *QuizService) StreakCount(ctx context.Context, userID uuid.UUID) (int, error) {
	attempts, err := s.attempts.AttemptsByUserDesc(ctx, userID)
	if err != nil {
		return 0, err
	}
	if len(attempts) == 0 {
		return 0, nil
	}

	today := dateOnly(s.now())
	lastDate := dateOnly(attempts[0].CreatedAt)
	if !lastDate.Equal(today) {
		return 0, nil
	}

	streak := 1
	for _, a := range attempts[1:] {
		d := dateOnly(a.CreatedAt)
		if lastDate.Sub(d) == 24*time.Hour {
			streak++
			lastDate = d
		} else {
			break
		}
	}
	return streak, nil
}

// AverageAccuracy is pooled across every question ever attempted:
// 100 * sum(score) / sum(total), not a mean of per-attempt rates.
func (s *QuizService) AverageAccuracy(ctx context.Context, userID uuid.UUID) (float64, error) {
	attempts, err := s.attempts.AttemptsByUserDesc(ctx, userID)
	if err != nil {
		return 0, err
	}

	totalScore := 0
	totalQuestions := 0
	for _, a := range attempts {
		totalScore += a.Score
		totalQuestions += a.TotalQuestions
	}
	if totalQuestions == 0 {
		return 0, nil
	}
	return round2(float64(totalScore) / float64(totalQuestions) * 100), nil
}

// RecentAttempts returns the newest attempts, newest first.
func (s *QuizService) RecentAttempts(ctx context.Context, userID uuid.UUID, limit int) ([]dto.RecentAttemptResponse, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	attempts, err := s.attempts.RecentAttempts(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	out := make([]dto.RecentAttemptResponse, 0, len(attempts))
	for _, a := range attempts {
		accuracy := 0.0
		if a.TotalQuestions > 0 {
			accuracy = round2(float64(a.Score) / float64(a.TotalQuestions) * 100)
		}
		out = append(out, dto.RecentAttemptResponse{
			ID:       a.ID,
			Date:     a.CreatedAt.Format("2006-01-02"),
			Score:    a.Score,
			Total:    a.TotalQuestions,
			Accuracy: accuracy,
		})
	}
	return out, nil
}

// AttemptDetail returns one attempt with its questions in insert
// order. Attempts belonging to another user are not found.
func (s *QuizService) AttemptDetail(ctx context.Context, userID uuid.UUID, attemptID uint) (dto.AttemptDetailResponse, error) {
	attempt, err := s.attempts.AttemptWithQuestions(ctx, userID, attemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AttemptDetailResponse{}, ErrAttemptNotFound
		}
		return dto.AttemptDetailResponse{}, err
	}

	questions := make([]dto.AttemptedQuestionResponse, 0, len(attempt.Questions))
	for _, q := range attempt.Questions {
		questions = append(questions, dto.AttemptedQuestionResponse{
			ID:             q.ID,
			QuestionText:   q.QuestionText,
			SelectedAnswer: q.SelectedAnswer,
			CorrectAnswer:  q.CorrectAnswer,
			IsCorrect:      q.IsCorrect,
		})
	}
	return dto.AttemptDetailResponse{
		ID:             attempt.ID,
		Score:          attempt.Score,
		TotalQuestions: attempt.TotalQuestions,
		CreatedAt:      attempt.CreatedAt,
		Questions:      questions,
	}, nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
