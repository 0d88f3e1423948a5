package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lingolift_backend/internals/features/quiz/dto"
	quizModel "lingolift_backend/internals/features/quiz/model"
	wordModel "lingolift_backend/internals/features/vocab/words/model"
)

type fakeWordReader struct {
	words []wordModel.WordModel
	err   error
}

func (f *fakeWordReader) AllWords(ctx context.Context) ([]wordModel.WordModel, error) {
	return f.words, f.err
}

type fakeAttemptStore struct {
	attempts []quizModel.QuizAttemptModel
	created  []quizModel.QuizAttemptModel
	err      error
}

func (f *fakeAttemptStore) CreateAttempt(ctx context.Context, attempt *quizModel.QuizAttemptModel) error {
	if f.err != nil {
		return f.err
	}
	attempt.ID = uint(len(f.created) + 1)
	for i := range attempt.Questions {
		attempt.Questions[i].QuizAttemptID = attempt.ID
	}
	f.created = append(f.created, *attempt)
	return nil
}

func (f *fakeAttemptStore) AttemptsByUserDesc(ctx context.Context, userID uuid.UUID) ([]quizModel.QuizAttemptModel, error) {
	return f.attempts, f.err
}

func (f *fakeAttemptStore) RecentAttempts(ctx context.Context, userID uuid.UUID, limit int) ([]quizModel.QuizAttemptModel, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit < len(f.attempts) {
		return f.attempts[:limit], nil
	}
	return f.attempts, nil
}

func (f *fakeAttemptStore) AttemptWithQuestions(ctx context.Context, userID uuid.UUID, attemptID uint) (quizModel.QuizAttemptModel, error) {
	for _, a := range f.attempts {
		if a.ID == attemptID {
			return a, nil
		}
	}
	return quizModel.QuizAttemptModel{}, f.err
}

func corpus(n int) []wordModel.WordModel {
	words := make([]wordModel.WordModel, 0, n)
	for i := 0; i < n; i++ {
		words = append(words, wordModel.WordModel{
			ID:          uint(i + 1),
			WordText:    fmt.Sprintf("word%d", i+1),
			WordMeaning: fmt.Sprintf("meaning%d", i+1),
		})
	}
	return words
}

func newTestService(words []wordModel.WordModel, store *fakeAttemptStore) *QuizService {
	if store == nil {
		store = &fakeAttemptStore{}
	}
	return NewQuizService(&fakeWordReader{words: words}, store).
		WithRand(rand.New(rand.NewSource(42)))
}

func TestQuizService_GenerateQuiz(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		corpusSize    int
		wantQuestions int
		wantOptions   int
	}{
		{name: "full corpus", corpusSize: 10, wantQuestions: 5, wantOptions: 4},
		{name: "exactly five words", corpusSize: 5, wantQuestions: 5, wantOptions: 4},
		{name: "sparse corpus degrades question count", corpusSize: 3, wantQuestions: 3, wantOptions: 3},
		{name: "single word has no distractors", corpusSize: 1, wantQuestions: 1, wantOptions: 1},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			words := corpus(tt.corpusSize)
			svc := newTestService(words, nil)

			questions, err := svc.GenerateQuiz(context.Background(), DefaultQuestionCount, DefaultOptionsPerQuestion)
			require.NoError(t, err)
			require.Len(t, questions, tt.wantQuestions)

			seen := map[uint]bool{}
			for _, q := range questions {
				assert.Len(t, q.Options, tt.wantOptions)
				assert.False(t, seen[q.ID], "word sampled twice")
				seen[q.ID] = true

				require.GreaterOrEqual(t, q.CorrectAnswer, 0)
				require.Less(t, q.CorrectAnswer, len(q.Options))
				meaning := words[q.ID-1].WordMeaning
				assert.Equal(t, meaning, q.Options[q.CorrectAnswer])
				assert.Equal(t, fmt.Sprintf("What is the meaning of '%s'?", q.Word), q.Question)

				// options are distinct: distractors drawn without replacement
				opts := map[string]bool{}
				for _, o := range q.Options {
					assert.False(t, opts[o], "duplicate option %q", o)
					opts[o] = true
				}
			}
		})
	}
}

func TestQuizService_GenerateQuiz_EmptyCorpus(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil, nil)
	questions, err := svc.GenerateQuiz(context.Background(), DefaultQuestionCount, DefaultOptionsPerQuestion)
	require.NoError(t, err)
	assert.Empty(t, questions)
}

func TestQuizService_GenerateQuiz_Deterministic(t *testing.T) {
	t.Parallel()

	words := corpus(8)
	a := newTestService(words, nil)
	b := newTestService(words, nil)

	qa, err := a.GenerateQuiz(context.Background(), 5, 4)
	require.NoError(t, err)
	qb, err := b.GenerateQuiz(context.Background(), 5, 4)
	require.NoError(t, err)

	assert.Equal(t, qa, qb)
}

func TestQuizService_RecordAttempt(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name      string
		answered  []dto.AnsweredQuestionInput
		wantScore int
		wantErr   error
	}{
		{
			name:    "empty input rejected",
			wantErr: ErrNoQuestions,
		},
		{
			name: "score recomputed from answers",
			answered: []dto.AnsweredQuestionInput{
				{QuestionText: "q1", SelectedAnswer: "a", CorrectAnswer: "a"},
				{QuestionText: "q2", SelectedAnswer: "b", CorrectAnswer: "c"},
				{QuestionText: "q3", SelectedAnswer: "d", CorrectAnswer: "d"},
			},
			wantScore: 2,
		},
		{
			name: "comparison is case sensitive without trimming",
			answered: []dto.AnsweredQuestionInput{
				{QuestionText: "q1", SelectedAnswer: "Answer", CorrectAnswer: "answer"},
				{QuestionText: "q2", SelectedAnswer: "answer ", CorrectAnswer: "answer"},
			},
			wantScore: 0,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := &fakeAttemptStore{}
			svc := newTestService(nil, store)

			attempt, err := svc.RecordAttempt(context.Background(), userID, tt.answered)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, store.created, "nothing persisted on validation error")
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.wantScore, attempt.Score)
			assert.Equal(t, len(tt.answered), attempt.TotalQuestions)
			require.Len(t, store.created, 1)
			require.Len(t, store.created[0].Questions, len(tt.answered))
			for i, q := range store.created[0].Questions {
				assert.Equal(t, tt.answered[i].QuestionText, q.QuestionText)
				assert.Equal(t, q.SelectedAnswer == q.CorrectAnswer, q.IsCorrect)
			}
		})
	}
}

func attemptOn(day time.Time, score, total int) quizModel.QuizAttemptModel {
	return quizModel.QuizAttemptModel{Score: score, TotalQuestions: total, CreatedAt: day}
}

func TestQuizService_StreakCount(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 30, 15, 4, 5, 0, time.UTC)
	today := now
	yesterday := now.AddDate(0, 0, -1)
	twoDaysAgo := now.AddDate(0, 0, -2)

	tests := []struct {
		name     string
		attempts []quizModel.QuizAttemptModel
		want     int
	}{
		{name: "no attempts", want: 0},
		{
			name: "three consecutive days",
			attempts: []quizModel.QuizAttemptModel{
				attemptOn(today, 5, 5),
				attemptOn(yesterday, 3, 5),
				attemptOn(twoDaysAgo, 4, 5),
			},
			want: 3,
		},
		{
			name: "gap stops the walk",
			attempts: []quizModel.QuizAttemptModel{
				attemptOn(today, 5, 5),
				attemptOn(twoDaysAgo, 4, 5),
			},
			want: 1,
		},
		{
			name: "most recent attempt not today",
			attempts: []quizModel.QuizAttemptModel{
				attemptOn(yesterday, 5, 5),
				attemptOn(twoDaysAgo, 4, 5),
			},
			want: 0,
		},
		{
			// legacy behavior: a second attempt on the same day stops
			// the walk instead of being skipped
			name: "two attempts today collapse to one",
			attempts: []quizModel.QuizAttemptModel{
				attemptOn(today, 5, 5),
				attemptOn(today.Add(-2*time.Hour), 4, 5),
				attemptOn(yesterday, 3, 5),
			},
			want: 1,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := &fakeAttemptStore{attempts: tt.attempts}
			svc := newTestService(nil, store).WithNow(func() time.Time { return now })

			streak, err := svc.StreakCount(context.Background(), uuid.New())
			require.NoError(t, err)
			assert.Equal(t, tt.want, streak)
		})
	}
}

func TestQuizService_AverageAccuracy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		attempts []quizModel.QuizAttemptModel
		want     float64
	}{
		{name: "no attempts", want: 0},
		{
			name: "pooled across attempts",
			attempts: []quizModel.QuizAttemptModel{
				{Score: 3, TotalQuestions: 5},
				{Score: 4, TotalQuestions: 5},
			},
			want: 70.0,
		},
		{
			// pooled, not a mean of per-attempt percentages:
			// (9+1)/(10+2) = 83.33, mean of rates would be 70
			name: "larger attempts weigh more",
			attempts: []quizModel.QuizAttemptModel{
				{Score: 9, TotalQuestions: 10},
				{Score: 1, TotalQuestions: 2},
			},
			want: 83.33,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := &fakeAttemptStore{attempts: tt.attempts}
			svc := newTestService(nil, store)

			got, err := svc.AverageAccuracy(context.Background(), uuid.New())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuizService_RecentAttempts(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	attempts := make([]quizModel.QuizAttemptModel, 0, 7)
	for i := 0; i < 7; i++ {
		attempts = append(attempts, quizModel.QuizAttemptModel{
			ID:             uint(7 - i),
			Score:          i,
			TotalQuestions: 10,
			CreatedAt:      base.AddDate(0, 0, -i),
		})
	}

	store := &fakeAttemptStore{attempts: attempts}
	svc := newTestService(nil, store)

	recent, err := svc.RecentAttempts(context.Background(), uuid.New(), DefaultRecentLimit)
	require.NoError(t, err)
	require.Len(t, recent, 5)

	for i, r := range recent {
		assert.Equal(t, attempts[i].CreatedAt.Format("2006-01-02"), r.Date)
		assert.Equal(t, attempts[i].Score, r.Score)
		assert.Equal(t, 10, r.Total)
		assert.Equal(t, float64(attempts[i].Score)*10, r.Accuracy)
	}
}

func TestQuizService_RecentAttempts_ZeroTotalGuard(t *testing.T) {
	t.Parallel()

	store := &fakeAttemptStore{attempts: []quizModel.QuizAttemptModel{
		{ID: 1, Score: 0, TotalQuestions: 0, CreatedAt: time.Now()},
	}}
	svc := newTestService(nil, store)

	recent, err := svc.RecentAttempts(context.Background(), uuid.New(), DefaultRecentLimit)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Zero(t, recent[0].Accuracy)
}

func TestQuizService_AttemptDetail_NotFound(t *testing.T) {
	t.Parallel()

	store := &fakeAttemptStore{err: errNotFoundStub}
	svc := newTestService(nil, store)

	_, err := svc.AttemptDetail(context.Background(), uuid.New(), 99)
	require.Error(t, err)
}

var errNotFoundStub = errors.New("not found")
