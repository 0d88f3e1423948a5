package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	quizModel "lingolift_backend/internals/features/quiz/model"
	quizRoute "lingolift_backend/internals/features/quiz/route"
	wordModel "lingolift_backend/internals/features/vocab/words/model"
)

func newTestApp(t *testing.T, userID uuid.UUID) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&wordModel.WordModel{},
		&quizModel.QuizAttemptModel{},
		&quizModel.AttemptedQuestionModel{},
	))

	app := fiber.New()
	// stand-in for the JWT middleware: inject the authenticated user
	authMW := func(c *fiber.Ctx) error {
		c.Locals("user_id", userID.String())
		return c.Next()
	}
	quizRoute.QuizUserRoutes(app.Group("/api"), db, authMW)
	return app, db
}

func seedWords(t *testing.T, db *gorm.DB, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, db.Create(&wordModel.WordModel{
			WordText:    fmt.Sprintf("word%d", i+1),
			WordMeaning: fmt.Sprintf("meaning%d", i+1),
		}).Error)
	}
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestGetQuizQuestions_EmptyCorpusSentinel(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t, uuid.New())
	resp, raw := doJSON(t, app, http.MethodGet, "/api/quiz-questions", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var sentinel []string
	require.NoError(t, json.Unmarshal(raw, &sentinel))
	assert.Equal(t, []string{"No words available for quiz"}, sentinel)
}

func TestGetQuizQuestions_FullCorpus(t *testing.T) {
	t.Parallel()

	app, db := newTestApp(t, uuid.New())
	seedWords(t, db, 8)

	resp, raw := doJSON(t, app, http.MethodGet, "/api/quiz-questions", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var questions []struct {
		ID            uint     `json:"id"`
		Word          string   `json:"word"`
		Question      string   `json:"question"`
		Options       []string `json:"options"`
		CorrectAnswer int      `json:"correctAnswer"`
	}
	require.NoError(t, json.Unmarshal(raw, &questions))
	require.Len(t, questions, 5)
	for _, q := range questions {
		assert.Len(t, q.Options, 4)
		require.Less(t, q.CorrectAnswer, len(q.Options))
	}
}

func TestSubmitQuiz_FlowAndStats(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t, uuid.New())

	payload := fiber.Map{
		"questions": []fiber.Map{
			{"question_text": "q1", "selected_answer": "a", "correct_answer": "a"},
			{"question_text": "q2", "selected_answer": "b", "correct_answer": "x"},
			{"question_text": "q3", "selected_answer": "c", "correct_answer": "c"},
			{"question_text": "q4", "selected_answer": "d", "correct_answer": "d"},
		},
	}
	resp, raw := doJSON(t, app, http.MethodPost, "/api/quiz/submit", payload)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var submitted struct {
		ID    uint `json:"id"`
		Score int  `json:"score"`
		Total int  `json:"total"`
	}
	require.NoError(t, json.Unmarshal(raw, &submitted))
	assert.Equal(t, 3, submitted.Score)
	assert.Equal(t, 4, submitted.Total)
	require.NotZero(t, submitted.ID)

	// attempt detail reproduces the submitted rows in order
	resp, raw = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/quiz-attempts/%d", submitted.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var detail struct {
		ID        uint `json:"id"`
		Score     int  `json:"score"`
		Questions []struct {
			QuestionText   string `json:"question_text"`
			SelectedAnswer string `json:"selected_answer"`
			CorrectAnswer  string `json:"correct_answer"`
			IsCorrect      bool   `json:"is_correct"`
		} `json:"questions"`
	}
	require.NoError(t, json.Unmarshal(raw, &detail))
	require.Len(t, detail.Questions, 4)
	assert.Equal(t, "q1", detail.Questions[0].QuestionText)
	assert.True(t, detail.Questions[0].IsCorrect)
	assert.False(t, detail.Questions[1].IsCorrect)

	// streak is 1 for today's single attempt
	resp, raw = doJSON(t, app, http.MethodGet, "/api/quiz/streak", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var streak struct {
		Streak int `json:"streak"`
	}
	require.NoError(t, json.Unmarshal(raw, &streak))
	assert.Equal(t, 1, streak.Streak)

	// pooled accuracy: 3/4
	resp, raw = doJSON(t, app, http.MethodGet, "/api/quiz/average-accuracy", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var accuracy struct {
		Accuracy float64 `json:"accuracy"`
	}
	require.NoError(t, json.Unmarshal(raw, &accuracy))
	assert.Equal(t, 75.0, accuracy.Accuracy)

	// recent contains the attempt
	resp, raw = doJSON(t, app, http.MethodGet, "/api/quiz/recent", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var recent []struct {
		ID       uint    `json:"id"`
		Score    int     `json:"score"`
		Total    int     `json:"total"`
		Accuracy float64 `json:"accuracy"`
	}
	require.NoError(t, json.Unmarshal(raw, &recent))
	require.Len(t, recent, 1)
	assert.Equal(t, submitted.ID, recent[0].ID)
	assert.Equal(t, 75.0, recent[0].Accuracy)
}

func TestSubmitQuiz_EmptyRejected(t *testing.T) {
	t.Parallel()

	app, db := newTestApp(t, uuid.New())

	resp, _ := doJSON(t, app, http.MethodPost, "/api/quiz/submit", fiber.Map{"questions": []fiber.Map{}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/quiz/submit", fiber.Map{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&quizModel.QuizAttemptModel{}).Count(&count).Error)
	assert.Zero(t, count, "no rows persisted on rejected submission")
}

func TestSaveQuizAttempt_RegradesLegacyBody(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	app, db := newTestApp(t, userID)

	// client claims a perfect score; the server regrades to 1/2
	payload := fiber.Map{
		"score":           2,
		"total_questions": 2,
		"questions": []fiber.Map{
			{"question_text": "q1", "selected_answer": "a", "correct_answer": "a", "is_correct": true},
			{"question_text": "q2", "selected_answer": "b", "correct_answer": "z", "is_correct": true},
		},
	}
	resp, raw := doJSON(t, app, http.MethodPost, "/api/save-quiz-attempt", payload)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var saved struct {
		Message   string `json:"message"`
		AttemptID uint   `json:"attempt_id"`
	}
	require.NoError(t, json.Unmarshal(raw, &saved))
	assert.Equal(t, "Quiz saved!", saved.Message)
	require.NotZero(t, saved.AttemptID)

	var attempt quizModel.QuizAttemptModel
	require.NoError(t, db.First(&attempt, saved.AttemptID).Error)
	assert.Equal(t, 1, attempt.Score)
	assert.Equal(t, 2, attempt.TotalQuestions)
	assert.Equal(t, userID, attempt.UserID)
}

func TestQuizAttemptDetail_OtherUserNotFound(t *testing.T) {
	t.Parallel()

	app, db := newTestApp(t, uuid.New())

	foreign := quizModel.QuizAttemptModel{
		UserID:         uuid.New(),
		Score:          1,
		TotalQuestions: 1,
	}
	require.NoError(t, db.Create(&foreign).Error)

	resp, _ := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/quiz-attempts/%d", foreign.ID), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
