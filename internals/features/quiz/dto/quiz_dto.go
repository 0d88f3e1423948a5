package dto

import "time"

// QuizQuestionResponse is one generated multiple-choice question.
// Ephemeral: nothing is persisted until the quiz is submitted.
type QuizQuestionResponse struct {
	ID            uint     `json:"id"`
	Word          string   `json:"word"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

// AnsweredQuestionInput is one answered question as submitted by the
// client. Correctness is never trusted from here; it is recomputed.
type AnsweredQuestionInput struct {
	QuestionText   string `json:"question_text"`
	SelectedAnswer string `json:"selected_answer"`
	CorrectAnswer  string `json:"correct_answer"`
}

type SubmitQuizRequest struct {
	Questions []AnsweredQuestionInput `json:"questions" validate:"required,min=1"`
}

type SubmitQuizResponse struct {
	ID        uint      `json:"id"`
	Score     int       `json:"score"`
	Total     int       `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}

// SaveQuizAttemptRequest is the legacy submission body. The client
// sends score/is_correct too, but the server regrades anyway.
type SaveQuizAttemptRequest struct {
	Score          int `json:"score"`
	TotalQuestions int `json:"total_questions"`
	Questions      []struct {
		QuestionText   string `json:"question_text"`
		SelectedAnswer string `json:"selected_answer"`
		CorrectAnswer  string `json:"correct_answer"`
		IsCorrect      bool   `json:"is_correct"`
	} `json:"questions" validate:"required,min=1"`
}

type RecentAttemptResponse struct {
	ID       uint    `json:"id"`
	Date     string  `json:"date"`
	Score    int     `json:"score"`
	Total    int     `json:"total"`
	Accuracy float64 `json:"accuracy"`
}

type AttemptedQuestionResponse struct {
	ID             uint   `json:"id"`
	QuestionText   string `json:"question_text"`
	SelectedAnswer string `json:"selected_answer"`
	CorrectAnswer  string `json:"correct_answer"`
	IsCorrect      bool   `json:"is_correct"`
}

type AttemptDetailResponse struct {
	ID             uint                        `json:"id"`
	Score          int                         `json:"score"`
	TotalQuestions int                         `json:"total_questions"`
	CreatedAt      time.Time                   `json:"created_at"`
	Questions      []AttemptedQuestionResponse `json:"questions"`
}
