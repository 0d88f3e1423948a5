package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	quizController "lingolift_backend/internals/features/quiz/controller"
	"lingolift_backend/internals/features/quiz/repository"
	"lingolift_backend/internals/features/quiz/service"
)

// QuizUserRoutes: the quiz + statistics surface, all authenticated.
func QuizUserRoutes(api fiber.Router, db *gorm.DB, authMW fiber.Handler) {
	repo := repository.NewQuizRepository(db)
	ctrl := quizController.NewQuizController(service.NewQuizService(repo, repo))

	api.Get("/quiz-questions", authMW, ctrl.GetQuizQuestions)
	api.Post("/save-quiz-attempt", authMW, ctrl.SaveQuizAttempt)
	api.Get("/quiz-attempts/:id", authMW, ctrl.QuizAttemptDetail)

	quiz := api.Group("/quiz", authMW)
	quiz.Post("/submit", ctrl.SubmitQuiz)
	quiz.Get("/streak", ctrl.StreakCount)
	quiz.Get("/average-accuracy", ctrl.AverageAccuracy)
	quiz.Get("/recent", ctrl.RecentQuizzes)
}
