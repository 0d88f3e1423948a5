// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lingolift_backend/internals/configs"
	quizRoute "lingolift_backend/internals/features/quiz/route"
	authRoute "lingolift_backend/internals/features/users/auth/route"
	vocabRoute "lingolift_backend/internals/features/vocab/route"
	wordService "lingolift_backend/internals/features/vocab/words/service"
	authMiddleware "lingolift_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	ai := wordService.NewAIDefinitionClient(configs.AIDefinitionURL, configs.AIDefinitionKey)
	authMW := authMiddleware.AuthMiddleware(db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== API =====================
	// Public and authenticated routes share the /api prefix, so the
	// auth middleware is attached per route group instead of here.
	api := app.Group("/api")

	log.Println("[INFO] Mounting Vocab routes...")
	vocabRoute.VocabPublicRoutes(api, db, ai)
	vocabRoute.VocabUserRoutes(api, db, ai, authMW)

	log.Println("[INFO] Mounting Quiz routes...")
	quizRoute.QuizUserRoutes(api, db, authMW)
}
