package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	learningListController "lingolift_backend/internals/features/vocab/learning_list/controller"
	wordController "lingolift_backend/internals/features/vocab/words/controller"
	wordService "lingolift_backend/internals/features/vocab/words/service"
)

// VocabPublicRoutes: no auth required (the daily word is public).
func VocabPublicRoutes(api fiber.Router, db *gorm.DB, ai *wordService.AIDefinitionClient) {
	wordCtrl := wordController.NewWordController(db, ai)
	api.Get("/words/random", wordCtrl.RandomWord)
}

// VocabUserRoutes: authenticated word + learning list endpoints.
// authMW is attached per route because the public vocab routes share
// the /api prefix.
func VocabUserRoutes(api fiber.Router, db *gorm.DB, ai *wordService.AIDefinitionClient, authMW fiber.Handler) {
	wordCtrl := wordController.NewWordController(db, ai)
	listCtrl := learningListController.NewLearningListController(db)

	api.Get("/words/search", authMW, wordCtrl.Search)
	api.Get("/ai-definition", authMW, wordCtrl.AIDefinition)

	list := api.Group("/learning-list", authMW)
	list.Get("/", listCtrl.Add) // legacy: the frontend also adds via GET
	list.Post("/", listCtrl.Add)
	list.Get("/view", listCtrl.View)
	list.Get("/count", listCtrl.Count)

	api.Get("/review-words", authMW, listCtrl.ReviewWords)
}
