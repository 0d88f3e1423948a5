package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "lingolift_backend/internals/features/users/auth/controller"
	"lingolift_backend/internals/middlewares"
	authMiddleware "lingolift_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)
	auth.Get("/profile", authMiddleware.AuthMiddleware(db), ctrl.Profile)

	app.Post("/api/token/refresh", ctrl.RefreshToken)
}
