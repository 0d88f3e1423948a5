package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"lingolift_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the app-wide middleware chain.
// Route-group middlewares (auth, per-route limiters) are attached in routes.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
