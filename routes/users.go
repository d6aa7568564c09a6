package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/umer837/ConnectPro/controllers"
	"github.com/umer837/ConnectPro/middleware"
)

// SetupUserRoutes configures all profile related routes
func SetupUserRoutes(app *fiber.App) {
	users := app.Group("/users", middleware.Protected())

	users.Get("/profile", controllers.GetProfile)
	users.Put("/profile", controllers.UpdateProfile)
	users.Post("/upload-avatar", controllers.UploadAvatar)
	users.Post("/upload-portfolio", controllers.UploadPortfolio)
}
