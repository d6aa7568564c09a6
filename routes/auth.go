package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/umer837/ConnectPro/controllers"
	"github.com/umer837/ConnectPro/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Post("/register", controllers.Register)
	auth.Post("/verify-otp", controllers.VerifyOTP)
	auth.Post("/login", controllers.Login)
	auth.Post("/resend-otp", controllers.ResendOTP)

	// Protected routes
	auth.Post("/refresh-token", middleware.Protected(), controllers.RefreshToken)
}
