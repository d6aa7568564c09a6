package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/umer837/ConnectPro/controllers"
	"github.com/umer837/ConnectPro/middleware"
	"github.com/umer837/ConnectPro/models"
)

// SetupBookingRoutes configures all booking related routes
func SetupBookingRoutes(app *fiber.App) {
	booking := app.Group("/bookings", middleware.Protected())

	booking.Post("/", middleware.RequireRole(models.RoleClient), controllers.CreateBooking)
	booking.Get("/history", controllers.GetBookingHistory)
	booking.Get("/:id", controllers.GetBooking)
	booking.Put("/:id/status", middleware.RequireRole(models.RoleProvider), controllers.UpdateBookingStatus)
	booking.Put("/:id/cancel", controllers.CancelBooking)
}
