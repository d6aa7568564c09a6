package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/umer837/ConnectPro/controllers"
	"github.com/umer837/ConnectPro/middleware"
	"github.com/umer837/ConnectPro/models"
)

// SetupAdminRoutes configures all admin related routes
func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/admin", middleware.Protected(), middleware.RequireRole(models.RoleAdmin))

	admin.Get("/providers", controllers.GetProviders)
	admin.Put("/providers/:id/approve", controllers.ApproveProvider)
	admin.Get("/analytics", controllers.GetAnalytics)
	admin.Get("/users", controllers.GetUsers)
	admin.Delete("/users/:id", controllers.DeleteUser)
}
