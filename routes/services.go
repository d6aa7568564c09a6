package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/umer837/ConnectPro/controllers"
	"github.com/umer837/ConnectPro/middleware"
	"github.com/umer837/ConnectPro/models"
)

// SetupServiceRoutes configures all catalog related routes
func SetupServiceRoutes(app *fiber.App) {
	service := app.Group("/services")

	service.Get("/", controllers.GetAllServices)
	service.Get("/provider/my-services", middleware.Protected(), middleware.RequireRole(models.RoleProvider), controllers.GetMyServices)
	service.Get("/:id", controllers.GetService)
	service.Post("/", middleware.Protected(), middleware.RequireRole(models.RoleProvider), controllers.CreateService)
	service.Put("/:id", middleware.Protected(), middleware.RequireRole(models.RoleProvider), controllers.UpdateService)
	service.Delete("/:id", middleware.Protected(), middleware.RequireRole(models.RoleProvider), controllers.DeleteService)
	service.Post("/:id/reviews", middleware.Protected(), middleware.RequireRole(models.RoleClient), controllers.AddReview)
}
