package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/umer837/ConnectPro/cron"
	"github.com/umer837/ConnectPro/db"
	"github.com/umer837/ConnectPro/redis"
	"github.com/umer837/ConnectPro/routes"
)

func main() {
	app := fiber.New()
	db.Migrate()
	redis.InitRedis()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	routes.SetupAuthRoutes(app)
	routes.SetupServiceRoutes(app)
	routes.SetupBookingRoutes(app)
	routes.SetupAdminRoutes(app)
	routes.SetupUserRoutes(app)

	cron.StartCronJobs()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Fatal(app.Listen(":" + port))
}
