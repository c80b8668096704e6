package main

import (
	"log"

	"github.com/RyanYahya/NarraPrep/config"
	"github.com/RyanYahya/NarraPrep/database"
	adminRoutes "github.com/RyanYahya/NarraPrep/routers/adminRoutes"
	attemptRoutes "github.com/RyanYahya/NarraPrep/routers/attemptRoutes"
	authRoutes "github.com/RyanYahya/NarraPrep/routers/authRoutes"
	platformRoutes "github.com/RyanYahya/NarraPrep/routers/platformRoutes"
	questionRoutes "github.com/RyanYahya/NarraPrep/routers/questionRoutes"
	quizRoutes "github.com/RyanYahya/NarraPrep/routers/quizRoutes"
	userRoutes "github.com/RyanYahya/NarraPrep/routers/userRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New(fiber.Config{
		Prefork: config.AppConfig.Prefork,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.AppConfig.AllowedOrigins,
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve the dashboard from the public folder
	app.Static("/", "./public")

	api := app.Group("/api/v1")

	platformRoutes.SetupPlatformRoutes(api)
	authRoutes.SetupAuthRoutes(api)
	questionRoutes.SetupQuestionRoutes(api)
	userRoutes.SetupUserRoutes(api)
	quizRoutes.SetupQuizRoutes(api)
	attemptRoutes.SetupAttemptRoutes(api)
	adminRoutes.SetupAdminRoutes(api)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
