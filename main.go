package main

import (
	"codelab/config"
	"codelab/database"
	authRoutes "codelab/routers/authRoutes"
	courseRoutes "codelab/routers/courseRoutes"
	supportRoutes "codelab/routers/supportRoutes"
	systemRoutes "codelab/routers/systemRoutes"
	userRoutes "codelab/routers/userRoutes"
	"codelab/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	utils.InitializeSubscriptionScheduler()
	utils.InitializeTicketScheduler()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization,X-Access-Token",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupAdminCourseRoutes(app)
	userRoutes.SetupUserRoutes(app)
	supportRoutes.SetupSupportRoutes(app)
	systemRoutes.SetupSystemRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
