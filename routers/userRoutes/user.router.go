package userRoutes

import (
	userController "codelab/controllers/user"
	"codelab/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	user := app.Group("/user")

	user.Get("/profile", middleware.JWTMiddleware, userController.GetProfile)
}
