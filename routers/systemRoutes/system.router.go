package systemRoutes

import (
	systemController "codelab/controllers/system"

	"github.com/gofiber/fiber/v2"
)

func SetupSystemRoutes(app *fiber.App) {
	app.Get("/system/status", systemController.GetSystemStatus)
}
