package systemController

import (
	"codelab/database"
	"codelab/middleware"
	"codelab/models"

	"github.com/gofiber/fiber/v2"
)

// GetSystemStatus reports maintenance mode. Clients poll this while open and
// show a maintenance screen when the flag is set.
func GetSystemStatus(c *fiber.Ctx) error {
	var maintenance models.Maintenance
	err := database.Database.Db.
		Where("is_deleted = false").Order("created_at DESC").First(&maintenance).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "System status fetched successfully!", fiber.Map{
			"app_maintenance": false,
			"message":         "",
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "System status fetched successfully!", fiber.Map{
		"app_maintenance": maintenance.AppMaintenance,
		"message":         maintenance.Message,
	})
}
