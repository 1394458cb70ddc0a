package subscriptionController

import (
	"codelab/database"
	"codelab/middleware"
	"codelab/models"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CheckSubscription returns the caller's current subscription status.
// Checkout runs in the payment provider; this only reads the stored result.
func CheckSubscription(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var sub models.Subscription
	err := database.Database.Db.
		Where("user_id = ? AND is_deleted = false", userID).
		Order("created_at DESC").First(&sub).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "No subscription found.", fiber.Map{
			"active": false,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subscription fetched successfully!", fiber.Map{
		"active":   sub.IsActive(time.Now()),
		"plan":     sub.Plan,
		"status":   sub.Status,
		"end_date": sub.EndDate,
	})
}
