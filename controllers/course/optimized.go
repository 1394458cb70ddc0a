package controllers

import (
	"codelab/database"
	"codelab/middleware"
	"codelab/models"
	courseModels "codelab/models/course"
	"time"

	"github.com/gofiber/fiber/v2"
)

// SubscriptionStatus is the subscription slice of the combined course view.
type SubscriptionStatus struct {
	Active  bool       `json:"active"`
	Plan    string     `json:"plan"`
	EndDate *time.Time `json:"end_date"`
}

// GetOptimizedCourseSection assembles the whole course view in one round
// trip: course, subscription, profile, section/lesson tree with lock state,
// and both stat blocks. This is the primary path of the client aggregator;
// the discrete endpoints remain available as its fallback.
func GetOptimizedCourseSection(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, err := c.ParamsInt("courseId")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = false AND status = ?", courseID, courseModels.StatusPublished).
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}
	user.Password = ""

	subscription := SubscriptionStatus{}
	var sub models.Subscription
	if err := db.Where("user_id = ? AND is_deleted = false", userID).
		Order("created_at DESC").First(&sub).Error; err == nil {
		subscription = SubscriptionStatus{
			Active:  sub.IsActive(time.Now()),
			Plan:    sub.Plan,
			EndDate: sub.EndDate,
		}
	}

	globalStats := userGlobalStats(db, userID)

	sections, err := buildSectionViews(db, uint(courseID), userID, subscription.Active, globalStats.ExercisesCompleted)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to assemble course view!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course view fetched successfully!", fiber.Map{
		"course":       course,
		"subscription": subscription,
		"profile":      user,
		"sections":     sections,
		"stats": fiber.Map{
			"course": userCourseStats(db, userID, uint(courseID)),
			"global": globalStats,
		},
	})
}
