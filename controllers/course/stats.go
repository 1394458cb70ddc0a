package controllers

import (
	"codelab/database"
	"codelab/middleware"
	"codelab/models"
	courseModels "codelab/models/course"
	"codelab/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CourseStats are the per-course aggregates of the course view.
type CourseStats struct {
	CourseXP           int `json:"course_xp"`
	ExercisesCompleted int `json:"exercises_completed"`
}

// GlobalStats are the profile-wide aggregates, all derived at read time.
type GlobalStats struct {
	TotalXP            int     `json:"total_xp"`
	ExercisesCompleted int     `json:"exercises_completed"`
	Level              int     `json:"level"`
	LevelProgress      float64 `json:"level_progress"`
	XPToNextLevel      int     `json:"xp_to_next_level"`
	Streak             int     `json:"streak"`
}

func userHasActiveSubscription(db *gorm.DB, userID uint) bool {
	var sub models.Subscription
	if err := db.Where("user_id = ? AND is_deleted = false", userID).
		Order("created_at DESC").First(&sub).Error; err != nil {
		return false
	}
	return sub.IsActive(time.Now())
}

func userExercisesCompleted(db *gorm.DB, userID uint) int {
	var count int64
	db.Model(&courseModels.LessonProgress{}).
		Where("user_id = ? AND completed = true", userID).
		Count(&count)
	return int(count)
}

func userCourseStats(db *gorm.DB, userID, courseID uint) CourseStats {
	base := func() *gorm.DB {
		return db.Model(&courseModels.LessonProgress{}).
			Joins("JOIN lessons ON lessons.id = lesson_progresses.lesson_id").
			Joins("JOIN sections ON sections.id = lessons.section_id").
			Where("lesson_progresses.user_id = ? AND lesson_progresses.completed = true", userID).
			Where("sections.course_id = ? AND lessons.is_deleted = false", courseID)
	}

	var stats CourseStats
	base().Select("COALESCE(SUM(lessons.xp), 0)").Scan(&stats.CourseXP)

	var count int64
	base().Count(&count)
	stats.ExercisesCompleted = int(count)
	return stats
}

func userGlobalStats(db *gorm.DB, userID uint) GlobalStats {
	var totalXP int
	db.Model(&courseModels.LessonProgress{}).
		Joins("JOIN lessons ON lessons.id = lesson_progresses.lesson_id").
		Where("lesson_progresses.user_id = ? AND lesson_progresses.completed = true", userID).
		Select("COALESCE(SUM(lessons.xp), 0)").Scan(&totalXP)

	var completionTimes []time.Time
	db.Model(&courseModels.LessonProgress{}).
		Where("user_id = ? AND completed = true", userID).
		Order("updated_at DESC").
		Pluck("updated_at", &completionTimes)

	return GlobalStats{
		TotalXP:            totalXP,
		ExercisesCompleted: userExercisesCompleted(db, userID),
		Level:              utils.CalculateLevel(totalXP),
		LevelProgress:      utils.CalculateLevelProgress(totalXP),
		XPToNextLevel:      utils.CalculateXPToNextLevel(totalXP),
		Streak:             utils.Streak(uniqueDays(completionTimes), time.Now()),
	}
}

// uniqueDays collapses timestamps to unique calendar days, preserving the
// descending input order.
func uniqueDays(times []time.Time) []time.Time {
	var days []time.Time
	for _, t := range times {
		if len(days) == 0 {
			days = append(days, t)
			continue
		}
		last := days[len(days)-1]
		ly, lm, ld := last.Date()
		ty, tm, td := t.Date()
		if ly != ty || lm != tm || ld != td {
			days = append(days, t)
		}
	}
	return days
}

// GetCourseStats returns the caller's XP and completion count for one course
func GetCourseStats(c *fiber.Ctx) error {
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
	if err := db.Where("id = ? AND is_deleted = false", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	stats := userCourseStats(db, userID, uint(courseID))
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course stats fetched successfully!", stats)
}

// GetGlobalStats returns the caller's profile-wide XP stats
func GetGlobalStats(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	stats := userGlobalStats(database.Database.Db, userID)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched successfully!", stats)
}
