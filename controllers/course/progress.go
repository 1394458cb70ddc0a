package controllers

import (
	"codelab/database"
	"codelab/middleware"
	courseModels "codelab/models/course"
	"codelab/utils"
	"log"

	"github.com/gofiber/fiber/v2"
)

// GetSectionLessons returns one section's lessons sorted by lesson_order with
// the caller's completion flag and computed lock state.
func GetSectionLessons(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	sectionID, err := c.ParamsInt("sectionId")
	if err != nil || sectionID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid section id!", nil)
	}

	db := database.Database.Db

	var section courseModels.Section
	if err := db.Where("id = ? AND is_deleted = false", sectionID).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	var lessons []courseModels.Lesson
	if err := db.Where("section_id = ? AND is_deleted = false", sectionID).
		Order("lesson_order asc").Find(&lessons).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	var progress []courseModels.LessonProgress
	db.Where("user_id = ?", userID).Find(&progress)
	completed := make(map[uint]bool, len(progress))
	for _, p := range progress {
		completed[p.LessonID] = p.Completed
	}

	views := make([]LessonView, len(lessons))
	for i, lesson := range lessons {
		views[i] = LessonView{Lesson: lesson, Completed: completed[lesson.ID]}
	}

	hasActiveSub := userHasActiveSubscription(db, userID)
	exercisesCompleted := userExercisesCompleted(db, userID)
	views = ResolveLessonAccess(views, hasActiveSub, exercisesCompleted)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully!", fiber.Map{
		"lessons": views,
	})
}

// SubmitLesson runs submitted code against the lesson's test cases and
// records progress. The lesson must be actionable for the caller: unlocked
// by the previous-lesson rule and not gated by the free plan.
func SubmitLesson(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	lessonID, err := c.ParamsInt("id")
	if err != nil || lessonID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
	}

	reqData, ok := c.Locals("validatedSubmission").(*struct {
		Code string `json:"code"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var lesson courseModels.Lesson
	if err := db.Where("id = ? AND is_deleted = false", lessonID).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	var section courseModels.Section
	if err := db.Where("id = ? AND is_deleted = false", lesson.SectionID).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	hasActiveSub := userHasActiveSubscription(db, userID)
	exercisesCompleted := userExercisesCompleted(db, userID)

	if !hasActiveSub && exercisesCompleted >= FreeLessonLimit {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Free lesson limit reached. Upgrade your plan to continue learning!", nil)
	}

	// Previous-lesson rule: anything but the first lesson of its section
	// needs the lesson before it completed.
	if lesson.LessonOrder > 0 {
		var previous courseModels.Lesson
		err := db.Where("section_id = ? AND lesson_order < ? AND is_deleted = false", lesson.SectionID, lesson.LessonOrder).
			Order("lesson_order DESC").First(&previous).Error
		if err == nil {
			var prevProgress courseModels.LessonProgress
			if err := db.Where("user_id = ? AND lesson_id = ? AND completed = true", userID, previous.ID).
				First(&prevProgress).Error; err != nil {
				return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Complete previous lessons first!", nil)
			}
		}
	}

	var course courseModels.Course
	db.Where("id = ?", section.CourseID).First(&course)

	result, err := utils.RunInSandbox(course.LanguageID, reqData.Code, []byte(lesson.TestCases))
	if err != nil {
		log.Printf("Sandbox execution failed for lesson %d: %v", lesson.ID, err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Code execution failed. Please try again.", nil)
	}

	// First submission creates the row, re-submissions update it. A lesson
	// once completed stays completed.
	var progress courseModels.LessonProgress
	if err := db.Where("user_id = ? AND lesson_id = ?", userID, lesson.ID).First(&progress).Error; err != nil {
		progress = courseModels.LessonProgress{
			UserID:        userID,
			LessonID:      lesson.ID,
			Completed:     result.Passed,
			SubmittedCode: reqData.Code,
		}
		if err := db.Create(&progress).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save progress!", nil)
		}
	} else {
		progress.SubmittedCode = reqData.Code
		if result.Passed {
			progress.Completed = true
		}
		if err := db.Save(&progress).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save progress!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submission processed successfully!", fiber.Map{
		"result":   result,
		"progress": progress,
	})
}
