package controllers

import (
	"codelab/database"
	"codelab/middleware"
	courseModels "codelab/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SectionView is a section with its lessons resolved for the calling user.
// Lessons is always a non-nil array.
type SectionView struct {
	courseModels.Section
	Lessons []LessonView `json:"lessons"`
}

// buildSectionViews loads the ordered section/lesson tree of a course and
// resolves per-lesson completion and lock state for the user.
func buildSectionViews(db *gorm.DB, courseID, userID uint, hasActiveSubscription bool, exercisesCompleted int) ([]SectionView, error) {
	var sections []courseModels.Section
	if err := db.Where("course_id = ? AND is_deleted = false", courseID).
		Order("section_order asc").Find(&sections).Error; err != nil {
		return nil, err
	}

	// Per-user completion flags for the whole course in one read
	var progress []courseModels.LessonProgress
	if err := db.
		Joins("JOIN lessons ON lessons.id = lesson_progresses.lesson_id").
		Joins("JOIN sections ON sections.id = lessons.section_id").
		Where("lesson_progresses.user_id = ? AND sections.course_id = ?", userID, courseID).
		Find(&progress).Error; err != nil {
		return nil, err
	}
	completed := make(map[uint]bool, len(progress))
	for _, p := range progress {
		completed[p.LessonID] = p.Completed
	}

	views := make([]SectionView, len(sections))
	for i, section := range sections {
		var lessons []courseModels.Lesson
		if err := db.Where("section_id = ? AND is_deleted = false", section.ID).
			Order("lesson_order asc").Find(&lessons).Error; err != nil {
			return nil, err
		}

		lessonViews := make([]LessonView, len(lessons))
		for j, lesson := range lessons {
			lessonViews[j] = LessonView{Lesson: lesson, Completed: completed[lesson.ID]}
		}

		views[i] = SectionView{
			Section: section,
			Lessons: ResolveLessonAccess(lessonViews, hasActiveSubscription, exercisesCompleted),
		}
	}
	return views, nil
}

// GetCourseSections returns the section/lesson tree of a course with the
// caller's completion and lock state (fallback path of the course view).
func GetCourseSections(c *fiber.Ctx) error {
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

	hasActiveSub := userHasActiveSubscription(db, userID)
	exercisesCompleted := userExercisesCompleted(db, userID)

	sections, err := buildSectionViews(db, uint(courseID), userID, hasActiveSub, exercisesCompleted)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch sections!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sections fetched successfully!", fiber.Map{
		"sections": sections,
	})
}
