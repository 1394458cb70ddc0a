package controllers

import (
	"codelab/database"
	"codelab/middleware"
	courseModels "codelab/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// AdminCreateLesson creates a new lesson appended at the end of a section
func AdminCreateLesson(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLesson").(*struct {
		SectionID    uint   `json:"section_id"`
		Name         string `json:"name"`
		XP           int    `json:"xp"`
		TemplateCode string `json:"template_code"`
		Content      string `json:"content"`
		TestCases    string `json:"test_cases"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var section courseModels.Section
	if err := db.Where("id = ? AND is_deleted = false", reqData.SectionID).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	var maxOrder int
	db.Model(&courseModels.Lesson{}).
		Where("section_id = ? AND is_deleted = false", reqData.SectionID).
		Select("COALESCE(MAX(lesson_order), -1)").Scan(&maxOrder)

	lesson := courseModels.Lesson{
		SectionID:    reqData.SectionID,
		Name:         reqData.Name,
		LessonOrder:  maxOrder + 1,
		XP:           reqData.XP,
		TemplateCode: reqData.TemplateCode,
		Content:      reqData.Content,
	}
	if reqData.TestCases != "" {
		lesson.TestCases = datatypes.JSON(reqData.TestCases)
	}

	if err := db.Create(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", lesson)
}

// AdminUpdateLesson updates an existing lesson
func AdminUpdateLesson(c *fiber.Ctx) error {
	lessonID, err := c.ParamsInt("id")
	if err != nil || lessonID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
	}

	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", lessonID).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	reqData, ok := c.Locals("validatedLessonUpdate").(*struct {
		Name         string `json:"name"`
		XP           *int   `json:"xp"`
		TemplateCode string `json:"template_code"`
		Content      string `json:"content"`
		TestCases    string `json:"test_cases"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Name != "" {
		lesson.Name = reqData.Name
	}
	if reqData.XP != nil && *reqData.XP >= 0 {
		lesson.XP = *reqData.XP
	}
	if reqData.TemplateCode != "" {
		lesson.TemplateCode = reqData.TemplateCode
	}
	if reqData.Content != "" {
		lesson.Content = reqData.Content
	}
	if reqData.TestCases != "" {
		lesson.TestCases = datatypes.JSON(reqData.TestCases)
	}

	if err := database.Database.Db.Save(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", lesson)
}

// AdminDeleteLesson soft deletes a lesson, leaving sibling orders untouched
func AdminDeleteLesson(c *fiber.Ctx) error {
	lessonID, err := c.ParamsInt("id")
	if err != nil || lessonID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
	}

	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", lessonID).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	lesson.IsDeleted = true
	if err := database.Database.Db.Save(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", nil)
}

// AdminReorderLessons persists a full reorder of one section's lessons.
func AdminReorderLessons(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedReorder").(*struct {
		Lessons []OrderPair `json:"lessons"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	ids := make([]uint, len(reqData.Lessons))
	for i, p := range reqData.Lessons {
		ids[i] = p.ID
	}

	var lessons []courseModels.Lesson
	if err := db.Where("id IN ? AND is_deleted = false", ids).Find(&lessons).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}
	if len(lessons) != len(ids) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "One or more lessons not found!", nil)
	}

	sectionID := lessons[0].SectionID
	for _, l := range lessons {
		if l.SectionID != sectionID {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Lessons must belong to the same section!", nil)
		}
	}

	normalized := NormalizeOrder(reqData.Lessons)

	tx := db.Begin()
	for _, p := range normalized {
		if err := tx.Model(&courseModels.Lesson{}).Where("id = ?", p.ID).Update("lesson_order", p.Order).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reorder lessons!", nil)
		}
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons reordered successfully!", fiber.Map{
		"lessons": normalized,
	})
}
