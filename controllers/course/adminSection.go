package controllers

import (
	"codelab/database"
	"codelab/middleware"
	courseModels "codelab/models/course"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateSection creates a new section appended at the end of a course
func AdminCreateSection(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSection").(*struct {
		CourseID    uint   `json:"course_id"`
		Name        string `json:"name"`
		Description string `json:"description"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = false", reqData.CourseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Append after the current highest order; gaps from earlier deletes are
	// tolerated until the next reorder.
	var maxOrder int
	db.Model(&courseModels.Section{}).
		Where("course_id = ? AND is_deleted = false", reqData.CourseID).
		Select("COALESCE(MAX(section_order), -1)").Scan(&maxOrder)

	section := courseModels.Section{
		CourseID:     reqData.CourseID,
		Name:         reqData.Name,
		Description:  reqData.Description,
		SectionOrder: maxOrder + 1,
	}

	if err := db.Create(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create section!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Section created successfully!", section)
}

// AdminUpdateSection updates a section's name and description
func AdminUpdateSection(c *fiber.Ctx) error {
	sectionID, err := c.ParamsInt("id")
	if err != nil || sectionID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid section id!", nil)
	}

	var section courseModels.Section
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", sectionID).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	reqData, ok := c.Locals("validatedSectionUpdate").(*struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Name != "" {
		section.Name = reqData.Name
	}
	if reqData.Description != "" {
		section.Description = reqData.Description
	}

	if err := database.Database.Db.Save(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update section!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section updated successfully!", section)
}

// AdminDeleteSection soft deletes a section and its lessons. Sibling orders
// are left untouched, so the sequence may keep gaps until a reorder.
func AdminDeleteSection(c *fiber.Ctx) error {
	sectionID, err := c.ParamsInt("id")
	if err != nil || sectionID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid section id!", nil)
	}

	var section courseModels.Section
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", sectionID).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	tx := database.Database.Db.Begin()

	section.IsDeleted = true
	if err := tx.Save(&section).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete section!", nil)
	}

	if err := tx.Model(&courseModels.Lesson{}).Where("section_id = ?", sectionID).Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete section lessons!", nil)
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section deleted successfully!", nil)
}

// AdminReorderSections persists a full reorder of one course's sections.
// The batch must cover sections of a single course; requested orders are
// normalized to a contiguous zero-based sequence before writing.
func AdminReorderSections(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedReorder").(*struct {
		Sections []OrderPair `json:"sections"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	ids := make([]uint, len(reqData.Sections))
	for i, p := range reqData.Sections {
		ids[i] = p.ID
	}

	var sections []courseModels.Section
	if err := db.Where("id IN ? AND is_deleted = false", ids).Find(&sections).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch sections!", nil)
	}
	if len(sections) != len(ids) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "One or more sections not found!", nil)
	}

	courseID := sections[0].CourseID
	for _, s := range sections {
		if s.CourseID != courseID {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Sections must belong to the same course!", nil)
		}
	}

	normalized := NormalizeOrder(reqData.Sections)

	tx := db.Begin()
	for _, p := range normalized {
		if err := tx.Model(&courseModels.Section{}).Where("id = ?", p.ID).Update("section_order", p.Order).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reorder sections!", nil)
		}
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sections reordered successfully!", fiber.Map{
		"sections": normalized,
	})
}
