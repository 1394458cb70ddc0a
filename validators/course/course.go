package courseValidator

import (
	"codelab/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var validDifficulty = map[string]bool{"BEGINNER": true, "INTERMEDIATE": true, "ADVANCED": true}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Difficulty  string `json:"difficulty"`
			LanguageID  uint   `json:"language_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if reqData.Difficulty != "" {
			reqData.Difficulty = strings.ToUpper(reqData.Difficulty)
			if !validDifficulty[reqData.Difficulty] {
				errors["difficulty"] = "Invalid difficulty! Allowed: BEGINNER, INTERMEDIATE, ADVANCED"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Difficulty  string `json:"difficulty"`
			Status      string `json:"status"`
			LanguageID  uint   `json:"language_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Difficulty != "" {
			reqData.Difficulty = strings.ToUpper(reqData.Difficulty)
			if !validDifficulty[reqData.Difficulty] {
				errors["difficulty"] = "Invalid difficulty! Allowed: BEGINNER, INTERMEDIATE, ADVANCED"
			}
		}

		if reqData.Status != "" {
			reqData.Status = strings.ToUpper(reqData.Status)
			if reqData.Status != "DRAFT" && reqData.Status != "PUBLISHED" {
				errors["status"] = "Invalid status! Allowed: DRAFT, PUBLISHED"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `query:"page"`
			Limit *int `query:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Page != nil && *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit != nil && (*reqData.Limit < 1 || *reqData.Limit > 100) {
			errors["limit"] = "Limit must be between 1 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}
