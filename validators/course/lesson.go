package courseValidator

import (
	controllers "codelab/controllers/course"
	"codelab/middleware"
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			SectionID    uint   `json:"section_id"`
			Name         string `json:"name"`
			XP           int    `json:"xp"`
			TemplateCode string `json:"template_code"`
			Content      string `json:"content"`
			TestCases    string `json:"test_cases"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.SectionID < 1 {
			errors["section_id"] = "Section id is required!"
		}
		reqData.Name = strings.TrimSpace(reqData.Name)
		if reqData.Name == "" {
			errors["name"] = "Name is required!"
		}
		if reqData.XP < 0 {
			errors["xp"] = "XP must not be negative!"
		}
		if reqData.TestCases != "" && !json.Valid([]byte(reqData.TestCases)) {
			errors["test_cases"] = "Test cases must be valid JSON!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

func UpdateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name         string `json:"name"`
			XP           *int   `json:"xp"`
			TemplateCode string `json:"template_code"`
			Content      string `json:"content"`
			TestCases    string `json:"test_cases"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.XP != nil && *reqData.XP < 0 {
			errors["xp"] = "XP must not be negative!"
		}
		if reqData.TestCases != "" && !json.Valid([]byte(reqData.TestCases)) {
			errors["test_cases"] = "Test cases must be valid JSON!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		reqData.Name = strings.TrimSpace(reqData.Name)
		c.Locals("validatedLessonUpdate", reqData)
		return c.Next()
	}
}

// ReorderLessons validates the {id, order} batch for a lesson reorder.
func ReorderLessons() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Lessons []controllers.OrderPair `json:"lessons"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(reqData.Lessons) == 0 {
			errors["lessons"] = "At least one lesson is required!"
		}
		seen := make(map[uint]bool, len(reqData.Lessons))
		for _, p := range reqData.Lessons {
			if p.ID < 1 {
				errors["lessons"] = "Every lesson needs a valid id!"
				break
			}
			if seen[p.ID] {
				errors["lessons"] = "Duplicate lesson id in reorder batch!"
				break
			}
			seen[p.ID] = true
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReorder", reqData)
		return c.Next()
	}
}

// SubmitLesson validates a code submission.
func SubmitLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Code string `json:"code"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Code) == "" {
			errors["code"] = "Code is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}
