package courseValidator

import (
	controllers "codelab/controllers/course"
	"codelab/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func CreateSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID    uint   `json:"course_id"`
			Name        string `json:"name"`
			Description string `json:"description"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID < 1 {
			errors["course_id"] = "Course id is required!"
		}
		reqData.Name = strings.TrimSpace(reqData.Name)
		if reqData.Name == "" {
			errors["name"] = "Name is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSection", reqData)
		return c.Next()
	}
}

func UpdateSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Name = strings.TrimSpace(reqData.Name)

		c.Locals("validatedSectionUpdate", reqData)
		return c.Next()
	}
}

// ReorderSections validates the {id, order} batch for a section reorder.
func ReorderSections() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Sections []controllers.OrderPair `json:"sections"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(reqData.Sections) == 0 {
			errors["sections"] = "At least one section is required!"
		}
		seen := make(map[uint]bool, len(reqData.Sections))
		for _, p := range reqData.Sections {
			if p.ID < 1 {
				errors["sections"] = "Every section needs a valid id!"
				break
			}
			if seen[p.ID] {
				errors["sections"] = "Duplicate section id in reorder batch!"
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
