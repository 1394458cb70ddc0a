package courseRoutes

import (
	controllers "codelab/controllers/course"
	"codelab/middleware"
	validators "codelab/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up the admin console course routes
func SetupAdminCourseRoutes(app *fiber.App) {
	admin := app.Group("/admin", middleware.JWTMiddleware, middleware.AdminMiddleware)

	admin.Get("/courses", validators.CourseList(), controllers.AdminListCourses)
	admin.Post("/courses", validators.CreateCourse(), controllers.AdminCreateCourse)
	admin.Put("/courses/:id", validators.UpdateCourse(), controllers.AdminUpdateCourse)
	admin.Delete("/courses/:id", controllers.AdminDeleteCourse)

	admin.Post("/sections", validators.CreateSection(), controllers.AdminCreateSection)
	admin.Put("/sections/:id", validators.UpdateSection(), controllers.AdminUpdateSection)
	admin.Delete("/sections/:id", controllers.AdminDeleteSection)
	admin.Post("/sections/reorder", validators.ReorderSections(), controllers.AdminReorderSections)

	admin.Post("/lessons", validators.CreateLesson(), controllers.AdminCreateLesson)
	admin.Put("/lessons/:id", validators.UpdateLesson(), controllers.AdminUpdateLesson)
	admin.Delete("/lessons/:id", controllers.AdminDeleteLesson)
	admin.Post("/lessons/reorder", validators.ReorderLessons(), controllers.AdminReorderLessons)
}
