package courseRoutes

import (
	controllers "codelab/controllers/course"
	subscriptionController "codelab/controllers/subscription"
	"codelab/middleware"
	validators "codelab/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all user-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	courses := app.Group("/courses")
	courses.Get("/list", middleware.JWTMiddleware, validators.CourseList(), controllers.GetAllCourses)
	courses.Get("/:id", middleware.JWTMiddleware, controllers.GetCourseDetails)

	// Combined course view: single round trip for the whole lesson player
	app.Get("/optimized-course-section/:courseId", middleware.JWTMiddleware, controllers.GetOptimizedCourseSection)

	// Discrete reads used by the client's fallback path
	app.Get("/sections/course/:courseId", middleware.JWTMiddleware, controllers.GetCourseSections)
	app.Get("/lessons/section/:sectionId/progress", middleware.JWTMiddleware, controllers.GetSectionLessons)
	app.Get("/student/courses/:courseId/stats", middleware.JWTMiddleware, controllers.GetCourseStats)
	app.Get("/student/stats", middleware.JWTMiddleware, controllers.GetGlobalStats)
	app.Get("/subscription/check", middleware.JWTMiddleware, subscriptionController.CheckSubscription)

	// Code submission
	app.Post("/lessons/:id/submit", middleware.JWTMiddleware, validators.SubmitLesson(), controllers.SubmitLesson)
}
