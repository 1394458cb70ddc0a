package supportRoutes

import (
	controller "codelab/controllers/support"
	"codelab/middleware"
	validator "codelab/validators/support"

	"github.com/gofiber/fiber/v2"
)

func SetupSupportRoutes(app *fiber.App) {
	support := app.Group("/support")

	// Authenticated flow
	support.Post("/", middleware.JWTMiddleware, validator.CreateTicket(), controller.CreateSupportTicket)
	support.Get("/list", middleware.JWTMiddleware, validator.TicketList(), controller.TicketList)
	support.Post("/:id/reply", middleware.JWTMiddleware, validator.Reply(), controller.ReplyTicket)
	support.Post("/:id/close", middleware.JWTMiddleware, controller.CloseTicket)

	// Anonymous flow: ticket creation is open, reading requires the
	// email verification handshake
	support.Post("/anonymous", validator.CreateAnonymousTicket(), controller.CreateAnonymousTicket)
	support.Post("/anonymous/access/request", validator.AccessRequest(), controller.RequestAnonymousAccess)
	support.Post("/anonymous/access/verify", validator.AccessVerify(), controller.VerifyAnonymousAccess)
	support.Get("/anonymous/tickets", controller.AnonymousTicketList)
	support.Post("/anonymous/tickets/:id/reply", validator.Reply(), controller.AnonymousReplyTicket)

	// Admin flow
	support.Get("/admin-list", middleware.JWTMiddleware, middleware.AdminMiddleware, validator.TicketList(), controller.AdminTicketList)
	support.Post("/admin/:id/reply", middleware.JWTMiddleware, middleware.AdminMiddleware, validator.Reply(), controller.AdminReplyTicket)
	support.Post("/admin/:id/close", middleware.JWTMiddleware, middleware.AdminMiddleware, controller.AdminCloseTicket)
}
