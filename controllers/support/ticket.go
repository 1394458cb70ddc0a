package supportControllers

import (
	"codelab/config"
	"codelab/database"
	"codelab/middleware"
	"codelab/models"
	supportModels "codelab/models/support"
	"codelab/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// openTicket creates a ticket with its first message inside one transaction.
func openTicket(db *gorm.DB, ticket supportModels.SupportTicket, content, senderType string) (supportModels.SupportTicket, error) {
	ticket.Status = supportModels.TicketOpen
	ticket.ExpiresAt = time.Now().Add(time.Duration(config.AppConfig.TicketTTLHours) * time.Hour)

	tx := db.Begin()
	if err := tx.Create(&ticket).Error; err != nil {
		tx.Rollback()
		return ticket, err
	}
	message := supportModels.TicketMessage{
		TicketID:   ticket.ID,
		SenderType: senderType,
		Content:    content,
	}
	if err := tx.Create(&message).Error; err != nil {
		tx.Rollback()
		return ticket, err
	}
	tx.Commit()

	ticket.Messages = []supportModels.TicketMessage{message}
	return ticket, nil
}

// appendMessage adds a message to an open ticket. A reply to a CLOSED ticket
// opens a fresh ticket linked back through ReopenedFromID: auto-close means
// the old conversation is considered resolved.
func appendMessage(db *gorm.DB, ticket supportModels.SupportTicket, content, senderType string) (supportModels.SupportTicket, error) {
	if ticket.Status == supportModels.TicketClosed {
		fresh := supportModels.SupportTicket{
			UserID:         ticket.UserID,
			Name:           ticket.Name,
			Email:          ticket.Email,
			Subject:        ticket.Subject,
			ReopenedFromID: ticket.ID,
		}
		return openTicket(db, fresh, content, senderType)
	}

	message := supportModels.TicketMessage{
		TicketID:   ticket.ID,
		SenderType: senderType,
		Content:    content,
	}
	if err := db.Create(&message).Error; err != nil {
		return ticket, err
	}
	ticket.Messages = append(ticket.Messages, message)
	return ticket, nil
}

func closeTicket(db *gorm.DB, ticket *supportModels.SupportTicket, closedBy string) error {
	now := time.Now()
	return db.Model(ticket).Updates(map[string]interface{}{
		"status":    supportModels.TicketClosed,
		"closed_by": closedBy,
		"closed_at": now,
	}).Error
}

// CreateSupportTicket opens a ticket for an authenticated user
func CreateSupportTicket(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedSupportTicket").(*struct {
		Subject string `json:"subject"`
		Message string `json:"message"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	ticket := supportModels.SupportTicket{
		UserID:  userID,
		Name:    user.Name,
		Email:   user.Email,
		Subject: reqData.Subject,
	}

	created, err := openTicket(database.Database.Db, ticket, reqData.Message, supportModels.SenderUser)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create support ticket!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Support ticket created successfully!", created)
}

// TicketList lists the caller's tickets with messages
func TicketList(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedList").(*struct {
		Page   *int    `query:"page"`
		Limit  *int    `query:"limit"`
		Status *string `query:"status"`
	})

	page := 1
	limit := 10
	if ok {
		if reqData.Page != nil {
			page = *reqData.Page
		}
		if reqData.Limit != nil {
			limit = *reqData.Limit
		}
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&supportModels.SupportTicket{}).
		Where("user_id = ? AND is_deleted = false", userID)
	if ok && reqData.Status != nil {
		db = db.Where("status = ?", *reqData.Status)
	}

	var total int64
	db.Count(&total)

	var tickets []supportModels.SupportTicket
	if err := db.Preload("Messages", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	}).Order("created_at DESC").Offset(offset).Limit(limit).Find(&tickets).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tickets!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tickets fetched successfully!", fiber.Map{
		"tickets": tickets,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// ReplyTicket appends a user message to their own ticket
func ReplyTicket(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	ticketID, err := c.ParamsInt("id")
	if err != nil || ticketID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ticket id!", nil)
	}

	reqData, ok := c.Locals("validatedReply").(*struct {
		Message string `json:"message"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var ticket supportModels.SupportTicket
	if err := db.Where("id = ? AND user_id = ? AND is_deleted = false", ticketID, userID).First(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Ticket not found!", nil)
	}

	updated, err := appendMessage(db, ticket, reqData.Message, supportModels.SenderUser)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send reply!", nil)
	}

	message := "Reply sent successfully!"
	if updated.ID != ticket.ID {
		message = "Ticket was closed. A new ticket has been opened with your message."
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, updated)
}

// CloseTicket lets a user close their own ticket
func CloseTicket(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	ticketID, err := c.ParamsInt("id")
	if err != nil || ticketID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ticket id!", nil)
	}

	db := database.Database.Db

	var ticket supportModels.SupportTicket
	if err := db.Where("id = ? AND user_id = ? AND is_deleted = false", ticketID, userID).First(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Ticket not found!", nil)
	}
	if ticket.Status == supportModels.TicketClosed {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Ticket is already closed!", nil)
	}

	if err := closeTicket(db, &ticket, supportModels.ClosedByUser); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to close ticket!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Ticket closed successfully!", ticket)
}

// AdminTicketList lists all tickets, filterable by status
func AdminTicketList(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedList").(*struct {
		Page   *int    `query:"page"`
		Limit  *int    `query:"limit"`
		Status *string `query:"status"`
	})

	page := 1
	limit := 10
	if ok {
		if reqData.Page != nil {
			page = *reqData.Page
		}
		if reqData.Limit != nil {
			limit = *reqData.Limit
		}
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&supportModels.SupportTicket{}).Where("is_deleted = false")
	if ok && reqData.Status != nil {
		db = db.Where("status = ?", *reqData.Status)
	}

	var total int64
	db.Count(&total)

	var tickets []supportModels.SupportTicket
	if err := db.Preload("Messages", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	}).Order("created_at DESC").Offset(offset).Limit(limit).Find(&tickets).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tickets!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tickets fetched successfully!", fiber.Map{
		"tickets": tickets,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// AdminReplyTicket appends an admin message to any ticket
func AdminReplyTicket(c *fiber.Ctx) error {
	ticketID, err := c.ParamsInt("id")
	if err != nil || ticketID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ticket id!", nil)
	}

	reqData, ok := c.Locals("validatedReply").(*struct {
		Message string `json:"message"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var ticket supportModels.SupportTicket
	if err := db.Where("id = ? AND is_deleted = false", ticketID).First(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Ticket not found!", nil)
	}

	updated, err := appendMessage(db, ticket, reqData.Message, supportModels.SenderAdmin)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send reply!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reply sent successfully!", updated)
}

// AdminCloseTicket closes any ticket and notifies the requester
func AdminCloseTicket(c *fiber.Ctx) error {
	ticketID, err := c.ParamsInt("id")
	if err != nil || ticketID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ticket id!", nil)
	}

	db := database.Database.Db

	var ticket supportModels.SupportTicket
	if err := db.Where("id = ? AND is_deleted = false", ticketID).First(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Ticket not found!", nil)
	}
	if ticket.Status == supportModels.TicketClosed {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Ticket is already closed!", nil)
	}

	if err := closeTicket(db, &ticket, supportModels.ClosedByAdmin); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to close ticket!", nil)
	}

	if ticket.Email != "" {
		utils.SendTicketClosedEmail(ticket.Email, ticket.Subject, ticket.ID)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Ticket closed successfully!", ticket)
}
