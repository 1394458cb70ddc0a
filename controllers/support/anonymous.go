package supportControllers

import (
	"codelab/config"
	"codelab/database"
	"codelab/middleware"
	supportModels "codelab/models/support"
	"codelab/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateAnonymousTicket opens a ticket for an unauthenticated visitor.
// Reading the thread later requires the email verification handshake.
func CreateAnonymousTicket(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAnonymousTicket").(*struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	ticket := supportModels.SupportTicket{
		Name:    reqData.Name,
		Email:   reqData.Email,
		Subject: reqData.Subject,
	}

	created, err := openTicket(database.Database.Db, ticket, reqData.Message, supportModels.SenderUser)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create support ticket!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Support ticket created successfully!", created)
}

// RequestAnonymousAccess mails a short-lived verification code to the email
func RequestAnonymousAccess(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAccessRequest").(*struct {
		Email string `json:"email"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Only emails with at least one ticket get a code; respond identically
	// either way so the endpoint does not leak which emails exist.
	var count int64
	db.Model(&supportModels.SupportTicket{}).
		Where("email = ? AND is_deleted = false", reqData.Email).Count(&count)

	if count > 0 {
		code := utils.GenerateVerificationCode()
		access := supportModels.AnonymousAccess{
			Email:         reqData.Email,
			Code:          code,
			CodeExpiresAt: time.Now().Add(time.Duration(config.AppConfig.AccessCodeTTLMin) * time.Minute),
		}
		if err := db.Create(&access).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process request!", nil)
		}
		go utils.SendVerificationCodeEmail(reqData.Email, code, config.AppConfig.AccessCodeTTLMin)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "If tickets exist for this email, a verification code has been sent.", nil)
}

// VerifyAnonymousAccess swaps a valid code for an access token
func VerifyAnonymousAccess(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAccessVerify").(*struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var access supportModels.AnonymousAccess
	err := db.Where("email = ? AND code = ? AND code_expires_at > ?", reqData.Email, reqData.Code, time.Now()).
		Order("created_at DESC").First(&access).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired verification code!", nil)
	}

	access.AccessToken = uuid.NewString()
	access.TokenExpiresAt = time.Now().Add(time.Duration(config.AppConfig.AccessTokenTTLHour) * time.Hour)
	access.Code = ""
	if err := db.Save(&access).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue access token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Access granted.", fiber.Map{
		"access_token":     access.AccessToken,
		"token_expires_at": access.TokenExpiresAt,
	})
}

// resolveAnonymousAccess validates the X-Access-Token header.
func resolveAnonymousAccess(c *fiber.Ctx) (*supportModels.AnonymousAccess, error) {
	token := c.Get("X-Access-Token")
	if token == "" {
		token = c.Query("access_token")
	}
	if token == "" {
		return nil, gorm.ErrRecordNotFound
	}

	var access supportModels.AnonymousAccess
	err := database.Database.Db.
		Where("access_token = ? AND token_expires_at > ?", token, time.Now()).
		First(&access).Error
	if err != nil {
		return nil, err
	}
	return &access, nil
}

// AnonymousTicketList lists all tickets of the verified email
func AnonymousTicketList(c *fiber.Ctx) error {
	access, err := resolveAnonymousAccess(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired access token!", nil)
	}

	var tickets []supportModels.SupportTicket
	if err := database.Database.Db.
		Where("email = ? AND is_deleted = false", access.Email).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Order("created_at DESC").Find(&tickets).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tickets!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tickets fetched successfully!", fiber.Map{
		"tickets": tickets,
	})
}

// AnonymousReplyTicket appends a message to a ticket of the verified email
func AnonymousReplyTicket(c *fiber.Ctx) error {
	access, err := resolveAnonymousAccess(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired access token!", nil)
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
	if err := db.Where("id = ? AND email = ? AND is_deleted = false", ticketID, access.Email).First(&ticket).Error; err != nil {
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
