package support

import (
	"time"

	"gorm.io/gorm"
)

const (
	TicketOpen   = "OPEN"
	TicketClosed = "CLOSED"

	ClosedByUser  = "USER"
	ClosedByAdmin = "ADMIN"
	ClosedByAuto  = "AUTO"

	SenderUser  = "USER"
	SenderAdmin = "ADMIN"
)

// SupportTicket is opened by the first message. Authenticated tickets carry
// UserID; anonymous ones carry Name/Email instead. A reply to a CLOSED
// ticket opens a new ticket pointing back via ReopenedFromID.
type SupportTicket struct {
	gorm.Model
	UserID         uint       `json:"user_id" gorm:"index"` // 0 for anonymous tickets
	Name           string     `json:"name"`
	Email          string     `json:"email" gorm:"index"`
	Subject        string     `json:"subject"`
	Status         string     `json:"status" gorm:"default:'OPEN'"`
	ClosedBy       string     `json:"closed_by"` // USER, ADMIN, AUTO
	ClosedAt       *time.Time `json:"closed_at"`
	ExpiresAt      time.Time  `json:"expires_at"`
	ReopenedFromID uint       `json:"reopened_from_id"`
	IsDeleted      bool       `gorm:"default:false" json:"-"`

	Messages []TicketMessage `json:"messages" gorm:"foreignKey:TicketID"`
}

type TicketMessage struct {
	gorm.Model
	TicketID   uint   `json:"ticket_id" gorm:"index;not null"`
	SenderType string `json:"sender_type"` // USER, ADMIN
	Content    string `json:"content" gorm:"type:text"`
}

// AnonymousAccess holds the email verification handshake for unauthenticated
// ticket access: a short-lived code is mailed out, and a successful verify
// swaps it for a uuid access token.
type AnonymousAccess struct {
	gorm.Model
	Email          string    `json:"email" gorm:"index;not null"`
	Code           string    `json:"-"`
	CodeExpiresAt  time.Time `json:"-"`
	AccessToken    string    `json:"access_token" gorm:"index"`
	TokenExpiresAt time.Time `json:"token_expires_at"`
}
