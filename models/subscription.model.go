package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	SubscriptionActive   = "ACTIVE"
	SubscriptionExpired  = "EXPIRED"
	SubscriptionCanceled = "CANCELED"
)

// Subscription tracks a user's paid plan. Checkout itself happens in the
// payment provider; only the resulting status lives here.
type Subscription struct {
	gorm.Model
	UserID       uint       `gorm:"index;not null" json:"user_id"`
	Plan         string     `gorm:"default:'MONTHLY'" json:"plan"` // MONTHLY, YEARLY
	Status       string     `gorm:"default:'ACTIVE'" json:"status"`
	EndDate      *time.Time `json:"end_date"`
	ReminderSent bool       `gorm:"default:false" json:"-"`
	IsDeleted    bool       `gorm:"default:false" json:"-"`
}

// IsActive reports whether the subscription grants access right now.
func (s *Subscription) IsActive(now time.Time) bool {
	return s.Status == SubscriptionActive && s.EndDate != nil && s.EndDate.After(now)
}
