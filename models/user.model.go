package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	ProfileImage    string     `gorm:"default:''" json:"profile_image"`
	Name            string     `gorm:"default:''" json:"name"`
	Email           string     `gorm:"unique;not null" json:"email"`
	Role            string     `gorm:"default:'USER'" json:"role"` // USER, ADMIN
	Password        string     `gorm:"not null" json:"-"`
	IsEmailVerified bool       `gorm:"default:false" json:"is_email_verified"`
	LastLogin       *time.Time `json:"last_login"`
	IsDeleted       bool       `gorm:"default:false" json:"-"`
}
