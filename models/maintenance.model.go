package models

import (
	"gorm.io/gorm"
)

type Maintenance struct {
	gorm.Model
	AppMaintenance bool   `gorm:"default:false" json:"app_maintenance"`
	Message        string `gorm:"default:''" json:"message"`
	IsDeleted      bool   `gorm:"default:false" json:"-"`
}
