package course

import "gorm.io/gorm"

const (
	StatusDraft     = "DRAFT"
	StatusPublished = "PUBLISHED"
)

// Course is the top-level unit of the catalog
type Course struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status" gorm:"default:'DRAFT'"` // DRAFT, PUBLISHED
	Difficulty  string `json:"difficulty" gorm:"default:'BEGINNER'"`
	LanguageID  uint   `json:"language_id" gorm:"index"`
	IsDeleted   bool   `gorm:"default:false" json:"-"`
}
