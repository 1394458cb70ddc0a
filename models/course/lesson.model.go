package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Lesson is a single coding exercise. LessonOrder is zero-based within its
// section, same contiguity rule as Section.SectionOrder.
type Lesson struct {
	gorm.Model
	SectionID    uint           `json:"section_id" gorm:"index;not null"`
	Name         string         `json:"name"`
	LessonOrder  int            `json:"order" gorm:"default:0"`
	XP           int            `json:"xp" gorm:"default:0"`
	TemplateCode string         `json:"template_code" gorm:"type:text"`
	Content      string         `json:"content" gorm:"type:text"`
	TestCases    datatypes.JSON `json:"test_cases"` // array of {input, expected}
	IsDeleted    bool           `gorm:"default:false" json:"-"`
}
