package course

import "gorm.io/gorm"

// Section groups lessons inside a course. SectionOrder is zero-based and
// kept contiguous per course by the reorder endpoint; deletes may leave
// gaps until the next explicit reorder.
type Section struct {
	gorm.Model
	CourseID     uint   `json:"course_id" gorm:"index;not null"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	SectionOrder int    `json:"order" gorm:"default:0"`
	IsDeleted    bool   `gorm:"default:false" json:"-"`
}
