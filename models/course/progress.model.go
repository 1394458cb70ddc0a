package course

import "gorm.io/gorm"

// LessonProgress is created on a user's first submission for a lesson and
// updated on every re-submission. Rows are never deleted.
type LessonProgress struct {
	gorm.Model
	UserID        uint   `json:"user_id" gorm:"uniqueIndex:idx_user_lesson;not null"`
	LessonID      uint   `json:"lesson_id" gorm:"uniqueIndex:idx_user_lesson;not null"`
	Completed     bool   `json:"completed" gorm:"default:false"`
	SubmittedCode string `json:"submitted_code" gorm:"type:text"`
}
