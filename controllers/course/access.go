package controllers

import (
	courseModels "codelab/models/course"
)

// FreeLessonLimit is the number of completed lessons after which users
// without an active subscription lose access to all lessons.
const FreeLessonLimit = 5

// LessonView is a lesson decorated with the caller's progress and the
// computed lock state. Shared by the optimized course view and the
// per-section lesson listing so both paths produce the same shape.
type LessonView struct {
	courseModels.Lesson
	Completed      bool `json:"completed"`
	Accessible     bool `json:"accessible"`
	DisabledByPlan bool `json:"disabled_by_plan"`
}

// ResolveLessonAccess computes per-lesson lock state for one section.
// Lessons must already be sorted by lesson_order. The first lesson is always
// accessible; each later lesson requires the previous one completed. Plan
// gating is layered on top, uniformly for the whole list.
func ResolveLessonAccess(lessons []LessonView, hasActiveSubscription bool, exercisesCompleted int) []LessonView {
	disabledByPlan := !hasActiveSubscription && exercisesCompleted >= FreeLessonLimit

	for i := range lessons {
		if i == 0 {
			lessons[i].Accessible = true
		} else {
			lessons[i].Accessible = lessons[i-1].Completed
		}
		lessons[i].DisabledByPlan = disabledByPlan
	}
	return lessons
}
