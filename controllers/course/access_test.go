package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	courseModels "codelab/models/course"
)

func lessonRow(name string, order int, completed bool) LessonView {
	return LessonView{
		Lesson:    courseModels.Lesson{Name: name, LessonOrder: order},
		Completed: completed,
	}
}

func TestResolveLessonAccessEmpty(t *testing.T) {
	assert.Empty(t, ResolveLessonAccess([]LessonView{}, true, 0))
}

func TestResolveLessonAccessFirstAlwaysAccessible(t *testing.T) {
	out := ResolveLessonAccess([]LessonView{
		lessonRow("intro", 0, false),
	}, false, 0)

	assert.True(t, out[0].Accessible)
	assert.False(t, out[0].DisabledByPlan)
}

func TestResolveLessonAccessUnlocksAfterPreviousCompleted(t *testing.T) {
	out := ResolveLessonAccess([]LessonView{
		lessonRow("a", 0, true),
		lessonRow("b", 1, true),
		lessonRow("c", 2, false),
		lessonRow("d", 3, false),
	}, true, 2)

	assert.True(t, out[0].Accessible)
	assert.True(t, out[1].Accessible)
	assert.True(t, out[2].Accessible)  // previous completed
	assert.False(t, out[3].Accessible) // previous not completed
}

func TestResolveLessonAccessNothingCompleted(t *testing.T) {
	// Two sections of three lessons each, nothing completed: only the
	// first lesson of each section is accessible.
	sectionA := ResolveLessonAccess([]LessonView{
		lessonRow("a1", 0, false),
		lessonRow("a2", 1, false),
		lessonRow("a3", 2, false),
	}, true, 0)
	sectionB := ResolveLessonAccess([]LessonView{
		lessonRow("b1", 0, false),
		lessonRow("b2", 1, false),
		lessonRow("b3", 2, false),
	}, true, 0)

	for _, section := range [][]LessonView{sectionA, sectionB} {
		assert.True(t, section[0].Accessible)
		assert.False(t, section[1].Accessible)
		assert.False(t, section[2].Accessible)
	}
}

func TestResolveLessonAccessPlanGateAtLimit(t *testing.T) {
	// A free user who completed the free allowance is plan-locked out of
	// every lesson, accessible or not.
	out := ResolveLessonAccess([]LessonView{
		lessonRow("a", 0, true),
		lessonRow("b", 1, false),
		lessonRow("c", 2, false),
	}, false, FreeLessonLimit)

	for i := range out {
		assert.True(t, out[i].DisabledByPlan, "lesson %d", i)
	}
	// Progression flags are still computed underneath the plan gate
	assert.True(t, out[0].Accessible)
	assert.True(t, out[1].Accessible)
	assert.False(t, out[2].Accessible)
}

func TestResolveLessonAccessPlanGateBelowLimit(t *testing.T) {
	out := ResolveLessonAccess([]LessonView{
		lessonRow("a", 0, true),
		lessonRow("b", 1, false),
	}, false, FreeLessonLimit-1)

	for i := range out {
		assert.False(t, out[i].DisabledByPlan, "lesson %d", i)
	}
}

func TestResolveLessonAccessSubscriberNeverPlanGated(t *testing.T) {
	out := ResolveLessonAccess([]LessonView{
		lessonRow("a", 0, true),
		lessonRow("b", 1, true),
	}, true, 250)

	for i := range out {
		assert.False(t, out[i].DisabledByPlan, "lesson %d", i)
	}
}
