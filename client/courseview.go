package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrCourseNotAvailable means the course does not exist or is not readable
// by the caller. The UI redirects instead of retrying.
var ErrCourseNotAvailable = errors.New("course not available")

// Course is the catalog entry of the course view.
type Course struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Difficulty  string `json:"difficulty"`
	LanguageID  uint   `json:"language_id"`
}

// Lesson carries the caller's completion and lock state. A lesson is
// actionable only when Accessible and not DisabledByPlan.
type Lesson struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Order          int    `json:"order"`
	XP             int    `json:"xp"`
	Completed      bool   `json:"completed"`
	Accessible     bool   `json:"accessible"`
	DisabledByPlan bool   `json:"disabled_by_plan"`
}

// Section always carries a non-nil Lessons slice.
type Section struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Order       int      `json:"order"`
	Lessons     []Lesson `json:"lessons"`
}

type SubscriptionStatus struct {
	Active  bool       `json:"active"`
	Plan    string     `json:"plan"`
	EndDate *time.Time `json:"end_date"`
}

type Profile struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type CourseStats struct {
	CourseXP           int `json:"course_xp"`
	ExercisesCompleted int `json:"exercises_completed"`
}

type GlobalStats struct {
	TotalXP            int     `json:"total_xp"`
	ExercisesCompleted int     `json:"exercises_completed"`
	Level              int     `json:"level"`
	LevelProgress      float64 `json:"level_progress"`
	XPToNextLevel      int     `json:"xp_to_next_level"`
	Streak             int     `json:"streak"`
}

type Stats struct {
	Course CourseStats `json:"course"`
	Global GlobalStats `json:"global"`
}

// CourseViewModel is the normalized course view. The optimized and fallback
// paths both produce this exact shape.
type CourseViewModel struct {
	Course       Course             `json:"course"`
	Subscription SubscriptionStatus `json:"subscription"`
	Profile      Profile            `json:"profile"`
	Sections     []Section          `json:"sections"`
	Stats        Stats              `json:"stats"`
}

// normalize coerces absent collections to empty slices so consumers never
// see a nil lessons array.
func (v *CourseViewModel) normalize() {
	if v.Sections == nil {
		v.Sections = []Section{}
	}
	for i := range v.Sections {
		if v.Sections[i].Lessons == nil {
			v.Sections[i].Lessons = []Lesson{}
		}
	}
}

// LoadCourseView assembles the course view. It tries the combined endpoint
// first (one round trip) and decomposes into independently retryable reads
// when that fails. Concurrent loads of the same course share one in-flight
// request.
func (c *Client) LoadCourseView(ctx context.Context, courseID uint) (*CourseViewModel, error) {
	key := fmt.Sprintf("course-view/%d", courseID)

	c.mu.Lock()
	if call, ok := c.inflight[key]; ok {
		c.mu.Unlock()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-call.done:
			return call.view, call.err
		}
	}
	call := &inflightCall{done: make(chan struct{})}
	c.inflight[key] = call
	c.mu.Unlock()

	view, err := c.loadCourseView(ctx, courseID)

	call.view, call.err = view, err
	close(call.done)

	c.mu.Lock()
	delete(c.inflight, key)
	c.mu.Unlock()

	return view, err
}

func (c *Client) loadCourseView(ctx context.Context, courseID uint) (*CourseViewModel, error) {
	view, primaryErr := c.loadOptimized(ctx, courseID)
	if primaryErr == nil {
		view.normalize()
		return view, nil
	}

	// A missing or forbidden course is terminal either way; skip the
	// fallback and let the UI redirect.
	var apiErr *APIError
	if errors.As(primaryErr, &apiErr) && (apiErr.StatusCode == 404 || apiErr.StatusCode == 403) {
		return nil, ErrCourseNotAvailable
	}

	view, err := c.loadFallback(ctx, courseID)
	if err != nil {
		return nil, err
	}
	view.normalize()
	return view, nil
}

func (c *Client) loadOptimized(ctx context.Context, courseID uint) (*CourseViewModel, error) {
	var view CourseViewModel
	err := WithRetry(func() error {
		err := c.get(ctx, fmt.Sprintf("/optimized-course-section/%d", courseID), &view)

		var apiErr *APIError
		if errors.As(err, &apiErr) && (apiErr.StatusCode == 404 || apiErr.StatusCode == 403) {
			return Permanent(err)
		}
		return err
	}, RetryAttempts, RetryDelay)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// loadFallback decomposes the course view into discrete reads. The course
// read gates everything: 404/403 aborts the whole load, any other failure
// surfaces as a retryable error. The remaining reads run concurrently and
// the join fails on the first error.
func (c *Client) loadFallback(ctx context.Context, courseID uint) (*CourseViewModel, error) {
	var view CourseViewModel

	err := WithRetry(func() error {
		err := c.get(ctx, fmt.Sprintf("/courses/%d", courseID), &view.Course)

		var apiErr *APIError
		if errors.As(err, &apiErr) && (apiErr.StatusCode == 404 || apiErr.StatusCode == 403) {
			return Permanent(ErrCourseNotAvailable)
		}
		return err
	}, RetryAttempts, RetryDelay)
	if err != nil {
		return nil, err
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	run := func(fetch func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := WithRetry(fetch, RetryAttempts, RetryDelay); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}()
	}

	var sectionsPayload struct {
		Sections []Section `json:"sections"`
	}
	run(func() error { return c.get(ctx, "/subscription/check", &view.Subscription) })
	run(func() error { return c.get(ctx, "/user/profile", &view.Profile) })
	run(func() error { return c.get(ctx, fmt.Sprintf("/sections/course/%d", courseID), &sectionsPayload) })
	run(func() error { return c.get(ctx, fmt.Sprintf("/student/courses/%d/stats", courseID), &view.Stats.Course) })
	run(func() error { return c.get(ctx, "/student/stats", &view.Stats.Global) })

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}

	view.Sections = sectionsPayload.Sections
	return &view, nil
}

// SectionLessons fetches one section's lessons with the caller's progress,
// sorted by order, through the bounded retry wrapper.
func (c *Client) SectionLessons(ctx context.Context, sectionID uint) ([]Lesson, error) {
	var payload struct {
		Lessons []Lesson `json:"lessons"`
	}
	err := WithRetry(func() error {
		return c.get(ctx, fmt.Sprintf("/lessons/section/%d/progress", sectionID), &payload)
	}, RetryAttempts, RetryDelay)
	if err != nil {
		return nil, err
	}
	if payload.Lessons == nil {
		payload.Lessons = []Lesson{}
	}
	return payload.Lessons, nil
}
