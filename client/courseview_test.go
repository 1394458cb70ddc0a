package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvelope(w http.ResponseWriter, code int, status bool, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func fixtureView() CourseViewModel {
	end := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
	return CourseViewModel{
		Course: Course{
			ID: 1, Title: "Go Basics", Description: "First steps",
			Status: "published", Difficulty: "beginner", LanguageID: 2,
		},
		Subscription: SubscriptionStatus{Active: true, Plan: "pro", EndDate: &end},
		Profile:      Profile{ID: 42, Name: "Dana", Email: "dana@example.com", Role: "user"},
		Sections: []Section{
			{ID: 10, Name: "Intro", Order: 0, Lessons: []Lesson{
				{ID: 100, Name: "Hello", Order: 0, XP: 50, Completed: true, Accessible: true},
				{ID: 101, Name: "Variables", Order: 1, XP: 50, Accessible: true},
			}},
			{ID: 11, Name: "Control flow", Order: 1, Lessons: []Lesson{}},
		},
		Stats: Stats{
			Course: CourseStats{CourseXP: 50, ExercisesCompleted: 1},
			Global: GlobalStats{TotalXP: 150, ExercisesCompleted: 3, Level: 2, LevelProgress: 25, XPToNextLevel: 150, Streak: 4},
		},
	}
}

// newAPIServer serves the fixture through both the combined endpoint and the
// discrete fallback endpoints. optimizedStatus != 200 makes the combined
// endpoint fail so loads take the fallback path.
func newAPIServer(view CourseViewModel, optimizedStatus int, optimizedHits *int32) *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/optimized-course-section/1", func(w http.ResponseWriter, r *http.Request) {
		if optimizedHits != nil {
			atomic.AddInt32(optimizedHits, 1)
		}
		if optimizedStatus != http.StatusOK {
			writeEnvelope(w, optimizedStatus, false, "Something went wrong!", nil)
			return
		}
		time.Sleep(20 * time.Millisecond) // lets concurrent loads pile up on one call
		writeEnvelope(w, http.StatusOK, true, "Course view fetched!", view)
	})
	mux.HandleFunc("/courses/1", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, true, "Course fetched!", view.Course)
	})
	mux.HandleFunc("/subscription/check", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, true, "Subscription fetched!", view.Subscription)
	})
	mux.HandleFunc("/user/profile", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, true, "Profile fetched!", view.Profile)
	})
	mux.HandleFunc("/sections/course/1", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, true, "Sections fetched!", map[string]interface{}{"sections": view.Sections})
	})
	mux.HandleFunc("/student/courses/1/stats", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, true, "Stats fetched!", view.Stats.Course)
	})
	mux.HandleFunc("/student/stats", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, true, "Stats fetched!", view.Stats.Global)
	})

	notFound := func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusNotFound, false, "Course not found!", nil)
	}
	mux.HandleFunc("/optimized-course-section/9", notFound)
	mux.HandleFunc("/courses/9", notFound)

	return httptest.NewServer(mux)
}

func TestLoadCourseViewOptimizedPath(t *testing.T) {
	srv := newAPIServer(fixtureView(), http.StatusOK, nil)
	defer srv.Close()

	view, err := New(srv.URL, "token").LoadCourseView(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, fixtureView(), *view)
}

func TestLoadCourseViewFallbackMatchesOptimized(t *testing.T) {
	fast := newAPIServer(fixtureView(), http.StatusOK, nil)
	defer fast.Close()
	degraded := newAPIServer(fixtureView(), http.StatusInternalServerError, nil)
	defer degraded.Close()

	primary, err := New(fast.URL, "token").LoadCourseView(context.Background(), 1)
	require.NoError(t, err)

	fallback, err := New(degraded.URL, "token").LoadCourseView(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, primary, fallback)
}

func TestLoadCourseViewMissingCourse(t *testing.T) {
	srv := newAPIServer(fixtureView(), http.StatusOK, nil)
	defer srv.Close()

	view, err := New(srv.URL, "token").LoadCourseView(context.Background(), 9)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, ErrCourseNotAvailable)
}

func TestLoadCourseViewFallbackCourseGate(t *testing.T) {
	// Combined endpoint degraded AND the course itself missing: the
	// fallback's course read decides, without touching the other reads.
	mux := http.NewServeMux()
	mux.HandleFunc("/optimized-course-section/9", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusInternalServerError, false, "Something went wrong!", nil)
	})
	mux.HandleFunc("/courses/9", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusNotFound, false, "Course not found!", nil)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	view, err := New(srv.URL, "token").LoadCourseView(context.Background(), 9)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, ErrCourseNotAvailable)
}

func TestLoadCourseViewCoercesNilCollections(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/optimized-course-section/1", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, true, "Course view fetched!", map[string]interface{}{
			"course":   Course{ID: 1, Title: "Go Basics"},
			"sections": []map[string]interface{}{{"id": 10, "name": "Intro", "lessons": nil}},
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	view, err := New(srv.URL, "token").LoadCourseView(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, view.Sections, 1)
	assert.NotNil(t, view.Sections[0].Lessons)
	assert.Empty(t, view.Sections[0].Lessons)
}

func TestLoadCourseViewDeduplicatesConcurrentLoads(t *testing.T) {
	var hits int32
	srv := newAPIServer(fixtureView(), http.StatusOK, &hits)
	defer srv.Close()

	c := New(srv.URL, "token")

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			view, err := c.LoadCourseView(context.Background(), 1)
			assert.NoError(t, err)
			assert.NotNil(t, view)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestSectionLessons(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/lessons/section/5/progress", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, true, "Lessons fetched!", map[string]interface{}{
			"lessons": []Lesson{
				{ID: 1, Name: "Hello", Order: 0, Completed: true, Accessible: true},
				{ID: 2, Name: "Variables", Order: 1, Accessible: true},
			},
		})
	})
	mux.HandleFunc("/lessons/section/6/progress", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, true, "Lessons fetched!", map[string]interface{}{"lessons": nil})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(srv.URL, "token")

	lessons, err := c.SectionLessons(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, lessons, 2)
	assert.Equal(t, "Hello", lessons[0].Name)

	empty, err := c.SectionLessons(context.Background(), 6)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
