package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateVerificationCode(t *testing.T) {
	code := GenerateVerificationCode()
	assert.Len(t, code, 6)
	for _, r := range code {
		assert.True(t, r >= '0' && r <= '9')
	}
}

func TestStreak(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 0, 0, 0, time.UTC)
	day := func(offset int) time.Time { return now.AddDate(0, 0, -offset) }

	assert.Equal(t, 0, Streak(nil, now))
	assert.Equal(t, 1, Streak([]time.Time{day(0)}, now))
	assert.Equal(t, 3, Streak([]time.Time{day(0), day(1), day(2)}, now))

	// A streak ending yesterday still counts
	assert.Equal(t, 2, Streak([]time.Time{day(1), day(2)}, now))

	// A gap breaks the streak
	assert.Equal(t, 1, Streak([]time.Time{day(0), day(2), day(3)}, now))

	// Last activity two days ago means the streak is over
	assert.Equal(t, 0, Streak([]time.Time{day(2), day(3)}, now))
}
