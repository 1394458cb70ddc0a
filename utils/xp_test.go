package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateLevelStartsAtOne(t *testing.T) {
	assert.Equal(t, 1, CalculateLevel(0))
	assert.Equal(t, 1, CalculateLevel(99))
	assert.Equal(t, 2, CalculateLevel(100))
}

func TestCalculateLevelClampsNegativeInput(t *testing.T) {
	assert.Equal(t, 1, CalculateLevel(-500))
	assert.Equal(t, 0.0, CalculateLevelProgress(-500))
	assert.Equal(t, 100, CalculateXPToNextLevel(-500))
}

func TestCalculateLevelIsMonotonic(t *testing.T) {
	prev := CalculateLevel(0)
	for xp := 0; xp <= 20000; xp += 37 {
		level := CalculateLevel(xp)
		assert.GreaterOrEqual(t, level, prev, "level dropped at xp=%d", xp)
		prev = level
	}
}

func TestCalculateLevelProgressBounds(t *testing.T) {
	for xp := 0; xp <= 20000; xp += 13 {
		progress := CalculateLevelProgress(xp)
		assert.GreaterOrEqual(t, progress, 0.0, "xp=%d", xp)
		assert.Less(t, progress, 100.0, "xp=%d", xp)
	}
}

func TestCalculateLevelProgressZeroAtBoundary(t *testing.T) {
	// Level 2 starts at 100, level 3 at 300, level 4 at 600
	assert.Equal(t, 0.0, CalculateLevelProgress(0))
	assert.Equal(t, 0.0, CalculateLevelProgress(100))
	assert.Equal(t, 0.0, CalculateLevelProgress(300))
	assert.Equal(t, 0.0, CalculateLevelProgress(600))
}

func TestCalculateXPToNextLevel(t *testing.T) {
	assert.Equal(t, 100, CalculateXPToNextLevel(0))
	assert.Equal(t, 1, CalculateXPToNextLevel(99))
	// Right at the level 2 boundary a fresh 200-XP bucket remains
	assert.Equal(t, 200, CalculateXPToNextLevel(100))
	assert.Equal(t, 150, CalculateXPToNextLevel(150))

	for xp := 0; xp <= 20000; xp += 29 {
		assert.Greater(t, CalculateXPToNextLevel(xp), 0, "xp=%d", xp)
	}
}

func TestLevelAndProgressAgree(t *testing.T) {
	for xp := 0; xp <= 5000; xp += 11 {
		level := CalculateLevel(xp)
		remaining := CalculateXPToNextLevel(xp)
		// Spending the remaining XP must land exactly on the next level
		assert.Equal(t, level+1, CalculateLevel(xp+remaining), "xp=%d", xp)
	}
}
