package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateVerificationCode generates a 6-digit numeric code
func GenerateVerificationCode() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	code := ""
	for i := 0; i < 6; i++ {
		code += fmt.Sprintf("%d", rng.Intn(10))
	}
	return code
}

// Streak counts consecutive days with at least one completed exercise,
// ending today or yesterday. Days must be unique calendar dates sorted
// descending.
func Streak(days []time.Time, now time.Time) int {
	if len(days) == 0 {
		return 0
	}
	today := now.Truncate(24 * time.Hour)
	cursor := today
	if !sameDay(days[0], today) {
		cursor = today.AddDate(0, 0, -1)
		if !sameDay(days[0], cursor) {
			return 0
		}
	}
	streak := 0
	for _, d := range days {
		if !sameDay(d, cursor) {
			break
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
