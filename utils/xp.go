package utils

// XP thresholds follow a triangular curve: advancing from level n to n+1
// costs n*100 XP, so level n starts at 100*n*(n-1)/2 cumulative XP.
// Levels start at 1.
const xpBucketBase = 100

// levelThreshold returns the cumulative XP at which the given level starts.
func levelThreshold(level int) int {
	if level <= 1 {
		return 0
	}
	return xpBucketBase * level * (level - 1) / 2
}

// CalculateLevel maps total XP to a level. Negative input clamps to 0 XP.
func CalculateLevel(totalXP int) int {
	if totalXP < 0 {
		totalXP = 0
	}
	level := 1
	for levelThreshold(level+1) <= totalXP {
		level++
	}
	return level
}

// CalculateLevelProgress returns the percentage progress toward the next
// level, in [0, 100). It is exactly 0 at a level boundary.
func CalculateLevelProgress(totalXP int) float64 {
	if totalXP < 0 {
		totalXP = 0
	}
	level := CalculateLevel(totalXP)
	start := levelThreshold(level)
	end := levelThreshold(level + 1)
	return float64(totalXP-start) / float64(end-start) * 100
}

// CalculateXPToNextLevel returns the XP remaining to reach the next level.
// At a boundary the full bucket for the new level is returned.
func CalculateXPToNextLevel(totalXP int) int {
	if totalXP < 0 {
		totalXP = 0
	}
	level := CalculateLevel(totalXP)
	return levelThreshold(level+1) - totalXP
}
