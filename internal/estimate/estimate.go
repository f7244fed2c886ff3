// Package estimate converts an item's grade weight and difficulty rating
// into an hour budget of one-hour study blocks.
package estimate

import (
	"math"

	"github.com/nsharma/studyblocks/internal/syllabus"
)

// Unspecified weight and difficulty arrive as zero and are substituted
// with mid-range defaults before any lookup. DefaultDifficulty is
// exported because the planner's priority sort ranks unrated items at
// the same default.
const (
	defaultWeight     = 5
	DefaultDifficulty = 6
)

// weightTier maps a minimum grade weight to base study hours. Tiers are
// evaluated top-down and the first threshold at or below the weight wins.
type weightTier struct {
	threshold float64
	hours     int
}

var weightTiers = []weightTier{
	{70, 30},
	{40, 20},
	{15, 10},
	{5, 3},
	{3, 1},
}

// difficultyMultipliers scales base hours by rating; index 0 is the
// easiest rating (1), index 9 the hardest (10).
var difficultyMultipliers = [10]float64{0.5, 0.6, 0.7, 0.85, 1, 1.10, 1.20, 1.5, 2, 2.5}

// Tests ignore difficulty entirely: a heavyweight test gets a fixed two
// weeks of nightly prep, anything lighter gets a short ramp.
const (
	testMajorWeight = 15
	testMajorHours  = 15
	testMinorHours  = 6
)

// BaseHours returns the study hours implied by grade weight alone.
// A weight below the lowest tier yields zero hours.
func BaseHours(weight float64) int {
	if weight == 0 {
		weight = defaultWeight
	}
	for _, tier := range weightTiers {
		if weight >= tier.threshold {
			return tier.hours
		}
	}
	return 0
}

// Multiplier returns the difficulty scaling factor for a 1-10 rating.
// Out-of-range ratings clamp to the table bounds.
func Multiplier(difficulty int) float64 {
	if difficulty == 0 {
		difficulty = DefaultDifficulty
	}
	i := difficulty - 1
	if i < 0 {
		i = 0
	}
	if i > 9 {
		i = 9
	}
	return difficultyMultipliers[i]
}

// Hours returns the estimated number of one-hour blocks an item needs.
// Assignments combine the weight tier with the difficulty multiplier,
// rounded half away from zero. Tests use the fixed weight policy.
func Hours(item syllabus.WorkItem) int {
	if item.Kind == syllabus.KindTest {
		if item.Weight > testMajorWeight {
			return testMajorHours
		}
		return testMinorHours
	}
	return int(math.Round(float64(BaseHours(item.Weight)) * Multiplier(item.Difficulty)))
}
