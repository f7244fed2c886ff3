package estimate

import (
	"testing"

	"github.com/nsharma/studyblocks/internal/syllabus"
)

func TestBaseHours(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		want   int
	}{
		{"top tier", 70, 30},
		{"above top tier", 85, 30},
		{"second tier", 40, 20},
		{"between tiers takes lower", 50, 20},
		{"third tier", 15, 10},
		{"fourth tier", 5, 3},
		{"bottom tier", 3, 1},
		{"below every tier", 2, 0},
		{"unspecified maps to 5", 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BaseHours(tt.weight); got != tt.want {
				t.Errorf("BaseHours(%v) = %d, want %d", tt.weight, got, tt.want)
			}
		})
	}
}

func TestMultiplier(t *testing.T) {
	tests := []struct {
		name       string
		difficulty int
		want       float64
	}{
		{"easiest", 1, 0.5},
		{"middle", 5, 1},
		{"hardest", 10, 2.5},
		{"unspecified maps to 6", 0, 1.10},
		{"below range clamps", -3, 0.5},
		{"above range clamps", 15, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Multiplier(tt.difficulty); got != tt.want {
				t.Errorf("Multiplier(%d) = %v, want %v", tt.difficulty, got, tt.want)
			}
		})
	}
}

func TestHours_Assignments(t *testing.T) {
	tests := []struct {
		name       string
		weight     float64
		difficulty int
		want       int
	}{
		{"heavy project at average difficulty", 70, 6, 33},
		{"heavy project at neutral difficulty", 70, 5, 30},
		{"both unspecified", 0, 0, 3},
		{"small easy assignment", 5, 1, 2},
		{"half rounds away from zero", 3, 8, 2},
		{"weight below table", 2, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := syllabus.WorkItem{
				Kind:       syllabus.KindAssignment,
				Weight:     tt.weight,
				Difficulty: tt.difficulty,
			}
			if got := Hours(item); got != tt.want {
				t.Errorf("Hours(weight=%v, difficulty=%d) = %d, want %d",
					tt.weight, tt.difficulty, got, tt.want)
			}
		})
	}
}

func TestHours_Tests(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		want   int
	}{
		{"major exam", 20, 15},
		{"boundary weight is minor", 15, 6},
		{"small quiz", 8, 6},
		{"unspecified weight", 0, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Difficulty must not matter for tests.
			for _, difficulty := range []int{0, 1, 10} {
				item := syllabus.WorkItem{
					Kind:       syllabus.KindTest,
					Weight:     tt.weight,
					Difficulty: difficulty,
				}
				if got := Hours(item); got != tt.want {
					t.Errorf("Hours(test, weight=%v, difficulty=%d) = %d, want %d",
						tt.weight, difficulty, got, tt.want)
				}
			}
		})
	}
}
