package models

import (
	"math"
	"testing"
)

func TestEstimateOneRepMax(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		reps   int
		want   float64
	}{
		{"single rep is the lift", 100, 1, 100},
		{"ten reps", 100, 10, 100 * (1 + 10.0/30.0)},
		{"five reps", 80, 5, 80 * (1 + 5.0/30.0)},
		{"thirty reps doubles", 50, 30, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EstimateOneRepMax(tt.weight, tt.reps)
			if err != nil {
				t.Fatalf("EstimateOneRepMax(%v, %d) error: %v", tt.weight, tt.reps, err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("EstimateOneRepMax(%v, %d) = %v, want %v", tt.weight, tt.reps, got, tt.want)
			}
		})
	}
}

func TestEstimateOneRepMaxRejectsNonPositiveReps(t *testing.T) {
	for _, reps := range []int{0, -1} {
		if _, err := EstimateOneRepMax(100, reps); err == nil {
			t.Errorf("EstimateOneRepMax(100, %d): expected error", reps)
		}
	}
}
