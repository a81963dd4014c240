package models

import "fmt"

// EstimateOneRepMax computes the Epley-formula estimated one-rep max.
// A single rep is the lift itself; callers must not pass reps < 1.
func EstimateOneRepMax(weight float64, reps int) (float64, error) {
	if reps < 1 {
		return 0, fmt.Errorf("estimating 1RM: reps must be >= 1, got %d", reps)
	}
	if reps == 1 {
		return weight, nil
	}
	return weight * (1 + float64(reps)/30.0), nil
}
