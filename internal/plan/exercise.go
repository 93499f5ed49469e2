package plan

import (
	"github.com/google/uuid"
)

const defaultSetCount = 3

// NewExercise returns a blank manually added exercise with three empty-ish
// sets ready for editing.
func NewExercise() Exercise {
	return Exercise{
		ID:          uuid.NewString(),
		Name:        "",
		MuscleGroup: "Muscle",
		Sets:        defaultSetCount,
		Reps:        []string{"10", "10", "10"},
		Weight:      []string{"10", "10", "10"},
		Notes:       "",
		Completed:   false,
	}
}

// SetSetCount resizes the exercise to count sets while keeping already logged
// values. Growing repeats the last logged rep and weight; shrinking drops sets
// from the end. Counts below one are clamped to one.
func (e *Exercise) SetSetCount(count int) {
	if count < 1 {
		count = 1
	}
	e.Reps = resizeSetValues(e.Reps, count, "10")
	e.Weight = resizeSetValues(e.Weight, count, "0")
	e.Sets = count
}

// SetRep records the rep value for one set. Out-of-range indices are ignored.
func (e *Exercise) SetRep(set int, value string) {
	if set < 0 || set >= len(e.Reps) {
		return
	}
	e.Reps[set] = value
}

// SetWeight records the weight value for one set. Out-of-range indices are
// ignored.
func (e *Exercise) SetWeight(set int, value string) {
	if set < 0 || set >= len(e.Weight) {
		return
	}
	e.Weight[set] = value
}

// Normalize restores the per-set invariant after decoding external data:
// len(Reps) == len(Weight) == Sets, with Sets forced positive.
func (e *Exercise) Normalize() {
	if e.Sets < 1 {
		e.Sets = defaultSetCount
	}
	e.Reps = resizeSetValues(e.Reps, e.Sets, "10")
	e.Weight = resizeSetValues(e.Weight, e.Sets, "0")
}

func resizeSetValues(values []string, count int, fallback string) []string {
	out := append([]string(nil), values...)
	last := fallback
	if len(out) > 0 {
		last = out[len(out)-1]
	}
	for len(out) < count {
		out = append(out, last)
	}
	return out[:count]
}
