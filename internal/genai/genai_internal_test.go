package genai

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/myrjola/ironlog/internal/plan"
)

func TestParseWorkout(t *testing.T) {
	t.Run("full reply with code fences", func(t *testing.T) {
		content := "Here you go:\n```json\n" +
			`[{"name": "Goblet Squat", "muscleGroup": "Quads", "sets": 4, "reps": 12, "weight": 24, "notes": "Slow descent"}]` +
			"\n```"

		got, err := parseWorkout(content)
		if err != nil {
			t.Fatalf("parseWorkout() error = %v", err)
		}

		want := []plan.GeneratedExercise{{
			Name:        "Goblet Squat",
			MuscleGroup: "Quads",
			Sets:        4,
			Reps:        []string{"12", "12", "12", "12"},
			Weight:      []string{"24", "24", "24", "24"},
			Notes:       "Slow descent",
		}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("parseWorkout() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("missing fields fall back to defaults", func(t *testing.T) {
		got, err := parseWorkout(`[{"name": "Mystery Move"}]`)
		if err != nil {
			t.Fatalf("parseWorkout() error = %v", err)
		}

		want := []plan.GeneratedExercise{{
			Name:        "Mystery Move",
			MuscleGroup: "Full Body",
			Sets:        3,
			Reps:        []string{"10", "10", "10"},
			Weight:      []string{"0", "0", "0"},
			Notes:       "Focus on form.",
		}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("parseWorkout() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("numbers as strings still decode", func(t *testing.T) {
		got, err := parseWorkout(`[{"name": "Row", "muscleGroup": "Back", "sets": "3", "reps": "8", "weight": "42.5"}]`)
		if err != nil {
			t.Fatalf("parseWorkout() error = %v", err)
		}
		if got[0].Sets != 3 {
			t.Errorf("Sets = %d, want 3", got[0].Sets)
		}
		if diff := cmp.Diff([]string{"42.5", "42.5", "42.5"}, got[0].Weight); diff != "" {
			t.Errorf("Weight mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("reply without an array is an error", func(t *testing.T) {
		if _, err := parseWorkout("Sorry, I cannot help with that."); err == nil {
			t.Error("parseWorkout() error = nil, want error")
		}
	})
}
