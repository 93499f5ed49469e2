package plan_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/myrjola/ironlog/internal/plan"
)

func TestCategorizeMuscle(t *testing.T) {
	tests := []struct {
		muscleGroup string
		want        string
	}{
		{"Mid Chest", "Chest"},
		{"Pec Deck", "Chest"},
		{"Lats (Width)", "Back"},
		{"Seated Row", "Back"},
		{"Quads / Glutes", "Legs"},
		{"Hamstrings", "Legs"},
		{"Rear Delts", "Shoulders"},
		{"Upper Traps", "Shoulders"},
		{"Bicep Short Head", "Arms"},
		{"Forearm Flexors", "Arms"},
		{"Brachialis", "Arms"},
		{"Core Stability", "Core"},
		{"Plank", "Core"},
		{"Cardiovascular", "Cardio"},
		{"Active Recovery", "Other"},
		// Empty labels mean full-body work, which has no single bucket.
		{"", "Other"},
		// Substring matching is case-insensitive.
		{"LOWER ABS", "Core"},
		// Earlier categories win when several keywords match. "Chest /
		// Core" hits both Chest and Core; Chest is checked first.
		{"Chest / Core", "Chest"},
	}

	for _, tt := range tests {
		t.Run(tt.muscleGroup, func(t *testing.T) {
			if got := plan.CategorizeMuscle(tt.muscleGroup); got != tt.want {
				t.Errorf("CategorizeMuscle(%q) = %q, want %q", tt.muscleGroup, got, tt.want)
			}
		})
	}
}

func TestComputeStats(t *testing.T) {
	t.Run("single completed exercise", func(t *testing.T) {
		p := plan.NewEmptyPlan()
		p[plan.Monday] = []plan.Exercise{{
			ID:          "e1",
			Name:        "Machine Chest Press",
			MuscleGroup: "Mid Chest",
			Sets:        3,
			Reps:        []string{"10", "10", "10"},
			Weight:      []string{"20", "20", "20"},
			Completed:   true,
		}}

		got := plan.ComputeStats(p)
		want := plan.WeeklyStats{TotalExercises: 1, TotalSets: 3, TotalVolume: 600, TopMuscle: "Chest"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("ComputeStats() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("nothing completed yields zero stats", func(t *testing.T) {
		p := plan.DefaultPlan()

		got := plan.ComputeStats(p)
		want := plan.WeeklyStats{TopMuscle: "N/A"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("ComputeStats() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unparseable set values count as zero volume", func(t *testing.T) {
		p := plan.NewEmptyPlan()
		p[plan.Friday] = []plan.Exercise{{
			ID:          "e1",
			Name:        "Leg Press",
			MuscleGroup: "Quads",
			Sets:        3,
			Reps:        []string{"10", "a few", "10"},
			Weight:      []string{"80", "80", ""},
			Completed:   true,
		}}

		got := plan.ComputeStats(p)
		if got.TotalVolume != 800 {
			t.Errorf("TotalVolume = %v, want 800", got.TotalVolume)
		}
		if got.TotalSets != 3 {
			t.Errorf("TotalSets = %d, want 3", got.TotalSets)
		}
	})

	t.Run("top muscle counts sets and ties go to the first seen", func(t *testing.T) {
		p := plan.NewEmptyPlan()
		p[plan.Monday] = []plan.Exercise{
			{ID: "e1", MuscleGroup: "Chest", Sets: 3, Completed: true},
			{ID: "e2", MuscleGroup: "Lats", Sets: 3, Completed: true},
		}

		if got := plan.ComputeStats(p).TopMuscle; got != "Chest" {
			t.Errorf("TopMuscle = %q, want %q", got, "Chest")
		}
	})

	t.Run("toggling an exercise off removes its contribution", func(t *testing.T) {
		p := plan.NewEmptyPlan()
		p[plan.Monday] = []plan.Exercise{
			{ID: "e1", MuscleGroup: "Chest", Sets: 2, Reps: []string{"10", "10"}, Weight: []string{"20", "20"}, Completed: true},
			{ID: "e2", MuscleGroup: "Lats", Sets: 4, Reps: []string{"8", "8", "8", "8"}, Weight: []string{"40", "40", "40", "40"}, Completed: true},
		}
		before := plan.ComputeStats(p)
		if before.TopMuscle != "Back" {
			t.Fatalf("TopMuscle = %q, want %q", before.TopMuscle, "Back")
		}

		p[plan.Monday][1].Completed = false

		got := plan.ComputeStats(p)
		want := plan.WeeklyStats{TotalExercises: 1, TotalSets: 2, TotalVolume: 400, TopMuscle: "Chest"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("ComputeStats() mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestComputeMonthlyStats(t *testing.T) {
	start := func(year int, month time.Month, day int) *time.Time {
		d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		return &d
	}
	completedChest := func(id string) plan.Exercise {
		return plan.Exercise{
			ID: id, MuscleGroup: "Chest", Sets: 3,
			Reps: []string{"10", "10", "10"}, Weight: []string{"20", "20", "20"},
			Completed: true,
		}
	}

	active := plan.NewEmptyPlan()
	active[plan.Monday] = []plan.Exercise{completedChest("live")}

	inMonth := plan.NewEmptyPlan()
	inMonth[plan.Tuesday] = []plan.Exercise{completedChest("arch1"), {
		ID: "arch2", MuscleGroup: "Lats", Sets: 2,
		Reps: []string{"12", "12"}, Weight: []string{"40", "40"},
		Completed: true,
	}}

	history := []plan.HistoryEntry{
		{
			ID:           "h1",
			WeekLabel:    "Oct 14 - Oct 20",
			DateArchived: time.Date(2024, 10, 21, 8, 0, 0, 0, time.UTC),
			StartDate:    start(2024, 10, 14),
			Plan:         inMonth,
			Stats:        plan.ComputeStats(inMonth),
		},
		{
			ID:           "h2",
			WeekLabel:    "Sep 16 - Sep 22",
			DateArchived: time.Date(2024, 9, 23, 8, 0, 0, 0, time.UTC),
			StartDate:    start(2024, 9, 16),
			Plan:         inMonth,
			Stats:        plan.ComputeStats(inMonth),
		},
		{
			// Entries without a start date bucket by archival date.
			ID:           "h3",
			WeekLabel:    "Sep 30 - Oct 6",
			DateArchived: time.Date(2024, 10, 7, 8, 0, 0, 0, time.UTC),
			Plan:         plan.NewEmptyPlan(),
			Stats:        plan.WeeklyStats{TotalExercises: 1, TotalSets: 5, TotalVolume: 100, TopMuscle: "Legs"},
		},
	}

	got := plan.ComputeMonthlyStats(active, history, time.October, 2024)

	want := plan.MonthlyStats{
		WeeklyStats: plan.WeeklyStats{
			// live + h1 + h3; h2 is September.
			TotalExercises: 1 + 2 + 1,
			TotalSets:      3 + 5 + 5,
			TotalVolume:    600 + 1560 + 100,
			TopMuscle:      "Chest",
		},
		MonthLabel: "October 2024",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ComputeMonthlyStats() mismatch (-want +got):\n%s", diff)
	}
}
