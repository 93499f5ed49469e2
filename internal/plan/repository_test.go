package plan_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/myrjola/ironlog/internal/plan"
	"github.com/myrjola/ironlog/internal/sqlite"
	"github.com/myrjola/ironlog/internal/testhelpers"
)

func newTestRepository(t *testing.T) (*plan.Repository, *sqlite.Database) {
	t.Helper()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))

	db, err := sqlite.NewDatabase(t.Context(), ":memory:", logger)
	if err != nil {
		t.Fatalf("NewDatabase() error = %v", err)
	}
	t.Cleanup(func() {
		if closeErr := db.Close(); closeErr != nil {
			t.Errorf("Close() error = %v", closeErr)
		}
	})
	return plan.NewRepository(db, logger), db
}

func TestRepositoryPlanRoundTrip(t *testing.T) {
	ctx := t.Context()
	repo, _ := newTestRepository(t)

	if _, found, err := repo.LoadPlan(ctx); err != nil || found {
		t.Fatalf("LoadPlan() on empty store = found %v, err %v", found, err)
	}

	want := plan.DefaultPlan()
	if err := repo.SavePlan(ctx, want); err != nil {
		t.Fatalf("SavePlan() error = %v", err)
	}

	got, found, err := repo.LoadPlan(ctx)
	if err != nil {
		t.Fatalf("LoadPlan() error = %v", err)
	}
	if !found {
		t.Fatal("LoadPlan() found = false after save")
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("plan mismatch (-want +got):\n%s", diff)
	}
}

func TestRepositoryReadsLegacyPlanKeys(t *testing.T) {
	ctx := t.Context()
	repo, db := newTestRepository(t)

	// A database written by an older build holds the plan under a
	// previous key, possibly with scalar set values.
	legacy := `{"Monday": [{"id": "e1", "name": "Press", "muscleGroup": "Chest", "sets": 2, "reps": 10, "weight": 20}]}`
	if err := db.SetRecord(ctx, "ironlog_data_v1", legacy); err != nil {
		t.Fatalf("SetRecord() error = %v", err)
	}

	got, found, err := repo.LoadPlan(ctx)
	if err != nil {
		t.Fatalf("LoadPlan() error = %v", err)
	}
	if !found {
		t.Fatal("LoadPlan() found = false, want legacy data")
	}
	if diff := cmp.Diff([]string{"10", "10"}, got[plan.Monday][0].Reps); diff != "" {
		t.Errorf("migrated reps mismatch (-want +got):\n%s", diff)
	}

	// The current key wins over legacy ones once it exists.
	if err = repo.SavePlan(ctx, plan.NewEmptyPlan()); err != nil {
		t.Fatalf("SavePlan() error = %v", err)
	}
	got, _, err = repo.LoadPlan(ctx)
	if err != nil {
		t.Fatalf("LoadPlan() error = %v", err)
	}
	if got.HasExercises() {
		t.Error("HasExercises() = true, want the freshly saved empty plan")
	}
}

func TestRepositoryTreatsCorruptRecordAsMissing(t *testing.T) {
	ctx := t.Context()
	repo, db := newTestRepository(t)

	if err := db.SetRecord(ctx, "ironlog_data_v3", "{truncated"); err != nil {
		t.Fatalf("SetRecord() error = %v", err)
	}

	_, found, err := repo.LoadPlan(ctx)
	if err != nil {
		t.Fatalf("LoadPlan() error = %v", err)
	}
	if found {
		t.Error("LoadPlan() found = true for a corrupt record")
	}
}

func TestRepositoryWeekMarkerRoundTrip(t *testing.T) {
	ctx := t.Context()
	repo, _ := newTestRepository(t)

	marker, err := repo.LoadWeekMarker(ctx)
	if err != nil {
		t.Fatalf("LoadWeekMarker() error = %v", err)
	}
	if marker != nil {
		t.Fatalf("LoadWeekMarker() = %v on empty store, want nil", marker)
	}

	monday := time.Date(2024, 10, 14, 0, 0, 0, 0, time.UTC)
	if err = repo.SaveWeekMarker(ctx, monday); err != nil {
		t.Fatalf("SaveWeekMarker() error = %v", err)
	}

	if marker, err = repo.LoadWeekMarker(ctx); err != nil {
		t.Fatalf("LoadWeekMarker() error = %v", err)
	}
	if marker == nil || !marker.Equal(monday) {
		t.Errorf("LoadWeekMarker() = %v, want %v", marker, monday)
	}
}

func TestRepositorySaveRollover(t *testing.T) {
	ctx := t.Context()
	repo, _ := newTestRepository(t)

	monday := time.Date(2024, 10, 21, 0, 0, 0, 0, time.UTC)
	start := time.Date(2024, 10, 14, 0, 0, 0, 0, time.UTC)
	archived := plan.DefaultPlan()
	history := []plan.HistoryEntry{{
		ID:           "h1",
		WeekLabel:    "Oct 14 - Oct 20",
		DateArchived: monday,
		StartDate:    &start,
		Plan:         archived,
		Stats:        plan.ComputeStats(archived),
	}}

	if err := repo.SaveRollover(ctx, plan.NewEmptyPlan(), history, monday); err != nil {
		t.Fatalf("SaveRollover() error = %v", err)
	}

	gotPlan, _, err := repo.LoadPlan(ctx)
	if err != nil {
		t.Fatalf("LoadPlan() error = %v", err)
	}
	if gotPlan.HasExercises() {
		t.Error("plan has exercises after rollover, want empty")
	}
	gotHistory, _, err := repo.LoadHistory(ctx)
	if err != nil {
		t.Fatalf("LoadHistory() error = %v", err)
	}
	if diff := cmp.Diff(history, gotHistory); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}
	marker, err := repo.LoadWeekMarker(ctx)
	if err != nil {
		t.Fatalf("LoadWeekMarker() error = %v", err)
	}
	if marker == nil || !marker.Equal(monday) {
		t.Errorf("marker = %v, want %v", marker, monday)
	}
}
