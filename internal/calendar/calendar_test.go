package calendar_test

import (
	"testing"
	"time"

	"github.com/myrjola/ironlog/internal/calendar"
)

func TestMondayOf(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "monday maps to itself",
			now:  time.Date(2024, 10, 21, 13, 37, 0, 0, time.UTC), // Monday afternoon
			want: time.Date(2024, 10, 21, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "wednesday maps to preceding monday",
			now:  time.Date(2024, 10, 23, 8, 0, 0, 0, time.UTC),
			want: time.Date(2024, 10, 21, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "sunday belongs to the preceding monday's week",
			now:  time.Date(2024, 10, 27, 23, 59, 0, 0, time.UTC),
			want: time.Date(2024, 10, 21, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "first moment after sunday midnight starts a new week",
			now:  time.Date(2024, 10, 28, 0, 0, 1, 0, time.UTC),
			want: time.Date(2024, 10, 28, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calendar.MondayOf(tt.now); !got.Equal(tt.want) {
				t.Errorf("MondayOf(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestMondayOfStableWithinWeek(t *testing.T) {
	// Every day of one calendar week must produce the identical key.
	first := calendar.MondayOf(time.Date(2024, 10, 21, 0, 0, 0, 0, time.UTC))
	for i := range 7 {
		now := time.Date(2024, 10, 21+i, 15, 4, 5, 0, time.UTC)
		if got := calendar.MondayOf(now); !got.Equal(first) {
			t.Errorf("MondayOf(%v) = %v, want %v", now, got, first)
		}
	}
}

func TestWeekWindow(t *testing.T) {
	now := time.Date(2024, 10, 24, 18, 30, 0, 0, time.UTC) // Thursday

	w := calendar.WeekWindow(now)

	if got, want := w.Start(), time.Date(2024, 10, 21, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("Start() = %v, want %v", got, want)
	}
	for i, day := range w.Days {
		want := w.Start().AddDate(0, 0, i)
		if !day.Date.Equal(want) {
			t.Errorf("Days[%d].Date = %v, want %v", i, day.Date, want)
		}
		if wantToday := i == 3; day.IsToday != wantToday {
			t.Errorf("Days[%d].IsToday = %v, want %v", i, day.IsToday, wantToday)
		}
	}
}

func TestWindowLabel(t *testing.T) {
	w := calendar.WeekWindow(time.Date(2024, 10, 24, 12, 0, 0, 0, time.UTC))
	if got, want := w.Label(), "Oct 21 - Oct 27"; got != want {
		t.Errorf("Label() = %q, want %q", got, want)
	}
}

func TestWindowContains(t *testing.T) {
	w := calendar.WeekWindow(time.Date(2024, 10, 24, 12, 0, 0, 0, time.UTC))

	if _, ok := w.Contains(time.Date(2024, 10, 20, 12, 0, 0, 0, time.UTC)); ok {
		t.Error("Contains() = true for the Sunday before the window")
	}
	if idx, ok := w.Contains(time.Date(2024, 10, 27, 12, 0, 0, 0, time.UTC)); !ok || idx != 6 {
		t.Errorf("Contains(window Sunday) = %d, %v, want 6, true", idx, ok)
	}
	if _, ok := w.Contains(time.Date(2024, 10, 28, 0, 0, 0, 0, time.UTC)); ok {
		t.Error("Contains() = true for the Monday after the window")
	}
}

func TestDayOffset(t *testing.T) {
	start := time.Date(2024, 10, 21, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{"same day", start, 0},
		{"three days later with time of day", time.Date(2024, 10, 24, 23, 0, 0, 0, time.UTC), 3},
		{"day before", time.Date(2024, 10, 20, 12, 0, 0, 0, time.UTC), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calendar.DayOffset(start, tt.date); got != tt.want {
				t.Errorf("DayOffset() = %d, want %d", got, tt.want)
			}
		})
	}
}
