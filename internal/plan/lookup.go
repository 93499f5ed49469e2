package plan

import (
	"sort"
	"time"

	"github.com/myrjola/ironlog/internal/calendar"
)

// ResolutionKind states which data source answered a calendar lookup.
type ResolutionKind string

const (
	// ResolutionActive means the date falls inside the live week and shows
	// the editable plan.
	ResolutionActive ResolutionKind = "active"
	// ResolutionSnapshot means the date falls inside an archived week and
	// shows that week's frozen plan.
	ResolutionSnapshot ResolutionKind = "snapshot"
	// ResolutionEmpty means no plan covers the date.
	ResolutionEmpty ResolutionKind = "empty"
)

// Resolution is the answer to "what was planned on this date".
type Resolution struct {
	Kind            ResolutionKind `json:"kind"`
	Weekday         Weekday        `json:"weekday"`
	Date            time.Time      `json:"date"`
	Exercises       []Exercise     `json:"exercises"`
	SourceEntryID   string         `json:"sourceEntryId,omitempty"`
	SourceWeekLabel string         `json:"sourceWeekLabel,omitempty"`
}

// resolveDate maps a calendar date to its plan data. The live window is
// checked first; otherwise the archive is scanned in stored order and the
// first entry whose week covers the date wins. Exercises are deep-copied, so
// callers can never mutate archived data through a lookup.
func resolveDate(date, now time.Time, active WeeklyPlan, history []HistoryEntry) Resolution {
	date = calendar.StartOfDay(date)

	window := calendar.WeekWindow(now)
	if offset, ok := window.Contains(date); ok {
		day := WeekdayAt(offset)
		return Resolution{
			Kind:      ResolutionActive,
			Weekday:   day,
			Date:      date,
			Exercises: CloneExercises(active[day]),
		}
	}

	for _, entry := range history {
		if entry.StartDate == nil {
			continue
		}
		offset := calendar.DayOffset(*entry.StartDate, date)
		if offset < 0 || offset >= len(Weekdays) {
			continue
		}
		day := WeekdayAt(offset)
		return Resolution{
			Kind:            ResolutionSnapshot,
			Weekday:         day,
			Date:            date,
			Exercises:       CloneExercises(entry.Plan[day]),
			SourceEntryID:   entry.ID,
			SourceWeekLabel: entry.WeekLabel,
		}
	}

	return Resolution{
		Kind:      ResolutionEmpty,
		Weekday:   WeekdayOf(date),
		Date:      date,
		Exercises: []Exercise{},
	}
}

// sortedHistory returns the archive newest week first. Sorting is stable so
// entries sharing a date keep their stored order.
func sortedHistory(history []HistoryEntry) []HistoryEntry {
	out := CloneHistory(history)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].sortDate().After(out[j].sortDate())
	})
	return out
}

// HistoryMonth groups archived weeks under one calendar-month heading.
type HistoryMonth struct {
	Label   string         `json:"label"`
	Entries []HistoryEntry `json:"entries"`
}

// groupHistoryByMonth buckets the archive by calendar month, newest month and
// newest week first.
func groupHistoryByMonth(history []HistoryEntry) []HistoryMonth {
	var months []HistoryMonth
	for _, entry := range sortedHistory(history) {
		label := calendar.MonthLabel(entry.sortDate())
		if len(months) == 0 || months[len(months)-1].Label != label {
			months = append(months, HistoryMonth{Label: label})
		}
		months[len(months)-1].Entries = append(months[len(months)-1].Entries, entry)
	}
	return months
}

// completedDates lists every calendar date with at least one completed
// exercise, formatted as yyyy-mm-dd. The live week contributes through the
// active plan, archived weeks through their snapshots.
func completedDates(now time.Time, active WeeklyPlan, history []HistoryEntry) map[string]bool {
	dates := make(map[string]bool)

	markPlan := func(start time.Time, p WeeklyPlan) {
		for offset, day := range Weekdays {
			if !hasCompleted(p[day]) {
				continue
			}
			dates[start.AddDate(0, 0, offset).Format(time.DateOnly)] = true
		}
	}

	markPlan(calendar.MondayOf(now), active)
	for _, entry := range history {
		if entry.StartDate == nil {
			continue
		}
		markPlan(*entry.StartDate, entry.Plan)
	}
	return dates
}

func hasCompleted(exercises []Exercise) bool {
	for _, exercise := range exercises {
		if exercise.Completed {
			return true
		}
	}
	return false
}
