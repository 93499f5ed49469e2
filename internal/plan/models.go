// Package plan implements the weekly workout plan: its data model, the
// statistics aggregator, the week rollover and archival rules, and history
// lookups against archived weeks.
package plan

import (
	"time"
)

// Weekday is a canonical plan weekday name. The plan week always starts on
// Monday.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// Weekdays lists the canonical weekdays in plan order, Monday first. All
// iteration over a WeeklyPlan goes through this slice so that aggregation and
// display order stay deterministic.
//
//nolint:gochecknoglobals // fixed canonical ordering.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// WeekdayAt returns the weekday at the given offset from Monday.
func WeekdayAt(offset int) Weekday {
	return Weekdays[offset]
}

// WeekdayOf maps a calendar date to its canonical plan weekday.
func WeekdayOf(t time.Time) Weekday {
	// time.Weekday counts Sunday as 0; the plan week counts Monday as 0.
	idx := (int(t.Weekday()) + 6) % 7
	return Weekdays[idx]
}

// ParseWeekday validates a weekday name received from the outside.
func ParseWeekday(s string) (Weekday, bool) {
	for _, day := range Weekdays {
		if string(day) == s {
			return day, true
		}
	}
	return "", false
}

// Exercise is one movement within a day's plan.
//
// Reps and Weight hold one textual value per set. They are stored as text to
// tolerate partially typed input and parsed to numbers only at aggregation
// time. The invariant len(Reps) == len(Weight) == Sets holds after every
// mutation.
type Exercise struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	MuscleGroup string   `json:"muscleGroup"`
	Sets        int      `json:"sets"`
	Reps        []string `json:"reps"`
	Weight      []string `json:"weight"`
	Notes       string   `json:"notes"`
	Completed   bool     `json:"completed"`
}

// WeeklyPlan maps each canonical weekday to its ordered exercise list.
type WeeklyPlan map[Weekday][]Exercise

// NewEmptyPlan returns a plan with an empty exercise list for every weekday.
func NewEmptyPlan() WeeklyPlan {
	p := make(WeeklyPlan, len(Weekdays))
	for _, day := range Weekdays {
		p[day] = []Exercise{}
	}
	return p
}

// HasExercises reports whether any weekday holds at least one exercise.
func (p WeeklyPlan) HasExercises() bool {
	for _, day := range Weekdays {
		if len(p[day]) > 0 {
			return true
		}
	}
	return false
}

// Clone deep-copies the plan so that snapshots cannot alias live data.
func (p WeeklyPlan) Clone() WeeklyPlan {
	out := make(WeeklyPlan, len(Weekdays))
	for _, day := range Weekdays {
		out[day] = CloneExercises(p[day])
	}
	return out
}

// Clone deep-copies the exercise including its per-set slices.
func (e Exercise) Clone() Exercise {
	out := e
	out.Reps = append([]string(nil), e.Reps...)
	out.Weight = append([]string(nil), e.Weight...)
	return out
}

// CloneExercises deep-copies an exercise list, preserving order.
func CloneExercises(exercises []Exercise) []Exercise {
	out := make([]Exercise, len(exercises))
	for i, e := range exercises {
		out[i] = e.Clone()
	}
	return out
}

// WeeklyStats are the aggregate statistics derived from one plan. Only
// completed exercises contribute.
type WeeklyStats struct {
	TotalExercises int     `json:"totalExercises"`
	TotalSets      int     `json:"totalSets"`
	TotalVolume    float64 `json:"totalVolume"`
	TopMuscle      string  `json:"topMuscle"`
}

// HistoryEntry is an immutable snapshot of one past week. Archival deep-copies
// the plan, so later edits to the active plan never alter archived data.
//
// StartDate is the week's canonical Monday at start of day. It is a pointer
// because entries archived before the field existed lack it; monthly
// aggregation and history ordering fall back to DateArchived for those.
type HistoryEntry struct {
	ID           string      `json:"id"`
	WeekLabel    string      `json:"weekLabel"`
	DateArchived time.Time   `json:"dateArchived"`
	StartDate    *time.Time  `json:"startDate,omitempty"`
	Plan         WeeklyPlan  `json:"plan"`
	Stats        WeeklyStats `json:"stats"`
}

// sortDate is the instant used for ordering and month bucketing.
func (h HistoryEntry) sortDate() time.Time {
	if h.StartDate != nil {
		return *h.StartDate
	}
	return h.DateArchived
}

// Clone deep-copies the entry.
func (h HistoryEntry) Clone() HistoryEntry {
	out := h
	if h.StartDate != nil {
		start := *h.StartDate
		out.StartDate = &start
	}
	out.Plan = h.Plan.Clone()
	return out
}

// CloneHistory deep-copies a history list, preserving order.
func CloneHistory(history []HistoryEntry) []HistoryEntry {
	out := make([]HistoryEntry, len(history))
	for i, entry := range history {
		out[i] = entry.Clone()
	}
	return out
}
