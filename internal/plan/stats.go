package plan

import (
	"strconv"
	"strings"
	"time"

	"github.com/myrjola/ironlog/internal/calendar"
)

// noTopMuscle is reported when no completed exercise contributed to a tally.
const noTopMuscle = "N/A"

// muscleCategory maps free-text muscle group labels onto one report bucket.
type muscleCategory struct {
	name     string
	keywords []string
}

// muscleCategories is checked in order and the first keyword hit wins, so
// "Rear Delts" lands in Shoulders even though it also contains "ear".
// Labels matching nothing fall through to Other.
//
//nolint:gochecknoglobals // fixed categorization table.
var muscleCategories = []muscleCategory{
	{name: "Chest", keywords: []string{"chest", "pec"}},
	{name: "Back", keywords: []string{"back", "lat", "row"}},
	{name: "Legs", keywords: []string{"leg", "quad", "ham", "glute", "calf", "thigh"}},
	{name: "Shoulders", keywords: []string{"shoulder", "delt", "trap"}},
	{name: "Arms", keywords: []string{"arm", "bicep", "tricep", "brachialis", "forearm"}},
	{name: "Core", keywords: []string{"abs", "core", "plank"}},
	{name: "Cardio", keywords: []string{"cardio", "run", "walk"}},
}

// CategorizeMuscle reduces a free-text muscle group label to its report
// bucket via case-insensitive substring matching.
func CategorizeMuscle(muscleGroup string) string {
	if muscleGroup == "" {
		muscleGroup = "Full Body"
	}
	lower := strings.ToLower(muscleGroup)
	for _, category := range muscleCategories {
		for _, keyword := range category.keywords {
			if strings.Contains(lower, keyword) {
				return category.name
			}
		}
	}
	return "Other"
}

// muscleTally counts completed sets per category, remembering first-insertion
// order so that ties resolve deterministically.
type muscleTally struct {
	counts map[string]int
	order  []string
}

func newMuscleTally() *muscleTally {
	return &muscleTally{counts: map[string]int{}}
}

func (t *muscleTally) add(muscleGroup string, sets int) {
	category := CategorizeMuscle(muscleGroup)
	if _, seen := t.counts[category]; !seen {
		t.order = append(t.order, category)
	}
	t.counts[category] += sets
}

// top returns the category with the highest set count. Ties go to the
// category tallied first.
func (t *muscleTally) top() string {
	best := noTopMuscle
	bestCount := 0
	for _, category := range t.order {
		if count := t.counts[category]; count > bestCount {
			best = category
			bestCount = count
		}
	}
	return best
}

// parseSetValue turns logged free text into a number for volume math.
// Unparseable input counts as zero rather than failing the report.
func parseSetValue(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// Volume is the exercise's training volume: the sum over its sets of
// reps times weight. Sets without a logged value contribute zero.
func (e Exercise) Volume() float64 {
	var volume float64
	for i := range e.Sets {
		var reps, weight float64
		if i < len(e.Reps) {
			reps = parseSetValue(e.Reps[i])
		}
		if i < len(e.Weight) {
			weight = parseSetValue(e.Weight[i])
		}
		volume += reps * weight
	}
	return volume
}

// ComputeStats aggregates one plan's completed exercises into its weekly
// statistics.
func ComputeStats(p WeeklyPlan) WeeklyStats {
	var stats WeeklyStats
	tally := newMuscleTally()
	for _, day := range Weekdays {
		for _, exercise := range p[day] {
			if !exercise.Completed {
				continue
			}
			stats.TotalExercises++
			stats.TotalSets += exercise.Sets
			stats.TotalVolume += exercise.Volume()
			tally.add(exercise.MuscleGroup, exercise.Sets)
		}
	}
	stats.TopMuscle = tally.top()
	return stats
}

// MonthlyStats is the calendar-month aggregate across the active plan and
// every archived week belonging to that month.
type MonthlyStats struct {
	WeeklyStats
	MonthLabel string `json:"monthLabel"`
}

// ComputeMonthlyStats aggregates the given calendar month. The active plan is
// always processed in full. Archived entries contribute their precomputed
// numeric totals, while the top-muscle tally is re-derived from their plans so
// partial weeks cannot skew it; an entry belongs to the month of its start
// date, falling back to its archival date for entries that predate start-date
// tracking.
func ComputeMonthlyStats(active WeeklyPlan, history []HistoryEntry, month time.Month, year int) MonthlyStats {
	var stats MonthlyStats
	stats.MonthLabel = calendar.MonthLabel(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
	tally := newMuscleTally()

	tallyPlan := func(p WeeklyPlan) {
		for _, day := range Weekdays {
			for _, exercise := range p[day] {
				if exercise.Completed {
					tally.add(exercise.MuscleGroup, exercise.Sets)
				}
			}
		}
	}

	activeStats := ComputeStats(active)
	stats.TotalExercises += activeStats.TotalExercises
	stats.TotalSets += activeStats.TotalSets
	stats.TotalVolume += activeStats.TotalVolume
	tallyPlan(active)

	for _, entry := range history {
		date := entry.sortDate()
		if date.Month() != month || date.Year() != year {
			continue
		}
		stats.TotalExercises += entry.Stats.TotalExercises
		stats.TotalSets += entry.Stats.TotalSets
		stats.TotalVolume += entry.Stats.TotalVolume
		tallyPlan(entry.Plan)
	}

	stats.TopMuscle = tally.top()
	return stats
}
