// Package calendar maps wall-clock time onto the canonical Monday-start week
// window used by the planner.
package calendar

import (
	"time"
)

// daysPerWeek is the fixed window length. There is no partial-week
// representation anywhere in the app.
const daysPerWeek = 7

// Day is one slot of a week window.
type Day struct {
	Date    time.Time
	IsToday bool
}

// Window is the canonical 7-day week containing a reference time,
// Monday first.
type Window struct {
	Days [daysPerWeek]Day
}

// StartOfDay normalizes t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MondayOf returns the Monday midnight that starts the week containing now.
//
// It is the canonical key used to detect week boundaries: two calls within the
// same calendar week yield the identical instant, and the first call after
// midnight Sunday to Monday yields a new one. Sunday belongs to the preceding
// Monday's week, regardless of the locale's week-start convention.
func MondayOf(now time.Time) time.Time {
	offset := int(time.Monday - now.Weekday())
	if offset > 0 {
		offset = -6 //nolint:mnd // If today is Sunday, adjust the offset to get last Monday.
	}
	return StartOfDay(now.AddDate(0, 0, offset))
}

// WeekWindow returns the 7-day window containing now, Monday first, each date
// normalized to start of day.
func WeekWindow(now time.Time) Window {
	monday := MondayOf(now)
	today := StartOfDay(now)

	var w Window
	for i := range daysPerWeek {
		date := monday.AddDate(0, 0, i)
		w.Days[i] = Day{
			Date:    date,
			IsToday: date.Equal(today),
		}
	}
	return w
}

// Start returns the window's Monday.
func (w Window) Start() time.Time {
	return w.Days[0].Date
}

// Label formats the window as "{start} - {end}", e.g. "Oct 23 - Oct 29".
func (w Window) Label() string {
	return Label(w.Days[0].Date, w.Days[daysPerWeek-1].Date)
}

// Contains reports the day index of date inside the window, if any.
func (w Window) Contains(date time.Time) (int, bool) {
	offset := DayOffset(w.Start(), date)
	if offset < 0 || offset >= daysPerWeek {
		return 0, false
	}
	return offset, true
}

// Label formats a date range as "{startMonthDay} - {endMonthDay}".
func Label(start, end time.Time) string {
	return start.Format("Jan 2") + " - " + end.Format("Jan 2")
}

// MonthLabel formats t as "January 2006" for monthly reports and history
// grouping.
func MonthLabel(t time.Time) string {
	return t.Format("January 2006")
}

// DayOffset returns the number of whole calendar days from start to date.
//
// Both times are reduced to their calendar date before subtracting, so the
// result is exact across daylight-saving transitions.
func DayOffset(start, date time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(s) / (24 * time.Hour))
}
