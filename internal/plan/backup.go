package plan

import (
	"encoding/json"
	"fmt"

	"github.com/myrjola/ironlog/internal/errors"
)

// backupVersion marks exported documents with the current plan format.
const backupVersion = 3

// ErrInvalidBackup reports a backup document missing its mandatory sections.
var ErrInvalidBackup = errors.NewSentinel("backup document lacks history or current week")

// BackupDocument is the portable export of everything the planner stores.
// Titles are optional so documents from builds without editable titles still
// import.
type BackupDocument struct {
	History     []HistoryEntry     `json:"history"`
	CurrentWeek WeeklyPlan         `json:"currentWeek"`
	Titles      map[Weekday]string `json:"titles,omitempty"`
	Version     int                `json:"version"`
}

// ParseBackup validates and decodes a backup document. Both the history and
// the current week must be present, even if empty; set values stored in the
// legacy scalar form are widened during decoding.
func ParseBackup(data []byte) (BackupDocument, error) {
	var raw struct {
		History     json.RawMessage `json:"history"`
		CurrentWeek json.RawMessage `json:"currentWeek"`
		Titles      json.RawMessage `json:"titles"`
		Version     int             `json:"version"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return BackupDocument{}, fmt.Errorf("decode backup document: %w", err)
	}
	if raw.History == nil || raw.CurrentWeek == nil {
		return BackupDocument{}, ErrInvalidBackup
	}

	history, err := DecodeHistory(raw.History)
	if err != nil {
		return BackupDocument{}, fmt.Errorf("backup history: %w", err)
	}
	currentWeek, err := DecodePlan(raw.CurrentWeek)
	if err != nil {
		return BackupDocument{}, fmt.Errorf("backup current week: %w", err)
	}

	doc := BackupDocument{
		History:     history,
		CurrentWeek: currentWeek,
		Version:     raw.Version,
	}
	if raw.Titles != nil {
		if err := json.Unmarshal(raw.Titles, &doc.Titles); err != nil {
			return BackupDocument{}, fmt.Errorf("backup titles: %w", err)
		}
	}
	return doc, nil
}
