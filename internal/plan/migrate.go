package plan

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// exerciseDoc is the tolerant wire form of Exercise. Early plan documents
// stored reps and weight as one scalar per exercise instead of one value per
// set, and numbers instead of strings, so both fields decode through raw JSON
// and are widened on the way in.
type exerciseDoc struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	MuscleGroup string          `json:"muscleGroup"`
	Sets        int             `json:"sets"`
	Reps        json.RawMessage `json:"reps"`
	Weight      json.RawMessage `json:"weight"`
	Notes       string          `json:"notes"`
	Completed   bool            `json:"completed"`
}

// decodeSetValues widens a scalar or a mixed-type array into one string per
// set. A scalar is repeated across every set.
func decodeSetValues(raw json.RawMessage, sets int) ([]string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err == nil {
		out := make([]string, 0, len(elements))
		for _, element := range elements {
			value, valueErr := decodeScalar(element)
			if valueErr != nil {
				return nil, valueErr
			}
			out = append(out, value)
		}
		return out, nil
	}

	value, err := decodeScalar(raw)
	if err != nil {
		return nil, err
	}
	out := make([]string, sets)
	for i := range out {
		out[i] = value
	}
	return out, nil
}

func decodeScalar(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("decode set value %s: %w", raw, err)
	}
	return strconv.FormatFloat(n, 'f', -1, 64), nil
}

func (doc exerciseDoc) toExercise() (Exercise, error) {
	sets := doc.Sets
	if sets < 1 {
		sets = defaultSetCount
	}
	reps, err := decodeSetValues(doc.Reps, sets)
	if err != nil {
		return Exercise{}, fmt.Errorf("exercise %s reps: %w", doc.ID, err)
	}
	weight, err := decodeSetValues(doc.Weight, sets)
	if err != nil {
		return Exercise{}, fmt.Errorf("exercise %s weight: %w", doc.ID, err)
	}

	exercise := Exercise{
		ID:          doc.ID,
		Name:        doc.Name,
		MuscleGroup: doc.MuscleGroup,
		Sets:        sets,
		Reps:        reps,
		Weight:      weight,
		Notes:       doc.Notes,
		Completed:   doc.Completed,
	}
	exercise.Normalize()
	return exercise, nil
}

// DecodePlan decodes a plan document, widening any legacy scalar set values
// and restoring the per-set invariant on every exercise. Weekdays missing from
// the document come back as empty lists.
func DecodePlan(data []byte) (WeeklyPlan, error) {
	var doc map[Weekday][]exerciseDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode plan document: %w", err)
	}
	return planFromDocs(doc)
}

func planFromDocs(doc map[Weekday][]exerciseDoc) (WeeklyPlan, error) {
	p := NewEmptyPlan()
	for _, day := range Weekdays {
		for _, exerciseDoc := range doc[day] {
			exercise, err := exerciseDoc.toExercise()
			if err != nil {
				return nil, fmt.Errorf("day %s: %w", day, err)
			}
			p[day] = append(p[day], exercise)
		}
	}
	return p, nil
}

// jsonTime accepts both full RFC 3339 timestamps and bare dates, which show
// up in hand-edited backup files.
type jsonTime struct {
	time.Time
}

func (t *jsonTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decode timestamp: %w", err)
	}
	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("decode timestamp: unrecognized value %q", s)
}

// historyEntryDoc mirrors HistoryEntry with the tolerant plan form, so the
// scalar widening also applies to archives created before the migration.
type historyEntryDoc struct {
	ID           string                    `json:"id"`
	WeekLabel    string                    `json:"weekLabel"`
	DateArchived jsonTime                  `json:"dateArchived"`
	StartDate    *jsonTime                 `json:"startDate,omitempty"`
	Plan         map[Weekday][]exerciseDoc `json:"plan"`
	Stats        WeeklyStats               `json:"stats"`
}

func (doc historyEntryDoc) toEntry() (HistoryEntry, error) {
	p, err := planFromDocs(doc.Plan)
	if err != nil {
		return HistoryEntry{}, fmt.Errorf("entry %s: %w", doc.ID, err)
	}
	entry := HistoryEntry{
		ID:           doc.ID,
		WeekLabel:    doc.WeekLabel,
		DateArchived: doc.DateArchived.Time,
		Plan:         p,
		Stats:        doc.Stats,
	}
	if doc.StartDate != nil {
		start := doc.StartDate.Time
		entry.StartDate = &start
	}
	return entry, nil
}

// DecodeHistory decodes a history document including legacy entries.
func DecodeHistory(data []byte) ([]HistoryEntry, error) {
	var docs []historyEntryDoc
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("decode history document: %w", err)
	}
	entries := make([]HistoryEntry, 0, len(docs))
	for _, doc := range docs {
		entry, err := doc.toEntry()
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
