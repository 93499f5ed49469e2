package plan

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/myrjola/ironlog/internal/errors"
	"github.com/myrjola/ironlog/internal/sqlite"
)

// Record keys. Each one names a whole JSON document in the record store; the
// version suffix changes when the document format does, and older keys stay
// readable so existing data migrates forward on load.
const (
	planRecordKey       = "ironlog_data_v3"
	historyRecordKey    = "ironlog_history_v1"
	titlesRecordKey     = "ironlog_titles_v1"
	weekMarkerRecordKey = "ironlog_last_active_week_v1"
)

// legacyPlanRecordKeys are consulted, newest first, when the current plan key
// is absent.
//
//nolint:gochecknoglobals // fixed migration chain.
var legacyPlanRecordKeys = []string{"ironlog_data_v2", "ironlog_data_v1"}

// Repository persists the planner's documents in the record store. A corrupt
// document is treated like a missing one: it is logged and the caller reseeds,
// because refusing to start over a broken record would lock the user out of
// their data entirely.
type Repository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func NewRepository(db *sqlite.Database, logger *slog.Logger) *Repository {
	return &Repository{db: db, logger: logger}
}

// loadDocument reads and decodes one record. The boolean reports whether a
// usable document was found.
func loadDocument[T any](
	ctx context.Context, r *Repository, key string, decode func([]byte) (T, error),
) (T, bool, error) {
	var zero T
	value, err := r.db.GetRecord(ctx, key)
	if errors.Is(err, sql.ErrNoRows) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, fmt.Errorf("load record %s: %w", key, err)
	}
	doc, err := decode([]byte(value))
	if err != nil {
		r.logger.LogAttrs(ctx, slog.LevelWarn, "discarding corrupt record",
			slog.String("key", key), slog.String("error", err.Error()))
		return zero, false, nil
	}
	return doc, true, nil
}

// LoadPlan reads the active plan, falling back through the legacy record keys
// so pre-migration data survives an upgrade.
func (r *Repository) LoadPlan(ctx context.Context) (WeeklyPlan, bool, error) {
	for _, key := range append([]string{planRecordKey}, legacyPlanRecordKeys...) {
		p, found, err := loadDocument(ctx, r, key, DecodePlan)
		if err != nil {
			return nil, false, err
		}
		if found {
			return p, true, nil
		}
	}
	return nil, false, nil
}

func (r *Repository) SavePlan(ctx context.Context, p WeeklyPlan) error {
	value, err := encodePlan(p)
	if err != nil {
		return err
	}
	if err := r.db.SetRecord(ctx, planRecordKey, value); err != nil {
		return fmt.Errorf("save plan: %w", err)
	}
	return nil
}

func (r *Repository) LoadHistory(ctx context.Context) ([]HistoryEntry, bool, error) {
	return loadDocument(ctx, r, historyRecordKey, DecodeHistory)
}

func (r *Repository) SaveHistory(ctx context.Context, history []HistoryEntry) error {
	value, err := encodeHistory(history)
	if err != nil {
		return err
	}
	if err := r.db.SetRecord(ctx, historyRecordKey, value); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}

func (r *Repository) LoadTitles(ctx context.Context) (map[Weekday]string, bool, error) {
	return loadDocument(ctx, r, titlesRecordKey, func(data []byte) (map[Weekday]string, error) {
		var titles map[Weekday]string
		if err := json.Unmarshal(data, &titles); err != nil {
			return nil, fmt.Errorf("decode titles document: %w", err)
		}
		return titles, nil
	})
}

func (r *Repository) SaveTitles(ctx context.Context, titles map[Weekday]string) error {
	value, err := json.Marshal(titles)
	if err != nil {
		return fmt.Errorf("encode titles document: %w", err)
	}
	if err := r.db.SetRecord(ctx, titlesRecordKey, string(value)); err != nil {
		return fmt.Errorf("save titles: %w", err)
	}
	return nil
}

// LoadWeekMarker reads the Monday of the last week the planner was active.
// The marker is a bare RFC 3339 timestamp, not JSON.
func (r *Repository) LoadWeekMarker(ctx context.Context) (*time.Time, error) {
	marker, found, err := loadDocument(ctx, r, weekMarkerRecordKey, func(data []byte) (time.Time, error) {
		t, parseErr := time.Parse(time.RFC3339, string(data))
		if parseErr != nil {
			return time.Time{}, fmt.Errorf("parse week marker: %w", parseErr)
		}
		return t, nil
	})
	if err != nil || !found {
		return nil, err
	}
	return &marker, nil
}

func (r *Repository) SaveWeekMarker(ctx context.Context, monday time.Time) error {
	if err := r.db.SetRecord(ctx, weekMarkerRecordKey, monday.Format(time.RFC3339)); err != nil {
		return fmt.Errorf("save week marker: %w", err)
	}
	return nil
}

// SaveRollover persists the outcome of a week rollover in one transaction so
// a crash cannot leave the archive and the reset plan out of step.
func (r *Repository) SaveRollover(ctx context.Context, p WeeklyPlan, history []HistoryEntry, monday time.Time) error {
	planValue, err := encodePlan(p)
	if err != nil {
		return err
	}
	historyValue, err := encodeHistory(history)
	if err != nil {
		return err
	}
	records := map[string]string{
		planRecordKey:       planValue,
		historyRecordKey:    historyValue,
		weekMarkerRecordKey: monday.Format(time.RFC3339),
	}
	if err := r.db.SetRecords(ctx, records); err != nil {
		return fmt.Errorf("save rollover: %w", err)
	}
	return nil
}

// SaveArchive persists a manual archive: the reset plan and the grown history
// in one transaction, leaving the week marker alone.
func (r *Repository) SaveArchive(ctx context.Context, p WeeklyPlan, history []HistoryEntry) error {
	planValue, err := encodePlan(p)
	if err != nil {
		return err
	}
	historyValue, err := encodeHistory(history)
	if err != nil {
		return err
	}
	records := map[string]string{
		planRecordKey:    planValue,
		historyRecordKey: historyValue,
	}
	if err := r.db.SetRecords(ctx, records); err != nil {
		return fmt.Errorf("save archive: %w", err)
	}
	return nil
}

// SaveImport atomically replaces the documents carried by a backup. A nil
// titles map leaves the stored titles untouched.
func (r *Repository) SaveImport(
	ctx context.Context, p WeeklyPlan, history []HistoryEntry, titles map[Weekday]string,
) error {
	planValue, err := encodePlan(p)
	if err != nil {
		return err
	}
	historyValue, err := encodeHistory(history)
	if err != nil {
		return err
	}
	records := map[string]string{
		planRecordKey:    planValue,
		historyRecordKey: historyValue,
	}
	if titles != nil {
		titlesValue, titlesErr := json.Marshal(titles)
		if titlesErr != nil {
			return fmt.Errorf("encode titles document: %w", titlesErr)
		}
		records[titlesRecordKey] = string(titlesValue)
	}
	if err := r.db.SetRecords(ctx, records); err != nil {
		return fmt.Errorf("save import: %w", err)
	}
	return nil
}

func encodePlan(p WeeklyPlan) (string, error) {
	value, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encode plan document: %w", err)
	}
	return string(value), nil
}

func encodeHistory(history []HistoryEntry) (string, error) {
	if history == nil {
		history = []HistoryEntry{}
	}
	value, err := json.Marshal(history)
	if err != nil {
		return "", fmt.Errorf("encode history document: %w", err)
	}
	return string(value), nil
}
