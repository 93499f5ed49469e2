package plan

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/myrjola/ironlog/internal/calendar"
	"github.com/myrjola/ironlog/internal/errors"
)

var (
	// ErrNotFound reports an exercise ID absent from the addressed day.
	ErrNotFound = errors.NewSentinel("exercise not found")
	// ErrEmptyWeek rejects archiving a week with no exercises.
	ErrEmptyWeek = errors.NewSentinel("no exercises to archive")
	// ErrUnknownConfirmation reports a confirmation token that does not
	// match any pending action.
	ErrUnknownConfirmation = errors.NewSentinel("unknown confirmation token")
	// ErrNoGenerator reports that workout generation is not configured.
	ErrNoGenerator = errors.NewSentinel("workout generation is not configured")
)

// GeneratedExercise is one movement proposed by a workout generator, already
// normalized to one value per set.
type GeneratedExercise struct {
	Name        string
	MuscleGroup string
	Sets        int
	Reps        []string
	Weight      []string
	Notes       string
}

// Generator proposes a day's worth of exercises for a training focus.
type Generator interface {
	GenerateWorkout(ctx context.Context, focus string) ([]GeneratedExercise, error)
}

// PendingAction is a requested destructive operation awaiting confirmation.
// The caller echoes the token back through ResolveConfirmation to accept or
// discard it.
type PendingAction struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

type pendingAction struct {
	message string
	apply   func(ctx context.Context) error
}

// RolloverResult reports what a week activation did.
type RolloverResult struct {
	Archived bool
	Entry    HistoryEntry
}

// Service owns the planner state: the active plan, the archive, day titles
// and the last-active-week marker. Every operation runs under one mutex and
// writes through to the repository before returning, so the in-memory state
// and the record store never diverge.
type Service struct {
	mu        sync.Mutex
	repo      *Repository
	logger    *slog.Logger
	generator Generator
	now       func() time.Time

	plan                WeeklyPlan
	history             []HistoryEntry
	titles              map[Weekday]string
	lastActiveWeekStart *time.Time
	pending             map[string]pendingAction
}

// NewService loads the planner state, seeding the default program and titles
// on a first run.
func NewService(ctx context.Context, repo *Repository, generator Generator, logger *slog.Logger) (*Service, error) {
	s := &Service{
		repo:      repo,
		logger:    logger,
		generator: generator,
		now:       time.Now,
		pending:   map[string]pendingAction{},
	}

	p, found, err := repo.LoadPlan(ctx)
	if err != nil {
		return nil, fmt.Errorf("load plan: %w", err)
	}
	if !found {
		p = DefaultPlan()
		if err = repo.SavePlan(ctx, p); err != nil {
			return nil, fmt.Errorf("seed plan: %w", err)
		}
		logger.LogAttrs(ctx, slog.LevelInfo, "seeded default training program")
	}
	s.plan = p

	history, found, err := repo.LoadHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	if !found {
		history = []HistoryEntry{}
	}
	s.history = history

	titles, found, err := repo.LoadTitles(ctx)
	if err != nil {
		return nil, fmt.Errorf("load titles: %w", err)
	}
	if !found {
		titles = DefaultTitles()
		if err = repo.SaveTitles(ctx, titles); err != nil {
			return nil, fmt.Errorf("seed titles: %w", err)
		}
	}
	s.titles = titles

	if s.lastActiveWeekStart, err = repo.LoadWeekMarker(ctx); err != nil {
		return nil, fmt.Errorf("load week marker: %w", err)
	}

	return s, nil
}

// Activate reconciles the planner with the current calendar week. On the
// first call of a new week a non-empty plan is archived and the plan resets;
// an empty plan resets silently. Calling it again within the same week is a
// no-op, so every request can run it safely.
func (s *Service) Activate(ctx context.Context) (RolloverResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	currentStart := calendar.MondayOf(now)

	if s.lastActiveWeekStart == nil {
		if err := s.repo.SaveWeekMarker(ctx, currentStart); err != nil {
			return RolloverResult{}, err
		}
		s.lastActiveWeekStart = &currentStart
		return RolloverResult{}, nil
	}
	if currentStart.Equal(*s.lastActiveWeekStart) {
		return RolloverResult{}, nil
	}

	previousStart := *s.lastActiveWeekStart
	if !s.plan.HasExercises() {
		s.plan = NewEmptyPlan()
		if err := s.repo.SaveRollover(ctx, s.plan, s.history, currentStart); err != nil {
			return RolloverResult{}, err
		}
		s.lastActiveWeekStart = &currentStart
		return RolloverResult{}, nil
	}

	entry := s.buildArchiveEntry(previousStart, now)
	s.history = append([]HistoryEntry{entry}, s.history...)
	s.plan = NewEmptyPlan()
	if err := s.repo.SaveRollover(ctx, s.plan, s.history, currentStart); err != nil {
		return RolloverResult{}, err
	}
	s.lastActiveWeekStart = &currentStart

	s.logger.LogAttrs(ctx, slog.LevelInfo, "archived previous week",
		slog.String("weekLabel", entry.WeekLabel),
		slog.Int("totalExercises", entry.Stats.TotalExercises))
	return RolloverResult{Archived: true, Entry: entry.Clone()}, nil
}

// buildArchiveEntry snapshots the active plan as the week starting at start.
func (s *Service) buildArchiveEntry(start time.Time, now time.Time) HistoryEntry {
	startDate := start
	return HistoryEntry{
		ID:           uuid.NewString(),
		WeekLabel:    calendar.Label(start, start.AddDate(0, 0, len(Weekdays)-1)),
		DateArchived: now,
		StartDate:    &startDate,
		Plan:         s.plan.Clone(),
		Stats:        ComputeStats(s.plan),
	}
}

// DayView is one weekday of the live week, ready for display.
type DayView struct {
	Weekday   Weekday    `json:"weekday"`
	Title     string     `json:"title"`
	Date      time.Time  `json:"date"`
	IsToday   bool       `json:"isToday"`
	Exercises []Exercise `json:"exercises"`
}

// WeekView is the live week: its label, its calendar window and the plan for
// each day.
type WeekView struct {
	Label string    `json:"label"`
	Start time.Time `json:"start"`
	Days  []DayView `json:"days"`
}

// Week returns a deep-copied view of the live week.
func (s *Service) Week() WeekView {
	s.mu.Lock()
	defer s.mu.Unlock()

	window := calendar.WeekWindow(s.now())
	view := WeekView{
		Label: window.Label(),
		Start: window.Start(),
		Days:  make([]DayView, 0, len(Weekdays)),
	}
	for i, day := range Weekdays {
		view.Days = append(view.Days, DayView{
			Weekday:   day,
			Title:     s.titles[day],
			Date:      window.Days[i].Date,
			IsToday:   window.Days[i].IsToday,
			Exercises: CloneExercises(s.plan[day]),
		})
	}
	return view
}

// SetTitle renames one day of the week.
func (s *Service) SetTitle(ctx context.Context, day Weekday, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.titles[day] = title
	if err := s.repo.SaveTitles(ctx, s.titles); err != nil {
		return err
	}
	return nil
}

// AddExercise appends a blank exercise to the day and returns it.
func (s *Service) AddExercise(ctx context.Context, day Weekday) (Exercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exercise := NewExercise()
	s.plan[day] = append(s.plan[day], exercise)
	if err := s.repo.SavePlan(ctx, s.plan); err != nil {
		return Exercise{}, err
	}
	return exercise.Clone(), nil
}

// ExerciseUpdate carries a partial edit. Nil fields stay untouched.
type ExerciseUpdate struct {
	Name        *string `json:"name"`
	MuscleGroup *string `json:"muscleGroup"`
	Sets        *int    `json:"sets"`
	Notes       *string `json:"notes"`
	Completed   *bool   `json:"completed"`
}

// UpdateExercise applies a partial edit to one exercise. Changing the set
// count keeps already logged values, repeating the last one when growing.
func (s *Service) UpdateExercise(ctx context.Context, day Weekday, id string, update ExerciseUpdate) (Exercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exercise, err := s.findExercise(day, id)
	if err != nil {
		return Exercise{}, err
	}
	if update.Name != nil {
		exercise.Name = *update.Name
	}
	if update.MuscleGroup != nil {
		exercise.MuscleGroup = *update.MuscleGroup
	}
	if update.Sets != nil {
		exercise.SetSetCount(*update.Sets)
	}
	if update.Notes != nil {
		exercise.Notes = *update.Notes
	}
	if update.Completed != nil {
		exercise.Completed = *update.Completed
	}
	if err = s.repo.SavePlan(ctx, s.plan); err != nil {
		return Exercise{}, err
	}
	return exercise.Clone(), nil
}

// UpdateRep records the rep value of one set.
func (s *Service) UpdateRep(ctx context.Context, day Weekday, id string, set int, value string) error {
	return s.updateSetValue(ctx, day, id, func(e *Exercise) { e.SetRep(set, value) })
}

// UpdateWeight records the weight value of one set.
func (s *Service) UpdateWeight(ctx context.Context, day Weekday, id string, set int, value string) error {
	return s.updateSetValue(ctx, day, id, func(e *Exercise) { e.SetWeight(set, value) })
}

func (s *Service) updateSetValue(ctx context.Context, day Weekday, id string, apply func(*Exercise)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	exercise, err := s.findExercise(day, id)
	if err != nil {
		return err
	}
	apply(exercise)
	if err = s.repo.SavePlan(ctx, s.plan); err != nil {
		return err
	}
	return nil
}

// findExercise returns a pointer into the live plan. Callers hold the mutex.
func (s *Service) findExercise(day Weekday, id string) (*Exercise, error) {
	exercises := s.plan[day]
	for i := range exercises {
		if exercises[i].ID == id {
			return &exercises[i], nil
		}
	}
	return nil, fmt.Errorf("exercise %s on %s: %w", id, day, ErrNotFound)
}

// Exercise returns a copy of one exercise from the live plan.
func (s *Service) Exercise(day Weekday, id string) (Exercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exercise, err := s.findExercise(day, id)
	if err != nil {
		return Exercise{}, err
	}
	return exercise.Clone(), nil
}

// RequestDeleteExercise stages the removal of one exercise behind a
// confirmation.
func (s *Service) RequestDeleteExercise(day Weekday, id string) (PendingAction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exercise, err := s.findExercise(day, id)
	if err != nil {
		return PendingAction{}, err
	}
	name := exercise.Name
	if name == "" {
		name = "this exercise"
	}
	return s.stagePending(
		fmt.Sprintf("Delete %s from %s?", name, day),
		func(ctx context.Context) error {
			exercises := s.plan[day]
			for i := range exercises {
				if exercises[i].ID == id {
					s.plan[day] = append(exercises[:i], exercises[i+1:]...)
					break
				}
			}
			return s.repo.SavePlan(ctx, s.plan)
		},
	), nil
}

// RequestCompleteWeek stages a manual archive of the live week behind a
// confirmation. It fails on an empty plan.
//
// Unlike the automatic rollover, a manual archive snapshots the live calendar
// window and leaves the last-active-week marker untouched, so the automatic
// check still fires at the next week boundary.
func (s *Service) RequestCompleteWeek() (PendingAction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.plan.HasExercises() {
		return PendingAction{}, ErrEmptyWeek
	}
	window := calendar.WeekWindow(s.now())
	return s.stagePending(
		fmt.Sprintf("Archive the week of %s and start fresh?", window.Label()),
		func(ctx context.Context) error {
			entry := s.buildArchiveEntry(window.Start(), s.now())
			s.history = append([]HistoryEntry{entry}, s.history...)
			s.plan = NewEmptyPlan()
			if err := s.repo.SaveArchive(ctx, s.plan, s.history); err != nil {
				return err
			}
			s.logger.LogAttrs(ctx, slog.LevelInfo, "archived week on request",
				slog.String("weekLabel", entry.WeekLabel))
			return nil
		},
	), nil
}

// stagePending registers a confirmable action. Callers hold the mutex.
func (s *Service) stagePending(message string, apply func(ctx context.Context) error) PendingAction {
	token := uuid.NewString()
	s.pending[token] = pendingAction{message: message, apply: apply}
	return PendingAction{Token: token, Message: message}
}

// ResolveConfirmation accepts or discards a staged action. The token is
// consumed either way.
func (s *Service) ResolveConfirmation(ctx context.Context, token string, accept bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	action, ok := s.pending[token]
	if !ok {
		return fmt.Errorf("token %s: %w", token, ErrUnknownConfirmation)
	}
	delete(s.pending, token)
	if !accept {
		return nil
	}
	if err := action.apply(ctx); err != nil {
		return fmt.Errorf("apply confirmed action: %w", err)
	}
	return nil
}

// GenerateExercises asks the generator for a routine and appends it to the
// day's plan. The generator call runs outside the state mutex; a failed
// generation leaves the plan untouched.
func (s *Service) GenerateExercises(ctx context.Context, day Weekday, focus string) ([]Exercise, error) {
	if s.generator == nil {
		return nil, ErrNoGenerator
	}

	generated, err := s.generator.GenerateWorkout(ctx, focus)
	if err != nil {
		return nil, fmt.Errorf("generate workout: %w", err)
	}

	exercises := make([]Exercise, 0, len(generated))
	for _, g := range generated {
		exercises = append(exercises, adoptGenerated(g))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.plan[day] = append(s.plan[day], exercises...)
	if err = s.repo.SavePlan(ctx, s.plan); err != nil {
		return nil, err
	}
	return CloneExercises(exercises), nil
}

// adoptGenerated turns a generator proposal into a plan exercise with a fresh
// ID and the per-set invariant restored.
func adoptGenerated(g GeneratedExercise) Exercise {
	exercise := Exercise{
		ID:          uuid.NewString(),
		Name:        g.Name,
		MuscleGroup: g.MuscleGroup,
		Sets:        g.Sets,
		Reps:        g.Reps,
		Weight:      g.Weight,
		Notes:       g.Notes,
	}
	if exercise.Name == "" {
		exercise.Name = "New Exercise"
	}
	if exercise.MuscleGroup == "" {
		exercise.MuscleGroup = "Muscle"
	}
	exercise.Normalize()
	return exercise
}

// WeeklyStats aggregates the live plan.
func (s *Service) WeeklyStats() WeeklyStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ComputeStats(s.plan)
}

// MonthlyStats aggregates one calendar month across the live plan and the
// archive.
func (s *Service) MonthlyStats(month time.Month, year int) MonthlyStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ComputeMonthlyStats(s.plan, s.history, month, year)
}

// History returns the archive newest week first, grouped by calendar month.
func (s *Service) History() []HistoryMonth {
	s.mu.Lock()
	defer s.mu.Unlock()
	return groupHistoryByMonth(s.history)
}

// ResolveDate answers what was planned on a calendar date.
func (s *Service) ResolveDate(date time.Time) Resolution {
	s.mu.Lock()
	defer s.mu.Unlock()
	return resolveDate(date, s.now(), s.plan, s.history)
}

// CompletedDates lists every date with a completed exercise, as yyyy-mm-dd.
func (s *Service) CompletedDates() map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return completedDates(s.now(), s.plan, s.history)
}

// Export snapshots everything the planner stores into a backup document.
func (s *Service) Export() BackupDocument {
	s.mu.Lock()
	defer s.mu.Unlock()

	titles := make(map[Weekday]string, len(s.titles))
	for day, title := range s.titles {
		titles[day] = title
	}
	return BackupDocument{
		History:     CloneHistory(s.history),
		CurrentWeek: s.plan.Clone(),
		Titles:      titles,
		Version:     backupVersion,
	}
}

// RequestImport stages replacing the live plan and archive with a backup
// document behind a confirmation. Titles are replaced only when the document
// carries them. The last-active-week marker is left untouched, so the next
// week boundary still archives the imported plan.
func (s *Service) RequestImport(doc BackupDocument) PendingAction {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.stagePending(
		fmt.Sprintf("Replace the current plan and %d archived weeks with the imported data?", len(s.history)),
		func(ctx context.Context) error {
			if err := s.repo.SaveImport(ctx, doc.CurrentWeek, doc.History, doc.Titles); err != nil {
				return err
			}
			s.plan = doc.CurrentWeek.Clone()
			s.history = CloneHistory(doc.History)
			if doc.Titles != nil {
				s.titles = doc.Titles
			}
			s.logger.LogAttrs(ctx, slog.LevelInfo, "imported backup",
				slog.Int("archivedWeeks", len(doc.History)))
			return nil
		},
	)
}
