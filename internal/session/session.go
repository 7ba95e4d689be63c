// Package session wires the journal stores to persistence, the challenge
// sampler and the reminder engine for one run of the app.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/sandeepkv93/diario/internal/challenge"
	"github.com/sandeepkv93/diario/internal/model"
	"github.com/sandeepkv93/diario/internal/scheduler"
	"github.com/sandeepkv93/diario/internal/storage"
	"github.com/sandeepkv93/diario/internal/store"
)

const (
	DefaultReminderDelay = 10 * time.Second
	saveTimeout          = 5 * time.Second
)

type Option func(*Session)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithScheduler enables task reminders on engine. The caller owns the
// engine lifecycle.
func WithScheduler(engine *scheduler.Engine) Option {
	return func(s *Session) { s.engine = engine }
}

func WithReminderDelay(d time.Duration) Option {
	return func(s *Session) {
		if d >= 0 {
			s.reminderDelay = d
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// WithChallenges sets the sampler seed (0 means time-seeded) and the number
// of challenges drawn per session.
func WithChallenges(seed uint64, count int) Option {
	return func(s *Session) {
		s.seed = seed
		if count > 0 {
			s.challengeCount = count
		}
	}
}

func WithCatalog(catalog []model.Challenge) Option {
	return func(s *Session) {
		s.catalog = append([]model.Challenge(nil), catalog...)
	}
}

func WithDarkMode(dark bool) Option {
	return func(s *Session) { s.dark = dark }
}

// Session owns one instance of each store. Like the stores it is meant for a
// single goroutine, normally the UI update loop.
type Session struct {
	Notes *store.NoteStore
	Tasks *store.TaskStore
	Moods *store.MoodJournal

	repo           storage.Repository
	engine         *scheduler.Engine
	sampler        *challenge.Sampler
	catalog        []model.Challenge
	challenges     []model.Challenge
	challengeCount int
	seed           uint64
	reminderDelay  time.Duration
	dark           bool
	logger         *slog.Logger
	now            func() time.Time
	moodCreated    map[string]time.Time
	lastSaveErr    error
}

// Open restores the stores from repo and draws the session's challenges.
// A nil repo gives a volatile session that is never saved.
func Open(ctx context.Context, repo storage.Repository, opts ...Option) (*Session, error) {
	s := &Session{
		repo:           repo,
		catalog:        model.DefaultCatalog(),
		challengeCount: challenge.DefaultCount,
		reminderDelay:  DefaultReminderDelay,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:            time.Now,
		moodCreated:    make(map[string]time.Time),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.Notes = store.NewNoteStore()
	s.Tasks = store.NewTaskStore()
	s.Moods = store.NewMoodJournal(store.WithClock(s.now))
	s.sampler = challenge.NewSampler(s.seed)

	if repo != nil {
		if err := s.restore(ctx); err != nil {
			return nil, err
		}
		s.Notes.OnChange(s.saveNotes)
		s.Tasks.OnChange(s.saveTasks)
		s.Moods.OnChange(s.saveMoods)
	}

	s.Reshuffle()
	s.logger.Debug("session opened",
		"notes", s.Notes.Len(),
		"tasks", s.Tasks.Len(),
		"moods", s.Moods.Len(),
		"persistent", repo != nil,
	)
	return s, nil
}

func (s *Session) restore(ctx context.Context) error {
	notes, err := s.repo.LoadNotes(ctx)
	if err != nil {
		return fmt.Errorf("session: load notes: %w", err)
	}
	if err := s.Notes.Restore(noteSnapshotFromStorage(notes)); err != nil {
		return fmt.Errorf("session: restore notes: %w", err)
	}

	tasks, err := s.repo.LoadTasks(ctx)
	if err != nil {
		return fmt.Errorf("session: load tasks: %w", err)
	}
	if err := s.Tasks.Restore(taskSnapshotFromStorage(tasks)); err != nil {
		return fmt.Errorf("session: restore tasks: %w", err)
	}

	moods, err := s.repo.LoadMoodEntries(ctx)
	if err != nil {
		return fmt.Errorf("session: load moods: %w", err)
	}
	if err := s.Moods.Restore(moodSnapshotFromStorage(moods)); err != nil {
		return fmt.Errorf("session: restore moods: %w", err)
	}
	for _, e := range moods {
		s.moodCreated[e.Date] = e.CreatedAt
	}
	return nil
}

// Challenges returns the current draw.
func (s *Session) Challenges() []model.Challenge {
	return append([]model.Challenge(nil), s.challenges...)
}

// Reshuffle draws a fresh set of challenges and returns it.
func (s *Session) Reshuffle() []model.Challenge {
	s.challenges = s.sampler.Sample(s.catalog, s.challengeCount)
	return s.Challenges()
}

func (s *Session) Dark() bool {
	return s.dark
}

func (s *Session) SetDark(dark bool) {
	s.dark = dark
}

// CycleNoteColor advances the note color within the active palette.
func (s *Session) CycleNoteColor(id string) (model.Note, error) {
	return s.Notes.CycleColor(id, s.dark)
}

// AddTask adds the task and schedules the daily reminder for it.
func (s *Session) AddTask(text, date string, steps ...string) (model.Task, error) {
	task, err := s.Tasks.AddTask(text, date, steps...)
	if err != nil {
		return model.Task{}, err
	}
	if _, err := s.NotifyTaskAdded(task); err != nil {
		s.logger.Warn("reminder not scheduled", "task", task.ID, "err", err)
	}
	return task, nil
}

// RemoveTask removes the task and drops any reminder still pending for it.
func (s *Session) RemoveTask(id string) {
	s.Tasks.RemoveTask(id)
	if s.engine != nil {
		s.engine.Cancel(model.TaskReminder(id, time.Time{}).ID)
	}
}

// NotifyTaskAdded schedules the "complete your tasks" reminder for task.
// Without an engine it returns a zero Reminder and no error.
func (s *Session) NotifyTaskAdded(task model.Task) (model.Reminder, error) {
	if s.engine == nil {
		return model.Reminder{}, nil
	}
	reminder := model.TaskReminder(task.ID, s.now().UTC().Add(s.reminderDelay))
	if err := reminder.Validate(); err != nil {
		return model.Reminder{}, err
	}
	err := s.engine.Schedule(scheduler.Notification{
		ID:     reminder.ID,
		Title:  reminder.Title,
		Body:   reminder.Body,
		FireAt: reminder.FireAt,
	})
	if err != nil {
		return model.Reminder{}, fmt.Errorf("session: schedule reminder: %w", err)
	}
	s.logger.Debug("reminder scheduled", "id", reminder.ID, "fire_at", reminder.FireAt)
	return reminder, nil
}

// LastSaveError reports the most recent persistence failure, cleared by the
// next successful save.
func (s *Session) LastSaveError() error {
	return s.lastSaveErr
}

// Flush writes every aggregate. Mutations already save themselves; Flush is
// for shutdown and tests.
func (s *Session) Flush(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}
	return errors.Join(
		s.repo.SaveNotes(ctx, noteSetFromSnapshot(s.Notes.Snapshot())),
		s.repo.SaveTasks(ctx, taskSetFromSnapshot(s.Tasks.Snapshot())),
		s.repo.SaveMoodEntries(ctx, s.moodRows()),
	)
}

func (s *Session) saveNotes() {
	s.save("notes", func(ctx context.Context) error {
		return s.repo.SaveNotes(ctx, noteSetFromSnapshot(s.Notes.Snapshot()))
	})
}

func (s *Session) saveTasks() {
	s.save("tasks", func(ctx context.Context) error {
		return s.repo.SaveTasks(ctx, taskSetFromSnapshot(s.Tasks.Snapshot()))
	})
}

func (s *Session) saveMoods() {
	s.save("moods", func(ctx context.Context) error {
		return s.repo.SaveMoodEntries(ctx, s.moodRows())
	})
}

func (s *Session) save(what string, fn func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if err := fn(ctx); err != nil {
		s.lastSaveErr = fmt.Errorf("session: save %s: %w", what, err)
		s.logger.Error("save failed", "aggregate", what, "err", err)
		return
	}
	s.lastSaveErr = nil
}

// moodRows keeps each entry's first-seen time stable across saves.
func (s *Session) moodRows() []storage.MoodEntry {
	history := s.Moods.History()
	out := make([]storage.MoodEntry, 0, len(history))
	for _, e := range history {
		created, ok := s.moodCreated[e.Date]
		if !ok {
			created = s.now()
			s.moodCreated[e.Date] = created
		}
		out = append(out, storage.MoodEntry{Date: e.Date, Humor: e.Humor, Insight: e.Insight, CreatedAt: created})
	}
	return out
}
