package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const (
	sqliteTimeLayout = time.RFC3339Nano

	counterNotes = "notes"
	counterTasks = "tasks"
)

type SQLiteRepository struct {
	db     *sql.DB
	logger *slog.Logger
	now    func() time.Time
}

type Option func(*SQLiteRepository)

func WithLogger(logger *slog.Logger) Option {
	return func(r *SQLiteRepository) {
		if logger != nil {
			r.logger = logger
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(r *SQLiteRepository) {
		if now != nil {
			r.now = now
		}
	}
}

func NewSQLiteRepository(db *sql.DB, opts ...Option) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	r := &SQLiteRepository{
		db:     db,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// OpenSQLite opens (creating if needed) the database at path and applies
// the embedded migrations.
func OpenSQLite(path string, opts ...Option) (*SQLiteRepository, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}
	repo, err := NewSQLiteRepository(db, opts...)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	repo.logger.Debug("sqlite opened", "path", path)
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) LoadNotes(ctx context.Context) (NoteSet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, content, color, updated_at
		FROM notes ORDER BY position ASC`)
	if err != nil {
		return NoteSet{}, err
	}
	defer rows.Close()

	out := NoteSet{Notes: make([]Note, 0)}
	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			return NoteSet{}, scanErr
		}
		out.Notes = append(out.Notes, note)
	}
	if err := rows.Err(); err != nil {
		return NoteSet{}, err
	}
	out.NextID, err = r.counter(ctx, counterNotes)
	if err != nil {
		return NoteSet{}, err
	}
	return out, nil
}

func (r *SQLiteRepository) SaveNotes(ctx context.Context, in NoteSet) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM notes`); err != nil {
			return err
		}
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO notes (id, position, title, content, color, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		now := r.now()
		for i, n := range in.Notes {
			updated := n.UpdatedAt
			if updated.IsZero() {
				updated = now
			}
			if _, err := stmt.ExecContext(ctx, n.ID, i, n.Title, n.Content, n.Color, mustTime(updated)); err != nil {
				return fmt.Errorf("insert note %s: %w", n.ID, err)
			}
		}
		r.logger.Debug("notes saved", "count", len(in.Notes), "next_id", in.NextID)
		return setCounter(ctx, tx, counterNotes, in.NextID)
	})
}

func (r *SQLiteRepository) GetNote(ctx context.Context, id string) (Note, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, content, color, updated_at
		FROM notes WHERE id = ?`, id)
	note, err := scanNote(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Note{}, ErrNotFound
		}
		return Note{}, err
	}
	return note, nil
}

func (r *SQLiteRepository) LoadTasks(ctx context.Context) (TaskSet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, text, due_date, completed, steps, updated_at
		FROM tasks ORDER BY position ASC`)
	if err != nil {
		return TaskSet{}, err
	}
	defer rows.Close()

	tasks := make([]Task, 0)
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			return TaskSet{}, scanErr
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return TaskSet{}, err
	}

	next, err := r.counter(ctx, counterTasks)
	if err != nil {
		return TaskSet{}, err
	}
	return TaskSet{Tasks: tasks, NextID: next}, nil
}

func (r *SQLiteRepository) SaveTasks(ctx context.Context, in TaskSet) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
			return err
		}
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO tasks (id, position, text, due_date, completed, steps, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		now := r.now()
		for i, t := range in.Tasks {
			steps, err := encodeSteps(t.Steps)
			if err != nil {
				return fmt.Errorf("encode steps for %s: %w", t.ID, err)
			}
			updated := t.UpdatedAt
			if updated.IsZero() {
				updated = now
			}
			if _, err := stmt.ExecContext(ctx, t.ID, i, t.Text, t.DueDate, boolInt(t.Completed), steps, mustTime(updated)); err != nil {
				return fmt.Errorf("insert task %s: %w", t.ID, err)
			}
		}
		r.logger.Debug("tasks saved", "count", len(in.Tasks), "next_id", in.NextID)
		return setCounter(ctx, tx, counterTasks, in.NextID)
	})
}

func (r *SQLiteRepository) GetTask(ctx context.Context, id string) (Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, text, due_date, completed, steps, updated_at
		FROM tasks WHERE id = ?`, id)
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Task{}, ErrNotFound
		}
		return Task{}, err
	}
	return task, nil
}

func (r *SQLiteRepository) LoadMoodEntries(ctx context.Context) ([]MoodEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT date, humor, insight, created_at
		FROM mood_entries ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]MoodEntry, 0)
	for rows.Next() {
		entry, scanErr := scanMoodEntry(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) SaveMoodEntries(ctx context.Context, in []MoodEntry) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM mood_entries`); err != nil {
			return err
		}
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO mood_entries (date, position, humor, insight, created_at)
			VALUES (?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		now := r.now()
		for i, e := range in {
			created := e.CreatedAt
			if created.IsZero() {
				created = now
			}
			if _, err := stmt.ExecContext(ctx, e.Date, i, e.Humor, e.Insight, mustTime(created)); err != nil {
				return fmt.Errorf("insert mood entry %s: %w", e.Date, err)
			}
		}
		r.logger.Debug("mood entries saved", "count", len(in))
		return nil
	})
}

func (r *SQLiteRepository) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (r *SQLiteRepository) counter(ctx context.Context, name string) (int, error) {
	var value int
	err := r.db.QueryRowContext(ctx, `SELECT value FROM counters WHERE name = ?`, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return value, err
}

func setCounter(ctx context.Context, tx *sql.Tx, name string, value int) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO counters (name, value) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value`, name, value)
	return err
}

func mustTime(v time.Time) string {
	return v.UTC().Format(sqliteTimeLayout)
}

func parseRequiredTime(v string) (time.Time, error) {
	return time.Parse(sqliteTimeLayout, v)
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func encodeSteps(steps []string) (string, error) {
	if len(steps) == 0 {
		return "[]", nil
	}
	raw, err := json.Marshal(steps)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func decodeSteps(raw string) ([]string, error) {
	var steps []string
	if err := json.Unmarshal([]byte(raw), &steps); err != nil {
		return nil, err
	}
	if len(steps) == 0 {
		return nil, nil
	}
	return steps, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNote(s scanner) (Note, error) {
	var out Note
	var updated string
	if err := s.Scan(&out.ID, &out.Title, &out.Content, &out.Color, &updated); err != nil {
		return Note{}, err
	}
	updatedAt, err := parseRequiredTime(updated)
	if err != nil {
		return Note{}, err
	}
	out.UpdatedAt = updatedAt
	return out, nil
}

func scanTask(s scanner) (Task, error) {
	var out Task
	var completed int
	var steps string
	var updated string
	if err := s.Scan(&out.ID, &out.Text, &out.DueDate, &completed, &steps, &updated); err != nil {
		return Task{}, err
	}
	decoded, err := decodeSteps(steps)
	if err != nil {
		return Task{}, fmt.Errorf("decode steps for %s: %w", out.ID, err)
	}
	updatedAt, err := parseRequiredTime(updated)
	if err != nil {
		return Task{}, err
	}
	out.Completed = completed == 1
	out.Steps = decoded
	out.UpdatedAt = updatedAt
	return out, nil
}

func scanMoodEntry(s scanner) (MoodEntry, error) {
	var out MoodEntry
	var created string
	if err := s.Scan(&out.Date, &out.Humor, &out.Insight, &created); err != nil {
		return MoodEntry{}, err
	}
	createdAt, err := parseRequiredTime(created)
	if err != nil {
		return MoodEntry{}, err
	}
	out.CreatedAt = createdAt
	return out, nil
}
