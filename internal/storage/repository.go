package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

// Repository persists the journal aggregates. Save methods replace the whole
// aggregate atomically; the in-memory stores stay the source of truth while
// the app runs.
type Repository interface {
	LoadNotes(ctx context.Context) (NoteSet, error)
	SaveNotes(ctx context.Context, in NoteSet) error
	GetNote(ctx context.Context, id string) (Note, error)

	LoadTasks(ctx context.Context) (TaskSet, error)
	SaveTasks(ctx context.Context, in TaskSet) error
	GetTask(ctx context.Context, id string) (Task, error)

	LoadMoodEntries(ctx context.Context) ([]MoodEntry, error)
	SaveMoodEntries(ctx context.Context, in []MoodEntry) error

	Close() error
}
