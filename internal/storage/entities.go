package storage

import "time"

type Note struct {
	ID        string
	Title     string
	Content   string
	Color     string
	UpdatedAt time.Time
}

type Task struct {
	ID        string
	Text      string
	DueDate   string
	Completed bool
	Steps     []string
	UpdatedAt time.Time
}

type MoodEntry struct {
	Date      string
	Humor     string
	Insight   string
	CreatedAt time.Time
}

// NoteSet is the ordered note list plus the id counter that produced it.
type NoteSet struct {
	Notes  []Note
	NextID int
}

type TaskSet struct {
	Tasks  []Task
	NextID int
}
