package session

import (
	"github.com/sandeepkv93/diario/internal/model"
	"github.com/sandeepkv93/diario/internal/storage"
	"github.com/sandeepkv93/diario/internal/store"
)

func noteSnapshotFromStorage(in storage.NoteSet) store.NoteSnapshot {
	notes := make([]model.Note, 0, len(in.Notes))
	for _, n := range in.Notes {
		notes = append(notes, model.Note{ID: n.ID, Title: n.Title, Content: n.Content, Color: n.Color})
	}
	return store.NoteSnapshot{Notes: notes, NextID: in.NextID}
}

func noteSetFromSnapshot(in store.NoteSnapshot) storage.NoteSet {
	notes := make([]storage.Note, 0, len(in.Notes))
	for _, n := range in.Notes {
		notes = append(notes, storage.Note{ID: n.ID, Title: n.Title, Content: n.Content, Color: n.Color})
	}
	return storage.NoteSet{Notes: notes, NextID: in.NextID}
}

func taskSnapshotFromStorage(in storage.TaskSet) store.TaskSnapshot {
	tasks := make([]model.Task, 0, len(in.Tasks))
	for _, t := range in.Tasks {
		tasks = append(tasks, model.Task{ID: t.ID, Text: t.Text, Date: t.DueDate, Completed: t.Completed, Steps: t.Steps})
	}
	return store.TaskSnapshot{Tasks: tasks, NextID: in.NextID}
}

func taskSetFromSnapshot(in store.TaskSnapshot) storage.TaskSet {
	tasks := make([]storage.Task, 0, len(in.Tasks))
	for _, t := range in.Tasks {
		tasks = append(tasks, storage.Task{ID: t.ID, Text: t.Text, DueDate: t.Date, Completed: t.Completed, Steps: t.Steps})
	}
	return storage.TaskSet{Tasks: tasks, NextID: in.NextID}
}

func moodSnapshotFromStorage(in []storage.MoodEntry) store.MoodSnapshot {
	entries := make([]model.MoodEntry, 0, len(in))
	for _, e := range in {
		entries = append(entries, model.MoodEntry{Date: e.Date, Humor: e.Humor, Insight: e.Insight})
	}
	return store.MoodSnapshot{Entries: entries}
}
