package store

import (
	"fmt"

	"github.com/sandeepkv93/diario/internal/model"
)

type NoteSnapshot struct {
	Notes  []model.Note `json:"notes"`
	NextID int         `json:"next_id"`
}

// NoteStore keeps notes in insertion order plus a one-slot undo holder for
// the most recent deletion.
type NoteStore struct {
	notes       []model.Note
	nextID      int
	lastDeleted *model.Note
	observers   observers
}

func NewNoteStore() *NoteStore {
	return &NoteStore{nextID: 1}
}

// OnChange registers fn to run after every successful mutation.
func (s *NoteStore) OnChange(fn func()) {
	s.observers.add(fn)
}

func (s *NoteStore) AddNote(title, content string) (model.Note, error) {
	note := model.Note{
		ID:      fmt.Sprintf("note-%d", s.nextID),
		Title:   title,
		Content: content,
	}
	if err := note.Validate(); err != nil {
		return model.Note{}, err
	}
	s.nextID++
	s.notes = append(s.notes, note)
	s.observers.notify()
	return note, nil
}

// DeleteNote removes the note and keeps it as the undo candidate, replacing
// any earlier one. Unknown ids are ignored.
func (s *NoteStore) DeleteNote(id string) {
	idx := s.indexOf(id)
	if idx < 0 {
		return
	}
	removed := s.notes[idx]
	s.notes = append(s.notes[:idx:idx], s.notes[idx+1:]...)
	s.lastDeleted = &removed
	s.observers.notify()
}

// UndoDelete re-appends the last deleted note at the end of the list.
func (s *NoteStore) UndoDelete() (model.Note, bool) {
	if s.lastDeleted == nil {
		return model.Note{}, false
	}
	note := *s.lastDeleted
	s.lastDeleted = nil
	s.notes = append(s.notes, note)
	s.observers.notify()
	return note, true
}

func (s *NoteStore) PendingUndo() (model.Note, bool) {
	if s.lastDeleted == nil {
		return model.Note{}, false
	}
	return *s.lastDeleted, true
}

func (s *NoteStore) CycleColor(id string, dark bool) (model.Note, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return model.Note{}, fmt.Errorf("%w: note %q", model.ErrNotFound, id)
	}
	s.notes[idx].Color = model.NextColor(s.notes[idx].Color, dark)
	s.observers.notify()
	return s.notes[idx], nil
}

// Search filters by case-insensitive substring over title or content.
// An empty query returns every note.
func (s *NoteStore) Search(query string) []model.Note {
	out := make([]model.Note, 0, len(s.notes))
	for _, n := range s.notes {
		if n.Matches(query) {
			out = append(out, n)
		}
	}
	return out
}

func (s *NoteStore) Notes() []model.Note {
	return append([]model.Note(nil), s.notes...)
}

func (s *NoteStore) Get(id string) (model.Note, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return model.Note{}, false
	}
	return s.notes[idx], true
}

func (s *NoteStore) Len() int {
	return len(s.notes)
}

func (s *NoteStore) Snapshot() NoteSnapshot {
	return NoteSnapshot{Notes: s.Notes(), NextID: s.nextID}
}

// Restore replaces the store contents. The undo holder is session state and
// is cleared. Observers are not notified.
func (s *NoteStore) Restore(snap NoteSnapshot) error {
	ids := make([]string, 0, len(snap.Notes))
	for _, n := range snap.Notes {
		if err := n.Validate(); err != nil {
			return err
		}
		ids = append(ids, n.ID)
	}
	if err := checkUniqueIDs("note", ids); err != nil {
		return err
	}
	s.notes = append([]model.Note(nil), snap.Notes...)
	s.nextID = nextCounter("note", ids, snap.NextID)
	s.lastDeleted = nil
	return nil
}

func (s *NoteStore) indexOf(id string) int {
	for i, n := range s.notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}
