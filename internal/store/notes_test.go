package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandeepkv93/diario/internal/model"
)

func TestAddNoteCountsOnlyValidCalls(t *testing.T) {
	s := NewNoteStore()
	inputs := []struct{ title, content string }{
		{"Mercado", "leite"},
		{"", "sem título"},
		{"sem conteúdo", ""},
		{"Ideias", "app de diário"},
		{"  ", "espaços"},
		{"Livros", "Duna"},
	}
	valid := 0
	for _, in := range inputs {
		before := s.Len()
		_, err := s.AddNote(in.title, in.content)
		if in.title == "" || in.content == "" || in.title == "  " {
			require.ErrorIs(t, err, model.ErrValidation)
			assert.Equal(t, before, s.Len(), "failed add must not change size")
			continue
		}
		require.NoError(t, err)
		valid++
	}
	assert.Equal(t, valid, s.Len())
}

func TestAddNoteAssignsUniqueIDsAfterDelete(t *testing.T) {
	s := NewNoteStore()
	a, err := s.AddNote("a", "1")
	require.NoError(t, err)
	b, err := s.AddNote("b", "2")
	require.NoError(t, err)
	s.DeleteNote(a.ID)
	c, err := s.AddNote("c", "3")
	require.NoError(t, err)

	assert.NotEqual(t, b.ID, c.ID)
	assert.NotEqual(t, a.ID, c.ID)
	assert.Empty(t, c.Color)
}

func TestDeleteThenUndoRestoresNote(t *testing.T) {
	s := NewNoteStore()
	n, err := s.AddNote("Título", "Corpo")
	require.NoError(t, err)
	n, err = s.CycleColor(n.ID, true)
	require.NoError(t, err)

	s.DeleteNote(n.ID)
	assert.Equal(t, 0, s.Len())

	restored, ok := s.UndoDelete()
	require.True(t, ok)
	assert.Equal(t, n, restored)
	assert.Equal(t, []model.Note{n}, s.Notes())

	_, ok = s.UndoDelete()
	assert.False(t, ok, "second undo must be a no-op")
	assert.Equal(t, 1, s.Len())
}

func TestUndoAppendsAtEnd(t *testing.T) {
	s := NewNoteStore()
	first, _ := s.AddNote("first", "1")
	second, _ := s.AddNote("second", "2")

	s.DeleteNote(first.ID)
	_, ok := s.UndoDelete()
	require.True(t, ok)

	notes := s.Notes()
	require.Len(t, notes, 2)
	assert.Equal(t, second.ID, notes[0].ID)
	assert.Equal(t, first.ID, notes[1].ID)
}

func TestUndoKeepsOnlyMostRecentDeletion(t *testing.T) {
	s := NewNoteStore()
	a, _ := s.AddNote("a", "1")
	b, _ := s.AddNote("b", "2")
	s.DeleteNote(a.ID)
	s.DeleteNote(b.ID)

	got, ok := s.UndoDelete()
	require.True(t, ok)
	assert.Equal(t, b.ID, got.ID)
	_, ok = s.UndoDelete()
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())
}

func TestDeleteUnknownOrTwiceIsNoop(t *testing.T) {
	s := NewNoteStore()
	a, _ := s.AddNote("a", "1")
	s.DeleteNote(a.ID)
	s.DeleteNote(a.ID)
	s.DeleteNote("note-404")

	pending, ok := s.PendingUndo()
	require.True(t, ok)
	assert.Equal(t, a.ID, pending.ID)
	assert.Equal(t, 0, s.Len())
}

func TestUndoWithNothingPending(t *testing.T) {
	s := NewNoteStore()
	_, ok := s.UndoDelete()
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestCycleColorClosesAfterPaletteLength(t *testing.T) {
	s := NewNoteStore()
	n, _ := s.AddNote("a", "1")
	n, err := s.CycleColor(n.ID, false)
	require.NoError(t, err)
	require.Equal(t, model.LightColors[0], n.Color)

	for i := 0; i < len(model.LightColors); i++ {
		n, err = s.CycleColor(n.ID, false)
		require.NoError(t, err)
	}
	assert.Equal(t, model.LightColors[0], n.Color)
}

func TestCycleColorSwitchingPaletteRestarts(t *testing.T) {
	s := NewNoteStore()
	n, _ := s.AddNote("a", "1")
	_, _ = s.CycleColor(n.ID, false)
	n, _ = s.CycleColor(n.ID, false)
	require.Equal(t, model.LightColors[1], n.Color)

	n, err := s.CycleColor(n.ID, true)
	require.NoError(t, err)
	assert.Equal(t, model.DarkColors[0], n.Color)
}

func TestCycleColorUnknownID(t *testing.T) {
	s := NewNoteStore()
	_, err := s.CycleColor("note-9", false)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestSearchIsCaseInsensitiveAndReadOnly(t *testing.T) {
	s := NewNoteStore()
	_, _ = s.AddNote("Receita de Bolo", "farinha, ovos")
	_, _ = s.AddNote("Viagem", "levar o BOLO para a vovó")
	_, _ = s.AddNote("Trabalho", "reunião às 10h")

	got := s.Search("bolo")
	require.Len(t, got, 2)
	assert.Equal(t, "Receita de Bolo", got[0].Title)
	assert.Equal(t, "Viagem", got[1].Title)

	assert.Len(t, s.Search(""), 3)
	assert.Empty(t, s.Search("inexistente"))

	got[0].Title = "mutated"
	assert.Equal(t, "Receita de Bolo", s.Notes()[0].Title)
	assert.Equal(t, 3, s.Len())
}

func TestNoteScenarioEndToEnd(t *testing.T) {
	s := NewNoteStore()
	n, err := s.AddNote("Title", "Body")
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())
	assert.Equal(t, "Title", n.Title)
	assert.Equal(t, "Body", n.Content)
	assert.Empty(t, n.Color)

	n, err = s.CycleColor(n.ID, false)
	require.NoError(t, err)
	assert.Equal(t, model.LightColors[0], n.Color)

	s.DeleteNote(n.ID)
	assert.Equal(t, 0, s.Len())

	_, ok := s.UndoDelete()
	require.True(t, ok)
	require.Equal(t, 1, s.Len())
	assert.Equal(t, model.LightColors[0], s.Notes()[0].Color)
}

func TestNoteObserversFireOnMutationOnly(t *testing.T) {
	s := NewNoteStore()
	calls := 0
	s.OnChange(func() { calls++ })

	n, _ := s.AddNote("a", "1")
	_, _ = s.AddNote("", "invalid")
	_, _ = s.CycleColor(n.ID, false)
	_ = s.Search("a")
	s.DeleteNote("missing")
	s.DeleteNote(n.ID)
	_, _ = s.UndoDelete()
	_, _ = s.UndoDelete()

	assert.Equal(t, 4, calls)
}

func TestNoteSnapshotRestore(t *testing.T) {
	s := NewNoteStore()
	for i := 0; i < 3; i++ {
		_, err := s.AddNote(fmt.Sprintf("t%d", i), "c")
		require.NoError(t, err)
	}
	s.DeleteNote("note-3")
	snap := s.Snapshot()
	assert.Equal(t, 4, snap.NextID)

	restored := NewNoteStore()
	require.NoError(t, restored.Restore(snap))
	assert.Equal(t, s.Notes(), restored.Notes())
	_, ok := restored.PendingUndo()
	assert.False(t, ok, "undo holder is not persisted")

	n, err := restored.AddNote("new", "c")
	require.NoError(t, err)
	assert.Equal(t, "note-4", n.ID)
}

func TestNoteRestoreComputesNextIDFromNotes(t *testing.T) {
	s := NewNoteStore()
	err := s.Restore(NoteSnapshot{Notes: []model.Note{
		{ID: "note-7", Title: "a", Content: "b"},
		{ID: "imported", Title: "c", Content: "d"},
	}})
	require.NoError(t, err)
	n, err := s.AddNote("x", "y")
	require.NoError(t, err)
	assert.Equal(t, "note-8", n.ID)
}

func TestNoteRestoreRejectsInvalidSnapshots(t *testing.T) {
	s := NewNoteStore()
	_, _ = s.AddNote("keep", "me")

	err := s.Restore(NoteSnapshot{Notes: []model.Note{
		{ID: "note-1", Title: "a", Content: "b"},
		{ID: "note-1", Title: "c", Content: "d"},
	}})
	require.ErrorIs(t, err, model.ErrValidation)

	err = s.Restore(NoteSnapshot{Notes: []model.Note{{ID: "note-1", Title: "", Content: "b"}}})
	require.ErrorIs(t, err, model.ErrValidation)

	assert.Equal(t, "keep", s.Notes()[0].Title, "failed restore leaves state intact")
}
