package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/diario/internal/model"
	"github.com/sandeepkv93/diario/internal/views"
)

func (m Model) handleNotesKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "up", "k":
		if m.NotesView.Cursor > 0 {
			m.NotesView.Cursor--
		}
	case "down", "j":
		if m.NotesView.Cursor < len(m.visibleNotes())-1 {
			m.NotesView.Cursor++
		}
	case "c":
		note, ok := m.currentNote()
		if !ok {
			return m
		}
		if _, err := m.Session.CycleNoteColor(note.ID); err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m
		}
		m.Status = StatusBar{Text: fmt.Sprintf("color changed: %s", note.Title), IsError: false}
	case "d":
		note, ok := m.currentNote()
		if !ok {
			return m
		}
		m.Session.Notes.DeleteNote(note.ID)
		m.Status = StatusBar{Text: fmt.Sprintf("note deleted: %s ([u] undo)", note.Title), IsError: false}
	case "u":
		m.undoDelete()
	case "f":
		m.NotesView.Searching = true
		m.searchInput.Focus()
		m.Status = StatusBar{Text: "search notes", IsError: false}
	case "esc":
		if m.NotesView.Query != "" {
			m.NotesView.Query = ""
			m.NotesView.Cursor = 0
			m.Status = StatusBar{Text: "search cleared", IsError: false}
		}
	}
	return m
}

func (m Model) handleSearchKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.NotesView.Searching = false
		m.NotesView.Query = ""
		m.searchInput.Blur()
		m.Status = StatusBar{Text: "search cleared", IsError: false}
		return m
	case "enter":
		m.NotesView.Searching = false
		m.NotesView.Query = strings.TrimSpace(m.NotesView.Query)
		m.searchInput.Blur()
		m.Status = StatusBar{Text: fmt.Sprintf("%d note(s) match %q", len(m.visibleNotes()), m.NotesView.Query), IsError: false}
		return m
	}
	if msg.Type == tea.KeyRunes {
		m.searchInput.SetValue(m.searchInput.Value() + string(msg.Runes))
	} else {
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		_ = cmd
	}
	m.NotesView.Query = m.searchInput.Value()
	m.NotesView.Cursor = 0
	return m
}

func (m *Model) undoDelete() {
	note, ok := m.Session.Notes.UndoDelete()
	if !ok {
		m.Status = StatusBar{Text: "nothing to undo", IsError: false}
		return
	}
	m.Status = StatusBar{Text: fmt.Sprintf("note restored: %s", note.Title), IsError: false}
}

func (m Model) renderNotesView() string {
	notes := m.visibleNotes()
	items := make([]views.NoteItemData, 0, len(notes))
	for _, n := range notes {
		items = append(items, views.NoteItemData{
			ID:      n.ID,
			Title:   n.Title,
			Color:   m.noteColor(n.Color),
			Preview: preview(n.Content, 30),
		})
	}
	data := views.NotesPanelData{
		Items:      items,
		Query:      m.NotesView.Query,
		Searching:  m.NotesView.Searching,
		SearchView: m.searchInput.View(),
	}
	if sel, ok := m.currentNote(); ok {
		data.SelectedID = sel.ID
	}
	if pending, ok := m.Session.Notes.PendingUndo(); ok {
		data.CanUndo = true
		data.UndoTitle = pending.Title
	}
	return views.RenderNotesPanel(data)
}

func (m Model) renderNoteDetail() string {
	note, ok := m.currentNote()
	if !ok {
		return views.RenderNoteDetail(views.NoteDetailData{})
	}
	return views.RenderNoteDetail(views.NoteDetailData{
		Title:        note.Title,
		Color:        m.noteColor(note.Color),
		MarkdownView: m.noteViewport.View(),
	})
}

func (m Model) noteColor(color string) string {
	if color == "" {
		return model.DefaultNoteColor(m.Session.Dark())
	}
	return color
}
