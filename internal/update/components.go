package update

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/sandeepkv93/diario/internal/model"
	"github.com/sandeepkv93/diario/internal/views"
)

func (m *Model) initBubbleComponents() {
	m.searchInput = textinput.New()
	m.searchInput.Prompt = "search> "
	m.searchInput.CharLimit = 128
	m.searchInput.Width = 42

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.helpModel = help.New()
	m.noteViewport = viewport.New(54, 14)
}

// syncBubbleData pushes store state into the bubble components after every
// update so View never reads a stale input or preview.
func (m *Model) syncBubbleData() {
	m.clampCursors()

	m.searchInput.SetValue(m.NotesView.Query)
	if m.NotesView.Searching {
		m.searchInput.Focus()
	} else {
		m.searchInput.Blur()
	}
	m.commandInput.SetValue(m.Palette.Input)
	if m.Palette.Active {
		m.commandInput.Focus()
	}

	if note, ok := m.currentNote(); ok {
		m.noteViewport.SetContent(views.RenderMarkdown(note.Content, m.Session.Dark()))
	} else {
		m.noteViewport.SetContent("")
	}
}

func (m Model) visibleNotes() []model.Note {
	if q := strings.TrimSpace(m.NotesView.Query); q != "" {
		return m.Session.Notes.Search(q)
	}
	return m.Session.Notes.Notes()
}

func (m Model) visibleTasks() []model.Task {
	return m.Session.Tasks.View(m.TasksView.Filter)
}

func (m Model) currentNote() (model.Note, bool) {
	notes := m.visibleNotes()
	if m.NotesView.Cursor < 0 || m.NotesView.Cursor >= len(notes) {
		return model.Note{}, false
	}
	return notes[m.NotesView.Cursor], true
}

func (m Model) currentTask() (model.Task, bool) {
	tasks := m.visibleTasks()
	if m.TasksView.Cursor < 0 || m.TasksView.Cursor >= len(tasks) {
		return model.Task{}, false
	}
	return tasks[m.TasksView.Cursor], true
}

func (m *Model) clampCursors() {
	m.NotesView.Cursor = clamp(m.NotesView.Cursor, len(m.visibleNotes()))
	m.TasksView.Cursor = clamp(m.TasksView.Cursor, len(m.visibleTasks()))
	m.Home.MoodCursor = clamp(m.Home.MoodCursor, len(model.Moods))
}
