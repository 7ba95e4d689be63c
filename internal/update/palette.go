package update

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/diario/internal/commands"
	"github.com/sandeepkv93/diario/internal/model"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.Palette.Active = false
		m.Palette.Input = ""
		return m
	}

	res, err := commands.Execute(cmd, m.paletteHandlers())
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.notify("Command Failed", err.Error(), "error")
	} else {
		m.Status = StatusBar{Text: res.Message, IsError: false}
		m.notify("Command", res.Message, "info")
	}
	m.logger.Debug("palette command", "type", cmd.Type, "err", err)

	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	return m
}

// paletteHandlers binds every palette verb to the session. The closures
// capture m by pointer so view changes survive the call.
func (m *Model) paletteHandlers() commands.Handlers {
	s := m.Session
	return commands.Handlers{
		Note: func(a commands.NoteArgs) (commands.Result, error) {
			note, err := s.Notes.AddNote(a.Title, a.Content)
			if err != nil {
				return commands.Result{}, err
			}
			m.CurrentView = ViewNotes
			m.NotesView.Query = ""
			m.NotesView.Cursor = s.Notes.Len() - 1
			return commands.Result{Message: fmt.Sprintf("note added: %s (%s)", note.Title, note.ID)}, nil
		},
		Task: func(a commands.TaskArgs) (commands.Result, error) {
			task, err := s.AddTask(a.Text, a.Date, a.Steps...)
			if err != nil {
				return commands.Result{}, err
			}
			m.CurrentView = ViewTasks
			return commands.Result{Message: fmt.Sprintf("task added: %s (%s)", task.Text, task.ID)}, nil
		},
		Edit: func(a commands.EditArgs) (commands.Result, error) {
			date := a.Date
			switch date {
			case "":
				if current, ok := s.Tasks.Get(a.ID); ok {
					date = current.Date
				}
			case commands.ClearDate:
				date = ""
			}
			task, err := s.Tasks.EditTask(a.ID, a.Text, date)
			if err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("task updated: %s", task.Text)}, nil
		},
		Done: func(a commands.TargetArgs) (commands.Result, error) {
			task, err := s.Tasks.ToggleTask(a.ID)
			if err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("task %s completed=%t", task.ID, task.Completed)}, nil
		},
		Remove: func(a commands.TargetArgs) (commands.Result, error) {
			switch {
			case strings.HasPrefix(a.ID, "note-"):
				s.Notes.DeleteNote(a.ID)
			case strings.HasPrefix(a.ID, "task-"):
				s.RemoveTask(a.ID)
			default:
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "rm expects a note-N or task-N id"}
			}
			return commands.Result{Message: fmt.Sprintf("removed %s", a.ID)}, nil
		},
		Undo: func() (commands.Result, error) {
			note, ok := s.Notes.UndoDelete()
			if !ok {
				return commands.Result{Message: "nothing to undo"}, nil
			}
			return commands.Result{Message: fmt.Sprintf("note restored: %s", note.Title)}, nil
		},
		Mood: func(a commands.MoodArgs) (commands.Result, error) {
			entry, err := s.Moods.ChooseMood(a.Emoji)
			if errors.Is(err, model.ErrAlreadyDone) {
				return commands.Result{}, fmt.Errorf("você já escolheu seu humor hoje: %w", err)
			}
			if err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("humor %s: %s", entry.Humor, entry.Insight)}, nil
		},
		Search: func(a commands.SearchArgs) (commands.Result, error) {
			m.CurrentView = ViewNotes
			m.NotesView.Query = a.Query
			m.NotesView.Cursor = 0
			notes := s.Notes.Search(a.Query)
			tasks := s.Tasks.Search(a.Query)
			return commands.Result{Message: fmt.Sprintf("%d note(s), %d task(s) match %q", len(notes), len(tasks), a.Query)}, nil
		},
		Filter: func(a commands.FilterArgs) (commands.Result, error) {
			m.CurrentView = ViewTasks
			m.setFilter(a.Filter)
			return commands.Result{Message: fmt.Sprintf("filter: %s", a.Filter)}, nil
		},
		Color: func(a commands.TargetArgs) (commands.Result, error) {
			note, err := s.CycleNoteColor(a.ID)
			if err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("note %s color %s", note.ID, note.Color)}, nil
		},
		Shuffle: func() (commands.Result, error) {
			m.CurrentView = ViewHome
			s.Reshuffle()
			return commands.Result{Message: "new challenges drawn"}, nil
		},
	}
}
