package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/diario/internal/model"
	"github.com/sandeepkv93/diario/internal/views"
)

func (m Model) Init() tea.Cmd {
	if m.Scheduler != nil {
		return waitForReminderCmd(m.Scheduler.C())
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.syncBubbleData()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Palette.Active {
			return m.handlePaletteKey(typed), nil
		}
		if m.NotesView.Searching {
			return m.handleSearchKey(typed), nil
		}
		if m.TasksView.ConfirmID != "" {
			return m.handleConfirmKey(typed), nil
		}

		switch typed.String() {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.Focus()
			m.commandInput.SetValue("")
			m.Status = StatusBar{Text: "command palette active", IsError: false}
			return m, nil
		case m.Keys.Home:
			m.CurrentView = ViewHome
			return m, nil
		case m.Keys.Notes:
			m.CurrentView = ViewNotes
			return m, nil
		case m.Keys.Tasks:
			m.CurrentView = ViewTasks
			return m, nil
		case m.Keys.Theme:
			m.Session.SetDark(!m.Session.Dark())
			theme := "light"
			if m.Session.Dark() {
				theme = "dark"
			}
			m.Status = StatusBar{Text: "theme: " + theme, IsError: false}
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			if m.HelpVisible {
				m.Status = StatusBar{Text: "help shown", IsError: false}
			} else {
				m.Status = StatusBar{Text: "help hidden", IsError: false}
			}
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}

		switch m.CurrentView {
		case ViewHome:
			return m.handleHomeKey(typed), nil
		case ViewNotes:
			return m.handleNotesKey(typed), nil
		case ViewTasks:
			return m.handleTasksKey(typed), nil
		}
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		m.notify("Status", typed.Text, levelFromError(typed.IsError))
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.notify("Error", typed.Err.Error(), "error")
		}
		return m, nil
	case ReminderDueMsg:
		m.applyReminder(typed.Notification)
		if m.Scheduler != nil {
			return m, waitForReminderCmd(m.Scheduler.C())
		}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}
	if err := m.Session.LastSaveError(); err != nil {
		status = strings.TrimSpace(status + "\nstatus: error: " + err.Error())
	}

	leftPane := ""
	rightPane := ""
	switch m.CurrentView {
	case ViewHome:
		leftPane = m.renderHomeView()
		rightPane = m.renderCommandPalette() + m.renderHelpIfVisible()
	case ViewNotes:
		leftPane = m.renderNotesView()
		rightPane = m.renderNoteDetail() + m.renderCommandPalette() + m.renderHelpIfVisible()
	case ViewTasks:
		leftPane = m.renderTasksView()
		rightPane = m.renderCommandPalette() + m.renderHelpIfVisible()
	}

	notificationView := ""
	if len(m.ReminderLog) > 0 {
		last := m.ReminderLog[len(m.ReminderLog)-1]
		notificationView = fmt.Sprintf("last-reminder: %s @ %s", last.Title, last.FireAt.Local().Format("15:04:05"))
	}
	notificationView = strings.TrimSpace(strings.Join([]string{
		notificationView,
		strings.TrimSpace(m.renderNotificationsView()),
	}, "\n"))

	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("diario | view: %s | %s", m.CurrentView, model.Greeting(m.now())),
		LeftPane:     leftPane,
		RightPane:    rightPane,
		StatusLine:   status,
		Notification: notificationView,
		Dark:         m.Session.Dark(),
		Footer: fmt.Sprintf("keys: %s home | %s notes | %s tasks | / cmd | %s theme | %s help | %s quit",
			m.Keys.Home, m.Keys.Notes, m.Keys.Tasks, m.Keys.Theme, m.Keys.Help, m.Keys.Quit),
	})
}

func isKnownView(v View) bool {
	switch v {
	case ViewHome, ViewNotes, ViewTasks:
		return true
	default:
		return false
	}
}
