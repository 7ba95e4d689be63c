package update

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/sandeepkv93/diario/internal/config"
	"github.com/sandeepkv93/diario/internal/model"
	"github.com/sandeepkv93/diario/internal/scheduler"
	"github.com/sandeepkv93/diario/internal/session"
)

type View string

const (
	ViewHome  View = "Home"
	ViewNotes View = "Notes"
	ViewTasks View = "Tasks"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Home  string
	Notes string
	Tasks string
	Theme string
	Help  string
	Quit  string
}

type HomeState struct {
	MoodCursor int
}

type NotesState struct {
	Cursor    int
	Query     string
	Searching bool
}

type TasksState struct {
	Cursor    int
	Filter    model.TaskFilter
	ConfirmID string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Model struct {
	CurrentView    View
	Session        *session.Session
	Home           HomeState
	NotesView      NotesState
	TasksView      TasksState
	Scheduler      *scheduler.Engine
	ReminderLog    []scheduler.Notification
	Palette        CommandPaletteState
	HelpVisible    bool
	Notifications  []Notification
	DesktopEnabled bool
	notifier       DesktopNotifier
	logger         *slog.Logger
	now            func() time.Time
	Status         StatusBar
	Keys           GlobalKeyMap
	Quitting       bool
	LastError      error
	// Bubble components used for rich TUI controls
	searchInput  textinput.Model
	commandInput textinput.Model
	helpModel    help.Model
	noteViewport viewport.Model
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type DesktopNotifier interface {
	Send(Notification) error
}

type NoopDesktopNotifier struct{}

func (NoopDesktopNotifier) Send(Notification) error { return nil }

type ExecDesktopNotifier struct{}

func (ExecDesktopNotifier) Send(n Notification) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", n.Title, n.Body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(n.Body), escapeAppleScript(n.Title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type ReminderDueMsg struct {
	Notification scheduler.Notification
}

// NewModel builds the UI over sess. A nil session gets a volatile one.
func NewModel(sess *session.Session) Model {
	if sess == nil {
		// Open without a repository performs no I/O and cannot fail.
		sess, _ = session.Open(context.Background(), nil)
	}
	m := Model{
		CurrentView: ViewHome,
		Session:     sess,
		TasksView:   TasksState{Filter: model.TaskFilterAll},
		notifier:    NoopDesktopNotifier{},
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:         time.Now,
		Keys: GlobalKeyMap{
			Home:  "1",
			Notes: "2",
			Tasks: "3",
			Theme: "T",
			Help:  "?",
			Quit:  "q",
		},
	}
	m.initBubbleComponents()
	m.syncBubbleData()
	return m
}

func NewModelWithConfig(sess *session.Session, engine *scheduler.Engine, notifier DesktopNotifier, cfg config.Config, logger *slog.Logger) Model {
	m := NewModel(sess)
	m.Scheduler = engine
	m.DesktopEnabled = cfg.DesktopNotifications
	if notifier != nil {
		m.notifier = notifier
	}
	if logger != nil {
		m.logger = logger
	}
	m.syncBubbleData()
	return m
}
