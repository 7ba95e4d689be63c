package views

import (
	"fmt"
	"strings"
)

type HomePanelData struct {
	Greeting    string
	LongDate    string
	Moods       []string
	MoodCursor  int
	TodayMood   string
	Insight     string
	History     []string
	Challenges  []ChallengeData
	LastAlert   string
	PendingTask int
}

type ChallengeData struct {
	Icon string
	Text string
}

type NoteItemData struct {
	ID      string
	Title   string
	Color   string
	Preview string
}

type NotesPanelData struct {
	Items      []NoteItemData
	SelectedID string
	Query      string
	Searching  bool
	SearchView string
	CanUndo    bool
	UndoTitle  string
}

type NoteDetailData struct {
	Title        string
	Color        string
	MarkdownView string
}

type TaskItemData struct {
	ID        string
	Text      string
	Date      string
	Completed bool
	Steps     []string
}

type TasksPanelData struct {
	Filter      string
	Items       []TaskItemData
	SelectedID  string
	ConfirmID   string
	ConfirmText string
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

func RenderHomePanel(data HomePanelData) string {
	var b strings.Builder
	b.WriteString(data.Greeting + "\n")
	b.WriteString(data.LongDate + "\n\n")

	b.WriteString("como você está hoje?\n")
	for i, mood := range data.Moods {
		switch {
		case mood == data.TodayMood:
			b.WriteString("[" + mood + "]")
		case i == data.MoodCursor && data.TodayMood == "":
			b.WriteString(">" + mood + "<")
		default:
			b.WriteString(" " + mood + " ")
		}
		if i == len(data.Moods)/2-1 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	if data.Insight != "" {
		b.WriteString("insight: " + data.Insight + "\n")
	}
	b.WriteString("actions: [h/l]mood [enter]choose [r]new challenges\n")

	b.WriteString("\ndesafios:\n")
	if len(data.Challenges) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, c := range data.Challenges {
		b.WriteString(fmt.Sprintf("  %s %s\n", c.Icon, c.Text))
	}

	b.WriteString("\nhistórico de humor:\n")
	if len(data.History) == 0 {
		b.WriteString("  (empty)\n")
	}
	for _, line := range data.History {
		b.WriteString("  " + line + "\n")
	}

	if data.PendingTask > 0 {
		b.WriteString(fmt.Sprintf("\ntarefas pendentes: %d\n", data.PendingTask))
	}
	if data.LastAlert != "" {
		b.WriteString("\nlast-reminder: " + data.LastAlert)
	}
	return strings.TrimSpace(b.String())
}

func RenderNotesPanel(data NotesPanelData) string {
	var b strings.Builder
	b.WriteString("notes:\n")
	b.WriteString("actions: [j/k]move [c]color [d]delete [u]undo [f]search\n")
	if data.Searching {
		b.WriteString(data.SearchView + "\n")
	} else if data.Query != "" {
		b.WriteString(fmt.Sprintf("search: %q [esc]clear\n", data.Query))
	}
	if len(data.Items) == 0 {
		b.WriteString("(no notes)\n")
	}
	for _, item := range data.Items {
		cursor := " "
		if item.ID == data.SelectedID {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s %s", cursor, Swatch(item.Color), item.Title))
		if item.Preview != "" {
			b.WriteString(" - " + item.Preview)
		}
		b.WriteString("\n")
	}
	if data.CanUndo {
		b.WriteString(fmt.Sprintf("\nundo available: %s [u]", data.UndoTitle))
	}
	return strings.TrimSpace(b.String())
}

func RenderNoteDetail(data NoteDetailData) string {
	if data.Title == "" {
		return "note:\n(no selection)"
	}
	return fmt.Sprintf("note: %s %s\n\n%s", Swatch(data.Color), data.Title, data.MarkdownView)
}

func RenderTasksPanel(data TasksPanelData) string {
	var b strings.Builder
	b.WriteString("tasks:\n")
	b.WriteString(fmt.Sprintf("filter: %s\n", data.Filter))
	b.WriteString("actions: [a]all [p]pending [f]finished [space]toggle [d]remove\n")
	if len(data.Items) == 0 {
		b.WriteString("(no tasks)\n")
	}
	for _, item := range data.Items {
		cursor := " "
		if item.ID == data.SelectedID {
			cursor = ">"
		}
		check := "[ ]"
		if item.Completed {
			check = "[x]"
		}
		b.WriteString(fmt.Sprintf("%s %s %s", cursor, check, item.Text))
		if item.Date != "" {
			b.WriteString(" @" + item.Date)
		}
		b.WriteString("\n")
		for _, step := range item.Steps {
			b.WriteString("      - " + step + "\n")
		}
	}
	if data.ConfirmID != "" {
		b.WriteString(fmt.Sprintf("\nremove %q? [y]es [n]o", data.ConfirmText))
	}
	return strings.TrimSpace(b.String())
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("notification: [%s] %s", strings.ToUpper(level), body)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\nglobal:\n%s view:\n%s\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}
