package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/diario/internal/scheduler"
)

const reminderLogSize = 20

func (m *Model) applyReminder(n scheduler.Notification) {
	m.ReminderLog = append(m.ReminderLog, n)
	if len(m.ReminderLog) > reminderLogSize {
		m.ReminderLog = m.ReminderLog[len(m.ReminderLog)-reminderLogSize:]
	}
	m.Status = StatusBar{Text: n.Title + " " + n.Body, IsError: false}
	m.notify(n.Title, n.Body, "info")
}

func waitForReminderCmd(ch <-chan scheduler.Notification) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		n, ok := <-ch
		if !ok {
			return nil
		}
		return ReminderDueMsg{Notification: n}
	}
}
