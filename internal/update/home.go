package update

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/diario/internal/model"
	"github.com/sandeepkv93/diario/internal/views"
)

func (m Model) handleHomeKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "left", "h":
		if m.Home.MoodCursor > 0 {
			m.Home.MoodCursor--
		}
	case "right", "l":
		if m.Home.MoodCursor < len(model.Moods)-1 {
			m.Home.MoodCursor++
		}
	case "enter":
		m.chooseMood(model.Moods[clamp(m.Home.MoodCursor, len(model.Moods))])
	case "r":
		m.Session.Reshuffle()
		m.Status = StatusBar{Text: "new challenges drawn", IsError: false}
	}
	return m
}

func (m *Model) chooseMood(humor string) {
	entry, err := m.Session.Moods.ChooseMood(humor)
	if errors.Is(err, model.ErrAlreadyDone) {
		m.Status = StatusBar{Text: "Você já escolheu seu humor hoje!", IsError: true}
		return
	}
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return
	}
	m.Status = StatusBar{Text: fmt.Sprintf("humor %s: %s", entry.Humor, entry.Insight), IsError: false}
}

func (m Model) renderHomeView() string {
	now := m.now()
	data := views.HomePanelData{
		Greeting:   model.Greeting(now),
		LongDate:   model.FormatLongDate(now),
		Moods:      model.Moods,
		MoodCursor: m.Home.MoodCursor,
	}
	if today, ok := m.Session.Moods.Today(); ok {
		data.TodayMood = today.Humor
		data.Insight = today.Insight
	}
	for _, e := range m.Session.Moods.History() {
		data.History = append(data.History, e.Line())
	}
	for _, c := range m.Session.Challenges() {
		data.Challenges = append(data.Challenges, views.ChallengeData{Icon: c.Icon, Text: c.Text})
	}
	data.PendingTask = len(m.Session.Tasks.View(model.TaskFilterIncomplete))
	if len(m.ReminderLog) > 0 {
		last := m.ReminderLog[len(m.ReminderLog)-1]
		data.LastAlert = last.Title + " " + last.Body
	}
	return views.RenderHomePanel(data)
}
