package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/diario/internal/model"
	"github.com/sandeepkv93/diario/internal/views"
)

func (m Model) handleTasksKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "up", "k":
		if m.TasksView.Cursor > 0 {
			m.TasksView.Cursor--
		}
	case "down", "j":
		if m.TasksView.Cursor < len(m.visibleTasks())-1 {
			m.TasksView.Cursor++
		}
	case "a":
		m.setFilter(model.TaskFilterAll)
	case "p":
		m.setFilter(model.TaskFilterIncomplete)
	case "f":
		m.setFilter(model.TaskFilterCompleted)
	case " ":
		task, ok := m.currentTask()
		if !ok {
			return m
		}
		m.toggleTask(task.ID)
	case "d":
		task, ok := m.currentTask()
		if !ok {
			return m
		}
		m.TasksView.ConfirmID = task.ID
		m.Status = StatusBar{Text: fmt.Sprintf("remove %q? [y/n]", task.Text), IsError: false}
	}
	return m
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) Model {
	id := m.TasksView.ConfirmID
	m.TasksView.ConfirmID = ""
	switch msg.String() {
	case "y", "Y", "enter":
		task, _ := m.Session.Tasks.Get(id)
		m.Session.RemoveTask(id)
		m.Status = StatusBar{Text: fmt.Sprintf("task removed: %s", task.Text), IsError: false}
	default:
		m.Status = StatusBar{Text: "remove cancelled", IsError: false}
	}
	return m
}

func (m *Model) setFilter(f model.TaskFilter) {
	m.TasksView.Filter = f
	m.TasksView.Cursor = 0
	m.Status = StatusBar{Text: fmt.Sprintf("filter: %s", f), IsError: false}
}

func (m *Model) toggleTask(id string) {
	task, err := m.Session.Tasks.ToggleTask(id)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return
	}
	state := "pending"
	if task.Completed {
		state = "done"
	}
	m.Status = StatusBar{Text: fmt.Sprintf("task %s: %s", state, task.Text), IsError: false}
}

func (m Model) renderTasksView() string {
	tasks := m.visibleTasks()
	items := make([]views.TaskItemData, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, views.TaskItemData{
			ID:        t.ID,
			Text:      t.Text,
			Date:      t.Date,
			Completed: t.Completed,
			Steps:     t.Steps,
		})
	}
	data := views.TasksPanelData{
		Filter: string(m.TasksView.Filter),
		Items:  items,
	}
	if sel, ok := m.currentTask(); ok {
		data.SelectedID = sel.ID
	}
	if m.TasksView.ConfirmID != "" {
		data.ConfirmID = m.TasksView.ConfirmID
		if t, ok := m.Session.Tasks.Get(m.TasksView.ConfirmID); ok {
			data.ConfirmText = t.Text
		}
	}
	return views.RenderTasksPanel(data)
}
