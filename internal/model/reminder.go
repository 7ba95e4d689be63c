package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidReminderKind = errors.New("model: invalid reminder kind")

type ReminderKind string

const (
	ReminderKindTasks ReminderKind = "Tasks"
)

func (k ReminderKind) IsValid() bool {
	switch k {
	case ReminderKindTasks:
		return true
	default:
		return false
	}
}

const (
	TaskReminderTitle = "Lembrete!"
	TaskReminderBody  = "Não se esqueça de completar suas tarefas de hoje!"
)

type Reminder struct {
	ID     string
	TaskID string
	Kind   ReminderKind
	Title  string
	Body   string
	FireAt time.Time
}

func (r Reminder) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return errors.New("model: reminder id is required")
	}
	if strings.TrimSpace(r.Body) == "" {
		return errors.New("model: reminder body is required")
	}
	if r.FireAt.IsZero() {
		return errors.New("model: reminder fire_at is required")
	}
	if !r.Kind.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidReminderKind, r.Kind)
	}
	return nil
}

// TaskReminder builds the "complete your tasks" alert for a freshly added task.
func TaskReminder(taskID string, fireAt time.Time) Reminder {
	return Reminder{
		ID:     "reminder-" + taskID,
		TaskID: taskID,
		Kind:   ReminderKindTasks,
		Title:  TaskReminderTitle,
		Body:   TaskReminderBody,
		FireAt: fireAt,
	}
}
