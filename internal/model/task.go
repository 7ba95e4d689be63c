package model

import (
	"fmt"
	"strings"
)

const MaxTaskSteps = 5

type TaskFilter string

const (
	TaskFilterAll        TaskFilter = "all"
	TaskFilterCompleted  TaskFilter = "completed"
	TaskFilterIncomplete TaskFilter = "incomplete"
)

func (f TaskFilter) IsValid() bool {
	switch f {
	case TaskFilterAll, TaskFilterCompleted, TaskFilterIncomplete:
		return true
	default:
		return false
	}
}

// ParseTaskFilter accepts the filter names plus the short tab aliases used
// by the UI. Anything else is reported as invalid.
func ParseTaskFilter(raw string) (TaskFilter, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "all", "a", "todas":
		return TaskFilterAll, nil
	case "completed", "done", "finished", "f", "finalizadas":
		return TaskFilterCompleted, nil
	case "incomplete", "pending", "p", "pendentes":
		return TaskFilterIncomplete, nil
	default:
		return "", fmt.Errorf("%w: unknown task filter %q", ErrValidation, raw)
	}
}

func (f TaskFilter) Includes(t Task) bool {
	switch f {
	case TaskFilterCompleted:
		return t.Completed
	case TaskFilterIncomplete:
		return !t.Completed
	default:
		return true
	}
}

type Task struct {
	ID        string   `json:"id"`
	Text      string   `json:"task"`
	Date      string   `json:"date"`
	Completed bool     `json:"completed"`
	Steps     []string `json:"steps,omitempty"`
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("%w: task id is required", ErrValidation)
	}
	if strings.TrimSpace(t.Text) == "" {
		return fmt.Errorf("%w: task text is required", ErrValidation)
	}
	if len(t.Steps) > MaxTaskSteps {
		return fmt.Errorf("%w: at most %d steps per task, got %d", ErrValidation, MaxTaskSteps, len(t.Steps))
	}
	return nil
}

func (t Task) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(t.Text), q) {
		return true
	}
	for _, s := range t.Steps {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}

// Clone copies the step slice so callers cannot alias store state.
func (t Task) Clone() Task {
	if t.Steps != nil {
		t.Steps = append([]string(nil), t.Steps...)
	}
	return t
}

// NormalizeSteps trims steps and drops the blank ones.
func NormalizeSteps(steps []string) []string {
	out := make([]string, 0, len(steps))
	for _, s := range steps {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
