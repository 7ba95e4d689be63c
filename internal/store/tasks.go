package store

import (
	"fmt"

	"github.com/sandeepkv93/diario/internal/model"
)

type TaskSnapshot struct {
	Tasks  []model.Task `json:"tasks"`
	NextID int          `json:"next_id"`
}

type TaskStore struct {
	tasks     []model.Task
	nextID    int
	observers observers
}

func NewTaskStore() *TaskStore {
	return &TaskStore{nextID: 1}
}

func (s *TaskStore) OnChange(fn func()) {
	s.observers.add(fn)
}

// AddTask appends an incomplete task. Blank steps are dropped; more than
// model.MaxTaskSteps is a validation error.
func (s *TaskStore) AddTask(text, date string, steps ...string) (model.Task, error) {
	task := model.Task{
		ID:    fmt.Sprintf("task-%d", s.nextID),
		Text:  text,
		Date:  date,
		Steps: model.NormalizeSteps(steps),
	}
	if err := task.Validate(); err != nil {
		return model.Task{}, err
	}
	s.nextID++
	s.tasks = append(s.tasks, task)
	s.observers.notify()
	return task.Clone(), nil
}

// EditTask replaces text and date; completion is left alone.
func (s *TaskStore) EditTask(id, text, date string) (model.Task, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return model.Task{}, fmt.Errorf("%w: task %q", model.ErrNotFound, id)
	}
	edited := s.tasks[idx]
	edited.Text = text
	edited.Date = date
	if err := edited.Validate(); err != nil {
		return model.Task{}, err
	}
	s.tasks[idx] = edited
	s.observers.notify()
	return edited.Clone(), nil
}

func (s *TaskStore) ToggleTask(id string) (model.Task, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return model.Task{}, fmt.Errorf("%w: task %q", model.ErrNotFound, id)
	}
	s.tasks[idx].Completed = !s.tasks[idx].Completed
	s.observers.notify()
	return s.tasks[idx].Clone(), nil
}

// RemoveTask deletes the task if present. The caller is expected to have
// confirmed with the user already; unknown ids are ignored.
func (s *TaskStore) RemoveTask(id string) {
	idx := s.indexOf(id)
	if idx < 0 {
		return
	}
	s.tasks = append(s.tasks[:idx:idx], s.tasks[idx+1:]...)
	s.observers.notify()
}

// View selects tasks by filter and returns incomplete ones before completed
// ones, keeping insertion order inside each group.
func (s *TaskStore) View(filter model.TaskFilter) []model.Task {
	pending := make([]model.Task, 0, len(s.tasks))
	var done []model.Task
	for _, t := range s.tasks {
		if !filter.Includes(t) {
			continue
		}
		if t.Completed {
			done = append(done, t.Clone())
			continue
		}
		pending = append(pending, t.Clone())
	}
	return append(pending, done...)
}

func (s *TaskStore) Search(query string) []model.Task {
	out := make([]model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.Matches(query) {
			out = append(out, t.Clone())
		}
	}
	return out
}

func (s *TaskStore) Tasks() []model.Task {
	out := make([]model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, t.Clone())
	}
	return out
}

func (s *TaskStore) Get(id string) (model.Task, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return model.Task{}, false
	}
	return s.tasks[idx].Clone(), true
}

func (s *TaskStore) Len() int {
	return len(s.tasks)
}

func (s *TaskStore) Snapshot() TaskSnapshot {
	return TaskSnapshot{Tasks: s.Tasks(), NextID: s.nextID}
}

func (s *TaskStore) Restore(snap TaskSnapshot) error {
	ids := make([]string, 0, len(snap.Tasks))
	restored := make([]model.Task, 0, len(snap.Tasks))
	for _, t := range snap.Tasks {
		if err := t.Validate(); err != nil {
			return err
		}
		ids = append(ids, t.ID)
		restored = append(restored, t.Clone())
	}
	if err := checkUniqueIDs("task", ids); err != nil {
		return err
	}
	s.tasks = restored
	s.nextID = nextCounter("task", ids, snap.NextID)
	return nil
}

func (s *TaskStore) indexOf(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
