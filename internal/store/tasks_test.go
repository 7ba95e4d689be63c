package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandeepkv93/diario/internal/model"
)

func seedTasks(t *testing.T, s *TaskStore, texts ...string) []model.Task {
	t.Helper()
	out := make([]model.Task, 0, len(texts))
	for _, text := range texts {
		task, err := s.AddTask(text, "2026-10-17")
		require.NoError(t, err)
		out = append(out, task)
	}
	return out
}

func ids(tasks []model.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestAddTaskStartsIncomplete(t *testing.T) {
	s := NewTaskStore()
	task, err := s.AddTask("Pagar contas", "2026-10-20", "luz", " ", "água")
	require.NoError(t, err)
	assert.False(t, task.Completed)
	assert.Equal(t, "2026-10-20", task.Date)
	assert.Equal(t, []string{"luz", "água"}, task.Steps)
	assert.Equal(t, 1, s.Len())
}

func TestAddTaskValidation(t *testing.T) {
	s := NewTaskStore()
	_, err := s.AddTask("", "2026-10-20")
	require.ErrorIs(t, err, model.ErrValidation)
	_, err = s.AddTask("muitos passos", "", "1", "2", "3", "4", "5", "6")
	require.ErrorIs(t, err, model.ErrValidation)
	assert.Equal(t, 0, s.Len())

	task, err := s.AddTask("ok", "")
	require.NoError(t, err)
	assert.Equal(t, "task-1", task.ID, "failed adds must not consume ids")
}

func TestEditTaskKeepsCompletion(t *testing.T) {
	s := NewTaskStore()
	task := seedTasks(t, s, "rascunho")[0]
	_, err := s.ToggleTask(task.ID)
	require.NoError(t, err)

	edited, err := s.EditTask(task.ID, "versão final", "2026-11-01")
	require.NoError(t, err)
	assert.Equal(t, "versão final", edited.Text)
	assert.Equal(t, "2026-11-01", edited.Date)
	assert.True(t, edited.Completed)
}

func TestEditAndToggleUnknownTask(t *testing.T) {
	s := NewTaskStore()
	_, err := s.EditTask("task-9", "x", "")
	assert.ErrorIs(t, err, model.ErrNotFound)
	_, err = s.ToggleTask("task-9")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestEditTaskRejectsEmptyText(t *testing.T) {
	s := NewTaskStore()
	task := seedTasks(t, s, "original")[0]
	_, err := s.EditTask(task.ID, "", "2026-10-18")
	require.ErrorIs(t, err, model.ErrValidation)
	got, ok := s.Get(task.ID)
	require.True(t, ok)
	assert.Equal(t, "original", got.Text)
	assert.Equal(t, "2026-10-17", got.Date)
}

func TestToggleFlipsBackAndForth(t *testing.T) {
	s := NewTaskStore()
	task := seedTasks(t, s, "a")[0]
	got, err := s.ToggleTask(task.ID)
	require.NoError(t, err)
	assert.True(t, got.Completed)
	got, err = s.ToggleTask(task.ID)
	require.NoError(t, err)
	assert.False(t, got.Completed)
}

func TestRemoveTaskIsIdempotent(t *testing.T) {
	s := NewTaskStore()
	tasks := seedTasks(t, s, "a", "b")
	s.RemoveTask(tasks[0].ID)
	s.RemoveTask(tasks[0].ID)
	s.RemoveTask("task-404")
	assert.Equal(t, []string{tasks[1].ID}, ids(s.Tasks()))
}

func TestViewPartitionsAreDisjointAndExhaustive(t *testing.T) {
	s := NewTaskStore()
	tasks := seedTasks(t, s, "a", "b", "c", "d", "e")
	_, _ = s.ToggleTask(tasks[1].ID)
	_, _ = s.ToggleTask(tasks[3].ID)

	all := s.View(model.TaskFilterAll)
	completed := s.View(model.TaskFilterCompleted)
	incomplete := s.View(model.TaskFilterIncomplete)

	assert.Len(t, all, len(completed)+len(incomplete))
	seen := map[string]int{}
	for _, task := range completed {
		assert.True(t, task.Completed)
		seen[task.ID]++
	}
	for _, task := range incomplete {
		assert.False(t, task.Completed)
		seen[task.ID]++
	}
	for _, task := range all {
		assert.Equal(t, 1, seen[task.ID], "task %s must appear in exactly one partition", task.ID)
	}
}

func TestViewIsStablePartition(t *testing.T) {
	s := NewTaskStore()
	tasks := seedTasks(t, s, "a", "b", "c", "d", "e")
	_, _ = s.ToggleTask(tasks[0].ID)
	_, _ = s.ToggleTask(tasks[2].ID)

	got := ids(s.View(model.TaskFilterAll))
	want := []string{tasks[1].ID, tasks[3].ID, tasks[4].ID, tasks[0].ID, tasks[2].ID}
	assert.Equal(t, want, got)

	assert.Equal(t, []string{tasks[0].ID, tasks[2].ID}, ids(s.View(model.TaskFilterCompleted)))
	assert.Equal(t, []string{tasks[1].ID, tasks[3].ID, tasks[4].ID}, ids(s.View(model.TaskFilterIncomplete)))
}

func TestViewUnknownFilterActsAsAll(t *testing.T) {
	s := NewTaskStore()
	seedTasks(t, s, "a", "b")
	assert.Len(t, s.View(model.TaskFilter("whatever")), 2)
}

func TestViewReturnsCopies(t *testing.T) {
	s := NewTaskStore()
	_, err := s.AddTask("com passos", "", "um")
	require.NoError(t, err)
	view := s.View(model.TaskFilterAll)
	view[0].Steps[0] = "mutated"
	view[0].Completed = true
	got := s.Tasks()[0]
	assert.Equal(t, "um", got.Steps[0])
	assert.False(t, got.Completed)
}

func TestTaskSearch(t *testing.T) {
	s := NewTaskStore()
	_, _ = s.AddTask("Ligar para o banco", "")
	_, _ = s.AddTask("Mudança", "", "Encaixotar livros")
	_, _ = s.AddTask("Academia", "")

	assert.Len(t, s.Search("BANCO"), 1)
	assert.Len(t, s.Search("livros"), 1)
	assert.Len(t, s.Search(""), 3)
}

func TestTaskSnapshotRestore(t *testing.T) {
	s := NewTaskStore()
	tasks := seedTasks(t, s, "a", "b")
	_, _ = s.ToggleTask(tasks[1].ID)

	restored := NewTaskStore()
	require.NoError(t, restored.Restore(s.Snapshot()))
	assert.Equal(t, s.Tasks(), restored.Tasks())

	next, err := restored.AddTask("c", "")
	require.NoError(t, err)
	assert.Equal(t, "task-3", next.ID)
}

func TestTaskObservers(t *testing.T) {
	s := NewTaskStore()
	calls := 0
	s.OnChange(func() { calls++ })
	task := seedTasks(t, s, "a")[0]
	_, _ = s.EditTask(task.ID, "b", "")
	_, _ = s.ToggleTask(task.ID)
	_, _ = s.ToggleTask("missing")
	s.RemoveTask("missing")
	s.RemoveTask(task.ID)
	_ = s.View(model.TaskFilterAll)
	assert.Equal(t, 4, calls)
}
