package model

import (
	"errors"
	"testing"
	"time"
)

func TestReminderValidateSuccess(t *testing.T) {
	rem := TaskReminder("task-1", time.Date(2026, 2, 9, 13, 0, 0, 0, time.UTC))
	if err := rem.Validate(); err != nil {
		t.Fatalf("expected valid reminder, got error: %v", err)
	}
	if rem.ID != "reminder-task-1" || rem.Title != TaskReminderTitle {
		t.Fatalf("unexpected reminder: %#v", rem)
	}
}

func TestReminderValidateInvalidKind(t *testing.T) {
	rem := TaskReminder("task-1", time.Date(2026, 2, 9, 13, 0, 0, 0, time.UTC))
	rem.Kind = ReminderKind("invalid")
	err := rem.Validate()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, ErrInvalidReminderKind) {
		t.Fatalf("expected ErrInvalidReminderKind, got: %v", err)
	}
}

func TestReminderValidateRequiresFireAt(t *testing.T) {
	rem := TaskReminder("task-1", time.Time{})
	if err := rem.Validate(); err == nil || err.Error() != "model: reminder fire_at is required" {
		t.Fatalf("unexpected error: %v", err)
	}
}
