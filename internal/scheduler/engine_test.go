package scheduler

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestEngineEmitsInFireOrder(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	now := time.Now().UTC()
	if err := engine.Schedule(Notification{ID: "later", FireAt: now.Add(80 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule later: %v", err)
	}
	if err := engine.Schedule(Notification{ID: "sooner", FireAt: now.Add(20 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule sooner: %v", err)
	}

	first := waitNotification(t, engine.C(), time.Second)
	second := waitNotification(t, engine.C(), time.Second)
	if first.ID != "sooner" || second.ID != "later" {
		t.Fatalf("unexpected order: first=%s second=%s", first.ID, second.ID)
	}
}

func TestEngineNonBlockingDropsWhenConsumerIsSlow(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()
	defer engine.Stop()

	fireAt := time.Now().UTC().Add(20 * time.Millisecond)
	for i := 0; i < 25; i++ {
		if err := engine.Schedule(Notification{ID: fmt.Sprintf("n-%d", i), FireAt: fireAt}); err != nil {
			t.Fatalf("schedule notification: %v", err)
		}
	}

	time.Sleep(120 * time.Millisecond)
	if engine.Dropped() == 0 {
		t.Fatalf("expected dropped notifications > 0, got %d", engine.Dropped())
	}
}

func TestScheduleValidatesInput(t *testing.T) {
	engine := NewEngine(1)
	if err := engine.Schedule(Notification{ID: "bad"}); !errors.Is(err, ErrInvalidFireTime) {
		t.Fatalf("expected ErrInvalidFireTime, got %v", err)
	}
	if err := engine.Schedule(Notification{FireAt: time.Now()}); !errors.Is(err, ErrMissingID) {
		t.Fatalf("expected ErrMissingID, got %v", err)
	}
}

func TestScheduleAfterStopIsRejected(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()
	engine.Stop()
	if err := engine.Schedule(Notification{ID: "x", FireAt: time.Now()}); !errors.Is(err, ErrStopped) {
		t.Fatalf("expected ErrStopped, got %v", err)
	}
}

func TestScheduleSameIDReplacesPending(t *testing.T) {
	engine := NewEngine(4)
	now := time.Now().UTC()
	if err := engine.Schedule(Notification{ID: "reminder-task-1", Body: "old", FireAt: now.Add(time.Hour)}); err != nil {
		t.Fatalf("schedule first: %v", err)
	}
	if err := engine.Schedule(Notification{ID: "reminder-task-1", Body: "new", FireAt: now.Add(time.Minute)}); err != nil {
		t.Fatalf("schedule replacement: %v", err)
	}

	pending := engine.Pending()
	if len(pending) != 1 || pending[0].Body != "new" {
		t.Fatalf("expected single replaced notification, got %#v", pending)
	}
}

func TestCancelRemovesPending(t *testing.T) {
	engine := NewEngine(4)
	engine.Start()
	defer engine.Stop()

	now := time.Now().UTC()
	if err := engine.Schedule(Notification{ID: "keep", FireAt: now.Add(60 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule keep: %v", err)
	}
	if err := engine.Schedule(Notification{ID: "drop", FireAt: now.Add(20 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule drop: %v", err)
	}
	if !engine.Cancel("drop") {
		t.Fatal("expected cancel to report a pending notification")
	}
	if engine.Cancel("drop") {
		t.Fatal("expected second cancel to be a no-op")
	}

	got := waitNotification(t, engine.C(), time.Second)
	if got.ID != "keep" {
		t.Fatalf("expected keep, got %s", got.ID)
	}
}

func TestScheduleAfterStampsFireTime(t *testing.T) {
	engine := NewEngine(1)
	fixed := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	engine.now = func() time.Time { return fixed }

	n, err := engine.ScheduleAfter(Notification{ID: "r", Title: "Lembrete!"}, 10*time.Second)
	if err != nil {
		t.Fatalf("schedule after: %v", err)
	}
	if want := fixed.Add(10 * time.Second); !n.FireAt.Equal(want) {
		t.Fatalf("fire at = %v, want %v", n.FireAt, want)
	}

	n, err = engine.ScheduleAfter(Notification{ID: "r2"}, -time.Second)
	if err != nil {
		t.Fatalf("schedule after negative: %v", err)
	}
	if !n.FireAt.Equal(fixed) {
		t.Fatalf("negative delay should fire now, got %v", n.FireAt)
	}
}

func TestPendingIsOrderedByFireTime(t *testing.T) {
	engine := NewEngine(1)
	now := time.Now().UTC()
	for i, offset := range []time.Duration{3 * time.Hour, time.Hour, 2 * time.Hour} {
		if err := engine.Schedule(Notification{ID: fmt.Sprintf("n-%d", i), FireAt: now.Add(offset)}); err != nil {
			t.Fatalf("schedule: %v", err)
		}
	}
	pending := engine.Pending()
	if len(pending) != 3 || pending[0].ID != "n-1" || pending[1].ID != "n-2" || pending[2].ID != "n-0" {
		t.Fatalf("unexpected pending order: %#v", pending)
	}
}

func waitNotification(t *testing.T, ch <-chan Notification, timeout time.Duration) Notification {
	t.Helper()
	select {
	case n := <-ch:
		return n
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for notification")
		return Notification{}
	}
}
