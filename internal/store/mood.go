package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/sandeepkv93/diario/internal/model"
)

type MoodSnapshot struct {
	Entries []model.MoodEntry `json:"entries"`
}

type MoodOption func(*MoodJournal)

// WithClock replaces time.Now. The day key is taken from the returned
// time's own location, so pass local times for local calendar days.
func WithClock(now func() time.Time) MoodOption {
	return func(j *MoodJournal) {
		if now != nil {
			j.now = now
		}
	}
}

// MoodJournal allows one mood per calendar day and keeps an append-only
// history of the choices.
type MoodJournal struct {
	entries   []model.MoodEntry
	now       func() time.Time
	observers observers
}

func NewMoodJournal(opts ...MoodOption) *MoodJournal {
	j := &MoodJournal{now: time.Now}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

func (j *MoodJournal) OnChange(fn func()) {
	j.observers.add(fn)
}

// ChooseMood records humor for today. A second choice on the same day
// returns model.ErrAlreadyDone and leaves the journal untouched.
func (j *MoodJournal) ChooseMood(humor string) (model.MoodEntry, error) {
	if strings.TrimSpace(humor) == "" {
		return model.MoodEntry{}, fmt.Errorf("%w: mood is required", model.ErrValidation)
	}
	today := model.DayKey(j.now())
	if _, ok := j.entryFor(today); ok {
		return model.MoodEntry{}, fmt.Errorf("%w: %s", model.ErrAlreadyDone, today)
	}
	entry := model.MoodEntry{
		Date:    today,
		Humor:   humor,
		Insight: model.Insight(humor),
	}
	j.entries = append(j.entries, entry)
	j.observers.notify()
	return entry, nil
}

// Today returns the entry chosen for the current calendar day, if any.
func (j *MoodJournal) Today() (model.MoodEntry, bool) {
	return j.entryFor(model.DayKey(j.now()))
}

func (j *MoodJournal) History() []model.MoodEntry {
	return append([]model.MoodEntry(nil), j.entries...)
}

func (j *MoodJournal) Len() int {
	return len(j.entries)
}

func (j *MoodJournal) Snapshot() MoodSnapshot {
	return MoodSnapshot{Entries: j.History()}
}

func (j *MoodJournal) Restore(snap MoodSnapshot) error {
	days := make([]string, 0, len(snap.Entries))
	for _, e := range snap.Entries {
		if strings.TrimSpace(e.Date) == "" || strings.TrimSpace(e.Humor) == "" {
			return fmt.Errorf("%w: mood entry needs date and humor", model.ErrValidation)
		}
		days = append(days, e.Date)
	}
	if err := checkUniqueIDs("mood day", days); err != nil {
		return err
	}
	j.entries = append([]model.MoodEntry(nil), snap.Entries...)
	return nil
}

func (j *MoodJournal) entryFor(day string) (model.MoodEntry, bool) {
	for _, e := range j.entries {
		if e.Date == day {
			return e, true
		}
	}
	return model.MoodEntry{}, false
}
