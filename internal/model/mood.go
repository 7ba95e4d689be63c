package model

import (
	"fmt"
	"time"
)

const (
	DayKeyLayout    = "2006-01-02"
	FallbackInsight = "Escolha um humor!"
)

// Moods lists the selectable emoji in display order (two rows of four).
var Moods = []string{"😁", "😂", "😍", "🤔", "🙄", "🤮", "😭", "🤬"}

var insights = map[string]string{
	"😁": "Mantenha essa energia positiva!",
	"😂": "A risada é o melhor remédio.",
	"😍": "Espalhe amor por onde passar!",
	"🤔": "Refletir é o primeiro passo para a mudança.",
	"🙄": "Não deixe que a negatividade te afete.",
	"🤮": "Às vezes, precisamos de um tempo para nós mesmos.",
	"😭": "Tudo bem chorar, é uma forma de liberar sentimentos.",
	"🤬": "A raiva é válida, mas cuide de como expressá-la.",
}

// Insight never fails: unknown tokens get FallbackInsight.
func Insight(humor string) string {
	if s, ok := insights[humor]; ok {
		return s
	}
	return FallbackInsight
}

func IsKnownMood(humor string) bool {
	_, ok := insights[humor]
	return ok
}

type MoodEntry struct {
	Date    string `json:"date"`
	Humor   string `json:"humor"`
	Insight string `json:"insight"`
}

// DayKey is the calendar-day identity of t in its own location.
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// Line renders the entry the way the history list shows it:
// "17/10/2026: 😁 - Mantenha essa energia positiva!".
func (e MoodEntry) Line() string {
	day := e.Date
	if t, err := time.Parse(DayKeyLayout, e.Date); err == nil {
		day = t.Format("02/01/2006")
	}
	return fmt.Sprintf("%s: %s - %s", day, e.Humor, e.Insight)
}
