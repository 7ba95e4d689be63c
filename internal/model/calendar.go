package model

import (
	"fmt"
	"strings"
	"time"
)

var (
	weekdaysPT = [...]string{"domingo", "segunda-feira", "terça-feira", "quarta-feira", "quinta-feira", "sexta-feira", "sábado"}
	monthsPT   = [...]string{"janeiro", "fevereiro", "março", "abril", "maio", "junho", "julho", "agosto", "setembro", "outubro", "novembro", "dezembro"}
)

func Greeting(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12:
		return "BOM DIA!"
	case h < 18:
		return "BOA TARDE!"
	default:
		return "BOA NOITE!"
	}
}

// FormatLongDate renders t as a pt-BR long date with every word capitalized,
// e.g. "Sábado, 17 De Outubro De 2026".
func FormatLongDate(t time.Time) string {
	raw := fmt.Sprintf("%s, %d de %s de %d", weekdaysPT[t.Weekday()], t.Day(), monthsPT[t.Month()-1], t.Year())
	return capitalizeWords(raw)
}

func capitalizeWords(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		r := []rune(w)
		words[i] = strings.ToUpper(string(r[0])) + string(r[1:])
	}
	return strings.Join(words, " ")
}
