// Package printers renders journal state for the command line.
package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/sandeepkv93/diario/internal/model"
)

type PrettyPrint struct {
	Out    io.Writer
	ShowID bool
}

// New prints to out, or to color.Output when out is nil.
func New(out io.Writer, showID bool) *PrettyPrint {
	if out == nil {
		out = color.Output
	}
	return &PrettyPrint{Out: out, ShowID: showID}
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.Out, title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.Out, title)
	_, _ = c.Fprintf(pp.Out, " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.Out, " entry")
	default:
		_, _ = c.Fprintln(pp.Out, " entries")
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprint(pp.Out, " none\n\n")
}

func (pp *PrettyPrint) Notes(notes []model.Note) {
	pp.TitleWithCount("Notas", len(notes))
	if len(notes) == 0 {
		pp.none()
		return
	}

	y := color.New(color.FgHiYellow, color.Faint)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 48
	tbl.Wrap = true
	for _, n := range notes {
		row := []interface{}{color.New(color.Bold).Sprint(n.Title), oneLine(n.Content)}
		if pp.ShowID {
			row = append([]interface{}{y.Sprint(n.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.Out, tbl)
	_, _ = fmt.Fprintln(pp.Out, "")
}

func (pp *PrettyPrint) Tasks(tasks []model.Task) {
	pp.TitleWithCount("Tarefas", len(tasks))
	if len(tasks) == 0 {
		pp.none()
		return
	}

	y := color.New(color.FgHiYellow, color.Faint)
	done := color.New(color.Faint, color.CrossedOut)
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, t := range tasks {
		box, text := "[ ]", t.Text
		if t.Completed {
			box, text = "[x]", done.Sprint(t.Text)
		}
		row := []interface{}{box, text, t.Date}
		if pp.ShowID {
			row = append([]interface{}{y.Sprint(t.ID)}, row...)
		}
		tbl.AddRow(row...)
		for _, step := range t.Steps {
			sub := []interface{}{"", "  - " + step, ""}
			if pp.ShowID {
				sub = append([]interface{}{""}, sub...)
			}
			tbl.AddRow(sub...)
		}
	}
	_, _ = fmt.Fprintln(pp.Out, tbl)
	_, _ = fmt.Fprintln(pp.Out, "")
}

// Moods prints history oldest first, one dated line per entry.
func (pp *PrettyPrint) Moods(entries []model.MoodEntry) {
	pp.TitleWithCount("Histórico de humor", len(entries))
	if len(entries) == 0 {
		pp.none()
		return
	}
	for _, e := range entries {
		_, _ = fmt.Fprintln(pp.Out, e.Line())
	}
	_, _ = fmt.Fprintln(pp.Out, "")
}

func (pp *PrettyPrint) Challenges(challenges []model.Challenge) {
	pp.Title("Desafios")
	if len(challenges) == 0 {
		pp.none()
		return
	}
	tbl := uitable.New()
	tbl.Separator = " "
	for _, c := range challenges {
		tbl.AddRow(c.Icon, c.Text)
	}
	_, _ = fmt.Fprintln(pp.Out, tbl)
	_, _ = fmt.Fprintln(pp.Out, "")
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
