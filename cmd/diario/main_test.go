package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sandeepkv93/diario/internal/model"
)

func runCLI(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	base := []string{
		"--config", filepath.Join(dir, "config.toml"),
		"--db", filepath.Join(dir, "diario.db"),
	}
	rootCmd.SetArgs(append(args, base...))
	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores every flag of the tree to its default, since the
// package-level flag variables outlive a single Execute.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func TestNoteLifecycleThroughCLI(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, dir, "note", "add", "Mercado", "leite", "e", "pão")
	if err != nil {
		t.Fatalf("note add: %v", err)
	}
	if !strings.Contains(out, "added note-") {
		t.Fatalf("unexpected add output: %q", out)
	}

	out, err = runCLI(t, dir, "note", "list")
	if err != nil {
		t.Fatalf("note list: %v", err)
	}
	if !strings.Contains(out, "Mercado") || !strings.Contains(out, "leite e pão") {
		t.Fatalf("expected persisted note in list: %q", out)
	}

	out, err = runCLI(t, dir, "note", "search", "PÃO")
	if err != nil {
		t.Fatalf("note search: %v", err)
	}
	if !strings.Contains(out, "1 entry") {
		t.Fatalf("expected one match: %q", out)
	}

	if _, err := runCLI(t, dir, "note", "rm", "note-404"); err == nil {
		t.Fatal("expected error removing unknown note")
	}
}

func TestMoodSetTwiceFails(t *testing.T) {
	dir := t.TempDir()

	if _, err := runCLI(t, dir, "mood", "set", "😁"); err != nil {
		t.Fatalf("first mood: %v", err)
	}
	if _, err := runCLI(t, dir, "mood", "set", "😭"); err == nil {
		t.Fatal("expected second mood of the day to fail")
	}

	out, err := runCLI(t, dir, "mood", "history")
	if err != nil {
		t.Fatalf("mood history: %v", err)
	}
	if !strings.Contains(out, "😁 - Mantenha essa energia positiva!") || strings.Contains(out, "😭") {
		t.Fatalf("unexpected history: %q", out)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "diario version dev") {
		t.Fatalf("unexpected version output: %q", out)
	}
}

func TestTaskLifecycleThroughCLI(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, dir, "task", "add", "Pagar", "contas", "--date", "2026-10-20", "--step", "luz", "--step", "água")
	if err != nil {
		t.Fatalf("task add: %v", err)
	}
	if !strings.Contains(out, "added task-1: Pagar contas") {
		t.Fatalf("unexpected add output: %q", out)
	}
	if out, err = runCLI(t, dir, "task", "add", "Ler"); err != nil {
		t.Fatalf("second task add: %v", err)
	}
	if !strings.Contains(out, "added task-2: Ler") {
		t.Fatalf("unexpected add output: %q", out)
	}

	out, err = runCLI(t, dir, "task", "done", "task-1")
	if err != nil {
		t.Fatalf("task done: %v", err)
	}
	if !strings.Contains(out, "task-1 is done") {
		t.Fatalf("unexpected done output: %q", out)
	}

	out, err = runCLI(t, dir, "task", "list")
	if err != nil {
		t.Fatalf("task list: %v", err)
	}
	if strings.Index(out, "Ler") > strings.Index(out, "Pagar contas") {
		t.Fatalf("expected pending task listed first: %q", out)
	}
	// Flags from the first add must not leak into the second.
	if strings.Count(out, "2026-10-20") != 1 || strings.Count(out, "luz") != 1 {
		t.Fatalf("expected date and steps only on task-1: %q", out)
	}

	out, err = runCLI(t, dir, "task", "list", "--filter", "finished")
	if err != nil {
		t.Fatalf("task list finished: %v", err)
	}
	if !strings.Contains(out, "Tarefas - 1 entry") || !strings.Contains(out, "- água") || strings.Contains(out, "Ler") {
		t.Fatalf("unexpected finished list: %q", out)
	}

	if _, err := runCLI(t, dir, "task", "list", "--filter", "someday"); err == nil {
		t.Fatal("expected error for unknown filter")
	}
	if _, err := runCLI(t, dir, "task", "rm", "task-99"); err == nil {
		t.Fatal("expected error removing unknown task")
	}
	if _, err := runCLI(t, dir, "task", "rm", "task-2"); err != nil {
		t.Fatalf("task rm: %v", err)
	}
	out, err = runCLI(t, dir, "task", "list")
	if err != nil {
		t.Fatalf("task list after rm: %v", err)
	}
	if !strings.Contains(out, "Tarefas - 1 entry") {
		t.Fatalf("expected one task left: %q", out)
	}
}

func TestChallengesClampsToCatalog(t *testing.T) {
	dir := t.TempDir()
	catalog := model.DefaultCatalog()

	out, err := runCLI(t, dir, "challenges", "-n", "50")
	if err != nil {
		t.Fatalf("challenges: %v", err)
	}
	rows := strings.Split(strings.TrimSpace(out), "\n")[1:]
	if len(rows) != len(catalog) {
		t.Fatalf("expected %d rows, got %d: %q", len(catalog), len(rows), out)
	}
	for _, c := range catalog {
		if !strings.Contains(out, c.Text) {
			t.Fatalf("missing challenge %q in %q", c.Text, out)
		}
	}

	out, err = runCLI(t, dir, "challenges", "-n", "2")
	if err != nil {
		t.Fatalf("challenges: %v", err)
	}
	if rows := strings.Split(strings.TrimSpace(out), "\n")[1:]; len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d: %q", len(rows), out)
	}
}

func TestMoodSetWarnsOnUnknownEmoji(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "mood", "set", "🐸")
	if err != nil {
		t.Fatalf("mood set: %v", err)
	}
	if !strings.Contains(out, "warning:") || !strings.Contains(out, model.FallbackInsight) {
		t.Fatalf("expected warning and fallback insight: %q", out)
	}
}
