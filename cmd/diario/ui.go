package main

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/diario/internal/session"
	"github.com/sandeepkv93/diario/internal/update"
)

func runUI(ctx context.Context) (err error) {
	engine := newEngine()
	var extra []session.Option
	if engine != nil {
		extra = append(extra, session.WithScheduler(engine))
	}

	j, err := openJournal(ctx, extra...)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, j.Close())
	}()

	if engine != nil {
		engine.Start()
		defer engine.Stop()
	}

	var notifier update.DesktopNotifier = update.NoopDesktopNotifier{}
	if cfg.DesktopNotifications {
		notifier = update.ExecDesktopNotifier{}
	}

	program := tea.NewProgram(
		update.NewModelWithConfig(j.Session, engine, notifier, cfg, logger),
		tea.WithContext(ctx),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("diario failed: %w", err)
	}
	if engine != nil && engine.Dropped() > 0 {
		logger.Warn("reminders dropped", "count", engine.Dropped())
	}
	return nil
}
