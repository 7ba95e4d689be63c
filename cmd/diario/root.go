package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/diario/internal/config"
	"github.com/sandeepkv93/diario/internal/scheduler"
	"github.com/sandeepkv93/diario/internal/session"
	"github.com/sandeepkv93/diario/internal/storage"
)

var (
	configPath string
	dbPath     string
	darkMode   bool
	logLevel   string
	logFile    string

	cfg     config.Config
	logger  *slog.Logger
	logSink io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "diario",
	Short: "A personal journal for notes, tasks and daily mood",
	Long: `diario keeps notes, tasks and a one-per-day mood journal in a local
SQLite file. Run without a subcommand to open the terminal UI.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cfg = loaded
		// The TUI owns the terminal, so it only logs to a file.
		return setupLogger(cmd == cmd.Root())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logSink != nil {
			_ = logSink.Close()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUI(cmd.Context())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default ~/.diario/config.toml)")
	flags.StringVar(&dbPath, "db", "", "SQLite database path")
	flags.BoolVar(&darkMode, "dark", false, "start in dark mode")
	flags.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&logFile, "log-file", "", "append logs to this file")
}

// loadConfig layers defaults, the TOML file, DIARIO_* variables and flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Config{}, err
		}
		path = p
	}
	c, err := config.LoadOrCreate(path)
	if err != nil {
		return config.Config{}, err
	}
	c = config.FromEnv(c)

	flags := cmd.Flags()
	if flags.Changed("db") {
		c.DBPath = dbPath
	}
	if flags.Changed("dark") {
		c.DarkMode = darkMode
	}
	if flags.Changed("log-level") {
		c.LogLevel = logLevel
	}
	return c, nil
}

func setupLogger(quiet bool) error {
	var out io.Writer = os.Stderr
	switch {
	case logFile != "":
		if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
			return fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		out = f
		logSink = f
	case quiet:
		out = io.Discard
	}
	logger = slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)
	return nil
}

// journal is a session restored from the configured database.
type journal struct {
	*session.Session
	repo *storage.SQLiteRepository
}

func openJournal(ctx context.Context, extra ...session.Option) (*journal, error) {
	path, err := cfg.ResolvedDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve db path: %w", err)
	}
	repo, err := storage.OpenSQLite(path, storage.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	opts := []session.Option{
		session.WithLogger(logger),
		session.WithChallenges(cfg.ChallengeSeed, cfg.ChallengeCount),
		session.WithReminderDelay(cfg.ReminderDelay()),
		session.WithDarkMode(cfg.DarkMode),
	}
	sess, err := session.Open(ctx, repo, append(opts, extra...)...)
	if err != nil {
		_ = repo.Close()
		return nil, err
	}
	return &journal{Session: sess, repo: repo}, nil
}

// Close flushes the session and closes the database.
func (j *journal) Close() error {
	flushErr := j.Flush(context.Background())
	return errors.Join(flushErr, j.LastSaveError(), j.repo.Close())
}

func newEngine() *scheduler.Engine {
	if !cfg.ReminderEnabled {
		return nil
	}
	return scheduler.NewEngine(cfg.SchedulerBuffer)
}
