package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultDir            = "~/.diario"
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "diario.db"

	envPrefix = "DIARIO_"
)

type Config struct {
	DBPath               string `toml:"db_path"`
	DarkMode             bool   `toml:"dark_mode"`
	ReminderEnabled      bool   `toml:"reminder_enabled"`
	ReminderDelaySeconds int    `toml:"reminder_delay_seconds"`
	DesktopNotifications bool   `toml:"desktop_notifications"`
	ChallengeCount       int    `toml:"challenge_count"`
	ChallengeSeed        uint64 `toml:"challenge_seed"`
	SchedulerBuffer      int    `toml:"scheduler_buffer"`
	LogLevel             string `toml:"log_level"`
}

func Default() Config {
	return Config{
		DBPath:               filepath.Join(DefaultDir, DefaultDBName),
		DarkMode:             false,
		ReminderEnabled:      true,
		ReminderDelaySeconds: 10,
		DesktopNotifications: false,
		ChallengeCount:       3,
		ChallengeSeed:        0,
		SchedulerBuffer:      64,
		LogLevel:             "info",
	}
}

// DefaultPath is ~/.diario/config.toml, expanded.
func DefaultPath() (string, error) {
	return homedir.Expand(filepath.Join(DefaultDir, DefaultConfigFileName))
}

// LoadOrCreate reads the TOML file at path. A missing file is created with
// the defaults. Values left out of the file keep their defaults.
func LoadOrCreate(path string) (Config, error) {
	cfg := Default()
	expanded, err := homedir.Expand(path)
	if err != nil {
		return cfg, fmt.Errorf("expand config path: %w", err)
	}

	if _, err := os.Stat(expanded); errors.Is(err, os.ErrNotExist) {
		if err := write(expanded, cfg); err != nil {
			return cfg, err
		}
		return cfg.normalized(), nil
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", expanded, err)
	}
	return cfg.normalized(), nil
}

// FromEnv applies DIARIO_* overrides on top of base.
func FromEnv(base Config) Config {
	cfg := base
	if v, ok := getEnvString("DB_PATH"); ok {
		cfg.DBPath = v
	}
	if v, ok := getEnvBool("DARK_MODE"); ok {
		cfg.DarkMode = v
	}
	if v, ok := getEnvBool("REMINDER_ENABLED"); ok {
		cfg.ReminderEnabled = v
	}
	if v, ok := getEnvInt("REMINDER_DELAY_SECONDS"); ok && v >= 0 {
		cfg.ReminderDelaySeconds = v
	}
	if v, ok := getEnvBool("DESKTOP_NOTIFICATIONS"); ok {
		cfg.DesktopNotifications = v
	}
	if v, ok := getEnvInt("CHALLENGE_COUNT"); ok && v > 0 {
		cfg.ChallengeCount = v
	}
	if v, ok := getEnvString("CHALLENGE_SEED"); ok {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.ChallengeSeed = seed
		}
	}
	if v, ok := getEnvInt("SCHEDULER_BUFFER"); ok && v > 0 {
		cfg.SchedulerBuffer = v
	}
	if v, ok := getEnvString("LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	return cfg.normalized()
}

func (c Config) ReminderDelay() time.Duration {
	return time.Duration(c.ReminderDelaySeconds) * time.Second
}

// ResolvedDBPath expands a leading ~ in DBPath.
func (c Config) ResolvedDBPath() (string, error) {
	return homedir.Expand(c.DBPath)
}

// SlogLevel maps LogLevel onto slog; unknown names mean info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c Config) normalized() Config {
	def := Default()
	if strings.TrimSpace(c.DBPath) == "" {
		c.DBPath = def.DBPath
	}
	if c.ReminderDelaySeconds < 0 {
		c.ReminderDelaySeconds = def.ReminderDelaySeconds
	}
	if c.ChallengeCount <= 0 {
		c.ChallengeCount = def.ChallengeCount
	}
	if c.SchedulerBuffer <= 0 {
		c.SchedulerBuffer = def.SchedulerBuffer
	}
	if strings.TrimSpace(c.LogLevel) == "" {
		c.LogLevel = def.LogLevel
	}
	return c
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(envPrefix + name))
	return raw, raw != ""
}

func getEnvInt(name string) (int, bool) {
	raw, ok := getEnvString(name)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw, ok := getEnvString(name)
	if !ok {
		return false, false
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
