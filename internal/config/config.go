// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"

	"github.com/javiermolinar/timetable/internal/course"
	"github.com/javiermolinar/timetable/internal/palette"
	"github.com/javiermolinar/timetable/internal/tui/theme"
)

// MaxWeekCount bounds the semester length.
const MaxWeekCount = 52

// Config holds the application configuration.
type Config struct {
	Semester SemesterConfig `toml:"semester"`
	Storage  StorageConfig  `toml:"storage"`
	UI       UIConfig       `toml:"ui"`
	Log      LogConfig      `toml:"log"`
}

// SemesterConfig holds the defaults used before a start date is stored.
type SemesterConfig struct {
	StartDate string `toml:"start_date"` // YYYY-MM-DD, empty means today
	WeekCount int    `toml:"week_count"`
	Palette   string `toml:"palette"` // "vivid", "pastel", "catppuccin"
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte", "light"
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // empty disables file logging
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Semester: SemesterConfig{
			WeekCount: course.DefaultWeekCount,
			Palette:   palette.Default,
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme: "frappe",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "timetable.db"
	}
	return filepath.Join(home, ".local", "share", "timetable", "timetable.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "timetable", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)
	cfg.Log.File = expandPath(cfg.Log.File)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("TIMETABLE_START_DATE"); v != "" {
		cfg.Semester.StartDate = v
	}
	if v := os.Getenv("TIMETABLE_WEEK_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing TIMETABLE_WEEK_COUNT: %w", err)
		}
		cfg.Semester.WeekCount = n
	}
	if v := os.Getenv("TIMETABLE_PALETTE"); v != "" {
		cfg.Semester.Palette = v
	}
	if v := os.Getenv("TIMETABLE_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("TIMETABLE_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("TIMETABLE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("TIMETABLE_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Semester.StartDate != "" {
		if _, err := time.Parse("2006-01-02", c.Semester.StartDate); err != nil {
			return fmt.Errorf("start_date must be in YYYY-MM-DD format, got %q", c.Semester.StartDate)
		}
	}
	if c.Semester.WeekCount < 1 || c.Semester.WeekCount > MaxWeekCount {
		return fmt.Errorf("week_count must be between 1 and %d, got %d", MaxWeekCount, c.Semester.WeekCount)
	}
	if !palette.IsAvailable(c.Semester.Palette) {
		return fmt.Errorf("unknown palette: %s", c.Semester.Palette)
	}
	if !theme.IsAvailable(c.UI.Theme) {
		return fmt.Errorf("unknown theme: %s", c.UI.Theme)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	return nil
}

// StartDate returns the configured start date in loc, and false when unset.
func (c *Config) StartDate(loc *time.Location) (time.Time, bool) {
	if c.Semester.StartDate == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation("2006-01-02", c.Semester.StartDate, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
