// Package ui implements the timetable command line.
package ui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/timetable/internal/config"
	"github.com/javiermolinar/timetable/internal/course"
	"github.com/javiermolinar/timetable/internal/db"
	"github.com/javiermolinar/timetable/internal/logging"
	"github.com/javiermolinar/timetable/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo   course.Repository
	config *config.Config
	root   *cobra.Command
	debug  bool // Enable debug logging

	logger   *logrus.Logger
	log      *logrus.Entry
	closeLog func() error
	now      func() time.Time
}

// NewApp creates a new CLI application with the given repository and config.
// A nil repository is opened lazily from the configured database path.
func NewApp(repo course.Repository, cfg *config.Config) *App {
	a := &App{repo: repo, config: cfg, now: time.Now, log: logging.For(nil, "cli")}

	a.root = &cobra.Command{
		Use:   "timetable",
		Short: "A terminal course timetable",
		Long: `Timetable keeps a semester of weekly course sessions.

It places sessions on a numbered daily slot grid, shows which week of the
semester you are in, and points out sessions that share a slot.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setupLogging()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, persister, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			if err := tui.Run(store, a.config, logging.For(a.logger, "tui")); err != nil {
				return err
			}
			return persister.Err()
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to "+logging.DebugLogPath+")")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.startCmd())
	a.root.AddCommand(a.importCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.weekCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.conflictsCmd())
	a.root.AddCommand(a.deleteCmd())
	a.root.AddCommand(a.topCmd())
	a.root.AddCommand(a.paletteCmd())
	a.root.AddCommand(a.exportCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "timetable %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the repository and the log file.
func (a *App) Close() error {
	var errs []error
	if a.repo != nil {
		errs = append(errs, a.repo.Close())
	}
	if a.closeLog != nil {
		errs = append(errs, a.closeLog())
	}
	return errors.Join(errs...)
}

func (a *App) setupLogging() error {
	if a.logger != nil {
		return nil
	}
	logger, closeLog, err := logging.Setup(a.config.Log, a.debug)
	if err != nil {
		return err
	}
	a.logger = logger
	a.closeLog = closeLog
	a.log = logging.For(logger, "cli")
	return nil
}

func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}
	repo, err := openRepo(a.config.Storage.DBPath)
	if err != nil {
		return err
	}
	a.repo = repo
	return nil
}

func openRepo(dbPath string) (*db.SQLite, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	repo, err := db.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}
	return repo, nil
}
