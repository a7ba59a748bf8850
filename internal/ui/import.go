package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/timetable/internal/importer"
)

func (a *App) importCmd() *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import sessions from a calendar or data file",
		Long: `Import sessions from an .ics calendar or a .json, .yaml or .toml file.

Calendar events are placed on the slot their start time falls in, and weekly
recurrences become semester weeks counted from the start date. Imported
sessions are added to the current list unless --replace is given.`,
		Example: `  timetable import ~/Downloads/autumn.ics
  timetable import timetable.yaml --replace`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolvePath(args[0])
			if err != nil {
				return err
			}
			info, err := os.Stat(path)
			if err != nil {
				if os.IsNotExist(err) {
					return fmt.Errorf("file does not exist: %s", path)
				}
				return fmt.Errorf("checking file: %w", err)
			}
			if info.IsDir() {
				return fmt.Errorf("path is a directory: %s", path)
			}

			store, persister, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}

			imported, err := importer.ParseFile(path, importer.Options{
				SemesterStart: store.StartDate(),
				WeekCount:     store.WeekCount(),
				Location:      time.Local,
			})
			if err != nil {
				return err
			}

			if replace {
				store.SetSessionList(imported)
			} else {
				store.SetSessionList(slices.Concat(store.Sessions(), imported))
			}
			if err := persister.Err(); err != nil {
				return err
			}

			a.log.WithField("file", path).WithField("count", len(imported)).Info("sessions imported")
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s from %s (%d total)\n",
				formatStats(fmt.Sprintf("%d sessions", len(imported))), path, store.Len())
			return nil
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "Replace the current sessions instead of adding")
	return cmd
}

func (a *App) exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Export sessions to a .json, .yaml or .toml file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolvePath(args[0])
			if err != nil {
				return err
			}
			store, err := a.loadStore(cmd.Context())
			if err != nil {
				return err
			}
			if err := importer.WriteFile(path, store.Sessions()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d sessions to %s\n", store.Len(), path)
			return nil
		},
	}
}

func resolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("empty path")
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	return absPath, nil
}
