package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/timetable/internal/config"
	"github.com/javiermolinar/timetable/internal/palette"
	"github.com/javiermolinar/timetable/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	var edit bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Show the active configuration.

If no config file exists, creates one with default values.
With --edit, prompts for each value and saves the result.

Example:
  timetable config
  timetable config --edit`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			configPath := config.DefaultConfigPath()
			fmt.Fprintf(out, "Config file: %s\n\n", configPath)

			if _, err := os.Stat(configPath); os.IsNotExist(err) {
				fmt.Fprintln(out, "No config file found. Creating with default values...")
				if err := a.config.SaveTo(configPath); err != nil {
					return fmt.Errorf("saving config: %w", err)
				}
				fmt.Fprintf(out, "Created %s\n\n", configPath)
			}

			printConfig(out, a.config)
			if !edit {
				return nil
			}

			reader := bufio.NewReader(cmd.InOrStdin())
			if err := editConfig(reader, out, a.config); err != nil {
				return err
			}
			if err := a.config.SaveTo(configPath); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}
			fmt.Fprintln(out, "\nConfiguration saved!")
			return nil
		},
	}

	cmd.Flags().BoolVar(&edit, "edit", false, "Edit values interactively")
	return cmd
}

func printConfig(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Current configuration:")
	fmt.Fprintln(w, "──────────────────────")
	fmt.Fprintln(w, "[semester]")
	fmt.Fprintf(w, "  start_date = %s\n", valueOr(cfg.Semester.StartDate, "(today)"))
	fmt.Fprintf(w, "  week_count = %d\n", cfg.Semester.WeekCount)
	fmt.Fprintf(w, "  palette    = %s\n", cfg.Semester.Palette)
	fmt.Fprintln(w, "\n[storage]")
	fmt.Fprintf(w, "  db_path    = %s\n", cfg.Storage.DBPath)
	fmt.Fprintln(w, "\n[ui]")
	fmt.Fprintf(w, "  theme      = %s\n", cfg.UI.Theme)
	fmt.Fprintln(w, "\n[log]")
	fmt.Fprintf(w, "  level      = %s\n", cfg.Log.Level)
	fmt.Fprintf(w, "  file       = %s\n", valueOr(cfg.Log.File, "(disabled)"))
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// editConfig prompts for every field and validates the result.
func editConfig(reader *bufio.Reader, w io.Writer, cfg *config.Config) error {
	cfg.Semester.StartDate = promptValue(reader, w, "Semester start (YYYY-MM-DD, empty for today)", cfg.Semester.StartDate)
	weeks := promptValue(reader, w, "Weeks in semester", strconv.Itoa(cfg.Semester.WeekCount))
	n, err := strconv.Atoi(weeks)
	if err != nil {
		return fmt.Errorf("invalid week count %q", weeks)
	}
	cfg.Semester.WeekCount = n
	cfg.Semester.Palette = promptChoice(reader, w, "Palette", palette.Available(), cfg.Semester.Palette)
	cfg.Storage.DBPath = promptValue(reader, w, "Database path", cfg.Storage.DBPath)
	cfg.UI.Theme = promptChoice(reader, w, "UI theme", theme.Available(), cfg.UI.Theme)
	cfg.Log.Level = promptValue(reader, w, "Log level", cfg.Log.Level)
	cfg.Log.File = promptValue(reader, w, "Log file (empty to disable)", cfg.Log.File)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func promptValue(reader *bufio.Reader, w io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(w, "  %s: ", label)
	} else {
		fmt.Fprintf(w, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptChoice(reader *bufio.Reader, w io.Writer, label string, options []string, current string) string {
	joined := strings.Join(options, ", ")
	full := fmt.Sprintf("%s (%s)", label, joined)
	for range 3 {
		value := strings.ToLower(promptValue(reader, w, full, current))
		for _, opt := range options {
			if opt == value {
				return value
			}
		}
		fmt.Fprintf(w, "  Invalid value %q. Available: %s\n", value, joined)
	}
	return current
}
