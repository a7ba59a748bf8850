package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func (a *App) weekCmd() *cobra.Command {
	var (
		week    int
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show the timetable of one week",
		Long: `Display the sessions of a semester week on the slot grid.

Shows the current week unless --week is given. Stacked sessions are marked
with +N and listed under the grid.`,
		Example: `  timetable week
  timetable week --week 5 --no-color`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			store, err := a.loadStore(cmd.Context())
			if err != nil {
				return err
			}
			if err := selectWeek(store, week); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\n  %s\n", formatHeader(WeekHeading(store)))
			fmt.Fprintln(out, RenderWeekGrid(store, gridOptions{Width: termWidth(), Color: !color.NoColor}))

			if len(store.WeekSessions()) == 0 {
				fmt.Fprintln(out, formatMuted("  No sessions this week."))
				return nil
			}

			stacks := StackConflicts(store)
			if len(stacks) > 0 {
				fmt.Fprintf(out, "  %s\n", formatHeader("CONFLICTS"))
				fmt.Fprintln(out, strings.Repeat("─", 40))
				printConflicts(out, stacks)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&week, "week", 0, "Semester week to show (default: current)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

func (a *App) conflictsCmd() *cobra.Command {
	var week int

	cmd := &cobra.Command{
		Use:   "conflicts",
		Short: "List sessions sharing a slot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := a.loadStore(cmd.Context())
			if err != nil {
				return err
			}
			if err := selectWeek(store, week); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			stacks := StackConflicts(store)
			if len(stacks) == 0 {
				fmt.Fprintf(out, "No conflicts in week %d.\n", store.CurrentWeek()+1)
				return nil
			}
			fmt.Fprintf(out, "%s in week %d:\n", formatWarning(fmt.Sprintf("%d conflicts", len(stacks))), store.CurrentWeek()+1)
			printConflicts(out, stacks)
			return nil
		},
	}

	cmd.Flags().IntVar(&week, "week", 0, "Semester week to check (default: current)")
	return cmd
}
