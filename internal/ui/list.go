package ui

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *App) listCmd() *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all sessions",
		Long: `List every session of the semester in weekday and slot order.

With --title, only sessions whose title contains the text are shown.`,
		Example: `  timetable list
  timetable list --title algebra`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := a.loadStore(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			filter := strings.ToLower(strings.TrimSpace(title))
			shown := 0
			for _, s := range store.Sessions() {
				if filter != "" && !strings.Contains(strings.ToLower(s.Title), filter) {
					continue
				}
				fmt.Fprintf(out, "  %s\n", SessionLine(s))
				shown++
			}

			if shown == 0 {
				fmt.Fprintln(out, "No sessions found.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Only show titles containing this text")
	return cmd
}
