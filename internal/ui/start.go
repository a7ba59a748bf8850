package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/timetable/internal/config"
	"github.com/javiermolinar/timetable/internal/dateutil"
)

func (a *App) startCmd() *cobra.Command {
	var weeks int

	cmd := &cobra.Command{
		Use:   "start [date]",
		Short: "Set the semester start date",
		Long: `Set the first day of the semester. Week 1 starts on that date.

The date can be YYYY-MM-DD, "today", or a weekday name for that day of the
current week.`,
		Example: `  timetable start 2025-09-01
  timetable start monday --weeks 18`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, persister, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}

			date, err := dateutil.ParseStartDate(args[0], a.now())
			if err != nil {
				return err
			}

			if weeks != 0 {
				if weeks < 1 || weeks > config.MaxWeekCount {
					return fmt.Errorf("weeks must be between 1 and %d, got %d", config.MaxWeekCount, weeks)
				}
				store.SetWeekCount(weeks)
			}
			store.SetStartDate(date)
			if err := persister.Err(); err != nil {
				return err
			}

			a.log.WithField("start", date.Format("2006-01-02")).Info("semester start set")
			fmt.Fprintf(cmd.OutOrStdout(), "Semester starts %s. Now in %s\n",
				date.Format("Mon Jan 2, 2006"), formatStats(WeekHeading(store)))
			return nil
		},
	}

	cmd.Flags().IntVar(&weeks, "weeks", 0, "Number of weeks in the semester")
	return cmd
}
