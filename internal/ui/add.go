package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/timetable/internal/course"
	"github.com/javiermolinar/timetable/internal/dateutil"
	"github.com/javiermolinar/timetable/internal/importer"
)

func (a *App) addCmd() *cobra.Command {
	var (
		title    string
		location string
		weekday  string
		start    int
		duration int
		weeks    string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a session",
		Long: `Add a weekly session to the timetable.

Example:
  timetable add --title "Linear Algebra" --location "B204" --weekday tue --start 3 --duration 2 --weeks 1-16`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			day, err := dateutil.ParseWeekday(weekday)
			if err != nil {
				return err
			}
			weekList, err := importer.ParseWeeks(weeks)
			if err != nil {
				return err
			}
			s, err := course.New(title, location, day, start, duration, weekList)
			if err != nil {
				return err
			}
			if s.EndSlot() > course.SlotCount() {
				return fmt.Errorf("session ends after slot %d", course.SlotCount())
			}

			store, persister, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			store.AddSession(s)
			if err := persister.Err(); err != nil {
				return err
			}

			a.log.WithField("title", s.Title).Info("session added")
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", SessionLine(s))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Course title (required)")
	cmd.Flags().StringVar(&location, "location", "", "Room or building")
	cmd.Flags().StringVar(&weekday, "weekday", "", "Weekday: 1-7 or a day name (required)")
	cmd.Flags().IntVar(&start, "start", 0, "First slot, 1-based (required)")
	cmd.Flags().IntVar(&duration, "duration", 2, "Number of consecutive slots")
	cmd.Flags().StringVar(&weeks, "weeks", "", `Semester weeks, e.g. "1-8,10,12" (required)`)

	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("weekday")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("weeks")

	return cmd
}
