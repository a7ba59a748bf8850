package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/timetable/internal/course"
	"github.com/javiermolinar/timetable/internal/dateutil"
)

// occupantFlags identify a session by weekday and start slot.
type occupantFlags struct {
	weekday string
	start   int
}

func (f *occupantFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.weekday, "weekday", "", "Weekday: 1-7 or a day name")
	cmd.Flags().IntVar(&f.start, "start", 0, "Start slot, 1-based")
}

func (f *occupantFlags) set() bool {
	return f.weekday != "" || f.start != 0
}

func (f *occupantFlags) occupant(title string) (*course.Session, error) {
	day, err := dateutil.ParseWeekday(f.weekday)
	if err != nil {
		return nil, err
	}
	if f.start < 1 {
		return nil, fmt.Errorf("%w, got %d", course.ErrInvalidSlot, f.start)
	}
	return &course.Session{Title: title, Weekday: day, StartSlot: f.start}, nil
}

func (a *App) deleteCmd() *cobra.Command {
	var flags occupantFlags

	cmd := &cobra.Command{
		Use:   "delete [title]",
		Short: "Delete sessions",
		Long: `Delete every session with the given title.

With --weekday and --start, only the sessions of that title starting in that
slot are removed.`,
		Example: `  timetable delete "Linear Algebra"
  timetable delete "Linear Algebra" --weekday tue --start 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var target *course.Session
			if flags.set() {
				var err error
				if target, err = flags.occupant(args[0]); err != nil {
					return err
				}
			}

			store, persister, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}

			before := store.Len()
			if target != nil {
				store.DeleteSession(target)
			} else {
				store.DeleteSessionByTitle(args[0])
			}
			if err := persister.Err(); err != nil {
				return err
			}

			removed := before - store.Len()
			a.log.WithField("title", args[0]).WithField("removed", removed).Info("sessions deleted")
			if removed == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No sessions matched %q.\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", formatStats(fmt.Sprintf("%d sessions", removed)))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func (a *App) topCmd() *cobra.Command {
	var flags occupantFlags

	cmd := &cobra.Command{
		Use:     "top [title]",
		Short:   "Show a session on top of its conflict stack",
		Example: `  timetable top "Physics" --weekday wed --start 5`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := flags.occupant(args[0])
			if err != nil {
				return err
			}

			store, persister, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}

			var found *course.Session
			for _, s := range store.Sessions() {
				if s.SameOccupant(target) {
					found = s
					break
				}
			}
			if found == nil {
				return fmt.Errorf("no session %q on %s slot %d", args[0], course.WeekdayLabel(target.Weekday), target.StartSlot)
			}

			store.PromoteToTop(found)
			if err := persister.Err(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now on top\n", found.Title)
			return nil
		},
	}

	flags.register(cmd)
	_ = cmd.MarkFlagRequired("weekday")
	_ = cmd.MarkFlagRequired("start")
	return cmd
}
