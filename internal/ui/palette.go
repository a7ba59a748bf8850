package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/timetable/internal/palette"
)

func (a *App) paletteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palette [name]",
		Short: "List or select the course color palette",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				store, err := a.loadStore(cmd.Context())
				if err != nil {
					return err
				}
				for i, name := range palette.Available() {
					marker := "  "
					if i == store.PaletteIndex() {
						marker = formatStats("* ")
					}
					fmt.Fprintf(out, "%s%s\n", marker, name)
				}
				return nil
			}

			index := palette.Index(args[0])
			if index < 0 {
				return fmt.Errorf("unknown palette %q", args[0])
			}

			store, persister, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			store.SetPaletteIndex(index)
			if err := persister.Err(); err != nil {
				return err
			}
			fmt.Fprintf(out, "Palette set to %s\n", palette.Name(index))
			return nil
		},
	}
}
