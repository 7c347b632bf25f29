package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/datekeeper/pkg/commands/options"
	"tableflip.dev/datekeeper/pkg/runner/calendar"
	"tableflip.dev/datekeeper/pkg/store"
)

func addCalendar(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Show a month calendar with the important dates marked",
		Example: `
datekeeper calendar
datekeeper calendar --on 2026-12 --months 3
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := calendar.Calendar{
				Months:      oo.Months,
				Persistence: p,
				Out:         cmd.OutOrStdout(),
			}
			if on != nil {
				s.On = *on
			}
			return s.Do(cmd.Context())
		},
	}

	options.AddOnArgs(cmd, oo)

	topLevel.AddCommand(cmd)
}
