package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/datekeeper/pkg/commands/options"
	"tableflip.dev/datekeeper/pkg/runner/next"
	"tableflip.dev/datekeeper/pkg/store"
)

func addNext(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Show the date closest to today",
		Example: `
datekeeper next
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := next.Next{
				JSON:        oo.JSON,
				Persistence: p,
				Out:         cmd.OutOrStdout(),
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
