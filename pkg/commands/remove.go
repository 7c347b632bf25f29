package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/datekeeper/pkg/commands/options"
	"tableflip.dev/datekeeper/pkg/runner/remove"
	"tableflip.dev/datekeeper/pkg/store"
)

func addRemove(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "remove",
		Aliases: []string{"rm", "delete"},
		Short:   "Remove an important date",
		Example: `
datekeeper remove --name "Anniversary"
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := eo.RequireName(); err != nil {
				return err
			}
			cmd.SilenceUsage = true

			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := remove.Remove{
				Name:        eo.Name,
				JSON:        oo.JSON,
				Persistence: p,
				Out:         cmd.OutOrStdout(),
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	options.AddNameArg(cmd, eo)
	options.AddOutputArg(cmd, oo)
	registerNameCompletion(cmd, "name")

	topLevel.AddCommand(cmd)
}
