package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/datekeeper/pkg/commands/options"
	"tableflip.dev/datekeeper/pkg/runner/list"
	"tableflip.dev/datekeeper/pkg/store"
)

func addList(topLevel *cobra.Command) {
	lo := &options.ListOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List important dates",
		Example: `
datekeeper list
datekeeper list --all
datekeeper list --category Family --within 2w
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			within, err := lo.GetWithin()
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := list.List{
				All:         lo.All,
				Category:    lo.Category,
				Within:      within,
				JSON:        oo.JSON,
				Persistence: p,
				Out:         cmd.OutOrStdout(),
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	options.AddListArgs(cmd, lo)
	options.AddOutputArg(cmd, oo)
	registerCategoryCompletion(cmd, "category")

	topLevel.AddCommand(cmd)
}
