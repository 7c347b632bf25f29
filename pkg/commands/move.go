package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/datekeeper/pkg/commands/options"
	"tableflip.dev/datekeeper/pkg/runner/move"
	"tableflip.dev/datekeeper/pkg/store"
)

func addMove(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}
	oo := &options.OutputOptions{}
	var create bool

	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move an important date to another category",
		Example: `
datekeeper move --name "Anniversary" --category Family
datekeeper move --name "Launch" --category Projects --create
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := eo.RequireName(); err != nil {
				return err
			}
			if eo.Category == "" {
				return errors.New("--category is required")
			}
			cmd.SilenceUsage = true

			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := move.Move{
				Name:        eo.Name,
				Category:    eo.Category,
				Create:      create,
				JSON:        oo.JSON,
				Persistence: p,
				Out:         cmd.OutOrStdout(),
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	options.AddNameArg(cmd, eo)
	options.AddCategoryArg(cmd, eo, "Category to move the date to.")
	cmd.Flags().BoolVar(&create, "create", false, "create the category if it is missing")
	options.AddOutputArg(cmd, oo)
	registerNameCompletion(cmd, "name")
	registerCategoryCompletion(cmd, "category")

	topLevel.AddCommand(cmd)
}
