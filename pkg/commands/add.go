package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/datekeeper/pkg/commands/options"
	"tableflip.dev/datekeeper/pkg/runner/add"
	"tableflip.dev/datekeeper/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an important date",
		Example: `
datekeeper add --name "Anniversary" --date 2026-09-14
datekeeper add -n "Tax day" -d 2027-04-15 --category Work --description "file early"
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := eo.RequireName(); err != nil {
				return err
			}
			if eo.Date == "" {
				return errors.New("--date is required")
			}
			cmd.SilenceUsage = true

			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := add.Add{
				Name:        eo.Name,
				Date:        eo.Date,
				Description: eo.Description,
				Category:    eo.Category,
				JSON:        oo.JSON,
				Persistence: p,
				Out:         cmd.OutOrStdout(),
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	options.AddEntryArgs(cmd, eo)
	options.AddOutputArg(cmd, oo)
	registerCategoryCompletion(cmd, "category")

	topLevel.AddCommand(cmd)
}
