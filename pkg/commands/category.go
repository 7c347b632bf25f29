package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/datekeeper/pkg/commands/options"
	"tableflip.dev/datekeeper/pkg/runner/categories"
	"tableflip.dev/datekeeper/pkg/store"
)

func addCategory(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"categories", "cat"},
		Short:   "Manage categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newCategoryListCmd())
	cmd.AddCommand(newCategoryAddCmd())
	cmd.AddCommand(newCategoryRecolorCmd())
	cmd.AddCommand(newCategoryRemoveCmd())
	topLevel.AddCommand(cmd)
}

func newCategoryListCmd() *cobra.Command {
	oo := &options.OutputOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories with their color and number of dates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			r := categories.List{
				JSON:        oo.JSON,
				Persistence: p,
				Out:         cmd.OutOrStdout(),
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}
	options.AddOutputArg(cmd, oo)
	return cmd
}

func newCategoryAddCmd() *cobra.Command {
	oo := &options.OutputOptions{}
	var color string
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Example: `
datekeeper category add Family --color magenta
datekeeper category add Work --color "#ff8800"
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			r := categories.Add{
				Name:        args[0],
				Color:       color,
				JSON:        oo.JSON,
				Persistence: p,
				Out:         cmd.OutOrStdout(),
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}
	cmd.Flags().StringVar(&color, "color", "", "color name or #rrggbb, see datekeeper colors")
	_ = cmd.RegisterFlagCompletionFunc("color", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return colorCompletions(), cobra.ShellCompDirectiveNoFileComp
	})
	options.AddOutputArg(cmd, oo)
	return cmd
}

func newCategoryRecolorCmd() *cobra.Command {
	oo := &options.OutputOptions{}
	cmd := &cobra.Command{
		Use:   "recolor <name> <color>",
		Short: "Change the color of a category",
		Args:  cobra.ExactArgs(2),
		ValidArgsFunction: func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			switch len(args) {
			case 0:
				return categoryCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
			case 1:
				return colorCompletions(), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			r := categories.Recolor{
				Name:        args[0],
				Color:       args[1],
				JSON:        oo.JSON,
				Persistence: p,
				Out:         cmd.OutOrStdout(),
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}
	options.AddOutputArg(cmd, oo)
	return cmd
}

func newCategoryRemoveCmd() *cobra.Command {
	oo := &options.OutputOptions{}
	var moveTo string
	cmd := &cobra.Command{
		Use:     "remove <name>",
		Aliases: []string{"rm", "delete"},
		Short:   "Remove a category",
		Example: `
datekeeper category remove Work --move-to General
`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return categoryCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			r := categories.Remove{
				Name:        args[0],
				MoveTo:      moveTo,
				JSON:        oo.JSON,
				Persistence: p,
				Out:         cmd.OutOrStdout(),
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}
	cmd.Flags().StringVar(&moveTo, "move-to", "", "category that receives the dates filed under the removed one")
	registerCategoryCompletion(cmd, "move-to")
	options.AddOutputArg(cmd, oo)
	return cmd
}
