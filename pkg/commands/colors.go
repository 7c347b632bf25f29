package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/datekeeper/pkg/runner/colors"
)

func addColors(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "colors",
		Short: "Print the colors a category can use",
		Example: `
datekeeper colors
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			k := colors.Colors{Out: cmd.OutOrStdout()}
			return k.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
