package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/datekeeper/pkg/runner/mcp"
	"tableflip.dev/datekeeper/pkg/store"
)

func addMCP(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve important dates to an assistant over the Model Context Protocol (stdio)",
		Example: `
datekeeper mcp
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			r := mcp.Runner{
				Persistence: p,
				Name:        "datekeeper",
				Version:     version,
			}
			return r.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
