package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/datekeeper/pkg/runner/ui"
	"tableflip.dev/datekeeper/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the interactive console",
		Example: `
datekeeper ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			i := ui.UI{Persistence: p}
			return i.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
