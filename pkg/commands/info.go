package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/datekeeper/pkg/runner/info"
	"tableflip.dev/datekeeper/pkg/store"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about configuration and where dates are stored.",
		Example: `
datekeeper info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Load(cfg)
			if err != nil {
				return err
			}
			s := info.Info{
				Config:      cfg,
				Persistence: p,
				Out:         cmd.OutOrStdout(),
			}
			return s.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
