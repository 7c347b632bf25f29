package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/datekeeper/pkg/timeutil"
)

// ListOptions
type ListOptions struct {
	All      bool
	Category string
	Within   string
}

func AddListArgs(cmd *cobra.Command, o *ListOptions) {
	cmd.Flags().BoolVarP(&o.All, "all", "a", false,
		"Include dates that have passed.")
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Only show dates in this category.")
	cmd.Flags().StringVarP(&o.Within, "within", "w", "",
		`Only show dates at most this far away, example: --within=2w3d.`)
}

// GetWithin returns the --within window in days, 0 when unset.
func (o *ListOptions) GetWithin() (int, error) {
	days, _, err := timeutil.ParseWindow(o.Within)
	return days, err
}
