package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOMonth = "2006-1"
)

// OnOptions
type OnOptions struct {
	OnString string
	Months   int
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Month to start from, example: --on="2026-2" or --on="2026-2-28".`)
	cmd.Flags().IntVarP(&o.Months, "months", "m", 1,
		"Number of months to show.")
}

// GetOn parses --on, returning nil when it was not set.
func (o *OnOptions) GetOn() (*time.Time, error) {
	if o.OnString == "" {
		return nil, nil
	}
	t, err := time.Parse(layoutISO, o.OnString)
	if err != nil {
		t, err = time.Parse(layoutISOMonth, o.OnString)
		if err != nil {
			return nil, fmt.Errorf("invalid --on %q, use YYYY-MM or YYYY-MM-DD", o.OnString)
		}
	}
	return &t, nil
}
