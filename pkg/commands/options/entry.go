package options

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
)

// EntryOptions
type EntryOptions struct {
	Name        string
	Date        string
	Description string
	Category    string
}

func AddNameArg(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().StringVarP(&o.Name, "name", "n", "",
		"Name of the important date.")
}

func AddCategoryArg(cmd *cobra.Command, o *EntryOptions, usage string) {
	cmd.Flags().StringVarP(&o.Category, "category", "c", "", usage)
}

func AddEntryArgs(cmd *cobra.Command, o *EntryOptions) {
	AddNameArg(cmd, o)
	cmd.Flags().StringVarP(&o.Date, "date", "d", "",
		`Date as YYYY-MM-DD, example: --date="2026-02-28".`)
	cmd.Flags().StringVar(&o.Description, "description", "",
		"Optional description.")
	AddCategoryArg(cmd, o, "Category, created when missing. Defaults to General.")
}

// RequireName checks --name was given.
func (o *EntryOptions) RequireName() error {
	if strings.TrimSpace(o.Name) == "" {
		return errors.New("--name is required")
	}
	return nil
}
