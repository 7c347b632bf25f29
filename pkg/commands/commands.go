package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "datekeeper",
		Short: base.Wrap80("Keep track of important dates and how far away they are."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addList(topLevel)
	addRemove(topLevel)
	addNext(topLevel)
	addMove(topLevel)
	addCategory(topLevel)
	addCalendar(topLevel)
	addColors(topLevel)
	addUI(topLevel)
	addInfo(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
