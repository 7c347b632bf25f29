package commands

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/datekeeper/pkg/category"
	"tableflip.dev/datekeeper/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generates shell completion scripts",
		Long: `To load completion run

. <(datekeeper completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(datekeeper completion)
`,
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		Args:      cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := "bash"
			if len(args) > 0 {
				shell = args[0]
			}
			out := cmd.OutOrStdout()
			switch shell {
			case "bash":
				return topLevel.GenBashCompletion(out)
			case "zsh":
				return topLevel.GenZshCompletion(out)
			case "fish":
				return topLevel.GenFishCompletion(out, true)
			case "powershell":
				return topLevel.GenPowerShellCompletionWithDesc(out)
			default:
				return fmt.Errorf("unsupported shell %q", shell)
			}
		},
	}

	topLevel.AddCommand(cmd)
}

func registerCategoryCompletion(cmd *cobra.Command, flagName string) {
	_ = cmd.RegisterFlagCompletionFunc(flagName, func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return categoryCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
}

func registerNameCompletion(cmd *cobra.Command, flagName string) {
	_ = cmd.RegisterFlagCompletionFunc(flagName, func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return nameCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
}

func categoryCompletions(toComplete string) []string {
	p, err := store.Load(nil)
	if err != nil {
		return nil
	}
	ds, err := p.Load(context.Background())
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(ds.Categories))
	for _, c := range ds.Categories {
		names = append(names, c.Name)
	}
	return matching(names, toComplete)
}

func nameCompletions(toComplete string) []string {
	p, err := store.Load(nil)
	if err != nil {
		return nil
	}
	ds, err := p.Load(context.Background())
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(ds.Entries))
	for _, e := range ds.Entries {
		names = append(names, e.Name)
	}
	return matching(names, toComplete)
}

func colorCompletions() []string {
	all := category.AllColors()
	names := make([]string, 0, len(all))
	for _, c := range all {
		names = append(names, c.String())
	}
	return names
}

func matching(names []string, prefix string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if strings.HasPrefix(strings.ToLower(n), strings.ToLower(prefix)) {
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}
