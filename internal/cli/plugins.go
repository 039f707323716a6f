package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"closedform/internal/plugins"
)

// PluginInfo describes one recognizer in CLI output.
type PluginInfo struct {
	Priority int    `json:"priority"`
	Name     string `json:"name"`
	Tag      string `json:"tag"`
}

// NewPluginsCommand creates the plugins command.
func NewPluginsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plugins",
		Short: "List the invariant recognizers in dispatch order",
		Long: `List the invariant recognizers in their fixed dispatch order.

The first recognizer that matches a problem wins, so earlier entries
shadow later ones on overlapping statements.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlugins(rootOpts, cmd)
		},
	}

	return cmd
}

func runPlugins(opts *RootOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	ordered := plugins.Ordered(plugins.Config{})
	infos := make([]PluginInfo, 0, len(ordered))
	for i, p := range ordered {
		infos = append(infos, PluginInfo{Priority: i + 1, Name: p.Name(), Tag: string(p.Tag())})
	}

	if opts.Format == "json" {
		return formatter.Success(infos)
	}

	for _, info := range infos {
		fmt.Fprintf(formatter.Writer, "%d. %-28s %s\n", info.Priority, info.Name, info.Tag)
	}
	return nil
}
