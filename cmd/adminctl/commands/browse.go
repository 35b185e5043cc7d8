package commands

import (
	"naiyuan-admin/internal/tui"
	"strings"

	"github.com/spf13/cobra"
)

func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "browse <entity>",
		Short:     "Browse a list interactively (" + strings.Join(tui.Names(), ", ") + ")",
		Args:      cobra.ExactArgs(1),
		ValidArgs: tui.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(cmd.Context(), api, args[0])
		},
	}
}
