package commands

import (
	"github.com/illBeRoy/advent-2022/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newAllCmd() *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Run every implemented day and task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.RunAll(cmd.Context(), opts)
		},
	}
	cmd.Flags().BoolVar(&opts.NoCache, "no-cache", false, "Bypass the answer cache")

	return cmd
}
