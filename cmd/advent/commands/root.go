// Package commands implements the CLI commands for the advent puzzle runner.
package commands

import (
	"context"
	"io"

	"github.com/illBeRoy/advent-2022/internal/app"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for advent.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	var opts app.Options

	rootCmd := &cobra.Command{
		Use:           "advent",
		Short:         "Run Advent of Code 2022 puzzle solutions",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.Run(cmd.Context(), opts)
		},
	}

	rootCmd.Flags().IntVar(&opts.Day, "day", 0, "Day of the competition to run (2-30)")
	rootCmd.Flags().IntVar(&opts.Task, "task", 0, "Task of the day to run (1 or 2)")
	rootCmd.Flags().BoolVar(&opts.Describe, "describe", false, "Also print the day's description")
	rootCmd.Flags().BoolVar(&opts.NoCache, "no-cache", false, "Bypass the answer cache")
	_ = rootCmd.MarkFlagRequired("day")
	_ = rootCmd.MarkFlagRequired("task")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newAllCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects cobra's own output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}
