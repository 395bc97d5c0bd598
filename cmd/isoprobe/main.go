package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"isoprobe/pkg/inspect"
	"isoprobe/pkg/probe"
	"isoprobe/pkg/render"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		format  string
		noColor bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:          "isoprobe",
		Short:        "Report container isolation evidence for the current environment",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			opts := probe.DefaultOptions()
			opts.CommandTimeout = timeout

			snap, err := probe.Collect(ctx, opts)
			if err != nil {
				// Gaps degrade findings, they never abort the run.
				fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			}

			report := inspect.DefaultEngine().Inspect(snap)

			if err := render.New(render.Format(format)).Render(os.Stdout, report); err != nil {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(render.FormatText), "output format: text, json or yaml")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colorized severity tags")
	cmd.Flags().DurationVar(&timeout, "timeout", 500*time.Millisecond, "deadline for each optional external helper")

	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the isoprobe version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}
}
