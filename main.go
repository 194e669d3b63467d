package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}

func NewRootCmd() *cobra.Command {
	var (
		ctx   = newContext()
		debug bool
		text  bool
	)
	c := cobra.Command{
		Use:           "linear",
		Short:         "Run the linear data structure demos",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) (err error) {
			if err = ctx.conf.load(cmd.Flags()); err != nil {
				return err
			}
			var lvl slog.Level
			if err = lvl.UnmarshalText([]byte(ctx.conf.LogLevel)); err != nil {
				return err
			}
			if debug {
				lvl = slog.LevelDebug
			}
			opts := slog.HandlerOptions{Level: lvl}
			var h slog.Handler
			if text {
				h = slog.NewTextHandler(cmd.ErrOrStderr(), &opts)
			} else {
				h = slog.NewJSONHandler(cmd.ErrOrStderr(), &opts)
			}
			l := slog.New(h)
			slog.SetDefault(l)
			ctx.logger = l
			return ctx.init(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAll(ctx)
		},
	}
	c.AddCommand(
		newQueueCmd(ctx),
		newCircularCmd(ctx),
		newDoublyCmd(ctx),
		newSinglyCmd(ctx),
		newAllCmd(ctx),
	)
	c.PersistentFlags().IntVar(&ctx.conf.AverageServiceMinutes, "average", ctx.conf.AverageServiceMinutes, "average service time in minutes")
	c.PersistentFlags().IntVar(&ctx.conf.RingCapacity, "capacity", ctx.conf.RingCapacity, "capacity of the circular list, zero for unbounded")
	c.PersistentFlags().StringVarP(&ctx.conf.LogLevel, "log-level", "l", ctx.conf.LogLevel, "set the log level (debug|info|warn|error)")
	c.PersistentFlags().BoolVarP(&debug, "debug", "d", debug, "turn on debug mode")
	c.PersistentFlags().BoolVar(&text, "text", text, "write logs as text instead of json")
	c.PersistentFlags().BoolVar(&ctx.json, "json", ctx.json, "print the final state of each demo as json")
	return &c
}
