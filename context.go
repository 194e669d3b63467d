package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/harrybrwn/linear/structure"
)

type Context struct {
	conf   Config
	logger *slog.Logger
	clock  structure.Clock
	out    io.Writer

	json bool
}

func newContext() *Context {
	return &Context{
		conf:   defaultConfig(),
		logger: slog.Default(),
		clock:  structure.SystemClock,
		out:    io.Discard,
	}
}

func (cctx *Context) init(cmd *cobra.Command) error {
	cctx.out = cmd.OutOrStdout()
	cctx.logger.Debug("loaded config",
		slog.Int("average_service_minutes", cctx.conf.AverageServiceMinutes),
		slog.Int("ring_capacity", cctx.conf.RingCapacity),
		slog.String("log_level", cctx.conf.LogLevel))
	return nil
}

func (cctx *Context) printf(format string, args ...any) {
	if cctx.json {
		return
	}
	fmt.Fprintf(cctx.out, format, args...)
}

// emit writes the final state of a demo when json output is turned on.
func (cctx *Context) emit(demo string, state any) error {
	if !cctx.json {
		fmt.Fprintln(cctx.out)
		return nil
	}
	enc := json.NewEncoder(cctx.out)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"demo":  demo,
		"state": state,
	})
}
