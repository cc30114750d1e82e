// Command numconst prints shortest round-trip literals for mathematical constants.
//
// Usage:
//
//	numconst [flags] [table ...]
//
// Tables are pi, e, pimult, invpimult, sqrt, invsqrt, cbrt, invcbrt, or all.
// Without arguments numconst prints pi and e.
//
// For example:
//
//	numconst sqrt invsqrt            # C++ declarations for square roots
//	numconst --style go -v 1 all     # Go constants for every table, with progress
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/govalues/numconst"
)

func main() {
	if err := newCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	style     string
	verbosity int
	list      bool
}

func newCommand(stdout, stderr io.Writer) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "numconst [table ...]",
		Short:         "Print shortest round-trip float32 and float64 literals for mathematical constants",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := stdr.New(log.New(stderr, "numconst: ", 0))
			stdr.SetVerbosity(opts.verbosity)
			err := run(cmd.Context(), stdout, logger, opts, args)
			if err != nil {
				fmt.Fprintf(stderr, "numconst: %v\n", err)
			}
			return err
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.Flags().StringVar(&opts.style, "style", "cpp", "declaration style: cpp or go")
	cmd.Flags().IntVarP(&opts.verbosity, "verbosity", "v", 0, "log verbosity (1 lists constants, 2 adds values)")
	cmd.Flags().BoolVar(&opts.list, "list", false, "list available tables and exit")
	return cmd
}

func run(ctx context.Context, w io.Writer, logger logr.Logger, opts options, args []string) error {
	if opts.list {
		names := lo.Map(numconst.Kinds[:], func(k numconst.Kind, _ int) string { return k.String() })
		_, err := fmt.Fprintln(w, strings.Join(names, "\n"))
		return err
	}

	style, err := numconst.ParseStyle(opts.style)
	if err != nil {
		return err
	}
	kinds, err := parseTables(args)
	if err != nil {
		return err
	}
	var reqs []numconst.Request
	for _, k := range kinds {
		reqs = append(reqs, numconst.DefaultRequests(k)...)
	}

	c, err := numconst.NewContext(numconst.DefaultPrec, numconst.DefaultOutPrec)
	if err != nil {
		return err
	}
	logger.V(1).Info("precision", "working", c.Prec(), "output", c.OutPrec(), "requests", len(reqs))

	g := numconst.NewGenerator(c, numconst.WithLogger(logger))
	results, err := g.Generate(ctx, reqs)
	if err != nil {
		return err
	}
	return numconst.WriteLines(w, c.Render(results, style))
}

// parseTables converts table names to kinds, in the order given and
// without duplicates. "all" selects every kind.
func parseTables(args []string) ([]numconst.Kind, error) {
	if len(args) == 0 {
		return []numconst.Kind{numconst.KindPi, numconst.KindE}, nil
	}
	var kinds []numconst.Kind
	for _, arg := range args {
		if arg == "all" {
			kinds = append(kinds, numconst.Kinds[:]...)
			continue
		}
		k, err := numconst.ParseKind(arg)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return lo.Uniq(kinds), nil
}
