package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/crucible/crucible"
	"github.com/katalvlaran/crucible/gridgraph"
)

type solveOpts struct {
	regimes  regimeFlags
	path     bool
	finalRun bool
	budget   int
}

func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Print the least heat loss for each regime",
		Long: `Solve reads a grid of digits, one row per line, from file or stdin
("-" or no argument) and prints the least heat loss from the top-left to the
bottom-right cell under every configured regime. Unreachable targets are
reported as "no path".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "-"
			if len(args) == 1 {
				name = args[0]
			}
			return c.runSolve(cmd, name, opts)
		},
	}

	opts.regimes.register(cmd)
	cmd.Flags().BoolVarP(&opts.path, "path", "p", false, "print the cells of each route")
	cmd.Flags().BoolVar(&opts.finalRun, "final-run", false, "require the last run to reach the minimum run length")
	cmd.Flags().IntVar(&opts.budget, "budget", 0, "abort a regime after this many expanded states (0 = unlimited)")

	return cmd
}

func (c *CLI) runSolve(cmd *cobra.Command, name string, opts solveOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, source, err := opts.regimes.resolve(cmd)
	if err != nil {
		return err
	}
	logger.Debug("Loaded regimes", "source", source, "count", len(cfg.Regimes))

	prog := newProgress(logger)
	g, err := readGrid(cmd.InOrStdin(), name)
	if err != nil {
		return err
	}
	rows, cols := g.Dimensions()
	prog.done("Parsed grid", "input", name, "rows", rows, "cols", cols)

	var sopts []crucible.Option
	if opts.path {
		sopts = append(sopts, crucible.WithPath())
	}
	if opts.finalRun {
		sopts = append(sopts, crucible.WithFinalRun())
	}
	if opts.budget > 0 {
		sopts = append(sopts, crucible.WithMaxExpansions(opts.budget))
	}

	outcomes, err := crucible.Solve(ctx, g, cfg.CrucibleRegimes(), sopts...)
	if err != nil {
		return err
	}

	w := nameWidth(cfg)
	out := cmd.OutOrStdout()
	for _, o := range outcomes {
		logger.Debug("Searched", "regime", o.Regime.Name, "found", o.Found,
			"expanded", o.Route.Expanded, "elapsed", o.Elapsed.Round(time.Microsecond))
		if !o.Found {
			logger.Warn("No path", "regime", o.Regime.Name, "constraints", o.Regime.Constraints)
		}
		writeOutcome(out, o, w, opts.path)
	}

	return nil
}

func writeOutcome(w io.Writer, o crucible.Outcome, nameWidth int, withPath bool) {
	result := styleNoPath.Render("no path")
	if o.Found {
		result = styleHeatLoss.Render(fmt.Sprint(o.Route.HeatLoss))
	}
	fmt.Fprintf(w, "%s %s %s\n",
		column(styleRegime, o.Regime.Name, nameWidth),
		column(styleBounds, o.Regime.Constraints.String(), 6),
		result)

	if withPath && o.Found {
		cells := make([]string, 0, len(o.Route.Steps))
		for _, p := range o.Route.Positions() {
			cells = append(cells, p.String())
		}
		fmt.Fprintln(w, styleRoute.Render("  "+strings.Join(cells, " ")))
	}
}

// readGrid parses the named file, or stdin for "-".
func readGrid(stdin io.Reader, name string) (*gridgraph.CostGrid, error) {
	if name == "-" {
		g, err := gridgraph.ParseReader(stdin)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return g, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := gridgraph.ParseReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return g, nil
}
