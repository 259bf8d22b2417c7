package crucible

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/crucible/gridgraph"
)

// Solve answers the corner-to-corner query once per regime. Regimes run
// concurrently; each owns its search state and only reads g.
//
// Outcomes are returned in the order of regimes. An unreachable target is
// reported as Found=false, not as an error. Any other failure, such as invalid
// constraints or an exhausted budget, cancels the remaining regimes and is
// returned with the regime name attached.
func Solve(ctx context.Context, g *gridgraph.CostGrid, regimes []Regime, opts ...Option) ([]Outcome, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if len(regimes) == 0 {
		return nil, ErrNoRegimes
	}

	out := make([]Outcome, len(regimes))
	eg, ctx := errgroup.WithContext(ctx)
	for i, rg := range regimes {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			start := time.Now()
			route, err := MinHeatLoss(g, CornerToCorner(g, rg.Constraints), opts...)
			o := Outcome{Regime: rg, Elapsed: time.Since(start)}
			switch {
			case errors.Is(err, ErrNoPath):
			case err != nil:
				return fmt.Errorf("regime %q: %w", rg.Name, err)
			default:
				o.Found = true
				o.Route = route
			}
			out[i] = o

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
