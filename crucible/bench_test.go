package crucible_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/crucible/crucible"
	"github.com/katalvlaran/crucible/movement"
)

// BenchmarkMinHeatLoss runs both regimes on a random 141×141 map, the size
// of a full puzzle input, with and without the Manhattan heuristic.
func BenchmarkMinHeatLoss(b *testing.B) {
	g := randomGrid(rand.New(rand.NewSource(42)), 141, 141, 1, 9)

	for _, bc := range []struct {
		name string
		c    movement.Constraints
		opts []crucible.Option
	}{
		{"Loose/AStar", movement.Loose, nil},
		{"Loose/Dijkstra", movement.Loose, []crucible.Option{crucible.WithoutHeuristic()}},
		{"Strict/AStar", movement.Strict, nil},
		{"Strict/Dijkstra", movement.Strict, []crucible.Option{crucible.WithoutHeuristic()}},
	} {
		q := crucible.CornerToCorner(g, bc.c)
		b.Run(bc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := crucible.MinHeatLoss(g, q, bc.opts...); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
