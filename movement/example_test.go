package movement_test

import (
	"fmt"

	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/movement"
)

// ExampleModel_Successors lists the moves available after two steps to the
// right under the strict 4..10 regime: turning is not yet allowed.
func ExampleModel_Successors() {
	g, _ := gridgraph.Parse("111111\n222222\n")
	m, _ := movement.NewModel(g, movement.Strict)

	s := movement.State{Pos: gridgraph.Position{Row: 0, Col: 1}, Heading: movement.Right, Run: 2}
	for _, st := range m.Successors(s, nil) {
		fmt.Println(st.State, "cost", st.Cost)
	}

	s.Run = 4
	fmt.Println("after four moves:")
	for _, st := range m.Successors(s, nil) {
		fmt.Println(st.State, "cost", st.Cost)
	}

	// Output:
	// (0,2)>3 cost 1
	// after four moves:
	// (0,2)>5 cost 1
	// (1,1)v1 cost 2
}
