package grid_test

import (
	"fmt"

	"github.com/katalvlaran/hamgrid/grid"
)

// ExampleParseDirection resolves tokens and follows the arrows from (0,1).
func ExampleParseDirection() {
	pos := grid.At(0, 1)
	for _, tok := range []string{"S", "E", "N", "W"} {
		d, _ := grid.ParseDirection(tok)
		fmt.Printf("%v %c %v\n", pos, d.Arrow(), d)
		pos = pos.Move(d)
	}
	fmt.Println("back at", pos)

	// Output:
	// (0,1) ↓ South
	// (0,0) → East
	// (1,0) ↑ North
	// (1,1) ← West
	// back at (0,1)
}
