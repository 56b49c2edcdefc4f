package grid_test

import (
	"fmt"
	"strings"

	"github.com/chrysly/wildfire-VIP/grid"
)

// ExampleGrid_NbC lists the four neighbors of an interior 2D cell in the
// order face enumeration relies on.
func ExampleGrid_NbC() {
	g, _ := grid.New([]int{3, 3})
	c := grid.Vec(1, 1)
	nbs := make([]string, 0, g.NumberOfNbC())
	for i := 0; i < g.NumberOfNbC(); i++ {
		nbs = append(nbs, g.NbC(c, i).Format(g.Dim()))
	}
	fmt.Println(strings.Join(nbs, " "))
	fmt.Println(g)

	// Output:
	// (0,1) (1,0) (1,2) (2,1)
	// Grid{dim=2 cells=(3,3) nodes=(4,4) dx=1 min=(0,0)}
}
