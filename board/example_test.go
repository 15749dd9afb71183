// File: board/example_test.go
package board_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/board"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Tiled
////////////////////////////////////////////////////////////////////////////////

// ExampleNewTiled repeats a single-cell board five times to the right; every
// tile step adds one and values wrap from 9 back to 1.
func ExampleNewTiled() {
	base, _ := board.NewGrid([][]int{{8}})
	tiled, _ := board.NewTiled(base, 1, 5, board.CyclicWrap(9))

	for c := 0; c < tiled.Width(); c++ {
		v, _ := tiled.ValueAt(board.Cell{Col: c})
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output:
	// 8 9 1 2 3
}

////////////////////////////////////////////////////////////////////////////////
// Example: Drift
////////////////////////////////////////////////////////////////////////////////

// ExampleNewDrift shows two obstacles crossing in a one-row corridor. When
// both share a cell the snapshot shows their count.
func ExampleNewDrift() {
	d, _ := board.NewDrift([]string{
		"#####",
		"#>.<#",
		"#####",
	})
	fmt.Println("period:", d.Period())
	for t := 0; t < d.Period(); t++ {
		snap := d.SnapshotAt(t)
		row := make([]rune, snap.Width())
		for c := range row {
			row[c], _ = snap.ValueAt(board.Cell{Row: 1, Col: c})
		}
		fmt.Printf("t=%d %s\n", t, string(row))
	}
	// Output:
	// period: 3
	// t=0 #>.<#
	// t=1 #.2.#
	// t=2 #<.>#
}
