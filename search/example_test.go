package search_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/board"
	"github.com/katalvlaran/gridpath/cost"
	"github.com/katalvlaran/gridpath/moves"
	"github.com/katalvlaran/gridpath/search"
)

// ExampleShortest prices every move by the value of the cell entered.
func ExampleShortest() {
	g, _ := board.NewGrid([][]int{
		{1, 9, 1},
		{1, 9, 1},
		{1, 1, 1},
	})
	gen, _ := moves.New[int](g, nil)
	goal := board.Cell{Row: 0, Col: 2}

	res, err := search.Shortest(search.Problem[board.Cell]{
		Sources:   []board.Cell{{Row: 0, Col: 0}},
		Neighbors: gen.Neighbors,
		Cost:      cost.EnterValue[int](g),
		Heuristic: search.Manhattan(1, goal),
		Goal:      func(c board.Cell) bool { return c == goal },
	}, search.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.Path()
	fmt.Println("cost:", res.Cost)
	fmt.Println("path:", path)
	// Output:
	// cost: 6
	// path: [(0,0) (1,0) (2,0) (2,1) (2,2) (1,2) (0,2)]
}

// ExampleExplore floods a maze with unit costs and reports the farthest cell.
func ExampleExplore() {
	g, _ := board.FromLines([]string{
		"..#",
		"#..",
		"...",
	})
	gen, _ := moves.New(g, moves.Passable('.'))

	tree, _ := search.Explore(search.Problem[board.Cell]{
		Sources:   []board.Cell{{Row: 0, Col: 0}},
		Neighbors: gen.Neighbors,
	})
	far, _ := tree.CostTo(board.Cell{Row: 2, Col: 0})
	fmt.Println("reached:", tree.Len())
	fmt.Println("to (2,0):", far)
	// Output:
	// reached: 7
	// to (2,0): 4
}
