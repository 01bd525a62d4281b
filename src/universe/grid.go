package universe

import (
	"fmt"
	"math/rand"
)

//Grid is the rectangular field of cells living on a torus:
//the left edge neighbours the right one and the top edge neighbours the bottom one
type Grid struct {
	cells [][]bool
}

//NewEmptyGrid creates the grid without rows, used as a placeholder until the view size is known
func NewEmptyGrid() *Grid {
	return &Grid{}
}

//NewGrid creates the grid with all cells dead
func NewGrid(width int, height int) *Grid {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("universe: negative grid dimension %v x %v", width, height))
	}
	g := Grid{cells: make([][]bool, height)}
	//the single backing array keeps rows close in memory
	b := make([]bool, width*height)
	for i := range g.cells {
		start := width * i
		g.cells[i] = b[start : start+width : start+width]
	}
	return &g
}

//NewRandomGrid creates the grid with every cell settled by an independent random draw
func NewRandomGrid(width int, height int, rnd *rand.Rand) *Grid {
	g := NewGrid(width, height)
	g.walk(func(row int, col int, _ bool) {
		g.cells[row][col] = rnd.Intn(2) == 1
	})
	return g
}

//Width returns the length of the first row, 0 for the grid without rows
func (g *Grid) Width() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

//Height returns the number of rows
func (g *Grid) Height() int {
	return len(g.cells)
}

func (g *Grid) Alive(row int, col int) bool {
	return g.cells[row][col]
}

func (g *Grid) Set(row int, col int, alive bool) {
	g.cells[row][col] = alive
}

//LiveNeighbours counts live cells among the 8 toroidally adjacent positions
func (g *Grid) LiveNeighbours(row int, col int) int {
	h, w := g.Height(), g.Width()
	if h == 0 || w == 0 {
		panic("universe: neighbours requested on the grid without cells")
	}
	up, down := modDec(row, h), modInc(row, h)
	left, right := modDec(col, w), modInc(col, w)

	n := 0
	for _, alive := range [8]bool{
		g.cells[up][left], g.cells[up][col], g.cells[up][right],
		g.cells[row][left], g.cells[row][right],
		g.cells[down][left], g.cells[down][col], g.cells[down][right],
	} {
		if alive {
			n++
		}
	}
	return n
}

//LiveCells calculates the count of live cells
func (g *Grid) LiveCells() int {
	n := 0
	g.walk(func(_ int, _ int, alive bool) {
		if alive {
			n++
		}
	})
	return n
}

//Equal reports whether both grids have the same shape and the same cells
func (g *Grid) Equal(o *Grid) bool {
	if g.Width() != o.Width() || g.Height() != o.Height() {
		return false
	}
	for i := range g.cells {
		for j := range g.cells[i] {
			if g.cells[i][j] != o.cells[i][j] {
				return false
			}
		}
	}
	return true
}

//Clone returns the deep copy of the grid
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.Width(), g.Height())
	for i := range g.cells {
		copy(c.cells[i], g.cells[i])
	}
	return c
}

//walk walks the entire grid and calls the cb function for each cell
func (g *Grid) walk(cb func(row int, col int, alive bool)) {
	for i := range g.cells {
		for j := range g.cells[i] {
			cb(i, j, g.cells[i][j])
		}
	}
}

//Advance writes the next generation of source into target
//source is only read, so target must be a different grid of the same size
func Advance(target *Grid, source *Grid) {
	if target == source {
		panic("universe: advance target and source are the same grid")
	}
	if target.Width() != source.Width() || target.Height() != source.Height() {
		panic(fmt.Sprintf("universe: advance %v x %v into %v x %v",
			source.Width(), source.Height(), target.Width(), target.Height()))
	}
	source.walk(func(row int, col int, alive bool) {
		target.cells[row][col] = nextState(alive, source.LiveNeighbours(row, col))
	})
}

//nextState applies the Life rule to the cell
func nextState(alive bool, liveNeighbours int) bool {
	switch {
	case alive && liveNeighbours <= 1:
		return false
	case alive && liveNeighbours >= 4:
		return false
	case !alive && liveNeighbours == 3:
		return true
	}
	return alive
}

//modInc increments v wrapping m-1 to 0
func modInc(v int, m int) int {
	if v == m-1 {
		return 0
	}
	return v + 1
}

//modDec decrements v wrapping 0 to m-1
func modDec(v int, m int) int {
	if v == 0 {
		return m - 1
	}
	return v - 1
}
