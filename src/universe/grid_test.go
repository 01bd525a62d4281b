package universe

import (
	"math/rand"
	"testing"
)

//gridOf builds the grid from rows where '#' is the live cell
func gridOf(rows ...string) *Grid {
	g := NewGrid(len(rows[0]), len(rows))
	for i, r := range rows {
		for j, c := range r {
			g.Set(i, j, c == '#')
		}
	}
	return g
}

func TestGridDimensions(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for _, d := range [][2]int{{0, 0}, {5, 0}, {0, 5}, {1, 1}, {7, 3}, {40, 15}} {
		g := NewRandomGrid(d[0], d[1], rnd)
		w, h := d[0], d[1]
		if h == 0 {
			//without rows there is nothing to take the width from
			w = 0
		}
		if g.Width() != w || g.Height() != h {
			t.Errorf("NewRandomGrid(%v, %v): got %v x %v", d[0], d[1], g.Width(), g.Height())
		}
	}

	e := NewEmptyGrid()
	if e.Width() != 0 || e.Height() != 0 {
		t.Errorf("empty grid: got %v x %v", e.Width(), e.Height())
	}
	if e.LiveCells() != 0 {
		t.Errorf("empty grid has %v live cells", e.LiveCells())
	}
}

func TestRandomGridIsReproducible(t *testing.T) {
	a := NewRandomGrid(30, 20, rand.New(rand.NewSource(42)))
	b := NewRandomGrid(30, 20, rand.New(rand.NewSource(42)))
	if !a.Equal(b) {
		t.Fatal("grids created with the same seed differ")
	}
	if n := a.LiveCells(); n == 0 || n == 600 {
		t.Fatalf("random grid does not look random: %v live cells of 600", n)
	}
}

func TestModArithmetic(t *testing.T) {
	cases := []struct {
		v, m     int
		inc, dec int
	}{
		{0, 1, 0, 0},
		{0, 3, 1, 2},
		{1, 3, 2, 0},
		{2, 3, 0, 1},
		{4, 10, 5, 3},
		{9, 10, 0, 8},
	}
	for _, c := range cases {
		if got := modInc(c.v, c.m); got != c.inc {
			t.Errorf("modInc(%v, %v) = %v, want %v", c.v, c.m, got, c.inc)
		}
		if got := modDec(c.v, c.m); got != c.dec {
			t.Errorf("modDec(%v, %v) = %v, want %v", c.v, c.m, got, c.dec)
		}
	}
}

func TestLiveNeighboursBound(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for _, d := range [][2]int{{1, 1}, {2, 2}, {3, 1}, {16, 9}} {
		g := NewRandomGrid(d[0], d[1], rnd)
		g.walk(func(row int, col int, _ bool) {
			if n := g.LiveNeighbours(row, col); n < 0 || n > 8 {
				t.Fatalf("%v x %v grid: %v neighbours at (%v, %v)", d[0], d[1], n, row, col)
			}
		})
	}

	full := gridOf("###", "###", "###")
	if n := full.LiveNeighbours(1, 1); n != 8 {
		t.Errorf("full 3x3 grid: got %v neighbours, want 8", n)
	}
}

func TestLiveNeighboursWrap(t *testing.T) {
	cases := []struct {
		name  string
		grid  *Grid
		count int
	}{
		{"diagonal wrap 3x3", gridOf("#..", "...", "..#"), 1},
		{"vertical wrap 3x3", gridOf("#..", "...", "#.."), 1},
		{"diagonal wrap 5x5", gridOf("#....", ".....", ".....", ".....", "....#"), 1},
		{"vertical wrap 5x5", gridOf("#....", ".....", ".....", ".....", "#...."), 1},
		{"horizontal wrap 5x5", gridOf("#...#", ".....", ".....", ".....", "....."), 1},
		{"not adjacent 5x5", gridOf("#....", ".....", "..#..", ".....", "....."), 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if n := c.grid.LiveNeighbours(0, 0); n != c.count {
				t.Errorf("got %v neighbours at (0, 0), want %v", n, c.count)
			}
		})
	}
}

func TestAdvanceRule(t *testing.T) {
	//on the 3x3 torus every other cell is the neighbour of the centre
	around := [8][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
	wantAlive := map[int]bool{2: true, 3: true}
	for n := 0; n <= 8; n++ {
		for _, alive := range []bool{true, false} {
			src := NewGrid(3, 3)
			src.Set(1, 1, alive)
			for _, p := range around[:n] {
				src.Set(p[0], p[1], true)
			}
			dst := NewGrid(3, 3)
			Advance(dst, src)

			want := wantAlive[n] && (alive || n == 3)
			if got := dst.Alive(1, 1); got != want {
				t.Errorf("centre alive=%v with %v neighbours: got %v, want %v", alive, n, got, want)
			}
		}
	}
}

func TestAdvanceKeepsSource(t *testing.T) {
	src := gridOf(".....", "..#..", "..#..", "..#..", ".....")
	before := src.Clone()
	Advance(NewGrid(5, 5), src)
	if !src.Equal(before) {
		t.Fatal("advance changed the source grid")
	}
}

func TestBlockIsStillLife(t *testing.T) {
	for _, src := range []*Grid{
		gridOf("....", ".##.", ".##.", "...."),
		gridOf("......", "......", "..##..", "..##..", "......", "......"),
	} {
		dst := NewGrid(src.Width(), src.Height())
		Advance(dst, src)
		if !dst.Equal(src) {
			t.Errorf("%v x %v block changed after advance", src.Width(), src.Height())
		}
	}

	//no dead cell around the 4x4 block reaches 3 neighbours
	g := gridOf("....", ".##.", ".##.", "....")
	g.walk(func(row int, col int, alive bool) {
		n := g.LiveNeighbours(row, col)
		if alive && n != 3 {
			t.Errorf("live (%v, %v): %v neighbours, want 3", row, col, n)
		}
		if !alive && n == 3 {
			t.Errorf("dead (%v, %v) has 3 neighbours", row, col)
		}
	})
}

func TestBlinkerOscillation(t *testing.T) {
	vertical := gridOf(".....", "..#..", "..#..", "..#..", ".....")
	horizontal := gridOf(".....", ".....", ".###.", ".....", ".....")

	a, b := vertical.Clone(), NewGrid(5, 5)
	Advance(b, a)
	if !b.Equal(horizontal) {
		t.Fatal("blinker is not horizontal after the first advance")
	}
	Advance(a, b)
	if !a.Equal(vertical) {
		t.Fatal("blinker did not return after the second advance")
	}
}

func TestAdvanceContractViolations(t *testing.T) {
	mustPanic := func(name string, f func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%v: expected panic", name)
			}
		}()
		f()
	}
	g := NewGrid(3, 3)
	mustPanic("same grid", func() { Advance(g, g) })
	mustPanic("size mismatch", func() { Advance(NewGrid(3, 4), g) })
	mustPanic("no cells", func() { NewEmptyGrid().LiveNeighbours(0, 0) })
	mustPanic("negative size", func() { NewGrid(-1, 2) })
}

func TestCloneIsDeep(t *testing.T) {
	g := gridOf("#.", ".#")
	c := g.Clone()
	c.Set(0, 1, true)
	if g.Alive(0, 1) {
		t.Fatal("clone shares cells with the original")
	}
	if g.Equal(c) {
		t.Fatal("grids with different cells are equal")
	}
}
