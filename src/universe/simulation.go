package universe

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"
)

//Simulation drives the frame cycle: fit the grid to the view, render, step, read the keyboard
//it owns two grids used as the current and the previous generation buffers
type Simulation struct {
	options Options
	viewer  Viewer
	rnd     *rand.Rand
	log     *log.Logger
	buffers [2]*Grid
	current int //index of the current buffer, the other one is the previous
	state   Status
}

//NewSimulation creates the Simulation instance
//both buffers start empty so the first frame always seeds the grid
func NewSimulation(o *Options, v Viewer, l *log.Logger) *Simulation {
	if o == nil {
		o = &DefaultOptions
	}
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	seed := o.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := Simulation{
		options: *o,
		viewer:  v,
		rnd:     rand.New(rand.NewSource(seed)),
		log:     l,
		buffers: [2]*Grid{NewEmptyGrid(), NewEmptyGrid()},
	}
	s.log.Printf("simulation created, seed: %v, interval: %v", seed, s.options.Interval)
	return &s
}

//Current returns the displayed generation
func (s *Simulation) Current() *Grid {
	return s.buffers[s.current]
}

//Previous returns the scratch buffer
func (s *Simulation) Previous() *Grid {
	return s.buffers[1-s.current]
}

//Status returns current simulation status represented by Status struct
func (s *Simulation) Status() Status {
	st := s.state
	st.LiveCells = s.Current().LiveCells()
	return st
}

//Run repeats frames until the quit command, the viewer error or ctx cancellation
func (s *Simulation) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		quit, err := s.Frame()
		if err != nil {
			return err
		}
		if quit {
			s.log.Printf("quit, generation: %v", s.state.Generation)
			return nil
		}
	}
}

//Frame does the one frame of the cycle
//the current grid is rendered before it is advanced
func (s *Simulation) Frame() (quit bool, err error) {
	width, height, err := s.logicalSize()
	if err != nil {
		return false, err
	}
	if cur := s.Current(); cur.Width() != width || cur.Height() != height {
		s.log.Printf("view size changed: %v x %v -> %v x %v", cur.Width(), cur.Height(), width, height)
		s.reseed(width, height)
	}

	if err = s.viewer.Render(s.Current()); err != nil {
		return false, fmt.Errorf("render: %w", err)
	}

	if !s.state.Paused {
		s.step()
	}

	cmd, err := s.viewer.PollCommand(s.options.Interval)
	if err != nil {
		return false, fmt.Errorf("poll command: %w", err)
	}
	switch cmd {
	case CommandQuit:
		return true, nil
	case CommandPause:
		s.state.Paused = !s.state.Paused
		s.log.Printf("paused: %v, generation: %v", s.state.Paused, s.state.Generation)
	case CommandReseed:
		//reseeds even if the size is unchanged
		if width, height, err = s.logicalSize(); err != nil {
			return false, err
		}
		s.log.Printf("reseed requested")
		s.reseed(width, height)
	}
	return false, nil
}

//step swaps the buffers and calculates the next generation into the new current one
func (s *Simulation) step() {
	s.current = 1 - s.current
	Advance(s.buffers[s.current], s.buffers[1-s.current])
	s.state.Generation++
}

//reseed settles both buffers with the same random pattern
func (s *Simulation) reseed(width int, height int) {
	g := NewRandomGrid(width, height, s.rnd)
	s.buffers[s.current] = g
	s.buffers[1-s.current] = g.Clone()
	s.state.Generation = 0
	s.state.Reseeds++
}

//logicalSize converts the view size to grid dimensions, each cell takes GlyphWidth columns
func (s *Simulation) logicalSize() (width int, height int, err error) {
	w, h, err := s.viewer.Size()
	if err != nil {
		return 0, 0, fmt.Errorf("view size: %w", err)
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return w / GlyphWidth, h, nil
}
