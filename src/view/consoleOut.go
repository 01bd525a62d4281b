package view

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/logrusorgru/aurora"
	"termlife/src/universe"
)

//ConsoleOut is the headless backend
//it reports the fixed size, prints the progress and quits after maxSteps frames
type ConsoleOut struct {
	out       io.Writer
	width     int
	height    int
	maxSteps  int
	steps     int
	liveCells int
	startTime time.Time
}

//NewConsoleOut creates the backend with the grid of width x height cells, 0 maxSteps runs forever
func NewConsoleOut(out io.Writer, width int, height int, maxSteps int) *ConsoleOut {
	return &ConsoleOut{out: out, width: width, height: height, maxSteps: maxSteps, startTime: time.Now()}
}

//Loop has no events to read
func (c *ConsoleOut) Loop() error {
	return nil
}

func (c *ConsoleOut) Quit() {}

//Close prints the summary
func (c *ConsoleOut) Close() {
	totalTime := time.Since(c.startTime).Round(time.Millisecond)
	_, _ = fmt.Fprintln(c.out, aurora.Green("\nFinished:"))
	c.printHashData(map[string]interface{}{
		"Frames":     c.steps,
		"Total time": totalTime,
		"Live cells": c.liveCells,
	})
}

func (c *ConsoleOut) Size() (int, int, error) {
	return c.width * universe.GlyphWidth, c.height, nil
}

func (c *ConsoleOut) Render(g *universe.Grid) error {
	if c.steps == 0 {
		c.start(g)
	}
	c.liveCells = g.LiveCells()
	if c.steps%10 == 0 {
		_, _ = fmt.Fprintf(c.out, "  Frame: %v, live cells: %v\n", c.steps, c.liveCells)
	}
	c.steps++
	return nil
}

func (c *ConsoleOut) PollCommand(_ time.Duration) (universe.Command, error) {
	if c.maxSteps > 0 && c.steps >= c.maxSteps {
		return universe.CommandQuit, nil
	}
	return universe.CommandNone, nil
}

func (c *ConsoleOut) start(g *universe.Grid) {
	c.startTime = time.Now()
	_, _ = fmt.Fprintln(c.out, "Running configuration:")
	c.printHashData(map[string]interface{}{
		"Dimension":      fmt.Sprintf("%v x %v", g.Width(), g.Height()),
		"Max iterations": c.maxSteps,
	})
	_, _ = fmt.Fprintln(c.out, aurora.Cyan("\nSimulation started..."))
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		_, _ = fmt.Fprintf(c.out, "  %s: %v\n", aurora.Green(propName), d[propName])
	}
}
