package view

import (
	"fmt"
	"sync"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"termlife/src/universe"
)

const fieldView = "field"

//ConsoleUI is the gocui backend
//the gui main loop runs in its own goroutine, the simulation only exchanges frames and commands with it
type ConsoleUI struct {
	g         *gocui.Gui
	commands  commandQueue
	liveStyle func(s string) string

	mu    sync.Mutex
	frame string
	maxX  int
	maxY  int
}

//NewConsoleUI switches the terminal to the alternate screen and raw input mode
func NewConsoleUI(color bool) (*ConsoleUI, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("gocui init: %w", err)
	}
	t := ConsoleUI{
		g:        g,
		commands: newCommandQueue(),
	}
	if color {
		t.liveStyle = func(s string) string { return aurora.Green(s).String() }
	}
	t.maxX, t.maxY = g.Size()
	g.SetManagerFunc(t.layout)

	if err = t.initKeyBindings(keys); err != nil {
		g.Close()
		return nil, err
	}
	return &t, nil
}

func (t *ConsoleUI) initKeyBindings(k []keyBindings) error {
	for _, kb := range k {
		cmd := kb.command
		if err := t.g.SetKeybinding("", kb.key, gocui.ModNone, func(_ *gocui.Gui, _ *gocui.View) error {
			t.commands.push(cmd)
			return nil
		}); err != nil {
			return fmt.Errorf("key binding %v: %w", kb.name, err)
		}
	}
	return nil
}

//Loop runs the gui main loop until Quit
func (t *ConsoleUI) Loop() error {
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}

//Quit stops the main loop, returns immediately
func (t *ConsoleUI) Quit() {
	t.g.Update(func(_ *gocui.Gui) error {
		return gocui.ErrQuit
	})
}

//Close restores the terminal, the main loop must be finished
func (t *ConsoleUI) Close() {
	t.g.Close()
}

func (t *ConsoleUI) Size() (int, int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.maxX, t.maxY, nil
}

func (t *ConsoleUI) Render(g *universe.Grid) error {
	w, h, _ := t.Size()
	f := newTextFrame(w, h, t.liveStyle)
	Paint(f, g)

	t.mu.Lock()
	t.frame = f.String()
	t.mu.Unlock()
	//it needs to call Update to flush from the other goroutine, layout draws the latest frame
	t.g.Update(func(_ *gocui.Gui) error { return nil })
	return nil
}

func (t *ConsoleUI) PollCommand(timeout time.Duration) (universe.Command, error) {
	return t.commands.poll(timeout), nil
}

//layout keeps the single frameless view over the entire terminal
func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	t.mu.Lock()
	t.maxX, t.maxY = maxX, maxY
	frame := t.frame
	t.mu.Unlock()

	v, err := g.SetView(fieldView, -1, -1, maxX, maxY)
	if err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
	}
	//the entire field is redrawing at once
	v.Clear()
	_, _ = fmt.Fprint(v, frame)
	return nil
}
