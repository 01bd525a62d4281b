package view

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"termlife/src/universe"
)

//TcellUI is the tcell backend
type TcellUI struct {
	s        tcell.Screen
	live     tcell.Style
	commands commandQueue
}

//NewTcellUI switches the terminal to the alternate screen and raw input mode
func NewTcellUI(color bool) (*TcellUI, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcell screen: %w", err)
	}
	return newTcellUI(s, color)
}

func newTcellUI(s tcell.Screen, color bool) (*TcellUI, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("tcell init: %w", err)
	}
	live := tcell.StyleDefault
	if color {
		live = live.Foreground(tcell.ColorGreen)
	}
	s.Clear()
	return &TcellUI{s: s, live: live, commands: newCommandQueue()}, nil
}

//Loop reads terminal events until Quit or Close
func (t *TcellUI) Loop() error {
	for {
		switch ev := t.s.PollEvent().(type) {
		case nil:
			//the screen is finalized
			return nil
		case *tcell.EventInterrupt:
			return nil
		case *tcell.EventResize:
			t.s.Sync()
		case *tcell.EventKey:
			t.commands.push(keyCommand(ev))
		}
	}
}

//Quit stops the event loop, returns immediately
func (t *TcellUI) Quit() {
	_ = t.s.PostEvent(tcell.NewEventInterrupt(nil))
}

//Close restores the terminal
func (t *TcellUI) Close() {
	t.s.Fini()
}

func (t *TcellUI) Size() (int, int, error) {
	w, h := t.s.Size()
	return w, h, nil
}

func (t *TcellUI) Render(g *universe.Grid) error {
	t.s.Clear()
	Paint(t, g)
	t.s.Show()
	return nil
}

func (t *TcellUI) Draw(x int, y int, glyph string) {
	for i, r := range []rune(glyph) {
		t.s.SetContent(x+i, y, r, nil, t.live)
	}
}

func (t *TcellUI) PollCommand(timeout time.Duration) (universe.Command, error) {
	return t.commands.poll(timeout), nil
}

//keyCommand maps the key press, tcell does not report releases
func keyCommand(ev *tcell.EventKey) universe.Command {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return universe.CommandQuit
	case tcell.KeyRune:
		return runeCommand(ev.Rune())
	}
	return universe.CommandNone
}
