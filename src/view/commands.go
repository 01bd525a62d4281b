package view

import (
	"bytes"
	"time"

	"github.com/jroimartin/gocui"
	"termlife/src/universe"
)

type keyBindings struct {
	key     interface{} //rune or gocui.Key
	name    string
	descr   string
	command universe.Command
}

const commandQueueSize = 16

var keys = []keyBindings{
	{'q', "Q", "Quit", universe.CommandQuit},
	{'p', "P", "Pause/resume", universe.CommandPause},
	{'r', "R", "Reseed", universe.CommandReseed},
	{gocui.KeyCtrlC, "^C", "Quit", universe.CommandQuit},
}

//KeysHelp returns the line describing the key bindings
func KeysHelp() string {
	b := bytes.Buffer{}
	b.WriteString("KEYBINDINGS: ")
	for i, k := range keys {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(k.name)
		b.WriteString(": ")
		b.WriteString(k.descr)
	}
	return b.String()
}

//runeCommand maps the pressed char to the command, unknown chars give CommandNone
func runeCommand(r rune) universe.Command {
	for _, k := range keys {
		if kr, ok := k.key.(rune); ok && kr == r {
			return k.command
		}
	}
	return universe.CommandNone
}

//commandQueue passes commands from the backend event loop to the simulation
type commandQueue chan universe.Command

func newCommandQueue() commandQueue {
	return make(commandQueue, commandQueueSize)
}

//push drops the command when the simulation does not keep up
func (q commandQueue) push(cmd universe.Command) {
	if cmd == universe.CommandNone {
		return
	}
	select {
	case q <- cmd:
	default:
	}
}

//poll waits up to timeout for the next command
func (q commandQueue) poll(timeout time.Duration) universe.Command {
	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case cmd := <-q:
		return cmd
	case <-t.C:
		return universe.CommandNone
	}
}
