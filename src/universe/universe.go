package universe

import "time"

//Command is the loop control command produced by a key press
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandPause
	CommandReseed
)

//default options
const (
	DefPollInterval = time.Millisecond * 16
	//GlyphWidth is the count of terminal columns occupied by the one cell
	GlyphWidth = 2
)

//Options represents the Simulation's configurable options
type Options struct {
	Interval time.Duration //max time to wait for the key press in each frame
	Seed     int64         //0 seeds the random generator from the clock
}

var DefaultOptions = Options{
	Interval: DefPollInterval,
}

//Status represents the status of the Simulation at concrete moment
type Status struct {
	Generation int //generations computed since the last reseed
	LiveCells  int
	Paused     bool
	Reseeds    int
}

//Viewer is the interface to the terminal backend - the object who can display the grid and read the keyboard
type Viewer interface {
	//Size returns the drawing area in character cells
	Size() (width int, height int, err error)
	//Render redraws the entire area with the grid
	Render(g *Grid) error
	//PollCommand waits up to timeout for the key press
	PollCommand(timeout time.Duration) (Command, error)
}
