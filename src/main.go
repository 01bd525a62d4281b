package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/integrii/flaggy"
	"golang.org/x/sync/errgroup"
	"termlife/src/universe"
	"termlife/src/view"
)

//terminal is the backend: the viewer plus its event loop and the terminal restore
type terminal interface {
	universe.Viewer
	Loop() error
	Quit()
	Close()
}

var (
	views = map[string]func(eo *EnvOptions) (terminal, error){
		"gocui": func(eo *EnvOptions) (terminal, error) {
			return view.NewConsoleUI(eo.color)
		},
		"tcell": func(eo *EnvOptions) (terminal, error) {
			return view.NewTcellUI(eo.color)
		},
		"console": func(eo *EnvOptions) (terminal, error) {
			return view.NewConsoleOut(os.Stdout, eo.width, eo.height, eo.maxSteps), nil
		},
	}
)

//default options of the headless view
const (
	DefWidth    = 40
	DefHeight   = 15
	DefMaxSteps = 1000
)

type EnvOptions struct {
	view     string
	color    bool
	logFile  string
	width    int
	height   int
	maxSteps int
}

func main() {
	eo, uo := initOptions()
	if err := start(eo, uo); err != nil {
		log.Fatalln(err)
	}
}

//start runs the selected view, the deferred cleanup is done before main exits on error
func start(eo *EnvOptions, uo *universe.Options) error {
	l, closeLog, err := newLogger(eo.logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	t, err := views[eo.view](eo)
	if err != nil {
		l.Printf("view %v: %v", eo.view, err)
		return err
	}

	s := universe.NewSimulation(uo, t, l)
	err = run(t, s)
	//the terminal must be restored before anything is printed
	t.Close()
	if err != nil {
		l.Printf("finished with error: %v", err)
		return err
	}
	l.Printf("finished, status: %+v", s.Status())
	return nil
}

//run drives the simulation while the backend reads terminal events
//the failed event loop cancels the simulation, the finished simulation stops the event loop
func run(t terminal, s *universe.Simulation) error {
	g, ctx := errgroup.WithContext(context.Background())
	g.Go(recovered(t.Loop))
	g.Go(recovered(func() error {
		defer t.Quit()
		return s.Run(ctx)
	}))
	return g.Wait()
}

//recovered turns the panic of f into the error, so the terminal is still restored by main
func recovered(f func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic: %v", r)
			}
		}()
		return f()
	}
}

func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}
	return log.New(f, "termlife ", log.LstdFlags|log.Lmicroseconds), func() { _ = f.Close() }, nil
}

func initOptions() (eo *EnvOptions, uo *universe.Options) {

	o := universe.DefaultOptions
	uo = &o
	viewNames := make([]string, 0, len(views))
	for k := range views {
		viewNames = append(viewNames, k)
	}
	sort.Strings(viewNames)
	eo = &EnvOptions{
		view:     "gocui",
		width:    DefWidth,
		height:   DefHeight,
		maxSteps: DefMaxSteps,
	}
	flaggy.SetName("termlife")
	flaggy.SetDescription("Conway's \"The Life\" game in the terminal. " + view.KeysHelp())
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&eo.view, "v", "view", "View to use ["+strings.Join(viewNames, "|")+"]")
	flaggy.Duration(&uo.Interval, "i", "interval", "Max time to wait for a key press in each frame, for example 16ms")
	flaggy.Int64(&uo.Seed, "s", "seed", "Random seed, 0 seeds from the clock")
	flaggy.Bool(&eo.color, "c", "color", "Draw live cells in color")
	flaggy.String(&eo.logFile, "l", "log", "Write the log to the file")
	flaggy.Int(&eo.width, "x", "width", "Width of a simulation field (console view)")
	flaggy.Int(&eo.height, "y", "height", "Height of a simulation field (console view)")
	flaggy.Int(&eo.maxSteps, "m", "maxSteps", "Limit the simulation to maxSteps, 0 is unlimited (console view)")

	flaggy.Parse()

	if _, ok := views[eo.view]; !ok {
		flaggy.ShowHelpAndExit("unknown view")
	}
	if eo.width < 0 || eo.height < 0 || eo.maxSteps < 0 || uo.Interval < 0 {
		flaggy.ShowHelpAndExit("negative option value")
	}

	return
}
