package view

import (
	"bytes"
	"termlife/src/universe"
)

//LiveGlyph is drawn for the each live cell, dead cells are left to the background
const LiveGlyph = "██"

//Canvas is the drawing surface of the terminal backend
type Canvas interface {
	//Draw places the glyph so its first char is at column x, line y
	Draw(x int, y int, glyph string)
}

//Paint issues one Draw per live cell of the grid
func Paint(c Canvas, g *universe.Grid) {
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			if g.Alive(row, col) {
				c.Draw(col*universe.GlyphWidth, row, LiveGlyph)
			}
		}
	}
}

//textFrame is the Canvas which collects the frame as lines of text
//each slot holds the content of one terminal column
type textFrame struct {
	width int
	lines [][]string
	style func(s string) string
}

func newTextFrame(width int, height int, style func(s string) string) *textFrame {
	f := textFrame{width: width, lines: make([][]string, height), style: style}
	for i := range f.lines {
		f.lines[i] = make([]string, width)
		for j := range f.lines[i] {
			f.lines[i][j] = " "
		}
	}
	return &f
}

//Draw discards the chars outside the frame
func (f *textFrame) Draw(x int, y int, glyph string) {
	if y < 0 || y >= len(f.lines) {
		return
	}
	for i, r := range []rune(glyph) {
		if x+i < 0 || x+i >= f.width {
			continue
		}
		s := string(r)
		if f.style != nil {
			s = f.style(s)
		}
		f.lines[y][x+i] = s
	}
}

func (f *textFrame) String() string {
	var b bytes.Buffer
	for i, l := range f.lines {
		//line feed char
		if i != 0 {
			b.WriteByte(10)
		}
		for _, s := range l {
			b.WriteString(s)
		}
	}
	return b.String()
}
