package rocks

import "strings"

// Blank is the empty cell value of a Grid.
const Blank = ' '

// Grid is the sky area every element commits into during a tick.
// Two elements writing the same cell within a tick is what a collision is.
type Grid struct {
	width  int
	height int
	cells  []rune
}

// NewGrid creates a blank grid of width x height cells.
func NewGrid(width, height int) *Grid {
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]rune, width*height),
	}
	g.Clear()
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Clear blanks every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Blank
	}
}

// InBounds reports whether (x, y) is a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the cell at (x, y), or Blank outside the grid.
func (g *Grid) At(x, y int) rune {
	if !g.InBounds(x, y) {
		return Blank
	}
	return g.cells[y*g.width+x]
}

// Put writes r at (x, y) and returns the value it replaced.
// Writes outside the grid are dropped and report Blank.
func (g *Grid) Put(x, y int, r rune) rune {
	if !g.InBounds(x, y) {
		return Blank
	}
	i := y*g.width + x
	prev := g.cells[i]
	g.cells[i] = r
	return prev
}

// Row returns row y as a string.
func (g *Grid) Row(y int) string {
	if y < 0 || y >= g.height {
		return ""
	}
	return string(g.cells[y*g.width : (y+1)*g.width])
}

// String renders the grid rows joined with newlines.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(len(g.cells) + g.height)
	for y := 0; y < g.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(g.Row(y))
	}
	return sb.String()
}
