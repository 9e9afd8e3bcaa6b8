package rocks

import (
	"unicode/utf8"

	"github.com/vovakirdan/falling-rocks/internal/core"
)

// Footprint is the horizontal strip an element occupies: a position and one
// glyph per column.
type Footprint struct {
	Left   int
	Top    int
	Glyphs []rune
}

// NewFootprint creates a footprint from a glyph string.
func NewFootprint(glyphs string, left, top int) Footprint {
	return Footprint{Left: left, Top: top, Glyphs: []rune(glyphs)}
}

// Width returns the number of columns covered.
func (f Footprint) Width() int {
	return len(f.Glyphs)
}

// Rect returns the footprint as a one-row rectangle.
func (f Footprint) Rect() core.Rect {
	return core.NewRect(f.Left, f.Top, f.Width(), 1)
}

// shift moves the footprint dx columns if it stays within [0, boardWidth).
// It reports whether the move happened.
func (f *Footprint) shift(dx, boardWidth int) bool {
	left := f.Left + dx
	if left < 0 || left+f.Width() > boardWidth {
		return false
	}
	f.Left = left
	return true
}

// commit writes the glyphs into the grid and reports whether any cell was
// already occupied.
func (f Footprint) commit(g *Grid) bool {
	collided := false
	for i, r := range f.Glyphs {
		if g.Put(f.Left+i, f.Top, r) != Blank {
			collided = true
		}
	}
	return collided
}

// Element is anything with a footprint that commits itself to the grid.
// Commit reports whether the element overlapped something already there.
type Element interface {
	Footprint() Footprint
	Commit(g *Grid) bool
}

var (
	_ Element = (*Player)(nil)
	_ Element = (*Obstacle)(nil)
)

// Player is the element steered by input. It sits on the bottom sky row.
type Player struct {
	fp         Footprint
	boardWidth int
}

// NewPlayer creates a player centered horizontally on the bottom sky row.
func NewPlayer(glyphs string, boardWidth, boardHeight int) *Player {
	w := utf8.RuneCountInString(glyphs)
	left := core.Clamp(boardWidth/2, 0, core.Max(0, boardWidth-w))
	return &Player{
		fp:         NewFootprint(glyphs, left, boardHeight-2),
		boardWidth: boardWidth,
	}
}

// Footprint returns the player's position and glyphs.
func (p *Player) Footprint() Footprint {
	return p.fp
}

// Left returns the leftmost column.
func (p *Player) Left() int {
	return p.fp.Left
}

// Center returns the middle column of the footprint.
func (p *Player) Center() int {
	return p.fp.Left + p.fp.Width()/2
}

// MoveLeft moves one column left; at the edge it does nothing.
func (p *Player) MoveLeft() {
	p.fp.shift(-1, p.boardWidth)
}

// MoveRight moves one column right; at the edge it does nothing.
func (p *Player) MoveRight() {
	p.fp.shift(1, p.boardWidth)
}

// Commit draws the player last in the tick; any occupied cell it lands on
// is a collision.
func (p *Player) Commit(g *Grid) bool {
	return p.fp.commit(g)
}
