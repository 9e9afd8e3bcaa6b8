package rocks

import (
	"math/rand"
	"testing"
)

func TestPlayerStartsCentered(t *testing.T) {
	p := NewPlayer("←☻→", 30, 15)
	fp := p.Footprint()

	if fp.Left != 15 || fp.Top != 13 || fp.Width() != 3 {
		t.Errorf("Footprint() = left %d top %d width %d, expected 15 13 3", fp.Left, fp.Top, fp.Width())
	}
	if p.Center() != 16 {
		t.Errorf("Center() = %d, expected 16", p.Center())
	}
}

func TestPlayerMovementIsClamped(t *testing.T) {
	p := NewPlayer("←☻→", 30, 15)

	for i := 0; i < 40; i++ {
		p.MoveLeft()
	}
	if p.Left() != 0 {
		t.Errorf("Left() after walking into the wall = %d, expected 0", p.Left())
	}

	for i := 0; i < 40; i++ {
		p.MoveRight()
	}
	if p.Left() != 27 {
		t.Errorf("Left() after walking into the right wall = %d, expected 27", p.Left())
	}
}

func TestPlayerStaysInBoundsUnderRandomInput(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, width := range []int{3, 4, 10, 30} {
		p := NewPlayer("←☻→", width, 15)
		for i := 0; i < 2000; i++ {
			if rng.Intn(2) == 0 {
				p.MoveLeft()
			} else {
				p.MoveRight()
			}
			fp := p.Footprint()
			if fp.Left < 0 || fp.Left+fp.Width() > width {
				t.Fatalf("board %d: footprint [%d, %d) left the board after %d moves", width, fp.Left, fp.Left+fp.Width(), i+1)
			}
		}
	}
}

func TestPlayerCommitDetectsPriorOccupant(t *testing.T) {
	g := NewGrid(30, 14)
	p := NewPlayer("←☻→", 30, 15)

	if p.Commit(g) {
		t.Error("Commit() on an empty grid should not collide")
	}
	if string([]rune(g.Row(13))[15:18]) != "←☻→" {
		t.Errorf("player glyphs not written, row = %q", g.Row(13))
	}

	g.Clear()
	g.Put(17, 13, '@')
	if !p.Commit(g) {
		t.Error("Commit() over a rock should collide")
	}
	if g.At(17, 13) != '→' {
		t.Errorf("player should overwrite the rock cell, got %q", g.At(17, 13))
	}

	g.Clear()
	g.Put(17, 12, '@')
	if p.Commit(g) {
		t.Error("a rock one row above should not collide")
	}
}

func TestElementsShareCommitContract(t *testing.T) {
	g := NewGrid(10, 5)
	o := &Obstacle{}
	o.spawn("@@", 2, 300)

	elements := []Element{o, NewPlayer("<^>", 10, 6)}
	for _, e := range elements {
		e.Commit(g)
	}

	if string([]rune(g.Row(0))[2:4]) != "@@" {
		t.Errorf("obstacle not committed at top row: %q", g.Row(0))
	}
	if string([]rune(g.Row(4))[5:8]) != "<^>" {
		t.Errorf("player not committed at bottom row: %q", g.Row(4))
	}
}
