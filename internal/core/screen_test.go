package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(30, 17)

	if s.Width() != 30 {
		t.Errorf("Width() = %d, expected 30", s.Width())
	}
	if s.Height() != 17 {
		t.Errorf("Height() = %d, expected 17", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y) != blankCell {
				t.Errorf("New screen should be blank, got %+v at (%d, %d)", s.GetCell(x, y), x, y)
			}
		}
	}
}

func TestScreenSetKeepsColors(t *testing.T) {
	s := NewScreen(10, 4)
	s.SetCell(3, 1, Cell{Rune: ' ', Fg: ColorBlack, Bg: ColorCyan})
	s.Set(3, 1, '@')

	got := s.GetCell(3, 1)
	if got.Rune != '@' || got.Bg != ColorCyan || got.Fg != ColorBlack {
		t.Errorf("GetCell(3, 1) = %+v, expected '@' on cyan", got)
	}

	// Out of bounds is silent
	s.Set(-1, 0, 'A')
	s.SetCell(10, 0, Cell{Rune: 'A'})
	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(5, 5)
	s.FillRect(NewRect(0, 0, 5, 5), Cell{Rune: 'X', Bg: ColorGreen})

	s.Clear()

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if s.GetCell(x, y) != blankCell {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, s.GetCell(x, y))
			}
		}
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(12, 2)
	s.DrawText(1, 0, "♥♥ ok")

	if s.Row(0) != " ♥♥ ok      " {
		t.Errorf("Row(0) = %q, expected runes laid out one per column", s.Row(0))
	}

	// Clipped at the right edge
	s.DrawText(10, 1, "abc")
	if s.Get(10, 1) != 'a' || s.Get(11, 1) != 'b' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextStyled(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextStyled(0, 0, "HI", ColorRed, ColorBlack)

	for x := 0; x < 2; x++ {
		c := s.GetCell(x, 0)
		if c.Fg != ColorRed || c.Bg != ColorBlack {
			t.Errorf("GetCell(%d, 0) = %+v, expected red on black", x, c)
		}
	}
	if s.GetCell(2, 0) != blankCell {
		t.Error("DrawTextStyled should not touch cells past the text")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("Get(%d, %d) = %q, expected %q", pos[0], pos[1], got, want)
		}
	}
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("Horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("Vertical edge missing at y=%d", y)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "@@ ")
	s.DrawText(0, 1, "←☻→")

	expected := "@@ \n←☻→"
	if s.String() != expected {
		t.Errorf("String() = %q, expected %q", s.String(), expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", s.Row(0))
	}
	if s.Row(-1) != strings.Repeat(" ", 15) {
		t.Errorf("Out of bounds row should be spaces, got %q", s.Row(-1))
	}
}
