package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(28, 31)

	if s.Width() != 28 {
		t.Errorf("Width() = %d, expected 28", s.Width())
	}
	if s.Height() != 31 {
		t.Errorf("Height() = %d, expected 31", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	s.SetColored(1, 2, 'C', ColorYellow)
	if got := s.GetCell(1, 2); got != (Cell{Rune: 'C', Color: ColorYellow}) {
		t.Errorf("GetCell(1, 2) = %+v, expected yellow 'C'", got)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			s.SetColored(x, y, 'X', ColorRed)
		}
	}

	s.Clear()

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if c := s.GetCell(x, y); c != (Cell{Rune: ' '}) {
				t.Errorf("After Clear, cell at (%d, %d) = %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(8, 1)
	s.DrawText(2, 0, "READY!", ColorYellow)

	if got := s.Row(0); got != "  READY!" {
		t.Errorf("Row(0) = %q, expected %q", got, "  READY!")
	}
	if s.GetCell(2, 0).Color != ColorYellow {
		t.Error("DrawText should color the text")
	}

	// Clipped at the right edge
	s.Clear()
	s.DrawText(5, 0, "GAME", ColorRed)
	if got := s.Row(0); got != "     GAM" {
		t.Errorf("Row(0) = %q, expected clipped text", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, '#')
	s.Set(2, 1, '.')

	lines := strings.Split(s.String(), "\n")
	if len(lines) != 2 {
		t.Fatalf("String() has %d lines, expected 2", len(lines))
	}
	if lines[0] != "#  " || lines[1] != "  ." {
		t.Errorf("String() = %q", s.String())
	}
	if s.Row(5) != "   " {
		t.Errorf("Row out of range = %q, expected blanks", s.Row(5))
	}
}
