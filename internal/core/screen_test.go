package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(10, 5)

	if s.Width() != 10 {
		t.Errorf("Width() = %d, expected 10", s.Width())
	}
	if s.Height() != 5 {
		t.Errorf("Height() = %d, expected 5", s.Height())
	}

	// All cells should be spaces
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("cell (%d, %d) = %q, expected space", x, y, s.Get(x, y))
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if s.Get(3, 2) != 'X' {
		t.Errorf("Get(3, 2) = %q, expected 'X'", s.Get(3, 2))
	}

	// Out of bounds set is silently ignored
	s.Set(-1, 0, 'Y')
	s.Set(10, 0, 'Y')
	s.Set(0, -1, 'Y')
	s.Set(0, 5, 'Y')

	// Out of bounds get returns space
	if s.Get(-1, 0) != ' ' {
		t.Error("out-of-bounds Get should return space")
	}
	if s.Get(10, 0) != ' ' {
		t.Error("out-of-bounds Get should return space")
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColored(2, 1, '#', ColorBrightCyan)
	cell := s.GetCell(2, 1)
	if cell.Rune != '#' {
		t.Errorf("GetCell rune = %q, expected '#'", cell.Rune)
	}
	if cell.Color != ColorBrightCyan {
		t.Errorf("GetCell color = %d, expected ColorBrightCyan", cell.Color)
	}

	// Out-of-bounds returns the default cell
	if got := s.GetCell(-1, -1); got.Color != ColorDefault || got.Rune != ' ' {
		t.Errorf("out-of-bounds GetCell = %+v, expected default cell", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(5, 5)

	s.SetColored(2, 2, 'A', ColorRed)
	s.Clear()

	cell := s.GetCell(2, 2)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("after Clear, cell = %+v, expected default", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hello")

	expected := "hello"
	for i, r := range expected {
		if s.Get(2+i, 1) != r {
			t.Errorf("cell (%d, 1) = %q, expected %q", 2+i, s.Get(2+i, 1), r)
		}
	}

	// Clipped text should not panic
	s.DrawText(8, 0, "overflow")
	if s.Get(8, 0) != 'o' || s.Get(9, 0) != 'v' {
		t.Error("clipped text should write visible portion")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)

	s.DrawTextCentered(1, "abc")

	// (11-3)/2 = 4
	if s.Get(4, 1) != 'a' || s.Get(5, 1) != 'b' || s.Get(6, 1) != 'c' {
		t.Errorf("centered text misplaced: row = %q", s.Row(1))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 6)

	s.DrawBox(1, 1, 5, 4)

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' {
		t.Error("top corners wrong")
	}
	if s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Error("bottom corners wrong")
	}
	if s.Get(3, 1) != '─' || s.Get(3, 4) != '─' {
		t.Error("horizontal edges wrong")
	}
	if s.Get(1, 2) != '│' || s.Get(5, 2) != '│' {
		t.Error("vertical edges wrong")
	}
}

func TestScreenDrawLines(t *testing.T) {
	s := NewScreen(8, 8)

	s.DrawHLine(1, 3, 4, '-')
	for x := 1; x < 5; x++ {
		if s.Get(x, 3) != '-' {
			t.Errorf("HLine missing at (%d, 3)", x)
		}
	}

	s.DrawVLine(6, 1, 4, '|')
	for y := 1; y < 5; y++ {
		if s.Get(6, y) != '|' {
			t.Errorf("VLine missing at (6, %d)", y)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	expected := "a  \n  b"
	if s.String() != expected {
		t.Errorf("String() = %q, expected %q", s.String(), expected)
	}

	if strings.Count(s.String(), "\n") != 1 {
		t.Error("String() should join rows with single newlines")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.Set(1, 1, 'X')

	s.Resize(8, 3)

	if s.Width() != 8 || s.Height() != 3 {
		t.Errorf("after resize: %dx%d, expected 8x3", s.Width(), s.Height())
	}
	if s.Get(1, 1) != 'X' {
		t.Error("resize should preserve content within new bounds")
	}

	// Resize to same size is a no-op
	s.Resize(8, 3)
	if s.Get(1, 1) != 'X' {
		t.Error("no-op resize should not clear content")
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")

	if s.Row(0) != "abcd" {
		t.Errorf("Row(0) = %q, expected %q", s.Row(0), "abcd")
	}
	if s.Row(5) != "    " {
		t.Errorf("out-of-bounds Row should return blank row, got %q", s.Row(5))
	}
}
