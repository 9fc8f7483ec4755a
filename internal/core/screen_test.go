package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("dimensions = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, '█', ColorCyan)
	if c := s.GetCell(5, 5); c.Rune != '█' || c.Color != ColorCyan {
		t.Errorf("GetCell(5, 5) = %+v, expected cyan block", c)
	}

	s.Set(5, 5, 'X')
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorDefault {
		t.Errorf("Set should reset the color, got %+v", c)
	}

	// Out of bounds writes are ignored, reads are blank.
	s.SetColored(-1, 0, 'A', ColorRed)
	s.SetColored(0, 100, 'A', ColorRed)
	if s.Get(-1, 0) != ' ' || s.GetCell(100, 0) != blank {
		t.Error("out of bounds reads should be blank")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColored(2, 1, "Hello", ColorYellow)

	for i, ch := range "Hello" {
		c := s.GetCell(2+i, 1)
		if c.Rune != ch || c.Color != ColorYellow {
			t.Errorf("expected yellow %q at (%d, 1), got %+v", ch, 2+i, c)
		}
	}

	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at the right edge")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawText(0, 0, "█▒x")
	if s.Get(0, 0) != '█' || s.Get(1, 0) != '▒' || s.Get(2, 0) != 'x' {
		t.Errorf("multibyte runes misplaced: %q", s.Row(0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorWhite)

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("centered text not at x=%d: %q", x, s.Row(2))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)

	corners := []struct {
		x, y int
		want rune
	}{
		{1, 1, '┌'},
		{5, 1, '┐'},
		{1, 4, '└'},
		{5, 4, '┘'},
	}
	for _, tc := range corners {
		if got := s.Get(tc.x, tc.y); got != tc.want {
			t.Errorf("corner (%d, %d) = %q, expected %q", tc.x, tc.y, got, tc.want)
		}
	}
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
	if s.GetCell(1, 1).Color != ColorGray {
		t.Error("box should carry its color")
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), '#', ColorRed)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("expected '#' at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
	if s.Get(1, 1) != ' ' || s.Get(5, 5) != ' ' {
		t.Error("DrawRect should not touch cells outside the rect")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawTextColored(0, 1, "BBBBB", ColorBlue)
	s.DrawText(0, 2, "CCCCC")

	if got, want := s.String(), "AAAAA\nBBBBB\nCCCCC"; got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColored(0, 0, "Hello", ColorGreen)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("dimensions = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content lost on shrink: %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") || s.GetCell(0, 0).Color != ColorGreen {
		t.Errorf("content lost on grow: %q", s.Row(0))
	}
	if s.Row(-1) != strings.Repeat(" ", 15) {
		t.Error("out of range row should be spaces")
	}
}
