package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(80, 24)
	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != (Cell{Rune: ' '}) {
				t.Fatalf("cell (%d,%d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetGetBounds(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5,5) = %q, expected 'X'", s.Get(5, 5))
	}

	for _, p := range [][2]int{{-1, 0}, {100, 0}, {0, -1}, {0, 100}} {
		s.Set(p[0], p[1], 'A')
		if s.Get(p[0], p[1]) != ' ' {
			t.Errorf("out of bounds Get(%d,%d) should be space", p[0], p[1])
		}
	}
}

func TestScreenColor(t *testing.T) {
	s := NewScreen(10, 3)
	s.SetColor(1, 1, '@', ColorYellow)
	if got := s.GetCell(1, 1); got != (Cell{Rune: '@', Color: ColorYellow}) {
		t.Errorf("GetCell = %+v", got)
	}

	s.DrawTextColor(0, 0, "hud", ColorCyan)
	if got := s.GetCell(2, 0); got.Rune != 'd' || got.Color != ColorCyan {
		t.Errorf("DrawTextColor cell = %+v", got)
	}

	s.Clear()
	if got := s.GetCell(1, 1); got.Color != ColorDefault || got.Rune != ' ' {
		t.Errorf("Clear should reset color, got %+v", got)
	}
}

func TestScreenFillAndClear(t *testing.T) {
	s := NewScreen(5, 5)
	s.Fill('#')
	if strings.Count(s.String(), "#") != 25 {
		t.Errorf("Fill should cover every cell:\n%s", s.String())
	}
	s.Clear()
	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("Clear should blank every cell:\n%s", s.String())
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")
	if row := s.Row(1); row[2:7] != "Hello" {
		t.Errorf("row 1 = %q", row)
	}

	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at the right edge")
	}

	s.DrawTextCentered(2, "Hi")
	if s.Get(9, 2) != 'H' || s.Get(10, 2) != 'i' {
		t.Errorf("centered row = %q", s.Row(2))
	}
}

func TestScreenShapes(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), '#')
	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("DrawRect missing at (%d,%d)", x, y)
			}
		}
	}
	if s.Get(1, 1) != ' ' || s.Get(5, 5) != ' ' {
		t.Error("DrawRect should not touch the outside")
	}

	s.Clear()
	s.DrawBox(NewRect(1, 1, 5, 4))
	corners := map[[2]int]rune{{1, 1}: '┌', {5, 1}: '┐', {1, 4}: '└', {5, 4}: '┘'}
	for p, r := range corners {
		if s.Get(p[0], p[1]) != r {
			t.Errorf("corner %v = %q, expected %q", p, s.Get(p[0], p[1]), r)
		}
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("box edges missing")
	}

	s.Clear()
	s.DrawHLine(2, 2, 5, '-')
	s.DrawVLine(8, 2, 4, '|')
	if s.Row(2)[2:7] != "-----" {
		t.Errorf("hline row = %q", s.Row(2))
	}
	for y := 2; y < 6; y++ {
		if s.Get(8, y) != '|' {
			t.Errorf("vline missing at y=%d", y)
		}
	}
}

func TestScreenStringAndRow(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")
	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}
	if got := s.Row(-1); got != "     " {
		t.Errorf("out of range Row = %q", got)
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(10, 10)
	s.SetColor(0, 0, 'H', ColorRed)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("size = %dx%d", s.Width(), s.Height())
	}
	s.Resize(15, 8)
	if got := s.GetCell(0, 0); got != (Cell{Rune: 'H', Color: ColorRed}) {
		t.Errorf("content lost across resize: %+v", got)
	}
	if s.Get(14, 7) != ' ' {
		t.Error("grown area should be blank")
	}
}
