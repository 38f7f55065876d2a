package viz

import (
	"strings"
	"testing"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1)

	c.Set(0, 0)
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected dot 1, got %U", c.Grid[0][0])
	}
	c.Set(1, 3)
	if c.Grid[0][0] != 0x2881 {
		t.Errorf("expected dots 1 and 8, got %U", c.Grid[0][0])
	}
	if !c.IsSet(0, 0) || c.IsSet(1, 0) {
		t.Error("IsSet reported the wrong cells")
	}
	if strings.Trim(NewCanvas(2, 1).String(), "\u2800\n") != "" {
		t.Error("new canvas is not blank")
	}
}

func TestCanvasBounds(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(4, 0)
	c.Set(0, 8)

	for row := range c.Grid {
		for col := range c.Grid[row] {
			if c.IsSet(col, row) {
				t.Errorf("out-of-bounds write landed at (%d, %d)", col, row)
			}
		}
	}
	if c.IsSet(5, 5) {
		t.Error("IsSet outside the canvas should be false")
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(4, 1)
	c.DrawLine(0, 0, 7, 0)

	for col := 0; col < 4; col++ {
		if c.Grid[0][col] != 0x2809 {
			t.Errorf("col %d: expected top row dots, got %U", col, c.Grid[0][col])
		}
	}
}

func TestCanvasDrawDot(t *testing.T) {
	c := NewCanvas(3, 2)
	c.DrawDot(2, 3, 1)

	if !c.IsSet(0, 0) || !c.IsSet(1, 1) {
		t.Error("dot did not cover its neighbourhood")
	}
	w, h := c.PixelSize()
	if w != 6 || h != 8 {
		t.Errorf("PixelSize = %dx%d, want 6x8", w, h)
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("nonexistent").Name != "classic" {
		t.Error("unknown theme should fall back to classic")
	}
	if !HasTheme("ocean") || HasTheme("nonexistent") {
		t.Error("HasTheme mismatch")
	}
	if NextTheme("sunset").Name != "classic" {
		t.Error("NextTheme should wrap around")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("ThemeNames length mismatch")
	}
}
