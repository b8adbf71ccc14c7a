package tui

import (
	"testing"

	"github.com/vovakirdan/tui-dots/internal/dots"
)

func TestLayoutCellAt(t *testing.T) {
	l := NewLayout(6, 4, 2)

	tests := []struct {
		name string
		x, y int
		want dots.Pos
		ok   bool
	}{
		{"top-left", boardOriginX, boardOriginY, dots.P(0, 0), true},
		{"inside first cell", boardOriginX + 3, boardOriginY + 1, dots.P(0, 0), true},
		{"second column", boardOriginX + 4, boardOriginY, dots.P(0, 1), true},
		{"second row", boardOriginX, boardOriginY + 2, dots.P(1, 0), true},
		{"bottom-right", boardOriginX + 23, boardOriginY + 11, dots.P(5, 5), true},
		{"left of board", boardOriginX - 1, boardOriginY, dots.Pos{}, false},
		{"above board", boardOriginX, boardOriginY - 1, dots.Pos{}, false},
		{"right of board", boardOriginX + 24, boardOriginY, dots.Pos{}, false},
		{"below board", boardOriginX, boardOriginY + 12, dots.Pos{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := l.CellAt(tt.x, tt.y)
			if ok != tt.ok {
				t.Fatalf("CellAt(%d, %d) ok = %v, want %v", tt.x, tt.y, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("CellAt(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestLayoutCenterRoundTrip(t *testing.T) {
	l := NewLayout(5, 3, 1)

	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			p := dots.P(r, c)
			x, y := l.Center(p)
			got, ok := l.CellAt(x+l.OriginX, y+l.OriginY)
			if !ok || got != p {
				t.Errorf("CellAt(Center(%v)) = %v, %v", p, got, ok)
			}
		}
	}
}

func TestLayoutClampsCellSize(t *testing.T) {
	l := NewLayout(4, 0, -1)
	if l.CellW != 1 || l.CellH != 1 {
		t.Errorf("cell size = %dx%d, want 1x1", l.CellW, l.CellH)
	}
	if l.Width() != 4 || l.Height() != 4 {
		t.Errorf("canvas = %dx%d, want 4x4", l.Width(), l.Height())
	}
}
