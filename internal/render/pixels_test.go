package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	buf := make([]byte, 12)
	fillBinaryRGBA(buf, []uint8{1, 0, 1}, color.White, color.Black)
	want := []byte{255, 255, 255, 255, 0, 0, 0, 255, 255, 255, 255, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("got %v, expected %v", buf, want)
	}

	short := make([]byte, 4)
	fillBinaryRGBA(short, []uint8{0, 1}, color.White, color.Black)
	if !slices.Equal(short, []byte{0, 0, 0, 255}) {
		t.Fatalf("short buffer got %v", short)
	}
}

func TestCellAt(t *testing.T) {
	if r, c, ok := CellAt(25, 7, 10, 3, 4); !ok || r != 0 || c != 2 {
		t.Fatalf("got (%d,%d,%v)", r, c, ok)
	}
	for _, p := range [][2]int{{-1, 0}, {0, 30}, {40, 0}} {
		if _, _, ok := CellAt(p[0], p[1], 10, 3, 4); ok {
			t.Fatalf("(%d,%d) should be off grid", p[0], p[1])
		}
	}
}
