package render

import "image/color"

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
// Cells beyond len(buf)/4 are ignored.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	onPx := [4]byte{uint8(rOn >> 8), uint8(gOn >> 8), uint8(bOn >> 8), uint8(aOn >> 8)}
	offPx := [4]byte{uint8(rOff >> 8), uint8(gOff >> 8), uint8(bOff >> 8), uint8(aOff >> 8)}
	n := min(len(cells), len(buf)/4)
	for i := 0; i < n; i++ {
		px := offPx
		if cells[i] != 0 {
			px = onPx
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}

// CellAt maps a screen position to grid coordinates for a grid drawn at the
// origin with the given scale. ok is false when the position is off the grid.
func CellAt(x, y, scale, rows, cols int) (row, col int, ok bool) {
	if scale <= 0 || x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = y/scale, x/scale
	if row >= rows || col >= cols {
		return 0, 0, false
	}
	return row, col, true
}
