package raster

import "slices"

// ColorFunc picks the color for a boundary point from its local octant
// offset (x, y) relative to the circle's center. It must be a pure
// function so the same radius always paints the same ring.
type ColorFunc func(x, y int) RGB

// DefaultColors is the classic ring gradient: red tracks the x offset,
// green the y offset, blue the inverse of x.
func DefaultColors(x, y int) RGB {
	return RGB{R: uint8(x), G: uint8(y), B: 255 - uint8(x)}
}

// DrawRing draws a one-pixel-wide circle outline of radius r centered at
// (cx, cy) using the midpoint circle algorithm: integer arithmetic only,
// one octant walked, the other seven filled in by symmetry. Points that
// fall off the canvas are discarded, never an error.
func DrawRing(buf *Buffer, cx, cy, r int, rule ColorFunc) {
	if r < 1 {
		return
	}
	x, y := 0, r
	d := 3 - 2*r
	for y >= x {
		plotOctants(buf, cx, cy, x, y, rule(x, y))
		if d > 0 {
			y--
			d += 4*(x-y) + 10
		} else {
			d += 4*x + 6
		}
		x++
	}
}

// plotOctants writes the eight reflections of (x, y) around the center.
// When x == 0 or x == y some reflections coincide; rewriting the same
// pixel with the same color is harmless.
func plotOctants(buf *Buffer, cx, cy, x, y int, c RGB) {
	set := func(px, py int) {
		if buf.In(px, py) {
			buf.Set(px, py, c)
		}
	}
	set(cx+x, cy+y)
	set(cx-x, cy+y)
	set(cx+x, cy-y)
	set(cx-x, cy-y)
	set(cx+y, cy+x)
	set(cx-y, cy+x)
	set(cx+y, cy-x)
	set(cx-y, cy-x)
}

// DrawRings draws one ring per radius, in ascending radius order so the
// result is deterministic. Non-positive radii are skipped.
func DrawRings(buf *Buffer, cx, cy int, radii []int, rule ColorFunc) {
	sorted := slices.Clone(radii)
	slices.Sort(sorted)
	for _, r := range sorted {
		DrawRing(buf, cx, cy, r, rule)
	}
}
