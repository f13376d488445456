package render

import "image"

// drawLine rasterizes the line from a to b onto pm with the classic
// Bresenham error accumulator. H-tree segments are axis-aligned, so
// horizontal and vertical runs take the fast paths; the general walk is
// kept for arbitrary endpoints.
func drawLine(pm *Pixmap, a, b image.Point, c RGBA) {
	switch {
	case a.Y == b.Y:
		x0, x1 := order2(a.X, b.X)
		for x := x0; x <= x1; x++ {
			pm.SetPixel(x, a.Y, c)
		}
	case a.X == b.X:
		y0, y1 := order2(a.Y, b.Y)
		for y := y0; y <= y1; y++ {
			pm.SetPixel(a.X, y, c)
		}
	default:
		dx, dy := abs(b.X-a.X), abs(b.Y-a.Y)
		sx, sy := 1, 1
		if a.X > b.X {
			sx = -1
		}
		if a.Y > b.Y {
			sy = -1
		}
		// d is the doubled error term between the ideal line and the
		// pixel walk.
		d := dx - dy
		for {
			pm.SetPixel(a.X, a.Y, c)
			if a == b {
				return
			}
			e2 := 2 * d
			if e2 > -dy {
				d -= dy
				a.X += sx
			}
			if e2 < dx {
				d += dx
				a.Y += sy
			}
		}
	}
}

func order2(a, b int) (low, high int) {
	if a > b {
		return b, a
	}
	return a, b
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
