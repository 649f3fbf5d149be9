// seehuhn.de/go/pixgrid - integer rasterization on a cell grid
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pixgrid

// bresenhamLine is Bresenham's integer line algorithm. The error term err
// tracks (scaled) distance between the plotted cell and the true line;
// at every step the axis or axes which reduce the error are advanced.
type bresenhamLine struct{}

func (bresenhamLine) rasterize(p Params, plot func(Point)) {
	x0, y0, x1, y1 := p[0], p[1], p[2], p[3]

	// dx must be a magnitude. With a signed dx, lines running to the
	// left never reach their end point.
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}

	err := dx - dy
	for {
		plot(Point{x0, y0})
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// midpointCircle is the Bresenham (midpoint) circle algorithm. It walks
// the octant from (0, r) to the diagonal and reflects every cell eightfold.
// Cells on the axes and on the diagonals are plotted more than once.
type midpointCircle struct{}

func (midpointCircle) rasterize(p Params, plot func(Point)) {
	c, r := p.Circle()

	x, y := 0, r
	d := 3 - 2*r
	for x <= y {
		plotOctants(c, x, y, plot)
		x++
		if d > 0 {
			y--
			d += 4*(x-y) + 10
		} else {
			d += 4*x + 6
		}
	}
}

// plotOctants plots the eight reflections of (x, y) around c.
func plotOctants(c Point, x, y int, plot func(Point)) {
	for _, d2 := range [2]int{1, -1} {
		for _, d1 := range [2]int{1, -1} {
			plot(Point{c.X + x*d1, c.Y + y*d2})
			plot(Point{c.X + y*d1, c.Y + x*d2})
		}
	}
}
