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

import "math"

// stepLine is the naive incremental line algorithm. It walks the dominant
// axis one cell at a time and evaluates the line equation for the other
// coordinate, rounding down.
type stepLine struct {
	mode StepMode
}

func (s stepLine) rasterize(p Params, plot func(Point)) {
	x0, y0, x1, y1 := p[0], p[1], p[2], p[3]

	if s.mode == StepSwapEndpoints {
		stepSwapped(x0, y0, x1, y1, plot)
		return
	}

	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	dx := x1 - x0
	dy := y1 - y0

	switch {
	case dx == 0 && dy == 0:
		plot(Point{x0, y0})
	case dx > dy:
		slope := float64(dy) / float64(dx)
		for x := x0; x <= x1; x++ {
			y := float64(y0) + slope*float64(x-x0)
			plot(Point{x, int(math.Floor(y))})
		}
	default:
		slope := float64(dx) / float64(dy)
		for y := y0; y <= y1; y++ {
			x := float64(x0) + slope*float64(y-y0)
			plot(Point{int(math.Floor(x)), y})
		}
	}
}

// stepSwapped orders the end points as a pair, so that the coordinate on
// the dominant axis increases while the slope keeps its sign.
func stepSwapped(x0, y0, x1, y1 int, plot func(Point)) {
	dx := x1 - x0
	dy := y1 - y0

	switch {
	case dx == 0 && dy == 0:
		plot(Point{x0, y0})
	case abs(dx) > abs(dy):
		if x0 > x1 {
			x0, y0, x1, y1 = x1, y1, x0, y0
		}
		slope := float64(y1-y0) / float64(x1-x0)
		for x := x0; x <= x1; x++ {
			y := float64(y0) + slope*float64(x-x0)
			plot(Point{x, int(math.Floor(y))})
		}
	default:
		if y0 > y1 {
			x0, y0, x1, y1 = x1, y1, x0, y0
		}
		slope := float64(x1-x0) / float64(y1-y0)
		for y := y0; y <= y1; y++ {
			x := float64(x0) + slope*float64(y-y0)
			plot(Point{int(math.Floor(x)), y})
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
