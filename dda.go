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

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// ddaLine is the digital differential analyzer. Both coordinates advance
// by a fixed floating point increment per step, and each position is
// rounded to the nearest cell. Ties are rounded to even.
type ddaLine struct{}

func (ddaLine) rasterize(p Params, plot func(Point)) {
	p0, p1 := p.Line()
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		plot(p0)
		return
	}

	n := float64(steps)
	inc := vec.Vec2{X: float64(dx) / n, Y: float64(dy) / n}
	pos := vec.Vec2{X: float64(p0.X), Y: float64(p0.Y)}
	for range steps + 1 {
		plot(Point{roundCoord(pos.X), roundCoord(pos.Y)})
		pos = pos.Add(inc)
	}
}

// roundCoord rounds to the nearest integer, with ties going to the even
// neighbour.
func roundCoord(x float64) int {
	return int(math.RoundToEven(x))
}
