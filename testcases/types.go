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

// Package testcases holds named rasterization examples, shared by the
// tests and by the export and genpdf commands.
package testcases

// TestCase defines a single rasterization example.
type TestCase struct {
	Name      string // lowercase a-z, 0-9 and _ only
	Algorithm string // "step", "dda", "bresenham" or "circle"
	Params    [4]int // (x0, y0, x1, y1), or (xc, yc, r, 0) for circles
	StepMode  string // "independent" (or empty) or "swap"; step only

	Width  int // canvas width in pixels
	Height int // canvas height in pixels
	Scale  int // pixels per grid cell

	// Want lists the expected cells in drawing order.
	// Nil means that only general properties are checked.
	Want []Pt
}

// Pt is a grid cell.
type Pt struct {
	X, Y int
}

// pts builds a point list from x, y pairs.
func pts(xy ...int) []Pt {
	res := make([]Pt, len(xy)/2)
	for i := range res {
		res[i] = Pt{xy[2*i], xy[2*i+1]}
	}
	return res
}

// line returns a test case on the default 400x400 canvas with scale 20.
func line(name, alg string, x0, y0, x1, y1 int, want []Pt) TestCase {
	return TestCase{
		Name:      name,
		Algorithm: alg,
		Params:    [4]int{x0, y0, x1, y1},
		Width:     400,
		Height:    400,
		Scale:     20,
		Want:      want,
	}
}

// circle returns a circle test case on the default canvas.
func circle(name string, xc, yc, r int, want []Pt) TestCase {
	return TestCase{
		Name:      name,
		Algorithm: "circle",
		Params:    [4]int{xc, yc, r, 0},
		Width:     400,
		Height:    400,
		Scale:     20,
		Want:      want,
	}
}
