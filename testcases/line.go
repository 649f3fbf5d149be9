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

package testcases

var stepCases = []TestCase{
	line("shallow", "step", 0, 0, 5, 2,
		pts(0, 0, 1, 0, 2, 0, 3, 1, 4, 1, 5, 2)),
	line("steep", "step", -1, -1, 2, 5,
		pts(-1, -1, -1, 0, 0, 1, 0, 2, 1, 3, 1, 4, 2, 5)),
	line("horizontal", "step", 4, 1, -2, 1,
		pts(-2, 1, -1, 1, 0, 1, 1, 1, 2, 1, 3, 1, 4, 1)),
	// Sorting x and y separately turns the falling diagonal into a
	// rising one.
	line("antidiagonal", "step", 0, 3, 3, 0,
		pts(0, 0, 1, 1, 2, 2, 3, 3)),
	func() TestCase {
		tc := line("antidiagonal_swap", "step", 0, 3, 3, 0,
			pts(3, 0, 2, 1, 1, 2, 0, 3))
		tc.StepMode = "swap"
		return tc
	}(),
}

var ddaCases = []TestCase{
	// y takes the values 0, 0.5, 1, 1.5, 2; ties round to even.
	line("half_steps", "dda", 0, 0, 4, 2,
		pts(0, 0, 1, 0, 2, 1, 3, 2, 4, 2)),
	line("shallow", "dda", 0, 0, 5, 2,
		pts(0, 0, 1, 0, 2, 1, 3, 1, 4, 2, 5, 2)),
	line("negative", "dda", 0, 0, -4, -2,
		pts(0, 0, -1, 0, -2, -1, -3, -2, -4, -2)),
	line("vertical_down", "dda", 2, 7, 2, 3,
		pts(2, 7, 2, 6, 2, 5, 2, 4, 2, 3)),
	line("long", "dda", -9, -4, 8, 7, nil),
}

var bresenhamCases = []TestCase{
	line("diagonal", "bresenham", 0, 0, 3, 3,
		pts(0, 0, 1, 1, 2, 2, 3, 3)),
	line("shallow", "bresenham", 0, 0, 5, 2,
		pts(0, 0, 1, 0, 2, 1, 3, 1, 4, 2, 5, 2)),
	line("reverse", "bresenham", 5, 2, 0, 0,
		pts(5, 2, 4, 2, 3, 1, 2, 1, 1, 0, 0, 0)),
	line("steep_left", "bresenham", 0, 0, -2, 5,
		pts(0, 0, 0, 1, -1, 2, -1, 3, -2, 4, -2, 5)),
	line("long", "bresenham", -9, -4, 8, 7, nil),
}
