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

var circleCases = []TestCase{
	circle("r1", 0, 0, 1,
		pts(0, 1, 1, 0, 0, 1, -1, 0, 0, -1, 1, 0, 0, -1, -1, 0)),
	circle("r2", 0, 0, 2,
		pts(0, 2, 2, 0, 0, 2, -2, 0, 0, -2, 2, 0, 0, -2, -2, 0,
			1, 2, 2, 1, -1, 2, -2, 1, 1, -2, 2, -1, -1, -2, -2, -1)),
	circle("r5", 0, 0, 5, nil),
	circle("r8_offset", 3, -2, 8, nil),
}

var degenerateCases = []TestCase{
	line("step_point", "step", 3, 3, 3, 3, pts(3, 3)),
	line("dda_point", "dda", 3, 3, 3, 3, pts(3, 3)),
	line("bresenham_point", "bresenham", 3, 3, 3, 3, pts(3, 3)),
	circle("circle_r0", 2, -1, 0,
		pts(2, -1, 2, -1, 2, -1, 2, -1, 2, -1, 2, -1, 2, -1, 2, -1)),
}
