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

// Package pixgrid converts lines and circles with integer coordinates into
// cells of a square grid.
//
// Four algorithms are provided: the naive [Step] algorithm, the digital
// differential analyzer [DDA], Bresenham's integer line algorithm
// [BresenhamLine] and the midpoint circle algorithm [BresenhamCircle].
// [Run] executes one of them for a [Request], paints every generated cell
// onto a [Surface] using a [CoordinateSystem], and reports the cells, the
// time taken and (optionally) a per-cell log.
//
// Ready-made surfaces can be found in the surface sub-package.
package pixgrid
