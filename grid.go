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
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// Point is a cell on the logical grid. The logical Y axis points up.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// CoordinateSystem maps logical grid cells to screen pixels.
//
// The origin is placed at the grid line nearest to (and not right of or
// below) the canvas centre, so that cell boundaries always coincide with
// the grid lines drawn at multiples of the scale.
//
// A CoordinateSystem is an immutable value. Use [CoordinateSystem.Resize]
// or [CoordinateSystem.WithScale] to obtain a recomputed one.
type CoordinateSystem struct {
	scale   int
	width   int
	height  int
	originX int
	originY int
}

// NewCoordinateSystem returns the coordinate system for a canvas of the
// given size, with scale screen pixels per logical unit.
func NewCoordinateSystem(scale, width, height int) (CoordinateSystem, error) {
	if scale <= 0 {
		return CoordinateSystem{}, fmt.Errorf("%w: %d", ErrInvalidScale, scale)
	}
	if width <= 0 || height <= 0 {
		return CoordinateSystem{}, fmt.Errorf("%w: %dx%d", ErrInvalidCanvas, width, height)
	}
	return CoordinateSystem{
		scale:   scale,
		width:   width,
		height:  height,
		originX: width / 2 / scale * scale,
		originY: height / 2 / scale * scale,
	}, nil
}

// Resize returns the coordinate system for a new canvas size.
func (cs CoordinateSystem) Resize(width, height int) (CoordinateSystem, error) {
	return NewCoordinateSystem(cs.scale, width, height)
}

// WithScale returns the coordinate system for a new scale.
func (cs CoordinateSystem) WithScale(scale int) (CoordinateSystem, error) {
	return NewCoordinateSystem(scale, cs.width, cs.height)
}

// Scale returns the number of screen pixels per logical unit.
func (cs CoordinateSystem) Scale() int { return cs.scale }

// Width returns the canvas width in screen pixels.
func (cs CoordinateSystem) Width() int { return cs.width }

// Height returns the canvas height in screen pixels.
func (cs CoordinateSystem) Height() int { return cs.height }

// Origin returns the screen position of the logical point (0, 0).
func (cs CoordinateSystem) Origin() (x, y int) {
	return cs.originX, cs.originY
}

// Matrix returns the affine map from logical coordinates to screen
// coordinates. The Y axis is flipped, since screen Y grows downwards.
func (cs CoordinateSystem) Matrix() matrix.Matrix {
	s := float64(cs.scale)
	return matrix.Matrix{s, 0, 0, -s, float64(cs.originX), float64(cs.originY)}
}

// ScreenRect returns the screen rectangle covered by the cell p.
// LLx/LLy hold the top-left corner in screen coordinates, URx/URy the
// bottom-right corner.
func (cs CoordinateSystem) ScreenRect(p Point) rect.Rect {
	// The top-left screen corner of cell (x, y) is the logical point (x, y+1).
	m := cs.Matrix()
	lx, ly := float64(p.X), float64(p.Y+1)
	x := m[0]*lx + m[2]*ly + m[4]
	y := m[1]*lx + m[3]*ly + m[5]
	s := float64(cs.scale)
	return rect.Rect{LLx: x, LLy: y, URx: x + s, URy: y + s}
}

// GridLines returns the screen positions of the vertical (xs) and
// horizontal (ys) grid lines: every multiple of the scale from 0, up to
// but excluding the canvas size.
func (cs CoordinateSystem) GridLines() (xs, ys []int) {
	for x := 0; x < cs.width; x += cs.scale {
		xs = append(xs, x)
	}
	for y := 0; y < cs.height; y += cs.scale {
		ys = append(ys, y)
	}
	return xs, ys
}

// Tick is an axis tick mark at the given screen offset from the origin.
// Value is the logical coordinate shown next to the tick.
type Tick struct {
	Offset int
	Value  int
}

// AxisTicks returns the tick marks along the positive half of each axis.
// Ticks stop two cells before the canvas edge, so that labels fit.
// The negative half mirrors these with negated offsets and values.
func (cs CoordinateSystem) AxisTicks() (xTicks, yTicks []Tick) {
	for i := 0; i <= cs.width/2-2*cs.scale; i += cs.scale {
		xTicks = append(xTicks, Tick{Offset: i, Value: i / cs.scale})
	}
	for i := 0; i <= cs.height/2-2*cs.scale; i += cs.scale {
		yTicks = append(yTicks, Tick{Offset: i, Value: i / cs.scale})
	}
	return xTicks, yTicks
}
