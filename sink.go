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

import "fmt"

// Surface is the drawing primitive provided by the host.
//
// FillRect paints a filled width×height rectangle with its top-left corner
// at (x, y) in screen pixels. Rectangles which are partially or completely
// outside the surface must be clipped or ignored by the implementation.
type Surface interface {
	FillRect(x, y, width, height int)
}

// DrawEvent records one plotted cell, for the optional per-pixel log.
type DrawEvent struct {
	Seq   int // position in the log, starting at 0
	Point Point
}

// String formats the event as a log line, for example "Draw (3, -1)".
func (e DrawEvent) String() string {
	return fmt.Sprintf("Draw (%d, %d)", e.Point.X, e.Point.Y)
}

// pixelSink is the single place where the rasterization algorithms turn
// a logical cell into a draw call on the surface.
type pixelSink struct {
	cs      CoordinateSystem
	surface Surface
	logging bool

	points []Point
	events []DrawEvent
}

// plot records p and paints its cell.
// The log entry is written before the cell is drawn.
func (s *pixelSink) plot(p Point) {
	if s.logging {
		s.events = append(s.events, DrawEvent{Seq: len(s.events), Point: p})
	}
	s.points = append(s.points, p)
	if s.surface != nil {
		r := s.cs.ScreenRect(p)
		s.surface.FillRect(int(r.LLx), int(r.LLy), int(r.URx-r.LLx), int(r.URy-r.LLy))
	}
}
