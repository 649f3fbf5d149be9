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

// Package surface provides drawing surfaces for [pixgrid.Run].
//
// [Image] paints into an RGBA image which can be saved as PNG, [PDF]
// writes a vector PDF page and [Recorder] only remembers the rectangles.
package surface

import "image"

// Recorder is a surface which records all FillRect calls.
type Recorder struct {
	rects []image.Rectangle
}

// FillRect implements the [pixgrid.Surface] interface.
func (r *Recorder) FillRect(x, y, width, height int) {
	r.rects = append(r.rects, image.Rect(x, y, x+width, y+height))
}

// Rects returns the recorded rectangles in call order.
func (r *Recorder) Rects() []image.Rectangle {
	return r.rects
}

// Distinct returns the number of different rectangles recorded.
func (r *Recorder) Distinct() int {
	seen := make(map[image.Rectangle]struct{}, len(r.rects))
	for _, rect := range r.rects {
		seen[rect] = struct{}{}
	}
	return len(seen)
}

// Reset forgets all recorded rectangles.
func (r *Recorder) Reset() {
	r.rects = r.rects[:0]
}
