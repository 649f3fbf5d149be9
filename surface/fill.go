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

package surface

import (
	"image"
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// edge is a non-horizontal polygon edge in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// filler computes the area coverage of polygons, using the nonzero
// winding rule. Buffers are reused between calls.
//
// For every pixel two values are accumulated:
//
//	cover: signed vertical extent of the edges crossing the pixel
//	area:  cover, weighted by the distance of the crossing from the
//	       right pixel boundary
//
// Summing cover from the left and adding area gives the covered fraction
// of each pixel.
type filler struct {
	clip image.Rectangle

	edges []edge
	cover []float32
	area  []float32
	rows  []bool // rows touched by at least one edge

	// device space bounding box of the edges
	bboxEmpty              bool
	xMin, xMax, yMin, yMax float64
}

// fill computes the coverage of p and calls emit once for every row with
// non-zero coverage. The coverage slice is only valid during the call.
// Only straight segments are supported; curve segments are ignored.
func (f *filler) fill(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := f.collectEdges(p)
	if !ok {
		return
	}
	width := xMax - xMin
	height := yMax - yMin

	size := width * height
	f.cover = slices.Grow(f.cover[:0], size)[:size]
	f.area = slices.Grow(f.area[:0], size)[:size]
	clear(f.cover)
	clear(f.area)
	f.rows = slices.Grow(f.rows[:0], height)[:height]
	clear(f.rows)

	for i := range f.edges {
		e := &f.edges[i]
		top := max(int(math.Floor(min(e.y0, e.y1))), yMin)
		bot := min(int(math.Floor(max(e.y0, e.y1)))+1, yMax)
		for y := top; y < bot; y++ {
			row := y - yMin
			off := row * width
			accumulate(e, y, f.cover[off:off+width], f.area[off:off+width], xMin, xMax)
			f.rows[row] = true
		}
	}

	for row := range height {
		if !f.rows[row] {
			continue
		}
		off := row * width
		coverage := f.cover[off : off+width]
		integrateNonZero(coverage, f.area[off:off+width])
		if trimmed, lo := trimZeros(coverage); trimmed != nil {
			emit(yMin+row, xMin+lo, trimmed)
		}
	}
}

// collectEdges builds the edge list for p and returns the bounding box of
// the edges, clamped to the clip rectangle.
func (f *filler) collectEdges(p *path.Data) (xMin, xMax, yMin, yMax int, ok bool) {
	f.edges = f.edges[:0]
	f.bboxEmpty = true

	var current, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = p.Coords[k]
			start = current
			k++
		case path.CmdLineTo:
			f.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if current != start {
				f.addEdge(current, start)
			}
			current = start
		}
	}
	if len(f.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(f.xMin)), f.clip.Min.X)
	xMax = min(int(math.Floor(f.xMax))+1, f.clip.Max.X)
	yMin = max(int(math.Floor(f.yMin)), f.clip.Min.Y)
	yMax = min(int(math.Floor(f.yMax))+1, f.clip.Max.Y)
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

func (f *filler) addEdge(p0, p1 vec.Vec2) {
	dy := p1.Y - p0.Y
	if dy > -horizontalThreshold && dy < horizontalThreshold {
		return
	}
	f.edges = append(f.edges, edge{
		x0: p0.X, y0: p0.Y,
		x1: p1.X, y1: p1.Y,
		dxdy: (p1.X - p0.X) / dy,
	})

	if f.bboxEmpty {
		f.xMin, f.xMax = min(p0.X, p1.X), max(p0.X, p1.X)
		f.yMin, f.yMax = min(p0.Y, p1.Y), max(p0.Y, p1.Y)
		f.bboxEmpty = false
		return
	}
	f.xMin = min(f.xMin, p0.X, p1.X)
	f.xMax = max(f.xMax, p0.X, p1.X)
	f.yMin = min(f.yMin, p0.Y, p1.Y)
	f.yMax = max(f.yMax, p0.Y, p1.Y)
}

// accumulate adds the contribution of e within the scanline [y, y+1) to
// the cover and area buffers, which are indexed by x - xMin.
// Edges left of the buffer are folded into the first pixel.
func accumulate(e *edge, y int, cover, area []float32, xMin, xMax int) {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(yTop-e.y0)
	xBot := e.x0 + e.dxdy*(yBot-e.y0)
	left, right := min(xTop, xBot), max(xTop, xBot)
	pixLeft := int(math.Floor(left))
	pixRight := int(math.Floor(right))

	switch {
	case pixRight < xMin:
		c := sign * float32(yBot-yTop)
		cover[0] += c
		area[0] += c
		return
	case pixLeft >= xMax:
		return
	case pixLeft == pixRight:
		addSegment(e, yTop, yBot, sign, pixLeft, cover, area, xMin, xMax)
		return
	}

	// the edge crosses several pixel columns: split at column boundaries
	dydx := 1 / e.dxdy
	for pix := pixLeft; pix <= pixRight; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		segTop := max(min(ya, yb), yTop)
		segBot := min(max(ya, yb), yBot)
		if segBot <= segTop {
			continue
		}
		addSegment(e, segTop, segBot, sign, pix, cover, area, xMin, xMax)
	}
}

// addSegment adds the part of e between yTop and yBot, which lies inside
// pixel column pix.
func addSegment(e *edge, yTop, yBot float64, sign float32, pix int, cover, area []float32, xMin, xMax int) {
	c := sign * float32(yBot-yTop)
	if pix < xMin {
		cover[0] += c
		area[0] += c
		return
	}
	if pix >= xMax {
		return
	}

	xMid := e.x0 + e.dxdy*((yTop+yBot)/2-e.y0)
	frac := xMid - float64(pix)
	i := pix - xMin
	cover[i] += c
	area[i] += c * float32(1-frac)
}

// integrateNonZero turns accumulated cover and area values into coverage,
// in place.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		cover[i] = min(raw, 1)
	}
}

// trimZeros returns the non-zero part of coverage and its offset.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

// horizontalThreshold is the minimum vertical extent of an edge.
// Flatter edges do not contribute to the coverage.
const horizontalThreshold = 1e-10
