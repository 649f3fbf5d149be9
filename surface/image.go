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
	"image/color"
	"image/png"
	"io"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pixgrid"
)

// Default colours of the Image surface.
var (
	Background = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	CellColor  = color.RGBA{A: 255}
	GridColor  = color.RGBA{R: 192, G: 192, B: 192, A: 255}
	AxisColor  = color.RGBA{A: 255}
)

// Image is a raster surface. Cells are painted with area coverage, so
// that rectangles with fractional coordinates (as produced by scaled
// output) get blended edges.
//
// An Image is not safe for concurrent use.
type Image struct {
	// Color is used by FillRect.
	Color color.RGBA

	img *image.RGBA
	f   filler
	pth path.Data
}

// NewImage returns a surface of the given size, filled with the
// background colour.
func NewImage(width, height int) *Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = Background.R
		img.Pix[i+1] = Background.G
		img.Pix[i+2] = Background.B
		img.Pix[i+3] = Background.A
	}
	s := &Image{
		Color: CellColor,
		img:   img,
	}
	s.f.clip = img.Bounds()
	return s
}

// FillRect implements the [pixgrid.Surface] interface.
// Parts outside the image are clipped.
func (s *Image) FillRect(x, y, width, height int) {
	s.fillRect(float64(x), float64(y), float64(width), float64(height), s.Color)
}

func (s *Image) fillRect(x, y, w, h float64, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	s.pth.Cmds = s.pth.Cmds[:0]
	s.pth.Coords = s.pth.Coords[:0]
	s.pth.MoveTo(vec.Vec2{X: x, Y: y}).
		LineTo(vec.Vec2{X: x + w, Y: y}).
		LineTo(vec.Vec2{X: x + w, Y: y + h}).
		LineTo(vec.Vec2{X: x, Y: y + h}).
		Close()
	s.fillPath(&s.pth, col)
}

// fillPath paints the interior of p, blending col by coverage.
func (s *Image) fillPath(p *path.Data, col color.RGBA) {
	s.f.fill(p, func(y, xMin int, coverage []float32) {
		row := s.img.Pix[s.img.PixOffset(xMin, y):]
		for i, c := range coverage {
			blend(row[4*i:4*i+4], col, c)
		}
	})
}

// blend composites col over the pixel px with the given coverage.
func blend(px []uint8, col color.RGBA, coverage float32) {
	if coverage >= 1 {
		px[0], px[1], px[2], px[3] = col.R, col.G, col.B, col.A
		return
	}
	mix := func(dst, src uint8) uint8 {
		return uint8(float32(dst)*(1-coverage) + float32(src)*coverage + 0.5)
	}
	px[0] = mix(px[0], col.R)
	px[1] = mix(px[1], col.G)
	px[2] = mix(px[2], col.B)
	px[3] = mix(px[3], col.A)
}

// DrawGrid draws one pixel wide lines at every multiple of the scale.
func (s *Image) DrawGrid(cs pixgrid.CoordinateSystem) {
	xs, ys := cs.GridLines()
	w, h := float64(cs.Width()), float64(cs.Height())
	for _, x := range xs {
		s.fillRect(float64(x), 0, 1, h, GridColor)
	}
	for _, y := range ys {
		s.fillRect(0, float64(y), w, 1, GridColor)
	}
}

// DrawAxes draws the coordinate axes through the origin, with tick marks
// and labels in logical units.
func (s *Image) DrawAxes(cs pixgrid.CoordinateSystem) {
	ox, oy := cs.Origin()
	w, h := cs.Width(), cs.Height()
	s.hline(0, w, oy)
	s.vline(ox, 0, h)
	s.label(w-20, oy-10, "X")
	s.label(ox+10, 20, "Y")

	xTicks, yTicks := cs.AxisTicks()
	for _, t := range xTicks {
		s.vline(ox+t.Offset, oy-5, oy+5)
		s.vline(ox-t.Offset, oy-5, oy+5)
		if t.Value != 0 {
			s.label(ox+t.Offset-5, oy+20, strconv.Itoa(t.Value))
			s.label(ox-t.Offset-10, oy+20, strconv.Itoa(-t.Value))
		}
	}
	for _, t := range yTicks {
		s.hline(ox-5, ox+5, oy-t.Offset)
		s.hline(ox-5, ox+5, oy+t.Offset)
		if t.Value != 0 {
			s.label(ox+10, oy-t.Offset+5, strconv.Itoa(t.Value))
			s.label(ox+10, oy+t.Offset+5, strconv.Itoa(-t.Value))
		}
	}
}

// hline draws a horizontal axis line covering pixels x0..x1 of row y.
func (s *Image) hline(x0, x1, y int) {
	s.fillRect(float64(x0), float64(y), float64(x1-x0+1), 1, AxisColor)
}

// vline draws a vertical axis line covering pixels y0..y1 of column x.
func (s *Image) vline(x, y0, y1 int) {
	s.fillRect(float64(x), float64(y0), 1, float64(y1-y0+1), AxisColor)
}

// label draws text with its baseline starting at (x, y).
func (s *Image) label(x, y int, text string) {
	d := &font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(AxisColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// RGBA returns the underlying image.
func (s *Image) RGBA() *image.RGBA {
	return s.img
}

// WritePNG encodes the image as PNG.
func (s *Image) WritePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}
