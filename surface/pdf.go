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
	"log/slog"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/pixgrid"
)

// PDF is a surface which writes a single-page PDF file. One PDF point
// corresponds to one screen pixel, and the page uses screen orientation
// with the origin in the top-left corner.
//
// Call Close to finish the file.
type PDF struct {
	page     *document.Page
	fileName string
	fill     color.Color
}

// NewPDF creates the file fileName and returns a surface of the given
// size which draws into it.
func NewPDF(fileName string, width, height int) (*PDF, error) {
	paper := &pdf.Rectangle{
		URx: float64(width),
		URy: float64(height),
	}
	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}

	// PDF user space has its origin at the bottom left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(height)})

	s := &PDF{
		page:     page,
		fileName: fileName,
		fill:     color.DeviceGray(0),
	}
	page.SetFillColor(s.fill)
	return s, nil
}

// FillRect implements the [pixgrid.Surface] interface.
func (s *PDF) FillRect(x, y, width, height int) {
	s.page.Rectangle(float64(x), float64(y), float64(width), float64(height))
	s.page.Fill()
}

// DrawGrid strokes the grid lines at every multiple of the scale.
func (s *PDF) DrawGrid(cs pixgrid.CoordinateSystem) {
	xs, ys := cs.GridLines()
	w, h := float64(cs.Width()), float64(cs.Height())

	s.page.SetStrokeColor(color.DeviceGray(0.75))
	s.page.SetLineWidth(1)
	s.page.SetLineCap(graphics.LineCapButt)
	for _, x := range xs {
		// centre the one unit wide line on the pixel column
		s.page.MoveTo(float64(x)+0.5, 0)
		s.page.LineTo(float64(x)+0.5, h)
	}
	for _, y := range ys {
		s.page.MoveTo(0, float64(y)+0.5)
		s.page.LineTo(w, float64(y)+0.5)
	}
	s.page.Stroke()
}

// DrawAxes strokes the coordinate axes and their tick marks.
// Tick labels are not drawn.
func (s *PDF) DrawAxes(cs pixgrid.CoordinateSystem) {
	ox, oy := cs.Origin()
	x0, y0 := float64(ox)+0.5, float64(oy)+0.5

	s.page.SetStrokeColor(color.DeviceGray(0))
	s.page.SetLineWidth(1)
	s.page.SetLineCap(graphics.LineCapButt)
	s.page.MoveTo(0, y0)
	s.page.LineTo(float64(cs.Width()), y0)
	s.page.MoveTo(x0, 0)
	s.page.LineTo(x0, float64(cs.Height()))

	xTicks, yTicks := cs.AxisTicks()
	for _, t := range xTicks {
		for _, x := range []float64{x0 + float64(t.Offset), x0 - float64(t.Offset)} {
			s.page.MoveTo(x, y0-5)
			s.page.LineTo(x, y0+5)
		}
	}
	for _, t := range yTicks {
		for _, y := range []float64{y0 - float64(t.Offset), y0 + float64(t.Offset)} {
			s.page.MoveTo(x0-5, y)
			s.page.LineTo(x0+5, y)
		}
	}
	s.page.Stroke()

	// restore the colour used for cells
	s.page.SetFillColor(s.fill)
}

// Close writes the remaining data and closes the file.
func (s *PDF) Close() error {
	err := s.page.Close()
	if err != nil {
		pixgrid.Logger().Warn("cannot write PDF",
			slog.String("file", s.fileName),
			slog.Any("error", err))
	}
	return err
}
