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
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/pixgrid"
)

func newCS(t *testing.T, scale, width, height int) pixgrid.CoordinateSystem {
	t.Helper()
	cs, err := pixgrid.NewCoordinateSystem(scale, width, height)
	if err != nil {
		t.Fatal(err)
	}
	return cs
}

func countColor(img *image.RGBA, r image.Rectangle, col color.RGBA) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y) == col {
				n++
			}
		}
	}
	return n
}

func TestImageZeroRadiusCircle(t *testing.T) {
	cs := newCS(t, 20, 400, 400)
	s := NewImage(400, 400)
	req := pixgrid.Request{
		Algorithm: pixgrid.BresenhamCircle,
		Params:    pixgrid.CircleParams(0, 0, 0),
	}
	if _, err := pixgrid.Run(req, cs, s); err != nil {
		t.Fatal(err)
	}

	img := s.RGBA()
	if n := countColor(img, img.Bounds(), CellColor); n != 20*20 {
		t.Errorf("%d painted pixels, want %d", n, 20*20)
	}
	if n := countColor(img, image.Rect(200, 180, 220, 200), CellColor); n != 20*20 {
		t.Errorf("cell (0, 0) has %d painted pixels", n)
	}
}

func TestImageLine(t *testing.T) {
	cs := newCS(t, 10, 100, 100)
	s := NewImage(100, 100)
	req := pixgrid.Request{
		Algorithm: pixgrid.BresenhamLine,
		Params:    pixgrid.LineParams(-2, -2, 2, 2),
	}
	res, err := pixgrid.Run(req, cs, s)
	if err != nil {
		t.Fatal(err)
	}

	img := s.RGBA()
	for _, p := range res.Points {
		r := cs.ScreenRect(p)
		cell := image.Rect(int(r.LLx), int(r.LLy), int(r.URx), int(r.URy))
		if n := countColor(img, cell, CellColor); n != 100 {
			t.Errorf("cell %v: %d of 100 pixels painted", p, n)
		}
	}
	if n := countColor(img, img.Bounds(), CellColor); n != 100*len(res.Points) {
		t.Errorf("%d pixels painted outside the cells", n-100*len(res.Points))
	}
}

func TestImageClipsOffCanvasCells(t *testing.T) {
	s := NewImage(50, 50)
	s.FillRect(-30, -30, 20, 20)
	s.FillRect(45, 45, 20, 20)
	s.FillRect(200, 0, 20, 20)

	img := s.RGBA()
	if n := countColor(img, img.Bounds(), CellColor); n != 25 {
		t.Errorf("%d pixels painted, want 25", n)
	}
}

func TestImageGrid(t *testing.T) {
	cs := newCS(t, 25, 100, 60)
	s := NewImage(100, 60)
	s.DrawGrid(cs)

	img := s.RGBA()
	for _, pt := range []image.Point{{0, 10}, {25, 10}, {75, 59}, {10, 50}} {
		if c := img.RGBAAt(pt.X, pt.Y); c != GridColor {
			t.Errorf("pixel %v: %v, want grid colour", pt, c)
		}
	}
	for _, pt := range []image.Point{{10, 10}, {26, 26}, {99, 59}} {
		if c := img.RGBAAt(pt.X, pt.Y); c != Background {
			t.Errorf("pixel %v: %v, want background", pt, c)
		}
	}
}

func TestImageAxes(t *testing.T) {
	cs := newCS(t, 20, 400, 400)
	s := NewImage(400, 400)
	s.DrawAxes(cs)

	img := s.RGBA()
	for _, pt := range []image.Point{{200, 10}, {200, 390}, {10, 200}, {390, 200}, {240, 195}, {205, 160}} {
		if c := img.RGBAAt(pt.X, pt.Y); c != AxisColor {
			t.Errorf("pixel %v: %v, want axis colour", pt, c)
		}
	}

	// the "X" caption sits above the axis, near the right edge
	if n := countColor(img, image.Rect(380, 178, 390, 192), AxisColor); n == 0 {
		t.Error("axis caption missing")
	}
}

func TestImageWritePNG(t *testing.T) {
	s := NewImage(30, 20)
	s.FillRect(0, 0, 10, 10)

	buf := &bytes.Buffer{}
	if err := s.WritePNG(buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 30 || b.Dy() != 20 {
		t.Errorf("decoded size %v", b)
	}
}

func TestRecorderZeroRadius(t *testing.T) {
	cs := newCS(t, 20, 400, 400)
	rec := &Recorder{}
	req := pixgrid.Request{
		Algorithm: pixgrid.BresenhamCircle,
		Params:    pixgrid.CircleParams(5, 5, 0),
	}
	if _, err := pixgrid.Run(req, cs, rec); err != nil {
		t.Fatal(err)
	}
	if len(rec.Rects()) != 8 {
		t.Errorf("%d draw calls, want 8", len(rec.Rects()))
	}
	if rec.Distinct() != 1 {
		t.Errorf("%d distinct cells, want 1", rec.Distinct())
	}

	rec.Reset()
	if len(rec.Rects()) != 0 {
		t.Error("Reset kept rectangles")
	}
}

func TestPDF(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "line.pdf")
	cs := newCS(t, 20, 200, 200)
	s, err := NewPDF(fileName, 200, 200)
	if err != nil {
		t.Fatal(err)
	}
	s.DrawGrid(cs)
	s.DrawAxes(cs)
	req := pixgrid.Request{
		Algorithm: pixgrid.DDA,
		Params:    pixgrid.LineParams(-3, -1, 4, 2),
	}
	if _, err := pixgrid.Run(req, cs, s); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(fileName)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("not a PDF file: %q", data[:min(len(data), 8)])
	}
}
