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
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestTriangleCoverage checks exact coverage values for a thin triangle.
// The triangle (0,0)→(10,0)→(10,1)→close has the diagonal edge y = x/10,
// so pixel x has coverage (2x+1)/20.
func TestTriangleCoverage(t *testing.T) {
	triangle := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	f := &filler{clip: image.Rect(0, 0, 10, 1)}
	coverage := make([]float32, 10)
	f.fill(triangle, func(y, xMin int, cov []float32) {
		if y == 0 {
			copy(coverage[xMin:], cov)
		}
	})

	const epsilon = 1e-6
	for x := range 10 {
		want := float32(2*x+1) / 20
		if math.Abs(float64(coverage[x]-want)) > epsilon {
			t.Errorf("pixel %d: coverage %.4f, want %.4f", x, coverage[x], want)
		}
	}
}

func TestRectangleCoverage(t *testing.T) {
	cases := []struct {
		name       string
		x, y, w, h float64
		want       image.Rectangle // fully covered pixels
	}{
		{"inside", 2, 3, 4, 2, image.Rect(2, 3, 6, 5)},
		{"clipped_left", -3, 1, 5, 1, image.Rect(0, 1, 2, 2)},
		{"clipped_right", 8, 8, 10, 10, image.Rect(8, 8, 10, 10)},
		{"outside", 20, 0, 3, 3, image.Rectangle{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := &filler{clip: image.Rect(0, 0, 10, 10)}
			p := (&path.Data{}).
				MoveTo(vec.Vec2{X: c.x, Y: c.y}).
				LineTo(vec.Vec2{X: c.x + c.w, Y: c.y}).
				LineTo(vec.Vec2{X: c.x + c.w, Y: c.y + c.h}).
				LineTo(vec.Vec2{X: c.x, Y: c.y + c.h}).
				Close()

			got := map[image.Point]float32{}
			f.fill(p, func(y, xMin int, cov []float32) {
				for i, v := range cov {
					got[image.Pt(xMin+i, y)] = v
				}
			})

			for y := 0; y < 10; y++ {
				for x := 0; x < 10; x++ {
					pt := image.Pt(x, y)
					want := float32(0)
					if pt.In(c.want) {
						want = 1
					}
					if got[pt] != want {
						t.Errorf("pixel %v: coverage %g, want %g", pt, got[pt], want)
					}
				}
			}
		})
	}
}

func TestHalfPixelCoverage(t *testing.T) {
	f := &filler{clip: image.Rect(0, 0, 4, 1)}
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0.5, Y: 0}).
		LineTo(vec.Vec2{X: 2.5, Y: 0}).
		LineTo(vec.Vec2{X: 2.5, Y: 1}).
		LineTo(vec.Vec2{X: 0.5, Y: 1}).
		Close()

	var xMin int
	var cov []float32
	f.fill(p, func(y, x int, c []float32) {
		xMin = x
		cov = append(cov, c...)
	})
	want := []float32{0.5, 1, 0.5}
	if xMin != 0 || len(cov) != len(want) {
		t.Fatalf("xMin %d, coverage %v", xMin, cov)
	}
	for i := range want {
		if math.Abs(float64(cov[i]-want[i])) > 1e-6 {
			t.Errorf("pixel %d: %g, want %g", i, cov[i], want[i])
		}
	}
}
