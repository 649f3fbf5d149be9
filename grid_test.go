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
	"errors"
	"slices"
	"testing"

	"seehuhn.de/go/geom/rect"
)

func TestOriginOnGridLine(t *testing.T) {
	cases := []struct {
		scale, width, height int
		ox, oy               int
	}{
		{20, 400, 400, 200, 200},
		{20, 410, 390, 200, 180},
		{30, 400, 400, 180, 180},
		{100, 150, 99, 0, 0},
		{1, 7, 9, 3, 4},
	}
	for _, c := range cases {
		cs, err := NewCoordinateSystem(c.scale, c.width, c.height)
		if err != nil {
			t.Fatal(err)
		}
		ox, oy := cs.Origin()
		if ox != c.ox || oy != c.oy {
			t.Errorf("scale %d, %dx%d: origin (%d, %d), want (%d, %d)",
				c.scale, c.width, c.height, ox, oy, c.ox, c.oy)
		}
		if ox%c.scale != 0 || oy%c.scale != 0 {
			t.Errorf("origin (%d, %d) not on a grid line", ox, oy)
		}
	}
}

func TestNewCoordinateSystemErrors(t *testing.T) {
	if _, err := NewCoordinateSystem(0, 400, 400); !errors.Is(err, ErrInvalidScale) {
		t.Errorf("scale 0: got %v", err)
	}
	if _, err := NewCoordinateSystem(-5, 400, 400); !errors.Is(err, ErrInvalidScale) {
		t.Errorf("scale -5: got %v", err)
	}
	if _, err := NewCoordinateSystem(20, 0, 400); !errors.Is(err, ErrInvalidCanvas) {
		t.Errorf("width 0: got %v", err)
	}
}

func TestScreenRect(t *testing.T) {
	cs, err := NewCoordinateSystem(20, 400, 400)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		p    Point
		want rect.Rect
	}{
		{Point{0, 0}, rect.Rect{LLx: 200, LLy: 180, URx: 220, URy: 200}},
		{Point{1, 2}, rect.Rect{LLx: 220, LLy: 140, URx: 240, URy: 160}},
		{Point{-1, -1}, rect.Rect{LLx: 180, LLy: 200, URx: 200, URy: 220}},
	}
	for _, c := range cases {
		got := cs.ScreenRect(c.p)
		if got != c.want {
			t.Errorf("ScreenRect(%v) = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestRecompute(t *testing.T) {
	cs, err := NewCoordinateSystem(20, 400, 400)
	if err != nil {
		t.Fatal(err)
	}

	big, err := cs.WithScale(30)
	if err != nil {
		t.Fatal(err)
	}
	if ox, oy := big.Origin(); ox != 180 || oy != 180 {
		t.Errorf("after WithScale(30): origin (%d, %d)", ox, oy)
	}

	wide, err := cs.Resize(600, 400)
	if err != nil {
		t.Fatal(err)
	}
	if ox, _ := wide.Origin(); ox != 300 {
		t.Errorf("after Resize: origin x %d", ox)
	}

	// the receiver is unchanged
	if ox, oy := cs.Origin(); ox != 200 || oy != 200 || cs.Scale() != 20 {
		t.Errorf("receiver modified: scale %d, origin (%d, %d)", cs.Scale(), ox, oy)
	}
}

func TestGridLines(t *testing.T) {
	cs, err := NewCoordinateSystem(25, 100, 60)
	if err != nil {
		t.Fatal(err)
	}
	xs, ys := cs.GridLines()
	if want := []int{0, 25, 50, 75}; !slices.Equal(xs, want) {
		t.Errorf("xs = %v, want %v", xs, want)
	}
	if want := []int{0, 25, 50}; !slices.Equal(ys, want) {
		t.Errorf("ys = %v, want %v", ys, want)
	}
}

func TestAxisTicks(t *testing.T) {
	cs, err := NewCoordinateSystem(20, 200, 120)
	if err != nil {
		t.Fatal(err)
	}
	xTicks, yTicks := cs.AxisTicks()
	want := []Tick{{0, 0}, {20, 1}, {40, 2}, {60, 3}}
	if !slices.Equal(xTicks, want) {
		t.Errorf("xTicks = %v, want %v", xTicks, want)
	}
	want = []Tick{{0, 0}, {20, 1}}
	if !slices.Equal(yTicks, want) {
		t.Errorf("yTicks = %v, want %v", yTicks, want)
	}
}
