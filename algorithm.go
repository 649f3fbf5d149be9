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
	"strings"
)

// Algorithm selects one of the rasterization algorithms.
type Algorithm int

// These are the supported algorithms.
const (
	Step Algorithm = iota
	DDA
	BresenhamLine
	BresenhamCircle

	numAlgorithms
)

// Algorithms returns all supported algorithms, in declaration order.
func Algorithms() []Algorithm {
	res := make([]Algorithm, numAlgorithms)
	for i := range res {
		res[i] = Algorithm(i)
	}
	return res
}

// String returns the short, lower-case name used on the command line.
func (a Algorithm) String() string {
	switch a {
	case Step:
		return "step"
	case DDA:
		return "dda"
	case BresenhamLine:
		return "bresenham"
	case BresenhamCircle:
		return "circle"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// DisplayName returns the human readable name, used as transcript header.
func (a Algorithm) DisplayName() string {
	switch a {
	case Step:
		return "Step Algorithm"
	case DDA:
		return "DDA Algorithm"
	case BresenhamLine:
		return "Bresenham Algorithm Line"
	case BresenhamCircle:
		return "Bresenham Algorithm Circle"
	default:
		return a.String()
	}
}

// IsCircle reports whether the algorithm takes (xc, yc, r) parameters
// instead of two end points.
func (a Algorithm) IsCircle() bool {
	return a == BresenhamCircle
}

// ParseAlgorithm converts a name as returned by [Algorithm.String] back to
// an Algorithm. Matching is case-insensitive.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, a := range Algorithms() {
		if a.String() == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Params holds the four integer parameters of a draw request.
// Line algorithms use (x0, y0, x1, y1). The circle algorithm uses
// (xc, yc, r) and ignores the last slot.
type Params [4]int

// LineParams returns the parameters for a line from (x0, y0) to (x1, y1).
func LineParams(x0, y0, x1, y1 int) Params {
	return Params{x0, y0, x1, y1}
}

// CircleParams returns the parameters for a circle with centre (xc, yc)
// and radius r.
func CircleParams(xc, yc, r int) Params {
	return Params{xc, yc, r, 0}
}

// Line returns the end points of a line segment.
func (p Params) Line() (p0, p1 Point) {
	return Point{p[0], p[1]}, Point{p[2], p[3]}
}

// Circle returns the centre and the radius of a circle.
func (p Params) Circle() (center Point, r int) {
	return Point{p[0], p[1]}, p[2]
}

// StepMode selects how the Step algorithm orders its end points.
type StepMode int

const (
	// StepIndependentAxes sorts the x coordinates and the y coordinates
	// of the end points separately. For lines with negative slope this
	// draws the mirrored diagonal; the mode is kept for compatibility with
	// existing drawings.
	StepIndependentAxes StepMode = iota

	// StepSwapEndpoints swaps the two end points as a whole, so that the
	// coordinate along the dominant axis increases. This draws the correct
	// line for every slope.
	StepSwapEndpoints
)

func (m StepMode) String() string {
	switch m {
	case StepIndependentAxes:
		return "independent"
	case StepSwapEndpoints:
		return "swap"
	default:
		return fmt.Sprintf("StepMode(%d)", int(m))
	}
}

// ParseStepMode converts a name as returned by [StepMode.String] back to a
// StepMode.
func ParseStepMode(name string) (StepMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "independent":
		return StepIndependentAxes, nil
	case "swap":
		return StepSwapEndpoints, nil
	}
	return 0, fmt.Errorf("pixgrid: unknown step mode %q", name)
}

// rasterizer is implemented by every algorithm. Implementations call plot
// once per generated cell, in drawing order.
type rasterizer interface {
	rasterize(p Params, plot func(Point))
}

// strategy returns the implementation of a.
func strategy(a Algorithm, mode StepMode) (rasterizer, error) {
	switch a {
	case Step:
		return stepLine{mode: mode}, nil
	case DDA:
		return ddaLine{}, nil
	case BresenhamLine:
		return bresenhamLine{}, nil
	case BresenhamCircle:
		return midpointCircle{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
}
