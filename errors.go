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
	"fmt"
)

// Sentinel errors for invalid draw requests.
var (
	// ErrInvalidScale is returned when the scale is not positive.
	ErrInvalidScale = errors.New("pixgrid: scale must be positive")

	// ErrInvalidCanvas is returned when a canvas dimension is not positive.
	ErrInvalidCanvas = errors.New("pixgrid: canvas size must be positive")

	// ErrNegativeRadius is returned for circles with r < 0.
	ErrNegativeRadius = errors.New("pixgrid: negative radius")

	// ErrUnknownAlgorithm is returned for algorithm values or names which
	// do not denote one of the supported algorithms.
	ErrUnknownAlgorithm = errors.New("pixgrid: unknown algorithm")

	// ErrParamCount is returned when the number of parameter fields does
	// not match the algorithm.
	ErrParamCount = errors.New("pixgrid: wrong number of parameters")
)

// InvalidInputError is returned when a parameter field does not hold an
// integer.
type InvalidInputError struct {
	Field string // field label, e.g. "x0" or "R"
	Text  string // the text which failed to parse
	Err   error  // the underlying conversion error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("pixgrid: invalid value %q for %s", e.Text, e.Field)
}

func (e *InvalidInputError) Unwrap() error {
	return e.Err
}
