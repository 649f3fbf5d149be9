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
	"strconv"
	"strings"
)

// FieldLabels returns the labels of the parameter fields used by a.
// The circle algorithm has three fields, the line algorithms four.
func FieldLabels(a Algorithm) []string {
	if a.IsCircle() {
		return []string{"x0", "y0", "R"}
	}
	return []string{"x0", "y0", "x1", "y1"}
}

// ParseRequest builds a request from the text of the parameter fields.
//
// For the circle algorithm, fields holds (xc, yc, r) and an optional
// fourth field, which is ignored. Leading and trailing white space is
// allowed. If a field is not an integer, an [*InvalidInputError] is
// returned.
func ParseRequest(a Algorithm, fields []string, scale int, logging bool) (Request, error) {
	labels := FieldLabels(a)
	if a.IsCircle() && len(fields) == 4 {
		fields = fields[:3]
	}
	if len(fields) != len(labels) {
		return Request{}, fmt.Errorf("%w: %s needs %d, got %d",
			ErrParamCount, a, len(labels), len(fields))
	}
	if scale <= 0 {
		return Request{}, fmt.Errorf("%w: %d", ErrInvalidScale, scale)
	}

	var p Params
	for i, text := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			return Request{}, &InvalidInputError{Field: labels[i], Text: text, Err: err}
		}
		p[i] = v
	}

	req := Request{
		Algorithm: a,
		Params:    p,
		Scale:     scale,
		Logging:   logging,
	}
	if err := req.Validate(); err != nil {
		return Request{}, err
	}
	return req, nil
}
