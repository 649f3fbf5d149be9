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
	"io"
	"log/slog"
	"time"
)

// Request describes one draw operation.
type Request struct {
	Algorithm Algorithm
	Params    Params

	// Scale is the number of screen pixels per logical unit.
	// If zero, the scale of the coordinate system passed to Run is used.
	Scale int

	// Logging enables the per-cell "Draw (x, y)" log in the result.
	Logging bool

	// StepMode only affects the Step algorithm.
	StepMode StepMode
}

// Validate checks the request for errors which must be reported before
// anything is drawn.
func (req Request) Validate() error {
	if req.Algorithm < 0 || req.Algorithm >= numAlgorithms {
		return fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(req.Algorithm))
	}
	if req.Scale < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidScale, req.Scale)
	}
	if req.Algorithm.IsCircle() {
		if _, r := req.Params.Circle(); r < 0 {
			return fmt.Errorf("%w: %d", ErrNegativeRadius, r)
		}
	}
	return nil
}

// Result is the outcome of a draw request.
type Result struct {
	Algorithm Algorithm

	// Points lists the plotted cells in drawing order. Cells may repeat.
	Points []Point

	// Elapsed is the wall-clock time spent inside the algorithm.
	Elapsed time.Duration

	// Events is the per-cell log. It is empty unless logging was enabled.
	Events []DrawEvent
}

// Micros returns the elapsed time in whole microseconds.
func (r *Result) Micros() int64 {
	return r.Elapsed.Microseconds()
}

// Lines returns the log lines: one "Draw (x, y)" line per event, followed
// by the "Time: <n> µs" summary.
func (r *Result) Lines() []string {
	lines := make([]string, 0, len(r.Events)+1)
	for _, e := range r.Events {
		lines = append(lines, e.String())
	}
	return append(lines, fmt.Sprintf("Time: %d µs", r.Micros()))
}

// WriteTranscript writes the algorithm name as a header line, followed by
// the lines returned by [Result.Lines].
func (r *Result) WriteTranscript(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s:\n", r.Algorithm.DisplayName()); err != nil {
		return err
	}
	for _, line := range r.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Run rasterizes the request onto the surface and measures the time taken.
//
// Invalid requests are rejected before any cell is drawn. Cells drawn by
// earlier calls are left untouched: rasterization only ever adds to the
// surface. The surface may be nil, in which case only the result is
// computed.
//
// Calls to Run for the same surface must not overlap.
func Run(req Request, cs CoordinateSystem, surface Surface) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.Scale != 0 && req.Scale != cs.Scale() {
		var err error
		cs, err = cs.WithScale(req.Scale)
		if err != nil {
			return nil, err
		}
	}
	alg, err := strategy(req.Algorithm, req.StepMode)
	if err != nil {
		return nil, err
	}

	sink := &pixelSink{
		cs:      cs,
		surface: surface,
		logging: req.Logging,
	}
	start := time.Now()
	alg.rasterize(req.Params, sink.plot)
	elapsed := time.Since(start)

	res := &Result{
		Algorithm: req.Algorithm,
		Points:    sink.points,
		Elapsed:   elapsed,
		Events:    sink.events,
	}
	Logger().Debug("rasterized",
		slog.String("algorithm", req.Algorithm.String()),
		slog.Any("params", req.Params),
		slog.Int("scale", cs.Scale()),
		slog.Int("points", len(res.Points)),
		slog.Duration("elapsed", elapsed))
	return res, nil
}

// Rasterize returns the cells generated by an algorithm, without drawing
// anything.
func Rasterize(a Algorithm, p Params, mode StepMode) ([]Point, error) {
	req := Request{Algorithm: a, Params: p, StepMode: mode}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	alg, err := strategy(a, mode)
	if err != nil {
		return nil, err
	}
	var points []Point
	alg.rasterize(p, func(pt Point) {
		points = append(points, pt)
	})
	return points, nil
}
