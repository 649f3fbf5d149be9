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

// Command pixgrid rasterizes a line or a circle onto a cell grid and
// writes the result as PNG or PDF.
//
// Usage:
//
//	pixgrid -algo bresenham -x0 -3 -y0 1 -x1 7 -y1 4 -scale 20 -log -o line.png
//	pixgrid -algo circle -x0 0 -y0 0 -r 6 -o circle.pdf
//
// The transcript (algorithm, optional per-cell log and elapsed time) is
// printed to standard output.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/pixgrid"
	"seehuhn.de/go/pixgrid/cmd/pixgrid/internal/config"
	"seehuhn.de/go/pixgrid/surface"
)

func main() {
	conf, err := config.Load(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if conf.Verbose {
		level = slog.LevelDebug
	}
	pixgrid.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(conf, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, message(err))
		os.Exit(1)
	}
}

// message turns an error into the text shown to the user.
func message(err error) string {
	var inputErr *pixgrid.InvalidInputError
	switch {
	case errors.As(err, &inputErr):
		return fmt.Sprintf("Invalid %s: %q is not an integer!", inputErr.Field, inputErr.Text)
	case errors.Is(err, pixgrid.ErrInvalidScale):
		return "Invalid cell size!"
	}
	return err.Error()
}

// canvas is a surface which can also draw the grid and the axes.
type canvas interface {
	pixgrid.Surface
	DrawGrid(cs pixgrid.CoordinateSystem)
	DrawAxes(cs pixgrid.CoordinateSystem)
}

func run(conf config.Config, stdout io.Writer) error {
	alg, err := pixgrid.ParseAlgorithm(conf.Algorithm)
	if err != nil {
		return err
	}
	req, err := pixgrid.ParseRequest(alg, conf.Fields(), conf.Scale, conf.Logging)
	if err != nil {
		return err
	}
	req.StepMode, err = pixgrid.ParseStepMode(conf.StepMode)
	if err != nil {
		return err
	}
	cs, err := pixgrid.NewCoordinateSystem(req.Scale, conf.Width, conf.Height)
	if err != nil {
		return err
	}

	var (
		c      canvas
		finish func() error
	)
	switch ext := strings.ToLower(filepath.Ext(conf.Output)); {
	case conf.Output == "":
		// transcript only
	case ext == ".pdf":
		page, err := surface.NewPDF(conf.Output, conf.Width, conf.Height)
		if err != nil {
			return err
		}
		c, finish = page, page.Close
	case ext == ".png":
		img := surface.NewImage(conf.Width, conf.Height)
		c = img
		finish = func() error { return writePNG(img, conf.Output) }
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}

	var target pixgrid.Surface
	if c != nil {
		c.DrawGrid(cs)
		c.DrawAxes(cs)
		target = c
	}

	res, runErr := pixgrid.Run(req, cs, target)
	if runErr == nil {
		runErr = res.WriteTranscript(stdout)
	}
	if finish != nil {
		if err := finish(); err != nil && runErr == nil {
			runErr = err
		}
	}
	if runErr != nil {
		return runErr
	}

	pixgrid.Logger().Info("done",
		slog.String("algorithm", alg.String()),
		slog.Int("cells", len(res.Points)),
		slog.String("output", conf.Output))
	return nil
}

func writePNG(img *surface.Image, fileName string) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return img.WritePNG(f)
}
