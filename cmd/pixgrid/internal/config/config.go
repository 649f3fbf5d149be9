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

// Package config reads the settings of the pixgrid command from a JSON
// file and the command line. Flags which are given explicitly override
// values from the file.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Config holds the settings for one drawing.
type Config struct {
	Algorithm string // "step", "dda", "bresenham" or "circle"

	// X0, Y0, X1, Y1 hold the parameter fields as text. For circles, X1
	// holds the radius and Y1 is ignored.
	X0, Y0, X1, Y1 string

	Scale    int // pixels per grid cell
	Width    int // canvas width in pixels
	Height   int // canvas height in pixels
	Logging  bool
	StepMode string // "independent" or "swap"

	// Output is the name of the PNG or PDF file to write.
	// If empty, only the transcript is printed.
	Output string

	Verbose bool `json:"-"`
}

// Default returns the settings used when neither the file nor the command
// line provide a value.
func Default() Config {
	return Config{
		Algorithm: "step",
		X0:        "0",
		Y0:        "0",
		X1:        "0",
		Y1:        "0",
		Scale:     20,
		Width:     400,
		Height:    400,
	}
}

// Fields returns the parameter fields in order x0, y0, x1, y1.
func (c Config) Fields() []string {
	return []string{c.X0, c.Y0, c.X1, c.Y1}
}

// Load parses the command line arguments (without the program name).
// The configuration file named by -f is read first; a missing file is
// not an error.
func Load(args []string, stderr io.Writer) (Config, error) {
	flags := flag.NewFlagSet("pixgrid", flag.ContinueOnError)
	flags.SetOutput(stderr)

	var fromFlags Config
	confFile := flags.String("f", "pixgrid.json", "config filename")
	flags.StringVar(&fromFlags.Algorithm, "algo", "", "algorithm: step, dda, bresenham or circle")
	flags.StringVar(&fromFlags.X0, "x0", "", "x coordinate of the start point or centre")
	flags.StringVar(&fromFlags.Y0, "y0", "", "y coordinate of the start point or centre")
	flags.StringVar(&fromFlags.X1, "x1", "", "x coordinate of the end point")
	flags.StringVar(&fromFlags.Y1, "y1", "", "y coordinate of the end point")
	radius := flags.String("r", "", "circle radius (same as -x1)")
	flags.IntVar(&fromFlags.Scale, "scale", 0, "pixels per grid cell")
	flags.IntVar(&fromFlags.Width, "width", 0, "canvas width in pixels")
	flags.IntVar(&fromFlags.Height, "height", 0, "canvas height in pixels")
	flags.BoolVar(&fromFlags.Logging, "log", false, "log every plotted cell")
	flags.StringVar(&fromFlags.StepMode, "step-mode", "", "end point order for the step algorithm: independent or swap")
	flags.StringVar(&fromFlags.Output, "o", "", "output file (.png or .pdf)")
	flags.BoolVar(&fromFlags.Verbose, "v", false, "enable debug logging")
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}
	if flags.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments %q", flags.Args())
	}

	conf, err := readConfig(*confFile)
	if err != nil {
		return Config{}, err
	}

	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "algo":
			conf.Algorithm = fromFlags.Algorithm
		case "x0":
			conf.X0 = fromFlags.X0
		case "y0":
			conf.Y0 = fromFlags.Y0
		case "x1":
			conf.X1 = fromFlags.X1
		case "y1":
			conf.Y1 = fromFlags.Y1
		case "r":
			conf.X1 = *radius
		case "scale":
			conf.Scale = fromFlags.Scale
		case "width":
			conf.Width = fromFlags.Width
		case "height":
			conf.Height = fromFlags.Height
		case "log":
			conf.Logging = fromFlags.Logging
		case "step-mode":
			conf.StepMode = fromFlags.StepMode
		case "o":
			conf.Output = fromFlags.Output
		case "v":
			conf.Verbose = fromFlags.Verbose
		}
	})
	return conf, nil
}

// readConfig returns the defaults, overlaid with the contents of the
// file fn if it exists.
func readConfig(fn string) (Config, error) {
	conf := Default()

	file, err := os.Open(fn)
	if errors.Is(err, fs.ErrNotExist) {
		return conf, nil
	} else if err != nil {
		return Config{}, err
	}
	defer file.Close()

	dec := json.NewDecoder(file)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&conf); err != nil {
		return Config{}, fmt.Errorf("%s: %w", fn, err)
	}
	return conf, nil
}
