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

// Command genpdf renders every test case to a PDF sheet in
// testdata/sheets, showing the grid, the axes and the generated cells.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/pixgrid"
	"seehuhn.de/go/pixgrid/surface"
	"seehuhn.de/go/pixgrid/testcases"
)

const sheetDir = "testdata/sheets"

func main() {
	if err := os.MkdirAll(sheetDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(sheetDir, name+".pdf")
			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	alg, err := pixgrid.ParseAlgorithm(tc.Algorithm)
	if err != nil {
		return err
	}
	mode, err := pixgrid.ParseStepMode(tc.StepMode)
	if err != nil {
		return err
	}
	cs, err := pixgrid.NewCoordinateSystem(tc.Scale, tc.Width, tc.Height)
	if err != nil {
		return err
	}

	page, err := surface.NewPDF(pdfPath, tc.Width, tc.Height)
	if err != nil {
		return err
	}
	page.DrawGrid(cs)
	page.DrawAxes(cs)

	req := pixgrid.Request{
		Algorithm: alg,
		Params:    pixgrid.Params(tc.Params),
		StepMode:  mode,
	}
	if _, err := pixgrid.Run(req, cs, page); err != nil {
		page.Close()
		return err
	}
	return page.Close()
}
