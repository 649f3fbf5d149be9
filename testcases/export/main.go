// Command export writes all test cases, together with the cells produced
// by the rasterizer, to testdata/testcases.json.
// Run from the pixgrid module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/pixgrid"
	"seehuhn.de/go/pixgrid/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(fmt.Errorf("%s_%s: %w", category, tc.Name, err))
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name      string   `json:"name"`
	Algorithm string   `json:"algorithm"`
	Params    [4]int   `json:"params"`
	StepMode  string   `json:"step_mode,omitempty"`
	Scale     int      `json:"scale"`
	Width     int      `json:"width"`
	Height    int      `json:"height"`
	Cells     [][2]int `json:"cells"`
	Expected  [][2]int `json:"expected,omitempty"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	alg, err := pixgrid.ParseAlgorithm(tc.Algorithm)
	if err != nil {
		return jsonTestCase{}, err
	}
	mode, err := pixgrid.ParseStepMode(tc.StepMode)
	if err != nil {
		return jsonTestCase{}, err
	}
	cells, err := pixgrid.Rasterize(alg, pixgrid.Params(tc.Params), mode)
	if err != nil {
		return jsonTestCase{}, err
	}

	jtc := jsonTestCase{
		Name:      category + "_" + tc.Name,
		Algorithm: alg.String(),
		Params:    tc.Params,
		StepMode:  tc.StepMode,
		Scale:     tc.Scale,
		Width:     tc.Width,
		Height:    tc.Height,
	}
	for _, c := range cells {
		jtc.Cells = append(jtc.Cells, [2]int{c.X, c.Y})
	}
	for _, p := range tc.Want {
		jtc.Expected = append(jtc.Expected, [2]int{p.X, p.Y})
	}
	return jtc, nil
}
