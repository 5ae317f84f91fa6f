// Command export writes the fills produced by every test case to JSON.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/pixdraw"
	"seehuhn.de/go/pixdraw/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/fills.json")
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
	Name   string     `json:"name"`
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Scale  float64    `json:"scale,omitempty"`
	Fills  []jsonFill `json:"fills"`
	Texts  []string   `json:"texts,omitempty"`
}

type jsonFill struct {
	Rect  [4]int `json:"rect"`
	Color string `json:"color"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	rec := &pixdraw.Recorder{}
	if err := tc.Run(pixdraw.New(rec)); err != nil {
		return jsonTestCase{}, err
	}

	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Scale:  tc.Scale,
		Fills:  make([]jsonFill, len(rec.Fills)),
	}
	for i, f := range rec.Fills {
		jtc.Fills[i] = jsonFill{
			Rect:  [4]int{f.X, f.Y, f.Width, f.Height},
			Color: f.Color,
		}
	}
	for _, t := range rec.Texts {
		jtc.Texts = append(jtc.Texts, t.Text)
	}
	return jtc, nil
}
