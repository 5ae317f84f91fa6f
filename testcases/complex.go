// seehuhn.de/go/pixdraw - integer shape rasterisation
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

package testcases

import "math"

var complexCases = []TestCase{
	{
		Name:   "face",
		Width:  64,
		Height: 64,
		Steps: []Step{
			Color("#ffcc00"),
			Circle{XC: 32, YC: 32, R: 26, Weight: 3},
			Color("#000000"),
			FillSquare{X: 22, Y: 22, Size: 5},
			FillSquare{X: 37, Y: 22, Size: 5},
			Line{X0: 20, Y0: 40, X1: 32, Y1: 46, Weight: 2},
			Segment{X0: 44, Y0: 40, X1: 32, Y1: 46, Weight: 2},
		},
	},
	{
		Name:   "house",
		Width:  64,
		Height: 64,
		Steps: []Step{
			Color("#804000"),
			Rect{X: 12, Y: 28, W: 40, H: 30, Weight: 2},
			Color("#c00000"),
			Segment{X0: 12, Y0: 28, X1: 32, Y1: 8, Weight: 2},
			Segment{X0: 32, Y0: 8, X1: 52, Y1: 28, Weight: 2},
			Color("#4060ff"),
			FillRect{X: 28, Y: 42, W: 8, H: 16},
		},
	},
	{
		Name:   "spiral",
		Width:  64,
		Height: 64,
		Steps:  spiral(32, 32, 2, 28, 3),
	},
	{
		Name:   "label",
		Width:  96,
		Height: 32,
		Steps: []Step{
			Rect{X: 2, Y: 2, W: 90, H: 26, Weight: 1},
			Color("#0000a0"),
			Text{X: 8, Y: 9, S: "pixdraw"},
		},
	},
}

// spiral approximates an Archimedean spiral from radius r0 to r1 by
// segments, making the given number of turns.
func spiral(xc, yc, r0, r1, turns int) []Step {
	const n = 24 // segments per turn
	total := turns * n
	pt := func(i int) (int, int) {
		t := float64(i) / float64(total)
		r := float64(r0) + t*float64(r1-r0)
		phi := 2 * math.Pi * float64(turns) * t
		x := float64(xc) + r*math.Cos(phi)
		y := float64(yc) + r*math.Sin(phi)
		return int(math.Round(x)), int(math.Round(y))
	}

	var steps []Step
	x0, y0 := pt(0)
	for i := 1; i <= total; i++ {
		x1, y1 := pt(i)
		steps = append(steps, Segment{X0: x0, Y0: y0, X1: x1, Y1: y1, Weight: 1})
		x0, y0 = x1, y1
	}
	return steps
}
