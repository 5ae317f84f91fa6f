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

// lineCases exercise DrawLine, including the directions where the
// Bresenham walk only moves right and down.
var lineCases = []TestCase{
	{
		Name:   "horizontal",
		Width:  64,
		Height: 64,
		Steps:  []Step{Line{X0: 10, Y0: 32, X1: 54, Y1: 32, Weight: 4}},
	},
	{
		Name:   "vertical",
		Width:  64,
		Height: 64,
		Steps:  []Step{Line{X0: 32, Y0: 10, X1: 32, Y1: 54, Weight: 4}},
	},
	{
		Name:   "diagonal",
		Width:  64,
		Height: 64,
		Steps:  []Step{Line{X0: 8, Y0: 8, X1: 56, Y1: 56, Weight: 1}},
	},
	{
		Name:   "shallow",
		Width:  64,
		Height: 64,
		Steps:  []Step{Line{X0: 4, Y0: 20, X1: 60, Y1: 40, Weight: 2}},
	},
	{
		Name:   "steep",
		Width:  64,
		Height: 64,
		Steps:  []Step{Line{X0: 20, Y0: 4, X1: 30, Y1: 60, Weight: 2}},
	},
	{
		Name:   "thick",
		Width:  64,
		Height: 64,
		Steps:  []Step{Line{X0: 6, Y0: 10, X1: 50, Y1: 40, Weight: 8}},
	},
	{
		Name:   "reversed",
		Width:  64,
		Height: 64,
		Steps:  []Step{Line{X0: 56, Y0: 8, X1: 8, Y1: 40, Weight: 2}},
	},
	{
		Name:   "fan",
		Width:  64,
		Height: 64,
		Steps:  fan(4, 4, 60, 4, 2),
	},
}

// fan draws lines from (x, y) to points spaced step pixels apart along the
// right and bottom edges of a square of side size.
func fan(x, y, size, step, weight int) []Step {
	var steps []Step
	for k := 0; k <= size-x; k += step {
		steps = append(steps, Line{X0: x, Y0: y, X1: size, Y1: y + k, Weight: weight})
	}
	for k := step; k <= size-x; k += step {
		steps = append(steps, Line{X0: x, Y0: y, X1: size - k, Y1: size, Weight: weight})
	}
	return steps
}
