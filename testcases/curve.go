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

var circleCases = []TestCase{
	{
		Name:   "small",
		Width:  64,
		Height: 64,
		Steps:  []Step{Circle{XC: 32, YC: 32, R: 10, Weight: 1}},
	},
	{
		Name:   "large",
		Width:  64,
		Height: 64,
		Steps:  []Step{Circle{XC: 32, YC: 32, R: 28, Weight: 1}},
	},
	{
		Name:   "thick",
		Width:  64,
		Height: 64,
		Steps:  []Step{Circle{XC: 30, YC: 30, R: 20, Weight: 4}},
	},
	{
		Name:   "radius_zero",
		Width:  64,
		Height: 64,
		Steps:  []Step{Circle{XC: 32, YC: 32, R: 0, Weight: 3}},
	},
	{
		Name:   "radius_one",
		Width:  64,
		Height: 64,
		Steps:  []Step{Circle{XC: 32, YC: 32, R: 1, Weight: 1}},
	},
	{
		// the left and top parts of the circle lie outside the canvas
		Name:   "corner",
		Width:  64,
		Height: 64,
		Steps:  []Step{Circle{XC: 4, YC: 4, R: 20, Weight: 2}},
	},
	{
		Name:   "concentric",
		Width:  64,
		Height: 64,
		Steps:  concentric(32, 32, 4, 28, 4),
	},
}

// concentric draws circles with radii from r0 to r1 in steps of dr.
func concentric(xc, yc, r0, r1, dr int) []Step {
	var steps []Step
	for r := r0; r <= r1; r += dr {
		steps = append(steps, Circle{XC: xc, YC: yc, R: r, Weight: 1})
	}
	return steps
}
