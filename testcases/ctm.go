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

// scaleCases are rendered at a device scale other than 1.
var scaleCases = []TestCase{
	{
		Name:   "double",
		Width:  64,
		Height: 64,
		Scale:  2,
		Steps:  []Step{Circle{XC: 32, YC: 32, R: 20, Weight: 1}},
	},
	{
		Name:   "half",
		Width:  128,
		Height: 128,
		Scale:  0.5,
		Steps:  []Step{Rect{X: 16, Y: 16, W: 96, H: 96, Weight: 3}},
	},
	{
		Name:   "fraction",
		Width:  40,
		Height: 40,
		Scale:  1.6,
		Steps:  []Step{Line{X0: 4, Y0: 4, X1: 36, Y1: 20, Weight: 1}},
	},
	{
		Name:   "tenfold",
		Width:  12,
		Height: 12,
		Scale:  10,
		Steps:  []Step{Circle{XC: 6, YC: 6, R: 4, Weight: 1}},
	},
}
