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

// largeCases contain fills with bounding boxes above 65536 pixels, which
// the coverage rasteriser processes scanline by scanline.
var largeCases = []TestCase{
	{
		Name:   "rectangle",
		Width:  512,
		Height: 512,
		Steps:  []Step{FillRect{X: 50, Y: 50, W: 412, H: 412}},
	},
	{
		Name:   "frame",
		Width:  512,
		Height: 512,
		Steps:  []Step{Rect{X: 20, Y: 20, W: 460, H: 460, Weight: 12}},
	},
	{
		Name:   "circle",
		Width:  512,
		Height: 512,
		Steps:  []Step{Circle{XC: 256, YC: 256, R: 240, Weight: 3}},
	},
	{
		Name:   "scaled_fill",
		Width:  128,
		Height: 128,
		Scale:  3,
		Steps:  []Step{FillRect{X: 10, Y: 10, W: 100, H: 100}},
	},
}
