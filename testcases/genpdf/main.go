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

// Command genpdf renders all test cases to PDF and PNG files, for visual
// inspection.  The PDF shows the fills as vector rectangles, the PNG shows
// the same fills painted into a raster image.
package main

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/image/draw"

	"seehuhn.de/go/pixdraw"
	"seehuhn.de/go/pixdraw/testcases"
)

const outDir = "testdata/output"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")
			pngPath := filepath.Join(outDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := generatePNG(tc, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) (err error) {
	f, err := os.Create(pdfPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	sink, err := pixdraw.NewPDFSink(f, tc.Width, tc.Height, "#ffffff")
	if err != nil {
		return err
	}
	err = tc.Run(pixdraw.New(sink))
	if err != nil && !errors.Is(err, pixdraw.ErrUnsupported) {
		return err
	}
	return sink.Close()
}

func generatePNG(tc testcases.TestCase, pngPath string) (err error) {
	img := image.NewNRGBA(image.Rect(0, 0, tc.Width, tc.Height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	if err := tc.Run(pixdraw.New(pixdraw.NewImageSink(img))); err != nil {
		return err
	}

	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
