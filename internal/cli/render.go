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

package cli

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/image/draw"

	"seehuhn.de/go/pixdraw"
	"seehuhn.de/go/pixdraw/internal/script"
)

type renderOpts struct {
	output string
	scale  float64 // overrides the script's scale if positive
}

func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <script>",
		Short: "Render a drawing script to PNG or PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), args[0], opts)
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (.png or .pdf)")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "pixels per unit for PNG output (default from script)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func runRender(ctx context.Context, input string, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	start := time.Now()

	s, err := script.Load(input)
	if err != nil {
		return err
	}
	if opts.scale > 0 {
		s.Scale = opts.scale
	}
	logger.Debug("loaded script", "file", input, "steps", len(s.Steps),
		"width", s.Width, "height", s.Height, "scale", s.Scale)

	switch ext := strings.ToLower(filepath.Ext(opts.output)); ext {
	case ".png":
		err = writeFile(opts.output, func(w io.Writer) error { return renderPNG(w, s) })
	case ".pdf":
		if s.Scale != 1 {
			logger.Debug("scale is ignored for PDF output", "scale", s.Scale)
		}
		err = writeFile(opts.output, func(w io.Writer) error { return renderPDF(w, s) })
	default:
		return fmt.Errorf("%s: unsupported output format %q", opts.output, ext)
	}
	if err != nil {
		return err
	}

	timed(logger, start, "rendered", "output", opts.output)
	return nil
}

// renderPNG paints the script at its own resolution and then scales the
// image to the device size without interpolation.
func renderPNG(w io.Writer, s *script.Script) error {
	img := image.NewNRGBA(image.Rect(0, 0, s.Width, s.Height))
	if pixdraw.IsColor(s.Background) {
		bg := pixdraw.NewImageSink(img)
		bg.FillRect(pixdraw.FillRequest{Width: s.Width, Height: s.Height, Color: s.Background})
	}
	if err := s.Run(pixdraw.New(pixdraw.NewImageSink(img))); err != nil {
		return err
	}

	var out image.Image = img
	if s.Scale != 1 {
		dw, dh := s.DeviceSize()
		scaled := image.NewNRGBA(image.Rect(0, 0, dw, dh))
		draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)
		out = scaled
	}
	return png.Encode(w, out)
}

func renderPDF(w io.Writer, s *script.Script) error {
	sink, err := pixdraw.NewPDFSink(w, s.Width, s.Height, s.Background)
	if err != nil {
		return err
	}
	runErr := s.Run(pixdraw.New(sink))
	closeErr := sink.Close()
	return errors.Join(runErr, closeErr)
}

// writeFile creates name and fills it using write.  The file is removed
// again if writing fails.
func writeFile(name string, write func(w io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	err = write(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(name)
		return err
	}
	return nil
}
