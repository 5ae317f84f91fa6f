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
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/pixdraw"
	"seehuhn.de/go/pixdraw/internal/script"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <script>",
		Short: "Run a drawing script without output and report the fills",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			s, err := script.Load(args[0])
			if err != nil {
				return err
			}
			rec := &pixdraw.Recorder{}
			if err := s.Run(pixdraw.New(rec)); err != nil {
				return err
			}
			for _, f := range rec.Fills {
				logger.Debug("fill", "x", f.X, "y", f.Y, "w", f.Width, "h", f.Height, "color", f.Color)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d steps, %d fills, %d texts\n",
				args[0], len(s.Steps), len(rec.Fills), len(rec.Texts))
			return nil
		},
	}
}

// coverageRamp maps coverage to characters, from empty to full.
const coverageRamp = " .:-=+*#%@"

func newCoverageCmd() *cobra.Command {
	var scale float64

	cmd := &cobra.Command{
		Use:   "coverage <script>",
		Short: "Print the pixel coverage of a drawing script as text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := script.Load(args[0])
			if err != nil {
				return err
			}
			if scale > 0 {
				s.Scale = scale
			}
			w, h := s.DeviceSize()
			sink := pixdraw.NewCoverageSink(w, h, s.Scale)
			if err := s.Run(pixdraw.New(sink)); err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), coverageText(sink))
			return err
		},
	}
	cmd.Flags().Float64Var(&scale, "scale", 0, "pixels per unit (default from script)")
	return cmd
}

// coverageText renders the coverage buffer one character per pixel.
func coverageText(s *pixdraw.CoverageSink) string {
	var b strings.Builder
	n := len(coverageRamp) - 1
	for y := range s.Height {
		for x := range s.Width {
			c := int(s.At(x, y))
			b.WriteByte(coverageRamp[(c*n+254)/255])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
