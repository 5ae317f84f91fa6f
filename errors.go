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

package pixdraw

import (
	"errors"
	"strconv"
)

var (
	// ErrInvalidArgument is returned (wrapped in an [*ArgumentError]) when a
	// numeric argument of a drawing operation is not a non-negative integer.
	ErrInvalidArgument = errors.New("argument must be a non-negative integer")

	// ErrUnsupported is returned for operations which have no implementation,
	// and for text output on sinks which cannot render text.
	ErrUnsupported = errors.New("operation not supported")
)

// ArgumentError describes an argument which failed validation.
// Nothing has been drawn when this error is returned.
type ArgumentError struct {
	Op    string // name of the drawing operation
	Index int    // position of the offending argument
	Value int
}

func (err *ArgumentError) Error() string {
	return err.Op + ": argument " + strconv.Itoa(err.Index) +
		" (" + strconv.Itoa(err.Value) + "): " + ErrInvalidArgument.Error()
}

func (err *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}
