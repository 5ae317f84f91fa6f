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
	"fmt"
	"regexp"
)

var (
	nonNegativeIntegerPattern = regexp.MustCompile(`^\s*\d+\s*$`)
	colorPattern              = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// IsNonNegativeInteger reports whether v, printed in its default format,
// consists of decimal digits only. Leading and trailing white space is
// accepted, so " 12 " is a valid value while "-1", "1.5" and "" are not.
func IsNonNegativeInteger(v any) bool {
	var s string
	switch v := v.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		s = fmt.Sprint(v)
	}
	return nonNegativeIntegerPattern.MatchString(s)
}

// IsColor reports whether v has the form #RRGGBB with six hexadecimal digits.
func IsColor(v string) bool {
	return v != "" && colorPattern.MatchString(v)
}

// checkNonNegative validates the arguments of the drawing operation op in
// order.  The first argument which is not a non-negative integer is reported
// as an [*ArgumentError].
func checkNonNegative(op string, args ...int) error {
	for i, a := range args {
		if !IsNonNegativeInteger(a) {
			return &ArgumentError{Op: op, Index: i, Value: a}
		}
	}
	return nil
}
