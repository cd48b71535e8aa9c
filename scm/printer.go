/*
Copyright (C) 2023  Carl-Philip Hänsch
Copyright (C) 2013  Pieter Kelchtermans (originally licensed unter WTFPL 2.0)

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package scm

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders v in its printable form (spec §6): used for REPL echo
// and error messages. Only atoms are required to round-trip byte-for-
// byte; compound and foreign forms are for diagnostics.
func String(v Scmer) string {
	switch val := v.(type) {
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case string:
		return `"` + strings.ReplaceAll(val, `"`, `\"`) + `"`
	case Symbol:
		return string(val)
	case []Scmer:
		parts := make([]string, len(val))
		for i, x := range val {
			parts[i] = String(x)
		}
		return "(" + strings.Join(parts, " ") + ")"
	case HostProcedure:
		return fmt.Sprintf("#<Foreign %#x>", funcIdentity(val))
	case HostSpecialForm:
		return "#<ForeignSyntax>"
	case *Proc:
		return "#<Lambda procedure>"
	case *Env:
		return fmt.Sprintf("#<Environment %s>", val.id)
	default:
		return fmt.Sprint(val)
	}
}
