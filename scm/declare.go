/*
Copyright (C) 2023  Carl-Philip Hänsch

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
	"sort"
	"strings"
)

// Declaration documents a builtin procedure or special form for the help
// builtin; it carries no evaluation semantics of its own.
type Declaration struct {
	Name         string
	Desc         string
	MinParameter int
	MaxParameter int
	Params       []DeclarationParameter
}

type DeclarationParameter struct {
	Name string
	Type string // any | string | number | list | symbol | func
	Desc string
}

var declarations = make(map[string]*Declaration)

// Declare records documentation for a name already bound in env. It does
// not itself bind anything — RegisterProcedure/RegisterSyntax/the builtin
// table call it alongside Env.Set.
func Declare(def *Declaration) {
	declarations[def.Name] = def
}

// Help renders the builtin catalog (no argument) or one builtin's detailed
// documentation, mirroring the teacher's declare.go Help.
func Help(fn string) string {
	var b strings.Builder
	if fn == "" {
		fmt.Fprintln(&b, "Available builtins:")
		fmt.Fprintln(&b)
		names := make([]string, 0, len(declarations))
		for name := range declarations {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(&b, "  %s: %s\n", name, strings.SplitN(declarations[name].Desc, "\n", 2)[0])
		}
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, `get further information with (help "name")`)
		return b.String()
	}
	def, ok := declarations[fn]
	if !ok {
		panic(&HostError{Msg: "function not found: " + fn})
	}
	fmt.Fprintf(&b, "Help for: %s\n===\n\n%s\n\n", def.Name, def.Desc)
	fmt.Fprintf(&b, "Allowed number of parameters: %d-%d\n\n", def.MinParameter, def.MaxParameter)
	for _, p := range def.Params {
		fmt.Fprintf(&b, " - %s (%s): %s\n", p.Name, p.Type, p.Desc)
	}
	return b.String()
}
