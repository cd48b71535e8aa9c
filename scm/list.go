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

func registerLists(env *Env) {
	RegisterProcedure(env, &Declaration{
		Name: "cons", Desc: "constructs a list from a head and a tail.\nIf the tail is itself a list, the head is prepended to it; otherwise a two-element list (head tail) is returned.",
		MinParameter: 2, MaxParameter: 2,
		Params: []DeclarationParameter{
			{Name: "car", Type: "any", Desc: "new head element"},
			{Name: "cdr", Type: "any", Desc: "tail; prepended-to if a list, else paired with car"},
		},
	}, func(a []Scmer) Scmer {
		car := a[0]
		if cdr, ok := a[1].([]Scmer); ok {
			return append([]Scmer{car}, cdr...)
		}
		return []Scmer{car, a[1]}
	})

	RegisterProcedure(env, &Declaration{
		Name: "car", Desc: "extracts the head of a non-empty list.",
		MinParameter: 1, MaxParameter: 1,
		Params: []DeclarationParameter{{Name: "list", Type: "list", Desc: "non-empty list"}},
	}, func(a []Scmer) Scmer {
		list := asList("car", a[0])
		if len(list) == 0 {
			panic(&TypeError{Op: "car", Value: a[0], Want: "non-empty list"})
		}
		return list[0]
	})

	RegisterProcedure(env, &Declaration{
		Name: "cdr", Desc: "extracts the tail of a non-empty list (all elements but the head).",
		MinParameter: 1, MaxParameter: 1,
		Params: []DeclarationParameter{{Name: "list", Type: "list", Desc: "non-empty list"}},
	}, func(a []Scmer) Scmer {
		list := asList("cdr", a[0])
		if len(list) == 0 {
			panic(&TypeError{Op: "cdr", Value: a[0], Want: "non-empty list"})
		}
		return append([]Scmer{}, list[1:]...)
	})

	RegisterProcedure(env, &Declaration{
		Name: "list", Desc: "returns its arguments as a list, unchanged.",
		MinParameter: 0, MaxParameter: 1000,
		Params: []DeclarationParameter{{Name: "item...", Type: "any", Desc: "items to collect"}},
	}, func(a []Scmer) Scmer {
		return append([]Scmer{}, a...)
	})
}
