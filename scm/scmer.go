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

// Scmer is the tagged-union runtime value: a Number (float64), a String
// (string), a Symbol, a list ([]Scmer), a host procedure, a host special
// form, a closure (*Proc) or an environment handle (*Env). Nothing else is
// ever stored in one; Eval/Apply panic on any other dynamic type.
type Scmer interface{}

// Symbol is an interned identifier, compared by exact byte sequence.
type Symbol string

// HostProcedure is called with arguments already evaluated.
type HostProcedure func(args []Scmer) Scmer

// HostSpecialForm is called with the current environment and the
// unevaluated argument list; it controls evaluation of its own operands.
type HostSpecialForm func(env *Env, args []Scmer) Scmer

// Nil returns the canonical empty list, which doubles as #f and the Scheme
// nil. It is the only falsy value in the language.
func Nil() Scmer { return []Scmer{} }

// True is the distinguished #t symbol, bound to itself in the root
// environment.
const True = Symbol("#t")

// IsNil reports whether v is the empty list (the false/nil value).
func IsNil(v Scmer) bool {
	list, ok := v.([]Scmer)
	return ok && len(list) == 0
}

// Truthy implements the falsy invariant: only the empty list is false.
func Truthy(v Scmer) bool {
	return !IsNil(v)
}

// asList type-asserts v as a list, panicking with a TypeError tailored to
// op if v isn't one.
func asList(op string, v Scmer) []Scmer {
	list, ok := v.([]Scmer)
	if !ok {
		panic(&TypeError{Op: op, Value: v, Want: "list"})
	}
	return list
}
