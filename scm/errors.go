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

import "fmt"

// ReadError is raised by the tokenizer or reader: an unterminated string,
// an unexpected close paren, or EOF mid-expression.
type ReadError struct {
	Source string
	Line   int
	Col    int
	Msg    string
}

func (e *ReadError) Error() string {
	if e.Source == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s:%d:%d: %s", e.Source, e.Line, e.Col, e.Msg)
}

// UndefinedSymbolError is raised by Env.Get when no frame in the chain
// binds the symbol.
type UndefinedSymbolError struct {
	Sym Symbol
}

func (e *UndefinedSymbolError) Error() string {
	return "Undefined symbol: " + string(e.Sym)
}

// TypeError is raised when a value has the wrong variant for an operation:
// car/cdr of a non-list, applying a non-callable, eval of an Env/Proc value.
type TypeError struct {
	Op    string
	Value Scmer
	Want  string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.Op, e.Want, String(e.Value))
}

// ArityError is raised when a closure, builtin procedure, or special form
// is invoked with the wrong number of arguments.
type ArityError struct {
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("wrong number of arguments: want %d, got %d", e.Want, e.Got)
}

// HostError is an error raised by a host procedure via the `error` builtin
// or by host code calling Raise; its message is entirely host-defined.
type HostError struct {
	Msg   string
	Value Scmer
}

func (e *HostError) Error() string {
	return e.Msg
}

// Raise panics with a HostError wrapping v, the mechanism the `error`
// builtin uses and that host procedures may call directly.
func Raise(v Scmer) {
	panic(&HostError{Msg: String(v), Value: v})
}
