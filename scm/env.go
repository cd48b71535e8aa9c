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

import "github.com/google/uuid"

// Vars is a single environment frame's symbol table.
type Vars map[Symbol]Scmer

// Env is a lexical scope: a frame of bindings plus a shared pointer to the
// frame it was created inside. Closures capture the *Env they were defined
// in; invoking one always builds a fresh inner frame rather than mutating
// the captured one.
type Env struct {
	Vars
	Outer *Env

	// id is a diagnostic-only correlation id, surfaced in the printable
	// form of an environment handle so a host can match a HostError back
	// to the frame it came from. It is never part of equality or lookup.
	id uuid.UUID
}

// NewRootEnv returns a fresh, empty environment with no outer frame. Use
// this, not a literal Env{}, so the frame gets a diagnostic id.
func NewRootEnv() *Env {
	return &Env{Vars: make(Vars), id: uuid.New()}
}

// MakeInner returns a fresh empty frame whose outer pointer is e.
func (e *Env) MakeInner() *Env {
	return &Env{Vars: make(Vars), Outer: e, id: uuid.New()}
}

// Find returns the frame that would satisfy Get(s), or nil if none binds
// it.
func (e *Env) Find(s Symbol) *Env {
	for cur := e; cur != nil; cur = cur.Outer {
		if _, ok := cur.Vars[s]; ok {
			return cur
		}
	}
	return nil
}

// Get walks the chain from e outward and returns the innermost binding of
// s, panicking with an UndefinedSymbolError if none exists.
func (e *Env) Get(s Symbol) Scmer {
	if frame := e.Find(s); frame != nil {
		return frame.Vars[s]
	}
	panic(&UndefinedSymbolError{Sym: s})
}

// Set binds s to v in this frame, shadowing any outer binding, and returns
// v.
func (e *Env) Set(s Symbol, v Scmer) Scmer {
	e.Vars[s] = v
	return v
}

// ID returns the frame's diagnostic correlation id.
func (e *Env) ID() uuid.UUID {
	return e.id
}
