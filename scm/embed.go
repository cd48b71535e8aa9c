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

import "github.com/dc0d/onexit"

// checkArity panics with a typed *ArityError if the call's argument count
// falls outside def's declared [MinParameter, MaxParameter] range, so a
// misused builtin fails the same way a misused closure does instead of
// panicking on an out-of-range slice index deeper in its body.
func checkArity(def *Declaration, got int) {
	if got < def.MinParameter || got > def.MaxParameter {
		panic(&ArityError{Want: def.MinParameter, Got: got})
	}
}

// RegisterProcedure binds a host procedure under def.Name in env and
// records def for the help builtin. This is the embedding surface a host
// uses to expose a Go function to scripts. Calls with an argument count
// outside def's declared range are rejected with an ArityError before fn
// ever runs.
func RegisterProcedure(env *Env, def *Declaration, fn HostProcedure) {
	Declare(def)
	env.Set(Symbol(def.Name), HostProcedure(func(args []Scmer) Scmer {
		checkArity(def, len(args))
		return fn(args)
	}))
}

// RegisterSyntax binds a host special form under def.Name in env and
// records def for the help builtin. Special forms receive their operands
// unevaluated, so a host can add new syntax (not just new procedures)
// through the identical registration path the six builtin forms use.
// Calls with an argument count outside def's declared range are rejected
// with an ArityError before fn ever runs.
func RegisterSyntax(env *Env, def *Declaration, fn HostSpecialForm) {
	Declare(def)
	env.Set(Symbol(def.Name), HostSpecialForm(func(callEnv *Env, args []Scmer) Scmer {
		checkArity(def, len(args))
		return fn(callEnv, args)
	}))
}

// OnShutdown registers a cleanup callback invoked when the embedding
// process exits, e.g. to flush REPL history or close resources opened by
// a registered procedure. It is a thin wrapper over onexit so a host
// never needs to import it directly just to clean up after this package.
func OnShutdown(fn func()) {
	onexit.Register(fn)
}

// NewGlobalEnv returns a fresh root environment with every builtin special
// form and procedure registered, ready to Eval scripts against.
func NewGlobalEnv() *Env {
	env := NewRootEnv()
	env.Set(Symbol("nil"), Nil())
	env.Set(Symbol("#f"), Nil())
	env.Set(True, True)
	registerSpecialForms(env)
	registerLists(env)
	registerArithmetic(env)
	registerPredicates(env)
	registerMisc(env)
	return env
}
