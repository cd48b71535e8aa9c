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

// Proc is a closure: a fixed parameter list, a single body expression, and
// the environment it was created in.
type Proc struct {
	Params []Symbol
	Body   Scmer
	Env    *Env
}

// Eval evaluates expression in en. Numbers, strings, host procedures and
// host special forms are self-evaluating; symbols resolve through the
// environment chain; lists are applications, dispatched below.
//
// Eval does not implement tail-call elimination (a Non-goal): every
// recursive evaluation is a real Go call, so deeply recursive Scheme
// programs consume Go stack proportional to their call depth.
func Eval(expression Scmer, en *Env) Scmer {
	switch e := expression.(type) {
	case float64, string, HostProcedure, HostSpecialForm:
		return e
	case Symbol:
		return en.Get(e)
	case []Scmer:
		return evalApplication(e, en)
	case *Proc, *Env:
		panic(&TypeError{Op: "eval", Value: e, Want: "evaluable expression"})
	default:
		panic(&TypeError{Op: "eval", Value: e, Want: "evaluable expression"})
	}
}

func evalApplication(e []Scmer, en *Env) Scmer {
	if len(e) == 0 {
		// () evaluates to itself (the empty list is self-evaluating, it's
		// also the only falsy value).
		return Nil()
	}

	operator := Eval(e[0], en)
	operands := e[1:]

	// Special forms (define, if, lambda, quote, eval, apply, ...) are
	// ordinary bindings of HostSpecialForm values, resolved by the same
	// lookup as any other operator — they are not hardcoded into the
	// evaluator. Registering one (RegisterSyntax) is how a host adds
	// syntax; the six built in ones (builtins.go) use the identical path.
	if form, ok := operator.(HostSpecialForm); ok {
		return form(en, operands)
	}

	args := make([]Scmer, len(operands))
	for i, operand := range operands {
		args[i] = Eval(operand, en)
	}
	return Apply(operator, args)
}

// Apply invokes procedure with an already-evaluated argument list: a host
// procedure is called directly, a closure binds its parameters in a fresh
// inner frame of its captured environment and evaluates its body there.
func Apply(procedure Scmer, args []Scmer) Scmer {
	switch p := procedure.(type) {
	case HostProcedure:
		return p(args)
	case *Proc:
		if len(p.Params) != len(args) {
			panic(&ArityError{Want: len(p.Params), Got: len(args)})
		}
		inner := p.Env.MakeInner()
		for i, param := range p.Params {
			inner.Set(param, args[i])
		}
		return Eval(p.Body, inner)
	default:
		panic(&TypeError{Op: "apply", Value: procedure, Want: "callable"})
	}
}
