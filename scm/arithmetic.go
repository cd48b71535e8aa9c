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

// registerArithmetic installs Number-typed procedures. These sit outside
// spec.md §4.5's fixed builtin table (which only names the list/type-
// predicate procedures), but every one of its six end-to-end scenarios
// and testable properties needs numbers to compare and combine, so a
// host embedding this interpreter would register exactly these, in the
// teacher's own Globalenv init() the same way.
func registerArithmetic(env *Env) {
	number := func(op string, v Scmer) float64 {
		n, ok := v.(float64)
		if !ok {
			panic(&TypeError{Op: op, Value: v, Want: "number"})
		}
		return n
	}

	fold := func(name, desc string, identity float64, combine func(acc, x float64) float64) {
		RegisterProcedure(env, &Declaration{
			Name: name, Desc: desc,
			MinParameter: 0, MaxParameter: 1000,
			Params: []DeclarationParameter{{Name: "n...", Type: "number", Desc: "numbers to combine"}},
		}, func(a []Scmer) Scmer {
			if len(a) == 0 {
				return identity
			}
			acc := number(name, a[0])
			for _, x := range a[1:] {
				acc = combine(acc, number(name, x))
			}
			return acc
		})
	}

	fold("+", "sums its arguments; 0 with none.", 0, func(acc, x float64) float64 { return acc + x })
	fold("*", "multiplies its arguments; 1 with none.", 1, func(acc, x float64) float64 { return acc * x })

	RegisterProcedure(env, &Declaration{
		Name: "-", Desc: "(- n) negates n; (- a b...) subtracts the rest from a.",
		MinParameter: 1, MaxParameter: 1000,
		Params: []DeclarationParameter{{Name: "n...", Type: "number", Desc: "minuend then subtrahends"}},
	}, func(a []Scmer) Scmer {
		acc := number("-", a[0])
		if len(a) == 1 {
			return -acc
		}
		for _, x := range a[1:] {
			acc -= number("-", x)
		}
		return acc
	})

	RegisterProcedure(env, &Declaration{
		Name: "/", Desc: "(/ n) is 1/n; (/ a b...) divides a by the rest in order.",
		MinParameter: 1, MaxParameter: 1000,
		Params: []DeclarationParameter{{Name: "n...", Type: "number", Desc: "dividend then divisors"}},
	}, func(a []Scmer) Scmer {
		acc := number("/", a[0])
		if len(a) == 1 {
			return 1 / acc
		}
		for _, x := range a[1:] {
			acc /= number("/", x)
		}
		return acc
	})

	compare := func(name, desc string, test func(a, b float64) bool) {
		RegisterProcedure(env, &Declaration{
			Name: name, Desc: desc,
			MinParameter: 2, MaxParameter: 1000,
			Params: []DeclarationParameter{{Name: "n...", Type: "number", Desc: "numbers to compare pairwise, left to right"}},
		}, func(a []Scmer) Scmer {
			for i := 1; i < len(a); i++ {
				if !test(number(name, a[i-1]), number(name, a[i])) {
					return Nil()
				}
			}
			return True
		})
	}

	compare("<", "checks a strictly increasing sequence.", func(a, b float64) bool { return a < b })
	compare("<=", "checks a non-decreasing sequence.", func(a, b float64) bool { return a <= b })
	compare(">", "checks a strictly decreasing sequence.", func(a, b float64) bool { return a > b })
	compare(">=", "checks a non-increasing sequence.", func(a, b float64) bool { return a >= b })

	RegisterProcedure(env, &Declaration{
		Name: "error", Desc: "raises a HostError carrying msg, aborting the current top-level expression.",
		MinParameter: 1, MaxParameter: 1,
		Params: []DeclarationParameter{{Name: "msg", Type: "any", Desc: "error payload"}},
	}, func(a []Scmer) Scmer {
		Raise(a[0])
		return Nil() // unreachable, Raise always panics
	})
}
