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
	"reflect"
	"unsafe"
)

// Equal implements the structural eq? relation of spec §3 invariant 3:
// numeric/string/symbol equality is by value, list equality is
// element-wise, and callables/environment handles compare by identity.
func Equal(a, b Scmer) bool {
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case Symbol:
		bv, ok := b.(Symbol)
		return ok && av == bv
	case []Scmer:
		bv, ok := b.([]Scmer)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case *Proc:
		bv, ok := b.(*Proc)
		return ok && av == bv
	case *Env:
		bv, ok := b.(*Env)
		return ok && av == bv
	case HostProcedure:
		bv, ok := b.(HostProcedure)
		return ok && funcIdentity(av) == funcIdentity(bv)
	case HostSpecialForm:
		bv, ok := b.(HostSpecialForm)
		return ok && funcIdentity(av) == funcIdentity(bv)
	default:
		return false
	}
}

// funcIdentity returns the address of a func value's closure object, for
// comparing func values, which Go only allows to compare directly against
// nil. reflect's Pointer is not enough here: it yields the code pointer,
// which every closure built from the same literal (every RegisterProcedure
// wrapper, for instance) shares.
func funcIdentity(fn interface{}) uintptr {
	switch f := fn.(type) {
	case HostProcedure:
		return *(*uintptr)(unsafe.Pointer(&f))
	case HostSpecialForm:
		return *(*uintptr)(unsafe.Pointer(&f))
	}
	return reflect.ValueOf(fn).Pointer()
}

func registerPredicates(env *Env) {
	RegisterProcedure(env, &Declaration{
		Name: "eq?", Desc: "returns #t if the two arguments are structurally equal, else #f.",
		MinParameter: 2, MaxParameter: 2,
		Params: []DeclarationParameter{
			{Name: "a", Type: "any", Desc: "first value"},
			{Name: "b", Type: "any", Desc: "second value"},
		},
	}, func(a []Scmer) Scmer {
		return boolValue(Equal(a[0], a[1]))
	})

	predicate := func(name, desc string, test func(Scmer) bool) {
		RegisterProcedure(env, &Declaration{
			Name: name, Desc: desc,
			MinParameter: 1, MaxParameter: 1,
			Params: []DeclarationParameter{{Name: "x", Type: "any", Desc: "value to inspect"}},
		}, func(a []Scmer) Scmer {
			return boolValue(test(a[0]))
		})
	}

	predicate("list?", "checks if a value is a list.", func(x Scmer) bool {
		_, ok := x.([]Scmer)
		return ok
	})
	predicate("string?", "checks if a value is a string.", func(x Scmer) bool {
		_, ok := x.(string)
		return ok
	})
	predicate("number?", "checks if a value is a number.", func(x Scmer) bool {
		_, ok := x.(float64)
		return ok
	})
	predicate("symbol?", "checks if a value is a symbol.", func(x Scmer) bool {
		_, ok := x.(Symbol)
		return ok
	})
	predicate("callable?", "checks if a value can be applied: a closure, a host procedure or a host special form.", func(x Scmer) bool {
		switch x.(type) {
		case *Proc, HostProcedure, HostSpecialForm:
			return true
		default:
			return false
		}
	})
}

// boolValue renders a Go bool into the scripting language's truthy/falsy
// values: #t the symbol, or the empty list.
func boolValue(b bool) Scmer {
	if b {
		return True
	}
	return Nil()
}
