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

import "testing"

func TestRegisterProcedureIsCallable(t *testing.T) {
	env := NewGlobalEnv()
	RegisterProcedure(env, &Declaration{
		Name: "double", Desc: "doubles a number.",
		MinParameter: 1, MaxParameter: 1,
		Params: []DeclarationParameter{{Name: "n", Type: "number", Desc: "value to double"}},
	}, func(a []Scmer) Scmer {
		return a[0].(float64) * 2
	})
	result := evalSource(t, env, "(double 21)")
	if result != 42.0 {
		t.Fatalf("expected 42, got %v", result)
	}
}

func TestRegisterProcedureRejectsWrongArity(t *testing.T) {
	env := NewGlobalEnv()
	RegisterProcedure(env, &Declaration{
		Name: "double", Desc: "doubles a number.",
		MinParameter: 1, MaxParameter: 1,
		Params: []DeclarationParameter{{Name: "n", Type: "number", Desc: "value to double"}},
	}, func(a []Scmer) Scmer {
		return a[0].(float64) * 2
	})
	defer func() {
		r := recover()
		if _, ok := r.(*ArityError); !ok {
			t.Fatalf("expected *ArityError, got %T (%v)", r, r)
		}
	}()
	evalSource(t, env, "(double 1 2)")
}

func TestRegisterSyntaxReceivesOperandsUnevaluated(t *testing.T) {
	env := NewGlobalEnv()
	var seen Scmer
	RegisterSyntax(env, &Declaration{
		Name: "capture", Desc: "records its operand unevaluated.",
		MinParameter: 1, MaxParameter: 1,
		Params: []DeclarationParameter{{Name: "x", Type: "any", Desc: "expression, left unevaluated"}},
	}, func(callEnv *Env, args []Scmer) Scmer {
		seen = args[0]
		return Nil()
	})
	evalSource(t, env, "(capture (+ 1 2))")
	list, ok := seen.([]Scmer)
	if !ok || len(list) != 3 {
		t.Fatalf("expected the unevaluated form (+ 1 2), got %#v", seen)
	}
}

func TestRegisterSyntaxRejectsWrongArity(t *testing.T) {
	env := NewGlobalEnv()
	RegisterSyntax(env, &Declaration{
		Name: "capture", Desc: "records its operand unevaluated.",
		MinParameter: 1, MaxParameter: 1,
		Params: []DeclarationParameter{{Name: "x", Type: "any", Desc: "expression, left unevaluated"}},
	}, func(callEnv *Env, args []Scmer) Scmer {
		return Nil()
	})
	defer func() {
		r := recover()
		if _, ok := r.(*ArityError); !ok {
			t.Fatalf("expected *ArityError, got %T (%v)", r, r)
		}
	}()
	evalSource(t, env, "(capture)")
}

func TestOnShutdownRegistersWithoutPanicking(t *testing.T) {
	called := false
	OnShutdown(func() { called = true })
	_ = called // exercised at process exit, not here; registering must not panic
}
