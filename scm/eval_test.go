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

func evalSource(t *testing.T, env *Env, src string) Scmer {
	t.Helper()
	var result Scmer
	for _, form := range ReadAll("", src) {
		result = Eval(form, env)
	}
	return result
}

func TestEvalSelfEvaluatingAtoms(t *testing.T) {
	env := NewGlobalEnv()
	if Eval(1.0, env) != 1.0 {
		t.Fatal("numbers are self-evaluating")
	}
	if Eval("hi", env) != "hi" {
		t.Fatal("strings are self-evaluating")
	}
}

func TestEvalEmptyListIsSelfEvaluating(t *testing.T) {
	env := NewGlobalEnv()
	result := Eval(Nil(), env)
	if !IsNil(result) {
		t.Fatal("() must evaluate to itself")
	}
}

func TestEvalSymbolLookup(t *testing.T) {
	env := NewGlobalEnv()
	env.Set(Symbol("x"), 42.0)
	if Eval(Symbol("x"), env) != 42.0 {
		t.Fatal("symbol should resolve through the environment")
	}
}

func TestEvalIfEvaluatesOnlyOneBranch(t *testing.T) {
	env := NewGlobalEnv()
	var touched []string
	env.Set(Symbol("log-t"), HostProcedure(func(a []Scmer) Scmer {
		touched = append(touched, "t")
		return Nil()
	}))
	env.Set(Symbol("log-f"), HostProcedure(func(a []Scmer) Scmer {
		touched = append(touched, "f")
		return Nil()
	}))
	evalSource(t, env, "(if #t (log-t) (log-f))")
	if len(touched) != 1 || touched[0] != "t" {
		t.Fatalf("expected only the true branch to run, got %v", touched)
	}
}

func TestEvalFalsyIdentity(t *testing.T) {
	env := NewGlobalEnv()
	result := evalSource(t, env, "(if () 'a 'b)")
	if result != Symbol("b") {
		t.Fatalf("expected b, got %v", result)
	}
}

func TestEvalNilAndHashFSymbolsAreFalsy(t *testing.T) {
	env := NewGlobalEnv()
	if result := evalSource(t, env, "(if nil 'a 'b)"); result != Symbol("b") {
		t.Fatalf("nil should be falsy, got %v", result)
	}
	if result := evalSource(t, env, "(if #f 'a 'b)"); result != Symbol("b") {
		t.Fatalf("#f should be falsy, got %v", result)
	}
	if evalSource(t, env, "(eq? nil '())") != True {
		t.Fatal("nil should eq? the empty list")
	}
	if evalSource(t, env, "(eq? #f '())") != True {
		t.Fatal("#f should eq? the empty list")
	}
}

func TestEvalOfEval(t *testing.T) {
	env := NewGlobalEnv()
	result := evalSource(t, env, "(eval '(+ 1 2))")
	if result != 3.0 {
		t.Fatalf("expected 3, got %v", result)
	}
}

func TestEvalBuiltinArityError(t *testing.T) {
	env := NewGlobalEnv()
	defer func() {
		r := recover()
		if _, ok := r.(*ArityError); !ok {
			t.Fatalf("expected *ArityError, got %T (%v)", r, r)
		}
	}()
	evalSource(t, env, "(if 1 2)")
}

func TestEvalLexicalClosureObservesLaterDefine(t *testing.T) {
	env := NewGlobalEnv()
	result := evalSource(t, env, `
		(define x 1)
		(define f (lambda () x))
		(define x 2)
		(f)`)
	if result != 2.0 {
		t.Fatalf("closure should observe the mutated global binding, got %v", result)
	}
}

func TestEvalSiblingFramesDoNotLeak(t *testing.T) {
	env := NewGlobalEnv()
	evalSource(t, env, `
		(define make-adder (lambda (n) (lambda (m) (+ n m))))
		(define add5 (make-adder 5))
		(define add10 (make-adder 10))`)
	if evalSource(t, env, "(add5 1)") != 6.0 {
		t.Fatal("add5 should add 5")
	}
	if evalSource(t, env, "(add10 1)") != 11.0 {
		t.Fatal("add10 should add 10, not leak add5's frame")
	}
}

func TestEvalLeftToRightArgumentEvaluation(t *testing.T) {
	env := NewGlobalEnv()
	var order []Scmer
	env.Set(Symbol("log"), HostProcedure(func(a []Scmer) Scmer {
		order = append(order, a[0])
		return a[0]
	}))
	evalSource(t, env, `((lambda (a b c) 0) (log 'a) (log 'b) (log 'c))`)
	want := []Scmer{Symbol("a"), Symbol("b"), Symbol("c")}
	if len(order) != 3 {
		t.Fatalf("expected 3 logged args, got %v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected left-to-right order %v, got %v", want, order)
		}
	}
}

func TestEvalArityError(t *testing.T) {
	env := NewGlobalEnv()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on arity mismatch")
		}
		if _, ok := r.(*ArityError); !ok {
			t.Fatalf("expected *ArityError, got %T (%v)", r, r)
		}
	}()
	evalSource(t, env, "((lambda (a b) a) 1)")
}

func TestEvalApplyingNonCallablePanics(t *testing.T) {
	env := NewGlobalEnv()
	defer func() {
		r := recover()
		if _, ok := r.(*TypeError); !ok {
			t.Fatalf("expected *TypeError, got %T (%v)", r, r)
		}
	}()
	evalSource(t, env, "(1 2 3)")
}

func TestEvalOfEnvironmentHandlePanics(t *testing.T) {
	env := NewGlobalEnv()
	defer func() {
		r := recover()
		if _, ok := r.(*TypeError); !ok {
			t.Fatalf("expected *TypeError, got %T (%v)", r, r)
		}
	}()
	Eval(env, env)
}

func TestEvalQuoteDoesNotEvaluate(t *testing.T) {
	env := NewGlobalEnv()
	result := evalSource(t, env, "(quote (+ 1 2))")
	list, ok := result.([]Scmer)
	if !ok || len(list) != 3 {
		t.Fatalf("expected unevaluated list (+ 1 2), got %#v", result)
	}
}

func TestEvalDefineShorthand(t *testing.T) {
	env := NewGlobalEnv()
	result := evalSource(t, env, "(define (double n) (list n n)) (double 7)")
	want := []Scmer{7.0, 7.0}
	if !Equal(result, want) {
		t.Fatalf("expected (7 7), got %v", result)
	}
}

func TestEvalDefineLeavesNameUnboundOnFailure(t *testing.T) {
	env := NewGlobalEnv()
	func() {
		defer func() { recover() }()
		evalSource(t, env, "(define boom (undefined-symbol))")
	}()
	if env.Find(Symbol("boom")) != nil {
		t.Fatal("boom must stay unbound when its value expression panics")
	}
}

func TestEvalApplyBuiltin(t *testing.T) {
	env := NewGlobalEnv()
	result := evalSource(t, env, "(apply list '(1 2 3))")
	want := []Scmer{1.0, 2.0, 3.0}
	if !Equal(result, want) {
		t.Fatalf("expected (1 2 3), got %v", result)
	}
}
