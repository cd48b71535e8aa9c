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

// registerSpecialForms installs the six forms that receive their
// operands unevaluated and control their own evaluation (spec §4.5).
// They are bound exactly the way a host's own RegisterSyntax call would
// bind one — nothing here is privileged in the evaluator.
func registerSpecialForms(env *Env) {
	RegisterSyntax(env, &Declaration{
		Name: "quote", Desc: "returns its argument unevaluated. 'x is sugar for (quote x).",
		MinParameter: 1, MaxParameter: 1,
		Params: []DeclarationParameter{{Name: "x", Type: "any", Desc: "expression to return unevaluated"}},
	}, func(callEnv *Env, args []Scmer) Scmer {
		return args[0]
	})

	RegisterSyntax(env, &Declaration{
		Name: "if", Desc: "(if pred t-expr f-expr) evaluates pred; if truthy returns eval(t-expr), else eval(f-expr). Only one branch is ever evaluated.",
		MinParameter: 3, MaxParameter: 3,
		Params: []DeclarationParameter{
			{Name: "pred", Type: "any", Desc: "condition"},
			{Name: "t-expr", Type: "any", Desc: "evaluated when pred is truthy"},
			{Name: "f-expr", Type: "any", Desc: "evaluated when pred is falsy"},
		},
	}, func(callEnv *Env, args []Scmer) Scmer {
		if Truthy(Eval(args[0], callEnv)) {
			return Eval(args[1], callEnv)
		}
		return Eval(args[2], callEnv)
	})

	RegisterSyntax(env, &Declaration{
		Name: "lambda", Desc: "(lambda (p...) body) produces a closure capturing the current environment.",
		MinParameter: 2, MaxParameter: 2,
		Params: []DeclarationParameter{
			{Name: "params", Type: "list", Desc: "parameter symbols"},
			{Name: "body", Type: "any", Desc: "single body expression"},
		},
	}, func(callEnv *Env, args []Scmer) Scmer {
		paramList := asList("lambda", args[0])
		params := make([]Symbol, len(paramList))
		for i, p := range paramList {
			sym, ok := p.(Symbol)
			if !ok {
				panic(&TypeError{Op: "lambda", Value: p, Want: "symbol"})
			}
			params[i] = sym
		}
		return &Proc{Params: params, Body: args[1], Env: callEnv}
	})

	RegisterSyntax(env, &Declaration{
		Name: "define",
		Desc: "(define name expr) binds name to eval(expr) in the current frame.\n" +
			"(define (name p...) body) is sugar for (define name (lambda (p...) body)).\n" +
			"If eval(expr) panics, name is left unbound.",
		MinParameter: 2, MaxParameter: 2,
		Params: []DeclarationParameter{
			{Name: "name", Type: "symbol", Desc: "name, or (name params...) shorthand"},
			{Name: "expr", Type: "any", Desc: "value expression"},
		},
	}, func(callEnv *Env, args []Scmer) Scmer {
		if shorthand, ok := args[0].([]Scmer); ok {
			// (define (name p...) body) -> (define name (lambda (p...) body))
			name := shorthand[0].(Symbol)
			lambdaExpr := []Scmer{Symbol("lambda"), shorthand[1:], args[1]}
			value := Eval(lambdaExpr, callEnv)
			return callEnv.Set(name, value)
		}
		name, ok := args[0].(Symbol)
		if !ok {
			panic(&TypeError{Op: "define", Value: args[0], Want: "symbol"})
		}
		value := Eval(args[1], callEnv)
		return callEnv.Set(name, value)
	})

	RegisterSyntax(env, &Declaration{
		Name: "eval", Desc: "re-evaluates its (already evaluated) argument.",
		MinParameter: 1, MaxParameter: 1,
		Params: []DeclarationParameter{{Name: "expr", Type: "any", Desc: "expression to evaluate, then evaluate again"}},
	}, func(callEnv *Env, args []Scmer) Scmer {
		return Eval(Eval(args[0], callEnv), callEnv)
	})

	RegisterSyntax(env, &Declaration{
		Name: "apply", Desc: "(apply proc args) evaluates both, then calls proc with the evaluated list args as its argument list.",
		MinParameter: 2, MaxParameter: 2,
		Params: []DeclarationParameter{
			{Name: "proc", Type: "func", Desc: "callable"},
			{Name: "args", Type: "list", Desc: "argument list"},
		},
	}, func(callEnv *Env, args []Scmer) Scmer {
		proc := Eval(args[0], callEnv)
		callArgs := asList("apply", Eval(args[1], callEnv))
		return Apply(proc, callArgs)
	})
}

// registerMisc installs ambient, non-language-feature builtins: the
// self-documenting help catalog (declare.go) and the packrat parser
// builtin (packrat_builtin.go).
func registerMisc(env *Env) {
	RegisterProcedure(env, &Declaration{
		Name: "help", Desc: "with no arguments, lists every registered builtin; (help \"name\") shows one builtin's documentation.",
		MinParameter: 0, MaxParameter: 1,
		Params: []DeclarationParameter{{Name: "name", Type: "string", Desc: "builtin name, optional"}},
	}, func(args []Scmer) Scmer {
		name := ""
		if len(args) > 0 {
			s, ok := args[0].(string)
			if !ok {
				panic(&TypeError{Op: "help", Value: args[0], Want: "string"})
			}
			name = s
		}
		return Help(name)
	})

	registerParserBuiltin(env)
}
