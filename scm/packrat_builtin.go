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
	"fmt"

	packrat "github.com/launix-de/go-packrat/v2"
)

// scmParser wraps a compiled packrat grammar plus the generator
// expression evaluated against the captured variables on a match. Scripts
// never hold one directly: the parser builtin (registerParserBuiltin)
// returns a HostProcedure that closes over it.
type scmParser struct {
	root      packrat.Parser
	syntax    Scmer
	generator Scmer
}

func (p *scmParser) String() string { return "(parser ...)" }

func (p *scmParser) Match(s *packrat.Scanner) *packrat.Node {
	m := p.root.Match(s)
	if m == nil {
		return nil
	}
	return &packrat.Node{Matched: m.Matched, Start: m.Start, Parser: p, Children: []*packrat.Node{m}}
}

// parserVariable captures one (define var syntax) binding inside a
// grammar so its match is available to the generator expression.
type parserVariable struct {
	parser   packrat.Parser
	variable Symbol
}

func (v *parserVariable) Match(s *packrat.Scanner) *packrat.Node {
	m := v.parser.Match(s)
	if m == nil {
		return nil
	}
	return &packrat.Node{Matched: m.Matched, Start: m.Start, Parser: v, Children: []*packrat.Node{m}}
}

func findCapturedVars(node *packrat.Node, captures *Env) {
	if extractor, ok := node.Parser.(*parserVariable); ok {
		captures.Set(extractor.variable, extractScmer(node.Children[0], captures))
	}
	if _, ok := node.Parser.(*scmParser); ok {
		return // nested (parser ...) owns its own variable scope
	}
	for _, child := range node.Children {
		findCapturedVars(child, captures)
	}
}

// extractScmer turns a matched parse tree into a Scmer value, running
// each grammar node's generator (if any) against its captured variables.
func extractScmer(n *packrat.Node, captures *Env) Scmer {
	switch parser := n.Parser.(type) {
	case *scmParser:
		if parser.generator == nil {
			return extractScmer(n.Children[0], captures)
		}
		inner := captures.MakeInner()
		findCapturedVars(n.Children[0], inner)
		return Eval(parser.generator, inner)
	case *packrat.OrParser:
		return extractScmer(n.Children[0], captures)
	case *packrat.KleeneParser, *packrat.ManyParser:
		result := make([]Scmer, 0, len(n.Children)/2+1)
		for i := 0; i < len(n.Children); i += 2 {
			result = append(result, extractScmer(n.Children[i], captures))
		}
		return result
	case *packrat.MaybeParser:
		if len(n.Children) > 0 {
			return extractScmer(n.Children[0], captures)
		}
		return Nil()
	}
	return n.Matched
}

// parseSyntax compiles a Scheme-literal grammar description (spec §4.5's
// `parser` builtin) into a packrat.Parser, grounded on the teacher's
// packrat.go.
func parseSyntax(syntax Scmer, env *Env) packrat.Parser {
	switch n := syntax.(type) {
	case string:
		return packrat.NewAtomParser(n, false, true)
	case Symbol:
		switch n {
		case Symbol("$"):
			return packrat.NewEndParser(true)
		case Symbol("empty"):
			return packrat.NewEmptyParser()
		}
		frame := env.Find(n)
		if frame == nil {
			panic(&HostError{Msg: "parser: variable not defined: " + string(n)})
		}
		p, ok := frame.Vars[n].(*scmParser)
		if !ok {
			panic(&HostError{Msg: "parser: variable does not hold a parser: " + string(n)})
		}
		return p
	case []Scmer:
		if len(n) == 0 {
			panic(&HostError{Msg: "invalid parser ()"})
		}
		head, _ := n[0].(Symbol)
		switch head {
		case Symbol("parser"):
			return newScmParser(n[1], n[2], env)
		case Symbol("atom"):
			caseInsensitive := len(n) > 2 && Truthy(n[2])
			skipWS := len(n) <= 3 || Truthy(n[3])
			return packrat.NewAtomParser(String(n[1]), caseInsensitive, skipWS)
		case Symbol("regex"):
			caseInsensitive := len(n) > 2 && Truthy(n[2])
			skipWS := len(n) <= 3 || Truthy(n[3])
			return packrat.NewRegexParser(String(n[1]), caseInsensitive, skipWS)
		case Symbol("list"):
			sub := make([]packrat.Parser, len(n)-1)
			for i := 1; i < len(n); i++ {
				sub[i-1] = parseSyntax(n[i], env)
			}
			return packrat.NewAndParser(sub...)
		case Symbol("or"):
			sub := make([]packrat.Parser, len(n)-1)
			for i := 1; i < len(n); i++ {
				sub[i-1] = parseSyntax(n[i], env)
			}
			return packrat.NewOrParser(sub...)
		case Symbol("*"), Symbol("+"):
			sub := parseSyntax(n[1], env)
			sep := packrat.Parser(packrat.NewEmptyParser())
			if len(n) > 2 {
				sep = parseSyntax(n[2], env)
			}
			return packrat.NewKleeneParser(sub, sep)
		case Symbol("?"):
			if len(n) == 2 {
				return packrat.NewMaybeParser(parseSyntax(n[1], env))
			}
			sub := make([]packrat.Parser, len(n)-1)
			for i := 1; i < len(n); i++ {
				sub[i-1] = parseSyntax(n[i], env)
			}
			return packrat.NewMaybeParser(packrat.NewAndParser(sub...))
		case Symbol("define"):
			return &parserVariable{
				parser:   parseSyntax(n[2], env),
				variable: n[1].(Symbol),
			}
		}
	}
	panic(&HostError{Msg: fmt.Sprintf("unknown parser syntax: %s", String(syntax))})
}

func newScmParser(syntax, generator Scmer, env *Env) *scmParser {
	return &scmParser{
		root:      parseSyntax(syntax, env),
		syntax:    syntax,
		generator: generator,
	}
}

// execute runs the compiled grammar against str and builds the result
// Scmer, with env as the enclosing scope for the generator expression.
func (p *scmParser) execute(str string, env *Env) Scmer {
	scanner := packrat.NewScanner(str, packrat.SkipWhitespaceAndCommentsRegex)
	node, err := packrat.Parse(p, scanner)
	if err != nil {
		panic(&HostError{Msg: err.Error()})
	}
	return extractScmer(node, env)
}

// registerParserBuiltin installs `parser` as an ordinary procedure: both
// arguments arrive pre-evaluated, so a caller quotes the pieces it wants
// treated as grammar/generator data rather than evaluated immediately
// (e.g. `(parser '(list "a" "b") '(my-node a b))`), the same convention
// `eval`/`apply` already rely on.
func registerParserBuiltin(env *Env) {
	RegisterProcedure(env, &Declaration{
		Name: "parser",
		Desc: "compiles a grammar description into a callable parser.\n" +
			"(parser syntax generator) builds a grammar from a Scheme-literal syntax tree (quote it to\n" +
			"keep it from being evaluated as code) and returns a procedure of one string argument;\n" +
			"calling it parses that string and evaluates generator (quoted likewise, with (define var ...)\n" +
			"captures bound) to build the result.\n\n" +
			"syntax forms: \"str\" or (atom \"str\" caseinsensitive skipws), (regex \"re\" caseinsensitive skipws),\n" +
			"(list a b c), (or a b c), (* sub sep), (+ sub sep), (? x), $, empty, (define var sub), or a symbol\n" +
			"naming another parser.",
		MinParameter: 1, MaxParameter: 2,
		Params: []DeclarationParameter{
			{Name: "syntax", Type: "any", Desc: "grammar description"},
			{Name: "generator", Type: "any", Desc: "expression evaluated on a match, captured variables in scope"},
		},
	}, func(args []Scmer) Scmer {
		var generator Scmer
		if len(args) > 1 {
			generator = args[1]
		}
		p := newScmParser(args[0], generator, env)
		return HostProcedure(func(callArgs []Scmer) Scmer {
			s, ok := callArgs[0].(string)
			if !ok {
				panic(&TypeError{Op: "parser", Value: callArgs[0], Want: "string"})
			}
			return p.execute(s, env)
		})
	})
}
