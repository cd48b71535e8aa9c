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

import (
	"fmt"
	"io"

	"github.com/chzyer/readline"
)

// Entry is one top-level expression's outcome from Load: its printable
// input form, the result if evaluation succeeded, or the error if it
// panicked. Load reports and continues past an evaluator error instead
// of aborting the whole source (spec §4.7's pinned Open Question).
type Entry struct {
	Form   Scmer
	Result Scmer
	Err    error
}

// Load tokenizes source once, then reads and evaluates one top-level
// expression at a time against env, in textual order. A reader error
// aborts the whole load (it propagates as a panic, matching spec §4.7:
// "reader errors terminate the load"); an evaluator error is captured in
// that expression's Entry and loading continues with the next one.
func Load(source, text string, env *Env) []Entry {
	tokens := tokenize(source, text)
	var entries []Entry
	for len(tokens) > 0 {
		form := readFrom(&tokens)
		entries = append(entries, evalEntry(form, env))
	}
	return entries
}

func evalEntry(form Scmer, env *Env) (entry Entry) {
	entry.Form = form
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(error); ok {
				entry.Err = err
			} else {
				entry.Err = &HostError{Msg: fmt.Sprint(r)}
			}
		}
	}()
	entry.Result = Eval(form, env)
	return
}

const (
	newPrompt    = "\033[32m>\033[0m "
	contPrompt   = "\033[32m.\033[0m "
	resultPrompt = "\033[31m=\033[0m "
)

// Repl runs an interactive read-eval-print loop against env: line
// editing and history via readline, a recover boundary around every
// evaluated line so one bad expression never kills the session, and
// multi-line continuation when a line ends mid-expression.
func Repl(env *Env) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:            newPrompt,
		HistoryFile:       ".qremake-history.tmp",
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()
	l.CaptureExitSignal()

	pending := ""
	for {
		line, err := l.Readline()
		line = pending + line
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			pending = ""
			l.SetPrompt(newPrompt)
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			panic(err)
		}
		if line == "" {
			continue
		}

		func() {
			defer func() {
				if r := recover(); r != nil {
					if readErr, ok := r.(*ReadError); ok && (readErr.Msg == "expecting matching )" || readErr.Msg == "unexpected EOF") {
						pending = line + "\n"
						l.SetPrompt(contPrompt)
						return
					}
					fmt.Println("error:", errorMessage(r))
					pending = ""
					l.SetPrompt(newPrompt)
				}
			}()
			form := Read("user prompt", line)
			result := Eval(form, env)
			fmt.Print(resultPrompt)
			fmt.Println(String(result))
			pending = ""
			l.SetPrompt(newPrompt)
		}()
	}
}

func errorMessage(r interface{}) string {
	if err, ok := r.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(r)
}
