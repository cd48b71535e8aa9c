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
package main

import (
	"fmt"
	"os"

	"github.com/al-khanji/qremake/scm"
)

func main() {
	fmt.Print(`qremake Copyright (C) 2023   Carl-Philip Hänsch
    This program comes with ABSOLUTELY NO WARRANTY;
    This is free software, and you are welcome to redistribute it
    under certain conditions;
`)

	env := scm.NewGlobalEnv()
	env.Set(scm.Symbol("print"), scm.HostProcedure(func(a []scm.Scmer) scm.Scmer {
		for _, s := range a {
			fmt.Print(scm.String(s))
		}
		fmt.Println()
		return "ok"
	}))
	scm.OnShutdown(func() { fmt.Println("\nbye.") })

	if len(os.Args) > 1 {
		source, err := os.ReadFile(os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		for _, entry := range scm.Load(os.Args[1], string(source), env) {
			fmt.Println(scm.String(entry.Form))
			if entry.Err != nil {
				fmt.Println("=> error:", entry.Err)
				continue
			}
			fmt.Println("=>", scm.String(entry.Result))
		}
		return
	}

	scm.Repl(env)
}
