package main

import (
	"fmt"
	"os"
	"strings"

	"soc/evaluator"
	"soc/repl"
	"soc/text"
)

func main() {
	ev := evaluator.NewStandard()

	// Arguments are taken as a one-shot expression; no arguments starts
	// the interactive loop.
	if len(os.Args) > 1 {
		fmt.Println(ev.InterpretString(strings.Join(os.Args[1:], " ")))
		return
	}

	fmt.Println("soc version " + text.VERSION)
	repl.Start(ev, os.Stdout)
}
