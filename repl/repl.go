package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/lmorg/readline"

	"soc/evaluator"
	"soc/object"
	"soc/text"
)

// Start runs the interactive loop against one persistent session.
// 'reset' empties the session, 'quit' leaves. Everything else goes to
// the evaluator.
func Start(ev *evaluator.Evaluator, out io.Writer) {
	rline := readline.NewInstance()
	for {
		rline.SetPrompt(text.PROMPT)
		line, err := rline.Readline()
		if err != nil {
			fmt.Fprintln(out, text.ERROR, err)
			return
		}

		line = strings.TrimSpace(line)

		if line == "" {
			continue
		}

		switch line {
		case "quit":
			return
		case "reset":
			ev.Reset()
			fmt.Fprintln(out, text.Green("ok"))
			continue
		}

		result := ev.Interpret(line)
		if result.Type() == object.ERROR_OBJ {
			e := result.(*object.Error)
			fmt.Fprintln(out, text.ERROR+e.Message+text.DescribePos(e.Token))
			continue
		}
		fmt.Fprintln(out, result.Inspect())
	}
}
