package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/reusee/dscope"
	"github.com/reusee/ida/cmds"
	"github.com/reusee/ida/configs"
	"github.com/reusee/ida/modes"
	"github.com/reusee/ida/sessions"
)

var (
	exprsFlag   = cmds.Collect[string]("-e")
	noColorFlag = cmds.Switch("-no-color")
)

func main() {
	cmds.Execute(os.Args[1:])
	if *noColorFlag {
		color.NoColor = true
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		newSession sessions.NewSession,
		prompt configs.Prompt,
		historyFile configs.HistoryFile,
	) {
		session, err := newSession(context.Background())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if len(*exprsFlag) > 0 {
			if !evalAll(session, *exprsFlag, os.Stdout) {
				os.Exit(1)
			}
			return
		}

		if err := runREPL(session, string(prompt), string(historyFile)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	})
}

var errorColor = color.New(color.FgRed)

func printResult(w io.Writer, result string, ok bool) {
	if !ok {
		errorColor.Fprintln(w, result)
		return
	}
	fmt.Fprintln(w, result)
}

func evalAll(session *sessions.Session, lines []string, w io.Writer) bool {
	ok := true
	for _, line := range lines {
		result, succeeded := session.Try(line)
		printResult(w, result, succeeded)
		if !succeeded {
			ok = false
		}
	}
	return ok
}
