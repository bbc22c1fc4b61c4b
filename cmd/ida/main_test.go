package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/reusee/dscope"
	"github.com/reusee/ida/modes"
	"github.com/reusee/ida/sessions"
)

func TestEvalAll(t *testing.T) {
	color.NoColor = true
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		newSession sessions.NewSession,
	) {
		session, err := newSession(context.Background())
		if err != nil {
			t.Fatal(err)
		}

		buf := new(bytes.Buffer)
		if !evalAll(session, []string{"let x = 20", "x + 1", "21 / 5"}, buf) {
			t.Fatal("should succeed")
		}
		if got := buf.String(); got != "20\n21\n4\n" {
			t.Fatalf("got %q", got)
		}

		buf.Reset()
		if evalAll(session, []string{"y", "x"}, buf) {
			t.Fatal("should fail")
		}
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if len(lines) != 2 || lines[0] != "RuntimeError => Variable undefined => y" || lines[1] != "20" {
			t.Fatalf("got %q", lines)
		}
	})
}
