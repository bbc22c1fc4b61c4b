package idalang

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type scenario struct {
	Name  string `yaml:"name"`
	Lines []struct {
		Input  string `yaml:"input"`
		Output string `yaml:"output"`
	} `yaml:"lines"`
}

func TestScenarios(t *testing.T) {
	content, err := os.ReadFile("testdata/scenarios.yaml")
	if err != nil {
		t.Fatal(err)
	}
	var scenarios []scenario
	if err := yaml.Unmarshal(content, &scenarios); err != nil {
		t.Fatal(err)
	}
	if len(scenarios) == 0 {
		t.Fatal("no scenarios")
	}

	for _, s := range scenarios {
		t.Run(s.Name, func(t *testing.T) {
			session := NewSession()
			for i, line := range s.Lines {
				if got := session.Run(line.Input); got != line.Output {
					t.Fatalf("line %d %q: expected %q, got %q", i, line.Input, line.Output, got)
				}
			}
		})
	}
}

func TestRunDeclaresVariable(t *testing.T) {
	session := NewSession()
	if got := session.Run("let hello = 123"); got != "123" {
		t.Fatalf("got %s", got)
	}
	value, err := session.Env.Access("hello")
	if err != nil {
		t.Fatal(err)
	}
	i, ok := value.(Integer)
	if !ok || i.Val != 123 {
		t.Fatalf("got %#v", value)
	}
}

func TestEvalAccessIdempotent(t *testing.T) {
	session := NewSession()
	if _, err := session.Eval("let x = 1.5 * 3"); err != nil {
		t.Fatal(err)
	}
	tokens, err := Tokenize("x")
	if err != nil {
		t.Fatal(err)
	}
	node, err := Parse(tokens)
	if err != nil {
		t.Fatal(err)
	}
	a, err := node.Eval(session.Env)
	if err != nil {
		t.Fatal(err)
	}
	b, err := node.Eval(session.Env)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(a, b) {
		t.Fatalf("got %v and %v", a, b)
	}
}

func TestEvalErrors(t *testing.T) {
	session := NewSession()
	if _, err := session.Eval("let x"); err != nil {
		t.Fatal(err)
	}
	_, err := session.Eval("let x")
	if !errors.Is(err, ErrRuntime) {
		t.Fatalf("got %v", err)
	}
	_, err = session.Eval("y = 1")
	if !errors.Is(err, ErrRuntime) {
		t.Fatalf("got %v", err)
	}
	var e *Error
	if !errors.As(err, &e) || e.Details != "Variable undefined => y" {
		t.Fatalf("got %v", err)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	a := NewSession()
	b := NewSession()
	a.Run("let x = 1")
	if got := b.Run("x"); got != "RuntimeError => Variable undefined => x" {
		t.Fatalf("got %s", got)
	}
	if got := b.Run("let x = 2"); got != "2" {
		t.Fatalf("got %s", got)
	}
}

func TestSessionMaxDepth(t *testing.T) {
	session := NewSession()
	session.MaxDepth = 8
	got := session.Run(strings.Repeat("(", 10) + "1" + strings.Repeat(")", 10))
	if !strings.HasPrefix(got, "InvalidSyntax => Maximum nesting depth exceeded") {
		t.Fatalf("got %s", got)
	}
}

func TestSessionLogging(t *testing.T) {
	buf := new(bytes.Buffer)
	session := NewSession()
	session.Logger = slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	if got := session.Run("1 + 2"); got != "3" {
		t.Fatalf("got %s", got)
	}
	out := buf.String()
	if !strings.Contains(out, `node="(1, ADD, 2)"`) {
		t.Fatalf("got %s", out)
	}
	if !strings.Contains(out, "value=3") {
		t.Fatalf("got %s", out)
	}
}
