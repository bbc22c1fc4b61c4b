package idalang

import (
	"context"
	"errors"
	"log/slog"
)

// Session evaluates successive inputs against one shared Env.
type Session struct {
	Env      *Env
	MaxDepth int
	Logger   *slog.Logger
}

func NewSession() *Session {
	return &Session{
		Env:      NewEnv(),
		MaxDepth: DefaultMaxDepth,
	}
}

func (s *Session) Eval(text string) (Value, error) {
	return s.EvalContext(context.Background(), text)
}

func (s *Session) EvalContext(ctx context.Context, text string) (Value, error) {
	tokens, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	s.debug(ctx, "tokens", "tokens", tokens)

	node, err := ParseDepth(tokens, s.MaxDepth)
	if err != nil {
		return nil, err
	}
	s.debug(ctx, "ast", "node", node.String())

	value, err := node.Eval(s.Env)
	if err != nil {
		return nil, err
	}
	s.debug(ctx, "result", "value", value.String(), "type", value.Type(), "id", value.ID())

	return value, nil
}

// Run never returns a pipeline failure; it renders it as text instead.
// Errors that are not *Error panic.
func (s *Session) Run(text string) string {
	return s.RunContext(context.Background(), text)
}

func (s *Session) RunContext(ctx context.Context, text string) string {
	result, _ := s.TryContext(ctx, text)
	return result
}

// TryContext is RunContext that also reports whether text evaluated without failure.
func (s *Session) TryContext(ctx context.Context, text string) (result string, ok bool) {
	value, err := s.EvalContext(ctx, text)
	if err != nil {
		var e *Error
		if errors.As(err, &e) {
			s.debug(ctx, "error", "kind", e.Kind.String(), "details", e.Details)
			return e.Error(), false
		}
		panic(err)
	}
	return value.String(), true
}

func (s *Session) debug(ctx context.Context, msg string, args ...any) {
	if s.Logger == nil {
		return
	}
	s.Logger.DebugContext(ctx, msg, args...)
}
