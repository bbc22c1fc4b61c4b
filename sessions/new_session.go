package sessions

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/reusee/ida/configs"
	"github.com/reusee/ida/idalang"
	"github.com/reusee/ida/logs"
)

// Session is an interpreter session with its own span for log attribution
type Session struct {
	*idalang.Session
	ID      string
	ctx     context.Context
	newSpan logs.NewSpan
}

// Run evaluates one line under a child span of the session
func (s *Session) Run(line string) string {
	result, _ := s.Try(line)
	return result
}

func (s *Session) Try(line string) (string, bool) {
	ctx, _ := s.newSpan(s.ctx, "line")
	return s.Session.TryContext(ctx, line)
}

type NewSession func(ctx context.Context) (*Session, error)

func (Module) NewSession(
	maxDepth configs.MaxDepth,
	preload configs.Preload,
	logger logs.Logger,
	newSpan logs.NewSpan,
) NewSession {
	return func(ctx context.Context) (*Session, error) {
		id := uuid.NewString()
		ctx, _ = newSpan(ctx, "session")

		session := &Session{
			Session: &idalang.Session{
				Env:      idalang.NewEnv(),
				MaxDepth: int(maxDepth),
				Logger:   logger.With("session", id),
			},
			ID:      id,
			ctx:     ctx,
			newSpan: newSpan,
		}
		logger.InfoContext(ctx, "new session",
			"id", id,
			"max_depth", int(maxDepth),
			"preload", len(preload),
		)

		for _, line := range preload {
			if _, err := session.EvalContext(ctx, line); err != nil {
				return nil, logs.WrapSpan(ctx, wrap(fmt.Errorf("preload %q: %w", line, err)))
			}
		}

		return session, nil
	}
}
