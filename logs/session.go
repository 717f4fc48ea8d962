package logs

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
)

// Session identifies one driver session, such as a console run or a script execution.
type Session string

type sessionKey struct{}

var SessionKey = sessionKey{}

type NewSession func(ctx context.Context, what string) (context.Context, Session)

func (Module) NewSession(
	logger Logger,
) NewSession {
	return func(ctx context.Context, what string) (context.Context, Session) {
		var args []any
		if v := ctx.Value(SessionKey); v != nil {
			args = append(args, "parent", v.(Session))
		}
		session := Session(rand.Text())
		ctx = context.WithValue(ctx, SessionKey, session)
		args = append(args, "what", what)
		logger.InfoContext(ctx, "new session", args...)
		return ctx, session
	}
}

// WrapSession annotates err with the session found in ctx.
func WrapSession(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	v := ctx.Value(SessionKey)
	if v == nil {
		return err
	}
	return errors.Join(err, fmt.Errorf("session: %s", v.(Session)))
}
