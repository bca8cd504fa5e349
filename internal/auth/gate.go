// Package auth gates the admin pages behind one shared password.
//
// This is an accidental-edit deterrent, not authentication: there is a
// single credential, no users, and the content it protects is public
// anyway. Do not treat an authenticated session as proof of identity.
package auth

import (
	"context"
	"fmt"

	"portfolio/internal/kv"
)

// DefaultPassword is used when no password is configured.
const DefaultPassword = "admin"

const flagKey = "dashboard_auth"

// Gate records, per session, whether the admin password has been entered.
// The flag lives in a session-scoped store; it survives page reloads but
// not the end of the session.
type Gate struct {
	password string
	sessions kv.Store
}

func NewGate(password string, sessions kv.Store) *Gate {
	if password == "" {
		password = DefaultPassword
	}
	return &Gate{password: password, sessions: sessions}
}

// Login marks the session authenticated when password matches. A wrong
// password leaves the session as it was, so it never logs anyone out.
func (g *Gate) Login(ctx context.Context, session, password string) (bool, error) {
	if password != g.password {
		return false, nil
	}
	if err := g.sessions.Set(ctx, key(session), "true"); err != nil {
		return false, fmt.Errorf("store session flag: %w", err)
	}
	return true, nil
}

// Logout clears the session flag unconditionally.
func (g *Gate) Logout(ctx context.Context, session string) error {
	if err := g.sessions.Delete(ctx, key(session)); err != nil {
		return fmt.Errorf("clear session flag: %w", err)
	}
	return nil
}

// Authenticated reports whether the session has logged in. Read errors
// count as logged out.
func (g *Gate) Authenticated(ctx context.Context, session string) bool {
	if session == "" {
		return false
	}
	v, ok, err := g.sessions.Get(ctx, key(session))
	return err == nil && ok && v == "true"
}

func key(session string) string {
	return flagKey + ":" + session
}
