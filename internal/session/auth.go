// Package session holds the two kinds of per-user state the gateway keeps
// in memory: authenticated-user sessions (the backend token and profile,
// kept server-side) and seat-picking sessions with their occupancy
// pollers.  Nothing here survives a restart; the backend remains the
// source of truth for everything.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/OthonLozano/NetCinema-WebApplication/internal/model"
)

// ErrBadToken is returned when a login token cannot be verified against
// the backend's signing secret.
var ErrBadToken = errors.New("session: token did not verify")

// AuthSession is one logged-in user: the backend-issued bearer token plus
// the profile fetched at login time.  Read-only after creation; the only
// write paths into the store are Login and Logout.
type AuthSession struct {
	Token     string
	User      model.User
	ExpiresAt time.Time
}

// Expired reports whether the token's exp claim has passed.  A session
// with no exp claim never expires locally; the backend still rejects the
// token whenever it decides to.
func (a *AuthSession) Expired() bool {
	return !a.ExpiresAt.IsZero() && time.Now().After(a.ExpiresAt)
}

// AuthStore maps gateway session ids to logged-in users.  Handlers read
// through Current; only the login/logout flow mutates.
type AuthStore struct {
	mu     sync.RWMutex
	byID   map[string]*AuthSession
	secret []byte
}

// NewAuthStore builds an empty store.  secret is the backend's JWT signing
// secret, used to verify tokens and read their expiry.
func NewAuthStore(secret string) *AuthStore {
	return &AuthStore{
		byID:   make(map[string]*AuthSession),
		secret: []byte(secret),
	}
}

// Login verifies the backend-issued token, records the session and returns
// its gateway session id.
func (s *AuthStore) Login(token string, user model.User) (string, error) {
	expiresAt, err := tokenExpiry(token, s.secret)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	s.mu.Lock()
	s.byID[id] = &AuthSession{Token: token, User: user, ExpiresAt: expiresAt}
	s.mu.Unlock()
	return id, nil
}

// Current returns the session for id.  An expired session reads as
// logged-out and is evicted.
func (s *AuthStore) Current(id string) (*AuthSession, bool) {
	s.mu.RLock()
	sess, ok := s.byID[id]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if sess.Expired() {
		s.Logout(id)
		return nil, false
	}
	return sess, true
}

// Logout removes the session.  Unknown ids are ignored.
func (s *AuthStore) Logout(id string) {
	s.mu.Lock()
	delete(s.byID, id)
	s.mu.Unlock()
}

// tokenExpiry verifies the token signature and extracts the exp claim.
func tokenExpiry(token string, secret []byte) (time.Time, error) {
	tok, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrBadToken
		}
		return secret, nil
	})
	if err != nil || !tok.Valid {
		return time.Time{}, ErrBadToken
	}
	exp, err := tok.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, nil // no exp claim; backend decides
	}
	return exp.Time, nil
}
