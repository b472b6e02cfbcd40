// Package middleware carries the request-processing layers shared by the
// gateway's routes: session authentication, role gating, a Redis response
// cache for the browse endpoints and a token-bucket rate limiter.
package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/OthonLozano/NetCinema-WebApplication/internal/session"
)

// SessionCookie is the cookie carrying the gateway session id.  Login sets
// it, logout clears it.
const SessionCookie = "netcinema_session"

// SessionAuth resolves the gateway session id from the request and stores
// the logged-in user in the Echo context under "auth".  Requests without a
// live session are rejected with 401; the browser is expected to log in
// again.  The id is read from the session cookie first, then from a Bearer
// header for non-browser clients.
func SessionAuth(store *session.AuthStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := sessionID(c)
			if id == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "no session"})
			}
			auth, ok := store.Current(id)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "session expired"})
			}
			c.Set("auth", auth)
			c.Set("session_id", id)
			c.Set("user_id", auth.User.ID)
			c.Set("role", auth.User.Role)
			return next(c)
		}
	}
}

// OptionalSession resolves the session like SessionAuth but lets the
// request through either way.  Checkout uses it: guests may book, while a
// logged-in user gets the booking attached to their account.
func OptionalSession(store *session.AuthStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if id := sessionID(c); id != "" {
				if auth, ok := store.Current(id); ok {
					c.Set("auth", auth)
					c.Set("session_id", id)
					c.Set("user_id", auth.User.ID)
					c.Set("role", auth.User.Role)
				}
			}
			return next(c)
		}
	}
}

// Auth returns the session stored by SessionAuth or OptionalSession, or
// nil on anonymous requests.
func Auth(c echo.Context) *session.AuthSession {
	if a, ok := c.Get("auth").(*session.AuthSession); ok {
		return a
	}
	return nil
}

func sessionID(c echo.Context) string {
	if ck, err := c.Cookie(SessionCookie); err == nil && ck.Value != "" {
		return ck.Value
	}
	if h := c.Request().Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}
