package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OthonLozano/NetCinema-WebApplication/internal/config"
	"github.com/OthonLozano/NetCinema-WebApplication/internal/model"
	"github.com/OthonLozano/NetCinema-WebApplication/internal/session"
)

const testSecret = "test-secret"

func signToken(t *testing.T, ttl time.Duration) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(ttl).Unix(),
	})
	raw, err := tok.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return raw
}

func ctxFor(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func okHandler(c echo.Context) error { return c.String(http.StatusOK, "ok") }

func TestSessionAuth_CookieResolvesUser(t *testing.T) {
	store := session.NewAuthStore(testSecret)
	id, err := store.Login(signToken(t, time.Hour), model.User{ID: "u1", Role: model.RoleCustomer})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: id})
	c, rec := ctxFor(req)

	var seen *session.AuthSession
	err = SessionAuth(store)(func(c echo.Context) error {
		seen = Auth(c)
		return okHandler(c)
	})(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "u1", seen.User.ID)
	assert.Equal(t, model.RoleCustomer, c.Get("role"))
}

func TestSessionAuth_BearerFallback(t *testing.T) {
	store := session.NewAuthStore(testSecret)
	id, err := store.Login(signToken(t, time.Hour), model.User{ID: "u1", Role: model.RoleAdmin})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+id)
	c, rec := ctxFor(req)

	require.NoError(t, SessionAuth(store)(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionAuth_RejectsMissingAndUnknown(t *testing.T) {
	store := session.NewAuthStore(testSecret)

	c, rec := ctxFor(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, SessionAuth(store)(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "nope"})
	c, rec = ctxFor(req)
	require.NoError(t, SessionAuth(store)(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// deadRedis returns a client whose every command fails; 127.0.0.1:1 does
// not accept connections.
func deadRedis(t *testing.T) *redis.Client {
	t.Helper()
	c := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond})
	t.Cleanup(func() { c.Close() })
	return c
}

func cacheCfg() config.CacheConfig {
	return config.CacheConfig{
		Enabled:      true,
		Methods:      map[string]bool{http.MethodGet: true},
		TTL:          time.Minute,
		KeyStrategy:  "route_query",
		Prefix:       "cache",
		MaxBodyBytes: 1 << 20,
	}
}

func rateCfg() config.RateLimitConfig {
	return config.RateLimitConfig{
		Enabled:        true,
		Capacity:       1,
		RefillTokens:   1,
		RefillInterval: time.Second,
		TTL:            time.Minute,
		KeyStrategy:    "ip_route",
		Prefix:         "rl",
	}
}

func TestResponseCache_NilRedisIsPassthrough(t *testing.T) {
	mw := ResponseCache(cacheCfg(), nil)

	c, rec := ctxFor(httptest.NewRequest(http.MethodGet, "/v1/peliculas", nil))
	require.NoError(t, mw(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	assert.Empty(t, rec.Header().Get("X-Cache"))
}

func TestResponseCache_RedisDownStillServes(t *testing.T) {
	mw := ResponseCache(cacheCfg(), deadRedis(t))

	c, rec := ctxFor(httptest.NewRequest(http.MethodGet, "/v1/peliculas", nil))
	require.NoError(t, mw(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))
}

func TestResponseCache_SkipsAuthenticatedRequests(t *testing.T) {
	mw := ResponseCache(cacheCfg(), deadRedis(t))

	req := httptest.NewRequest(http.MethodGet, "/v1/peliculas", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "some-session"})
	c, rec := ctxFor(req)
	require.NoError(t, mw(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-Cache"))
}

func TestRateLimit_NilOrDisabledIsPassthrough(t *testing.T) {
	c, rec := ctxFor(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, RateLimit(rateCfg(), nil)(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cfg := rateCfg()
	cfg.Enabled = false
	c, rec = ctxFor(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, RateLimit(cfg, deadRedis(t))(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit_RedisDownFailsOpen(t *testing.T) {
	mw := RateLimit(rateCfg(), deadRedis(t))

	// Capacity is 1, yet every request passes because the bucket script
	// cannot run and the limiter must never block traffic on its own.
	for i := 0; i < 3; i++ {
		c, rec := ctxFor(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, mw(okHandler)(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRequireRole(t *testing.T) {
	mw := RequireRole(model.RoleAdmin)

	c, rec := ctxFor(httptest.NewRequest(http.MethodGet, "/", nil))
	c.Set("role", model.RoleAdmin)
	require.NoError(t, mw(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = ctxFor(httptest.NewRequest(http.MethodGet, "/", nil))
	c.Set("role", model.RoleCustomer)
	require.NoError(t, mw(okHandler)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	c, rec = ctxFor(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, mw(okHandler)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
