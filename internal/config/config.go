package config // package config loads gateway configuration from environment variables

import (
	"log"     // log reports configuration errors and halts execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
	"time"    // time parses durations

	"github.com/joho/godotenv" // godotenv loads a local .env file when present
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The gateway owns no storage: everything here is
// either its own listen address, the location of the NetCinema backend it
// fronts, or tuning for polling and the notification channel.
type Config struct {
	Env            string        // application environment (e.g. "dev", "prod")
	Port           string        // HTTP port to listen on
	BackendBaseURL string        // base URL of the NetCinema REST API, e.g. http://localhost:8080/api
	BackendWSURL   string        // WebSocket URL of the notification feed, e.g. ws://localhost:8080/ws/notifications
	JWTSecret      string        // secret the backend signs tokens with; used here only to verify
	HTTPTimeout    time.Duration // per-request timeout on backend calls
	PollInterval   time.Duration // seat-occupancy refresh interval for open seat sessions
	SessionTTL     time.Duration // idle lifetime of a seat-picking session
	WSRetryDelay   time.Duration // delay between notification reconnect attempts
	WSMaxRetries   int           // reconnect attempts before the channel reports disconnected
}

// Load reads configuration from the environment, after loading a .env file
// if one exists.  Required variables are enforced by must(); the rest fall
// back to working defaults (5s occupancy polling, 5 reconnect attempts 3s
// apart).
func Load() Config {
	_ = godotenv.Load() // a missing .env is fine; real env vars still apply

	return Config{
		Env:            getenv("APP_ENV", "dev"),
		Port:           getenv("APP_PORT", "3000"),
		BackendBaseURL: must("BACKEND_BASE_URL"),
		BackendWSURL:   os.Getenv("BACKEND_WS_URL"),
		JWTSecret:      must("JWT_SECRET"),
		HTTPTimeout:    envDur("BACKEND_TIMEOUT", 10*time.Second),
		PollInterval:   envDur("SEAT_POLL_INTERVAL", 5*time.Second),
		SessionTTL:     envDur("SEAT_SESSION_TTL", 15*time.Minute),
		WSRetryDelay:   envDur("WS_RETRY_DELAY", 3*time.Second),
		WSMaxRetries:   envInt("WS_MAX_RETRIES", 5),
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	return d
}

func envBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return d
}
