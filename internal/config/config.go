package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Port            string
	UpstreamTimeout time.Duration

	// Base URL of the external REST backend (auth, catalog, vets, care
	// locations, articles, profiles).
	BackendURL string

	// Postgres DSN for durable cart entries. The rest of the data lives in
	// the backend; the storefront only persists carts.
	CartDSN string

	// RabbitMQ URL for the checkout.completed consumer. Empty disables the
	// consumer entirely.
	RabbitURL string

	// Directory served under /assets and for the favicon. Empty disables
	// static file serving.
	WebDir string

	// CORS
	CORSAllowOrigins []string
}

func Load() Config {
	cfg := Config{
		Port:            getenv("PORT", "8080"),
		UpstreamTimeout: parseDuration(getenv("UPSTREAM_TIMEOUT", "10s"), 10*time.Second),

		BackendURL: getenv("BACKEND_URL", "http://backend:3333"),
		CartDSN:    getenv("CART_DB_DSN", ""),
		RabbitURL:  getenv("RABBITMQ_URL", ""),
		WebDir:     getenv("WEB_DIR", "web"),

		CORSAllowOrigins: splitCSV(getenv("CORS_ALLOW_ORIGINS", "*")),
	}

	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
