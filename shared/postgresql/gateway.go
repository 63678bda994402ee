package postgresql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// ErrNotConnected marks any failure to obtain a database connection.
// Callers branch on it with errors.Is to tell "no database" apart from
// errors that happen after a connection was established.
var ErrNotConnected = errors.New("database not connected")

// Config holds PostgreSQL connection configuration
type Config struct {
	// URL is a full connection string. When set it takes precedence
	// over the discrete fields below.
	URL         string
	Host        string
	Port        int
	User        string
	Password    string
	Database    string
	SSLMode     string
	PingTimeout time.Duration
}

// Gateway opens PostgreSQL connections on demand. Every request handler
// acquires its own connection through Open and closes it when done; the
// gateway keeps no pool and makes exactly one attempt per call.
type Gateway struct {
	config *Config
	logger *slog.Logger
}

// NewGateway creates a new connection gateway
func NewGateway(config *Config, logger *slog.Logger) *Gateway {
	return &Gateway{
		config: config,
		logger: logger,
	}
}

// Open makes a single connection attempt and verifies it with a ping.
// Any failure is returned wrapping ErrNotConnected with the cause
// preserved for logging. No retry, no backoff.
func (g *Gateway) Open(ctx context.Context) (*sqlx.DB, error) {
	dsn := g.config.DSN()

	timeout := g.config.PingTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		g.logger.Error("Database connection error",
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("%w: %v", ErrNotConnected, err)
	}

	return db, nil
}

// DSN returns the connection string Open will use: the configured URL
// (scheme-normalized) when present, otherwise a DSN assembled from the
// discrete fields.
func (c *Config) DSN() string {
	if c.URL != "" {
		return NormalizeURL(c.URL)
	}

	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.Database,
		c.SSLMode,
	)
}

// NormalizeURL rewrites the legacy postgres:// scheme prefix to
// postgresql:// (first occurrence only). Hosted providers still hand out
// the legacy form.
func NormalizeURL(url string) string {
	if strings.HasPrefix(url, "postgres://") {
		return strings.Replace(url, "postgres://", "postgresql://", 1)
	}
	return url
}
