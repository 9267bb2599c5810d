package postgres

import (
	"context"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

const (
	maxTracedQueryLength = 512
	pingTimeout          = 5 * time.Second
)

type Options struct {
	URL string
	// DisablePreparedBinary asks lib/pq for text results so pgbouncer in
	// transaction mode can serve the pool.
	DisablePreparedBinary bool
	MaxOpenConns          int
}

// Open returns a traced pool that has answered a ping.
func Open(ctx context.Context, opts Options) (*sqlx.DB, error) {
	db, err := otelsqlx.Open(
		"postgres",
		NormalizeURL(opts.URL, opts.DisablePreparedBinary),
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(DBName(opts.URL)),
		otelsql.WithQueryFormatter(formatQueryForTrace),
	)
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}
	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
		db.SetMaxIdleConns(opts.MaxOpenConns)
	}
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping database")
	}
	return db, nil
}

// NormalizeURL adds disable_prepared_binary_result=yes unless the URL already sets it.
func NormalizeURL(raw string, disablePreparedBinary bool) string {
	if !disablePreparedBinary {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" {
		return raw
	}

	query := parsed.Query()
	if query.Get("disable_prepared_binary_result") != "" {
		return raw
	}
	query.Set("disable_prepared_binary_result", "yes")
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

// DBName reads the database name from a URL or key=value DSN.
func DBName(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if parsed, err := url.Parse(trimmed); err == nil && parsed.Scheme != "" {
		return strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
	}

	for _, token := range strings.Fields(trimmed) {
		if name, ok := strings.CutPrefix(token, "dbname="); ok {
			return strings.Trim(strings.TrimSpace(name), `"'`)
		}
	}
	return ""
}

var whitespace = regexp.MustCompile(`\s+`)

// formatQueryForTrace collapses whitespace and caps span statement length.
func formatQueryForTrace(query string) string {
	normalized := whitespace.ReplaceAllString(strings.TrimSpace(query), " ")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}
	return normalized[:maxTracedQueryLength] + "..."
}
