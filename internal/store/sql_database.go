// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/migrations"
)

// Dialect identifies the SQL backend behind a [DB].
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

const (
	sqliteScheme  = "sqlite://"
	sqlite3Scheme = "sqlite3://"
)

// Read queries are retried on transient failures.
const (
	readAttempts   = 3
	readRetryDelay = 50 * time.Millisecond
)

// DB wraps *sql.DB with the dialect-specific pieces the repositories need:
// a squirrel statement builder with the right placeholder format and an
// error classifier for the driver.
type DB struct {
	*sql.DB
	dialect            Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// newDB assembles a [DB] for an already opened connection.
func newDB(conn *sql.DB, dialect Dialect, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case DialectSQLite:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	}

	return db
}

// NewConnect opens the database selected by cfg.DSN: "sqlite://<path>"
// opens a SQLite file, anything else is handed to the pgx driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dialect, dsn, err := parseDSN(cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error parsing database DSN")
		return nil, err
	}

	switch dialect {
	case DialectSQLite:
		return NewConnectSQLite(ctx, dsn, log)
	default:
		return NewConnectPostgres(ctx, dsn, log)
	}
}

func parseDSN(dsn string) (Dialect, string, error) {
	switch {
	case dsn == "":
		return "", "", fmt.Errorf("%w: empty", ErrUnsupportedDSN)
	case strings.HasPrefix(dsn, sqliteScheme):
		return DialectSQLite, strings.TrimPrefix(dsn, sqliteScheme), nil
	case strings.HasPrefix(dsn, sqlite3Scheme):
		return DialectSQLite, strings.TrimPrefix(dsn, sqlite3Scheme), nil
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"), strings.Contains(dsn, "host="):
		return DialectPostgres, dsn, nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
	}
}

// Dialect returns the backend the connection talks to.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the embedded migrations of the connection's dialect.
func (db *DB) Migrate() error {
	switch db.dialect {
	case DialectSQLite:
		return migrations.Migrate(db.DB, migrations.DialectSQLite)
	default:
		return migrations.Migrate(db.DB, migrations.DialectPostgres)
	}
}

// withRetry runs fn up to readAttempts times while the classifier reports
// the failure as [Retryable]. The last error is returned unchanged.
func (db *DB) withRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 0; attempt < readAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(readRetryDelay):
			}
		}

		err = fn()
		if err == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).Int("attempt", attempt+1).Msg("retrying read after transient database error")
	}

	return err
}
