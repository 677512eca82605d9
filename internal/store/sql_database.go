package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-route-loader/internal/config"
	"github.com/MKhiriev/go-route-loader/internal/logger"
	"github.com/MKhiriev/go-route-loader/migrations"
)

type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnectDB opens the database selected by cfg.Driver.
func NewConnectDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: database driver %q", ErrUnknownBackend, cfg.Driver)
	}
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// placeholders returns the bind variable format of the driver.
func (db *DB) placeholders() sq.PlaceholderFormat {
	if db.driver == config.DriverSQLite {
		return sq.Question
	}

	return sq.Dollar
}

// retryable reports whether err is a transient failure worth one retry.
func (db *DB) retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}

	return db.errorClassificator.Classify(err) == Retryable
}
