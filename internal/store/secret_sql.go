package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-route-loader/internal/logger"
	"github.com/MKhiriev/go-route-loader/models"
)

// sqlSecretStore is the database-backed implementation of [SecretStore].
// It keeps one row per issuer in the "secrets" table.
type sqlSecretStore struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLSecretStore constructs a [SecretStore] on top of an open database.
// The schema is expected to be migrated already (see [DB.Migrate]).
func NewSQLSecretStore(db *DB, logger *logger.Logger) SecretStore {
	logger.Debug().Msg("creating sql secret store")
	return &sqlSecretStore{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// SetSecret upserts the issuer's secret. A retryable driver error (see
// [ClassifyPgError]) is retried once.
func (s *sqlSecretStore) SetSecret(ctx context.Context, issuer, value string) error {
	log := logger.FromContext(ctx)

	if issuer == "" {
		return ErrEmptyIssuer
	}

	query, args, err := buildUpsertSecretQuery(s.db.placeholders(), issuer, value, s.now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*sqlSecretStore.SetSecret").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil && s.db.retryable(err) {
		log.Warn().Err(err).Str("func", "*sqlSecretStore.SetSecret").Msg("retrying upsert")
		result, err = s.db.ExecContext(ctx, query, args...)
	}
	if err != nil {
		log.Err(err).Str("func", "*sqlSecretStore.SetSecret").Str("pg_code", postgresError(err)).Msg("error executing upsert")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrSecretNotSaved
	}

	return nil
}

// GetSecret reads the issuer's secret. A missing row is reported as absent.
func (s *sqlSecretStore) GetSecret(ctx context.Context, issuer string) (models.Secret, bool, error) {
	log := logger.FromContext(ctx)

	if issuer == "" {
		return models.Secret{}, false, nil
	}

	query, args, err := buildSelectSecretQuery(s.db.placeholders(), issuer)
	if err != nil {
		log.Err(err).Str("func", "*sqlSecretStore.GetSecret").Msg("error building query")
		return models.Secret{}, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	secret, err := s.scanSecret(ctx, query, args)
	if err != nil && !errors.Is(err, sql.ErrNoRows) && s.db.retryable(err) {
		log.Warn().Err(err).Str("func", "*sqlSecretStore.GetSecret").Msg("retrying lookup")
		secret, err = s.scanSecret(ctx, query, args)
	}

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Secret{}, false, nil
	case err != nil:
		log.Err(err).Str("func", "*sqlSecretStore.GetSecret").Str("pg_code", postgresError(err)).Msg("error reading secret")
		return models.Secret{}, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return secret, true, nil
}

func (s *sqlSecretStore) scanSecret(ctx context.Context, query string, args []any) (models.Secret, error) {
	var secret models.Secret

	row := s.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&secret.Issuer, &secret.Value, &secret.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Secret{}, err
		}
		return models.Secret{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return secret, nil
}
