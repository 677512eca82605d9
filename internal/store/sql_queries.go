package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	secretsTable = "secrets"

	colIssuer    = "issuer"
	colValue     = "value"
	colUpdatedAt = "updated_at"

	upsertSecretSuffix = "ON CONFLICT (issuer) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at"
)

// buildUpsertSecretQuery builds an INSERT that overwrites the issuer's
// previous secret. ON CONFLICT is understood by Postgres and SQLite alike.
func buildUpsertSecretQuery(format sq.PlaceholderFormat, issuer, value string, now time.Time) (string, []any, error) {
	return sq.Insert(secretsTable).
		Columns(colIssuer, colValue, colUpdatedAt).
		Values(issuer, value, now).
		Suffix(upsertSecretSuffix).
		PlaceholderFormat(format).
		ToSql()
}

// buildSelectSecretQuery builds a lookup of a single issuer's secret.
func buildSelectSecretQuery(format sq.PlaceholderFormat, issuer string) (string, []any, error) {
	return sq.Select(colIssuer, colValue, colUpdatedAt).
		From(secretsTable).
		Where(sq.Eq{colIssuer: issuer}).
		PlaceholderFormat(format).
		ToSql()
}
