package store

import "errors"

// Sentinel errors returned by secret stores to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmptyIssuer is returned when SetSecret is called with an empty
	// issuer name.
	ErrEmptyIssuer = errors.New("issuer must not be empty")

	// ErrSecretNotSaved is returned when an upsert completes without error
	// but affects no rows.
	ErrSecretNotSaved = errors.New("secret was not saved")

	// ErrStoreUnavailable wraps transport level failures of remote backends
	// (Redis, Secrets Manager).
	ErrStoreUnavailable = errors.New("secret store unavailable")

	// ErrUnknownBackend is returned by [NewSecretStore] for an unsupported
	// backend name.
	ErrUnknownBackend = errors.New("unknown secret store backend")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the SQL store when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a secret row fails.
	ErrScanningRow = errors.New("failed to scan secret row")
)
