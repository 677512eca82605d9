package store

import (
	"context"

	"github.com/MKhiriev/go-route-loader/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/secret_store_mock.go -package=mock

// SecretStore maps an issuer name to its shared secret.
//
// GetSecret reports an absent issuer (including the empty one) with
// ok == false and a nil error; errors are reserved for backend failures. SetSecret replaces any previous
// value for the issuer.
type SecretStore interface {
	SetSecret(ctx context.Context, issuer, value string) error
	GetSecret(ctx context.Context, issuer string) (secret models.Secret, ok bool, err error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
