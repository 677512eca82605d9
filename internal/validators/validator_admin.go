package validators

import (
	"context"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-route-loader/models"
)

const (
	FieldIssuer   = "issuer"
	FieldValue    = "value"
	FieldAudience = "audience"
	FieldLifetime = "expires_in_days"
)

const (
	maxIssuerLength = 128
	maxLifetimeDays = 3650
)

// AdminValidator validates what the admin routes accept: issuer secrets
// ([models.Secret]) and token issuance requests ([models.IssueRequest]).
type AdminValidator struct{}

func NewAdminValidator() Validator {
	return &AdminValidator{}
}

func (v *AdminValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Secret:
		return v.validateSecret(value, fields...)
	case *models.Secret:
		return v.validateSecret(*value, fields...)

	case models.IssueRequest:
		return v.validateIssueRequest(value, fields...)
	case *models.IssueRequest:
		return v.validateIssueRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AdminValidator) validateSecret(secret models.Secret, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIssuer, FieldValue}
	}

	for _, f := range fields {
		switch f {
		case FieldIssuer:
			if secret.Issuer == "" {
				return ErrEmptyIssuer
			}
			if !isToken(secret.Issuer, maxIssuerLength) {
				return ErrInvalidIssuer
			}
		case FieldValue:
			if secret.Value == "" {
				return ErrEmptySecret
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateIssueRequest leaves empty issuer and audience alone: the token
// service falls back to the configured defaults for them.
func (v *AdminValidator) validateIssueRequest(req models.IssueRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIssuer, FieldAudience, FieldLifetime}
	}

	for _, f := range fields {
		switch f {
		case FieldIssuer:
			if req.Issuer != "" && !isToken(req.Issuer, maxIssuerLength) {
				return ErrInvalidIssuer
			}
		case FieldAudience:
			if req.Audience != "" && strings.TrimSpace(req.Audience) != req.Audience {
				return ErrInvalidAudience
			}
		case FieldLifetime:
			if req.ExpiresInDays < 0 || req.ExpiresInDays > maxLifetimeDays {
				return ErrInvalidLifetime
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isToken reports whether s fits in an Authorization header field: at most
// limit bytes of printable characters without spaces.
func isToken(s string, limit int) bool {
	if len(s) > limit {
		return false
	}
	for _, r := range s {
		if unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}
