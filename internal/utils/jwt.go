package utils

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-route-loader/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidJWTParams is returned by GenerateJWTToken when the claims lack
// an issuer or expiration, or the sign key is empty.
var ErrInvalidJWTParams = errors.New("invalid params for generating JWT Token")

// GenerateJWTToken signs claims with HMAC-SHA256 and returns the compact
// token string.
//
// The claims must carry an issuer (iss) and an expiration (exp); signKey must
// be non-empty. Returns [ErrInvalidJWTParams] otherwise.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(models.TokenClaims{...}, "secret")
func GenerateJWTToken(claims models.TokenClaims, signKey string) (string, error) {
	if claims.Issuer == "" || claims.ExpiresAt == nil || signKey == "" {
		return "", ErrInvalidJWTParams
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return tokenString, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation always includes the signature (HS256 only) checked against
// tokenSignKey. Issuer, audience and expiration checks are controlled by the
// parser options passed by the caller, e.g. [jwt.WithIssuer],
// [jwt.WithAudience] or [jwt.WithExpirationRequired].
//
// Example usage:
//
//	claims, err := utils.ValidateAndParseJWTToken(raw, "secret", jwt.WithIssuer("acme"))
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseJWTToken(tokenString, tokenSignKey string, opts ...jwt.ParserOption) (*models.TokenClaims, error) {
	opts = append([]jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}, opts...)

	claims := &models.TokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	return claims, nil
}

// UnverifiedIssuer reads the "iss" claim without checking the signature.
// It only selects which issuer secret to verify the token with.
func UnverifiedIssuer(tokenString string) (string, error) {
	claims := &models.TokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return "", fmt.Errorf("error occurred during reading token claims: %w", err)
	}

	if claims.Issuer == "" {
		return "", errors.New("empty issuer error")
	}

	return claims.Issuer, nil
}
