package service

import (
	"context"
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-route-loader/internal/config"
	"github.com/MKhiriev/go-route-loader/internal/logger"
	"github.com/MKhiriev/go-route-loader/internal/utils"
	"github.com/MKhiriev/go-route-loader/models"
)

var signedAt = time.UnixMilli(1_700_000_000_000)

func newTestSignatureService() SignatureService {
	return NewSignatureService(config.App{}, logger.Nop())
}

func TestSign(t *testing.T) {
	params := Sign("s", signedAt)

	ts := strconv.FormatInt(signedAt.UnixMilli(), 10)
	assert.Equal(t, models.AuthTypeSig, params.AuthType)
	assert.Equal(t, ts, params.Timestamp)
	assert.Equal(t, utils.HashString("s"+ts, "s"), params.Key)
	assert.Equal(t, "Sig "+params.Key+" "+ts, params.Header())
}

// signedWith builds a Sig credential for a raw timestamp string.
func signedWith(secret, ts string) models.AuthParams {
	return models.AuthParams{AuthType: models.AuthTypeSig, Key: utils.HashString(secret+ts, secret), Timestamp: ts}
}

func TestSignatureService_Verify(t *testing.T) {
	secret := models.Secret{Issuer: "acme", Value: "s"}
	valid := Sign("s", signedAt)

	tests := []struct {
		name    string
		params  models.AuthParams
		at      time.Time
		wantErr error
	}{
		{name: "inside window", params: valid, at: signedAt.Add(30000 * time.Millisecond)},
		{name: "window edge", params: valid, at: signedAt.Add(60000 * time.Millisecond)},
		{name: "future timestamp", params: valid, at: signedAt.Add(-10 * time.Minute)},
		{name: "expired", params: valid, at: signedAt.Add(60001 * time.Millisecond), wantErr: ErrExpired},
		{
			name:    "not a signature",
			params:  models.AuthParams{AuthType: models.AuthTypeBearer, Key: valid.Key, Timestamp: valid.Timestamp},
			at:      signedAt,
			wantErr: ErrUnauthenticated,
		},
		{
			name:    "missing timestamp",
			params:  models.AuthParams{AuthType: models.AuthTypeSig, Key: valid.Key},
			at:      signedAt,
			wantErr: ErrUnauthenticated,
		},
		{
			name:    "timestamp not a number",
			params:  models.AuthParams{AuthType: models.AuthTypeSig, Key: valid.Key, Timestamp: "yesterday"},
			at:      signedAt,
			wantErr: ErrUnauthenticated,
		},
		{
			name:    "negative timestamp",
			params:  signedWith("s", "-1"),
			at:      signedAt,
			wantErr: ErrUnauthenticated,
		},
		{
			name:    "minimum int64 timestamp",
			params:  signedWith("s", strconv.FormatInt(math.MinInt64, 10)),
			at:      signedAt,
			wantErr: ErrUnauthenticated,
		},
		{
			name:    "maximum int64 timestamp",
			params:  signedWith("s", strconv.FormatInt(math.MaxInt64, 10)),
			at:      signedAt,
		},
		{
			name:    "signed with another secret",
			params:  Sign("other", signedAt),
			at:      signedAt,
			wantErr: ErrSignatureMismatch,
		},
	}

	s := newTestSignatureService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := s.Verify(context.Background(), tt.params, secret, tt.at)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, identity.Issuer)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "acme", identity.Issuer)
			assert.Equal(t, models.AuthTypeSig, identity.Scheme)
			assert.False(t, identity.Bypassed)
		})
	}
}

// TestSignatureService_Verify_SingleCharMutation flips every character of a
// valid signature in turn.
func TestSignatureService_Verify_SingleCharMutation(t *testing.T) {
	s := newTestSignatureService()
	secret := models.Secret{Issuer: "acme", Value: "s"}
	valid := Sign("s", signedAt)

	for i := range len(valid.Key) {
		mutated := []byte(valid.Key)
		if mutated[i] == '0' {
			mutated[i] = '1'
		} else {
			mutated[i] = '0'
		}

		params := valid
		params.Key = string(mutated)

		_, err := s.Verify(context.Background(), params, secret, signedAt.Add(time.Second))
		assert.ErrorIs(t, err, ErrSignatureMismatch, "position %d", i)
	}
}

func TestSignatureService_CustomWindow(t *testing.T) {
	s := NewSignatureService(config.App{SignatureWindow: 5 * time.Second}, logger.Nop())
	secret := models.Secret{Issuer: "acme", Value: "s"}

	_, err := s.Verify(context.Background(), Sign("s", signedAt), secret, signedAt.Add(5*time.Second))
	assert.NoError(t, err)

	_, err = s.Verify(context.Background(), Sign("s", signedAt), secret, signedAt.Add(5*time.Second+time.Millisecond))
	assert.ErrorIs(t, err, ErrExpired)
}
