package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"

	"github.com/MKhiriev/go-route-loader/internal/config"
	"github.com/MKhiriev/go-route-loader/models"
)

const defaultAWSPrefix = "route-loader/"

// SecretsManagerClientAPI is the subset of the Secrets Manager client used by
// [AWSSecretStore]. Tests substitute a fake.
type SecretsManagerClientAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
	PutSecretValue(ctx context.Context, params *secretsmanager.PutSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.PutSecretValueOutput, error)
	CreateSecret(ctx context.Context, params *secretsmanager.CreateSecretInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.CreateSecretOutput, error)
}

// AWSSecretStore resolves issuer secrets from AWS Secrets Manager. The
// secret id of an issuer is "<prefix><issuer>" and its SecretString is the
// shared secret.
type AWSSecretStore struct {
	client SecretsManagerClientAPI
	prefix string
}

// AWSOption configures an [AWSSecretStore].
type AWSOption func(*AWSSecretStore)

// WithSecretsManagerClient sets a custom Secrets Manager client.
func WithSecretsManagerClient(client SecretsManagerClientAPI) AWSOption {
	return func(s *AWSSecretStore) {
		s.client = client
	}
}

// NewAWSSecretStore builds a store for cfg. Without an injected client the
// default AWS credential chain is loaded; AWS_ACCESS_KEY_ID and friends are
// honored as usual, and cfg.Endpoint points the client at LocalStack-like
// endpoints with static test credentials.
func NewAWSSecretStore(ctx context.Context, cfg config.AWS, opts ...AWSOption) (*AWSSecretStore, error) {
	s := &AWSSecretStore{prefix: cfg.Prefix}
	if s.prefix == "" {
		s.prefix = defaultAWSPrefix
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.client != nil {
		return s, nil
	}

	configOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.Endpoint != "" {
		configOpts = append(configOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider("test", "test", ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, configOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var clientOpts []func(*secretsmanager.Options)
	if cfg.Endpoint != "" {
		endpoint := cfg.Endpoint
		clientOpts = append(clientOpts, func(o *secretsmanager.Options) {
			o.BaseEndpoint = &endpoint
		})
	}
	s.client = secretsmanager.NewFromConfig(awsCfg, clientOpts...)

	return s, nil
}

func (s *AWSSecretStore) secretID(issuer string) string {
	return s.prefix + issuer
}

// SetSecret writes a new version of the issuer's secret, creating the secret
// on first use.
func (s *AWSSecretStore) SetSecret(ctx context.Context, issuer, value string) error {
	if issuer == "" {
		return ErrEmptyIssuer
	}

	id := s.secretID(issuer)
	_, err := s.client.PutSecretValue(ctx, &secretsmanager.PutSecretValueInput{
		SecretId:     aws.String(id),
		SecretString: aws.String(value),
	})
	if err == nil {
		return nil
	}
	if !isNotFoundError(err) {
		return fmt.Errorf("%w: put %s: %w", ErrStoreUnavailable, id, err)
	}

	_, err = s.client.CreateSecret(ctx, &secretsmanager.CreateSecretInput{
		Name:         aws.String(id),
		SecretString: aws.String(value),
	})
	if err != nil {
		return fmt.Errorf("%w: create %s: %w", ErrStoreUnavailable, id, err)
	}

	return nil
}

// GetSecret reads the current version of the issuer's secret. A missing
// secret is reported as absent.
func (s *AWSSecretStore) GetSecret(ctx context.Context, issuer string) (models.Secret, bool, error) {
	if issuer == "" {
		return models.Secret{}, false, nil
	}

	id := s.secretID(issuer)
	out, err := s.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(id),
	})
	if isNotFoundError(err) {
		return models.Secret{}, false, nil
	}
	if err != nil {
		return models.Secret{}, false, fmt.Errorf("%w: get %s: %w", ErrStoreUnavailable, id, err)
	}
	if out.SecretString == nil {
		return models.Secret{}, false, nil
	}

	return models.Secret{
		Issuer:    issuer,
		Value:     aws.ToString(out.SecretString),
		UpdatedAt: aws.ToTime(out.CreatedDate),
	}, true, nil
}

func isNotFoundError(err error) bool {
	var resourceNotFound *types.ResourceNotFoundException
	return errors.As(err, &resourceNotFound)
}
