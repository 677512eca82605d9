package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-route-loader/internal/adapter"
	"github.com/MKhiriev/go-route-loader/internal/config"
	"github.com/MKhiriev/go-route-loader/internal/service"
	"github.com/MKhiriev/go-route-loader/internal/store"
	"github.com/MKhiriev/go-route-loader/models"
)

func NewIssueCommand(opts *Options) *cobra.Command {
	var (
		req        models.IssueRequest
		payload    string
		serverAddr string
		secret     string
	)

	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Issue a bearer token",
		Long: `Issue signs a token with an issuer secret.

By default the secret store is opened from the server configuration
(environment and --config). With --server the token is requested from a
running server's admin routes instead, signing the request with --secret.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if payload != "" {
				if err := json.Unmarshal([]byte(payload), &req.Payload); err != nil {
					return fmt.Errorf("invalid --payload: %w", err)
				}
			}

			ctx := opts.Logger.WithContext(cmd.Context())

			var (
				key models.IssuedKey
				err error
			)
			if serverAddr != "" {
				key, err = issueRemote(ctx, opts, serverAddr, secret, req)
			} else {
				key, err = issueLocal(ctx, opts, req)
			}
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(key)
		},
	}

	cmd.Flags().StringVar(&req.Issuer, "issuer", "", "Issuer whose secret signs the token (default from config)")
	cmd.Flags().StringVar(&req.Audience, "audience", "", "Token audience (default from config)")
	cmd.Flags().IntVar(&req.ExpiresInDays, "days", 0, "Token lifetime in days (default from config)")
	cmd.Flags().StringVar(&payload, "payload", "", "JSON object embedded in the token")
	cmd.Flags().StringVar(&serverAddr, "server", "", "Issue through a running server")
	cmd.Flags().StringVar(&secret, "secret", "", "Secret signing the admin request (with --server)")

	return cmd
}

func issueLocal(ctx context.Context, opts *Options, req models.IssueRequest) (models.IssuedKey, error) {
	cfg, err := config.GetConfigFrom(opts.ConfigPath)
	if err != nil {
		return models.IssuedKey{}, fmt.Errorf("failed to load config: %w", err)
	}

	storages, err := store.NewSecretStore(ctx, cfg.Storage, opts.Logger)
	if err != nil {
		return models.IssuedKey{}, fmt.Errorf("failed to open secret store: %w", err)
	}
	defer storages.Close()

	return service.NewTokenService(storages.SecretStore, cfg.App, opts.Logger).Issue(ctx, req)
}

func issueRemote(ctx context.Context, opts *Options, serverAddr, secret string, req models.IssueRequest) (models.IssuedKey, error) {
	client, err := adapter.NewHTTPRouteClient(adapter.ClientConfig{
		BaseURL: serverAddr,
		Issuer:  req.Issuer,
		Secret:  secret,
	}, opts.Logger)
	if err != nil {
		return models.IssuedKey{}, err
	}

	return client.IssueKey(ctx, req)
}
