package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-route-loader/internal/service"
)

func NewSignCommand(opts *Options) *cobra.Command {
	var (
		secret    string
		issuer    string
		timestamp int64
		bare      bool
	)

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Print a signed Authorization header",
		Long: `Sign computes the "Sig" credential for secret at the current time, or at
--timestamp milliseconds since epoch. The result is valid for the server's
signature window.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			at := time.Now()
			if timestamp > 0 {
				at = time.UnixMilli(timestamp)
			}

			params := service.Sign(secret, at)
			params.Issuer = issuer
			opts.Logger.Debug().Str("func", "NewSignCommand").Str("issuer", issuer).Str("timestamp", params.Timestamp).Send()

			if bare {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), params.Header())
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Authorization: %s\n", params.Header())
			return err
		},
	}

	cmd.Flags().StringVar(&secret, "secret", "", "Issuer secret (required)")
	cmd.Flags().StringVar(&issuer, "issuer", "", "Issuer to name in the credential")
	cmd.Flags().Int64Var(&timestamp, "timestamp", 0, "Milliseconds since epoch to sign at (default now)")
	cmd.Flags().BoolVar(&bare, "bare", false, "Print only the header value")
	_ = cmd.MarkFlagRequired("secret")

	return cmd
}
