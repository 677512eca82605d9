package commands

import (
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-route-loader/internal/adapter"
)

func NewCallCommand(opts *Options) *cobra.Command {
	var (
		cfg        adapter.ClientConfig
		data       string
		showHeader bool
	)

	cmd := &cobra.Command{
		Use:   "call METHOD PATH",
		Short: "Call a route on a running server",
		Long: `Call sends one authenticated request and prints the response body.

With --secret the request is signed right before it is sent; with --token the
token is sent as a bearer credential. Non-2xx responses are printed and the
command exits with an error.`,
		Example: `  routectl call GET /whoami --secret s3cr3t --issuer acme
  routectl call POST /echo --data '{"hello":"world"}' --token eyJhbGciOi...`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			method, path := strings.ToUpper(args[0]), args[1]

			var body any
			if data != "" {
				if !json.Valid([]byte(data)) {
					return fmt.Errorf("--data is not valid JSON")
				}
				body = json.RawMessage(data)
			}

			client, err := adapter.NewHTTPRouteClient(cfg, opts.Logger)
			if err != nil {
				return err
			}

			resp, callErr := client.Call(opts.Logger.WithContext(cmd.Context()), method, path, body)
			if resp == nil {
				return callErr
			}

			out := cmd.OutOrStdout()
			if showHeader {
				fmt.Fprintf(out, "%d %s\n", resp.Status, http.StatusText(resp.Status))
				for _, name := range slices.Sorted(maps.Keys(resp.Header)) {
					fmt.Fprintf(out, "%s: %s\n", name, strings.Join(resp.Header[name], ", "))
				}
				fmt.Fprintln(out)
			}
			if len(resp.Body) > 0 {
				fmt.Fprintln(out, strings.TrimRight(string(resp.Body), "\n"))
			}

			return callErr
		},
	}

	cmd.Flags().StringVar(&cfg.BaseURL, "server", "localhost:8080", "Server address")
	cmd.Flags().DurationVar(&cfg.Timeout, "timeout", 15*time.Second, "Request timeout")
	cmd.Flags().StringVar(&cfg.Secret, "secret", "", "Sign the request with this issuer secret")
	cmd.Flags().StringVar(&cfg.Issuer, "issuer", "", "Issuer named in the signature")
	cmd.Flags().StringVar(&cfg.Token, "token", "", "Bearer token")
	cmd.Flags().StringVarP(&data, "data", "d", "", "JSON request body")
	cmd.Flags().BoolVarP(&showHeader, "include", "i", false, "Print the status line and headers")

	return cmd
}
