package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-route-loader/internal/routes"
	"github.com/MKhiriev/go-route-loader/models"
)

type planEntry struct {
	Method    string   `json:"method"`
	Path      string   `json:"path"`
	Module    string   `json:"module"`
	Synthetic bool     `json:"synthetic,omitempty"`
	Allowed   []string `json:"allowed,omitempty"`
	Handler   string   `json:"handler,omitempty"`
	Policy    string   `json:"policy,omitempty"`
}

func NewRoutesCommand(opts *Options) *cobra.Command {
	var (
		suffix       string
		manifestPath string
		check        bool
		outputJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "routes [dir]",
		Short: "Print the registration plan of a route directory",
		Long: `Routes loads a route directory the way the server does and prints the
entries in registration order, synthetic HEAD and OPTIONS included.

With --check (implied by --manifest) every real entry is resolved against the
built-in handlers and the command fails if any of them has no handler.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "routes"
			if len(args) == 1 {
				dir = args[0]
			}

			plan, err := routes.LoadDir(dir, suffix)
			if err != nil {
				return fmt.Errorf("failed to load routes: %w", err)
			}
			opts.Logger.Debug().Str("func", "NewRoutesCommand").Str("dir", dir).Int("routes", len(plan)).Msg("plan loaded")

			var registry *routes.Registry
			if check || manifestPath != "" {
				registry = routes.Builtin("")
				if manifestPath != "" {
					manifest, err := routes.LoadManifest(manifestPath)
					if err != nil {
						return err
					}
					registry.UseManifest(manifest)
				}
			}

			entries, unresolved := describePlan(plan, registry)

			out := cmd.OutOrStdout()
			if outputJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				err = enc.Encode(entries)
			} else {
				err = writePlanTable(out, entries, registry != nil)
			}
			if err != nil {
				return err
			}

			return errors.Join(unresolved...)
		},
	}

	cmd.Flags().StringVar(&suffix, "suffix", routes.DefaultSuffix, "Route module suffix")
	cmd.Flags().StringVar(&manifestPath, "manifest", "", "Route manifest to resolve handlers with")
	cmd.Flags().BoolVar(&check, "check", false, "Resolve every route against the built-in handlers")
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Output in JSON format")

	return cmd
}

func describePlan(plan []models.RouteDescriptor, registry *routes.Registry) ([]planEntry, []error) {
	entries := make([]planEntry, 0, len(plan))
	var unresolved []error

	for _, desc := range plan {
		entry := planEntry{
			Method:    desc.Method,
			Path:      desc.Path(),
			Module:    desc.RawName,
			Synthetic: desc.IsSynthetic,
			Allowed:   desc.AllowedMethods,
		}

		if registry != nil && !desc.IsSynthetic {
			h, err := registry.Resolve(desc)
			if err != nil {
				unresolved = append(unresolved, err)
			} else {
				entry.Handler = h.Name
				policy := h.Policy
				if desc.Method == http.MethodOptions {
					policy = routes.Policy{}
				}
				entry.Policy = describePolicy(policy)
			}
		}

		entries = append(entries, entry)
	}

	return entries, unresolved
}

func describePolicy(p routes.Policy) string {
	if !p.Auth {
		return "public"
	}

	parts := []string{"auth"}
	if p.Private {
		parts = append(parts, "private")
	}
	if p.Bypass {
		parts = append(parts, "bypass")
	}
	if p.Audience != "" {
		parts = append(parts, "aud="+p.Audience)
	}
	return strings.Join(parts, ",")
}

func writePlanTable(out io.Writer, entries []planEntry, withHandlers bool) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	header := "METHOD\tPATH\tMODULE\tALLOW"
	if withHandlers {
		header += "\tHANDLER\tPOLICY"
	}
	fmt.Fprintln(w, header)

	for _, e := range entries {
		module := e.Module
		if e.Synthetic {
			module += " (synthetic)"
		}
		line := fmt.Sprintf("%s\t%s\t%s\t%s", e.Method, e.Path, module, orDash(strings.Join(e.Allowed, ", ")))
		if withHandlers {
			line += fmt.Sprintf("\t%s\t%s", orDash(e.Handler), orDash(e.Policy))
		}
		fmt.Fprintln(w, line)
	}

	return w.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
