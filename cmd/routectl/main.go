package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-route-loader/cmd/routectl/commands"
)

var (
	buildVersion = "dev"
	buildCommit  = "none"
	buildDate    = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	version := fmt.Sprintf("%s (commit: %s, built: %s)", buildVersion, buildCommit, buildDate)
	return commands.NewRootCommand(version).Execute()
}
