// Package config provides configuration loading, merging, and validation
// facilities for the route server and the routectl operator CLI.
//
// Configuration is assembled from multiple sources. Earlier sources win and
// later sources only fill fields that are still unset:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the server binary and
// [GetConfigFrom] for tools that parse their own flags.
package config
