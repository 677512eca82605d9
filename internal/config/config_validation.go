// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty listen address", ErrInvalidServerConfigs)
	}

	if cfg.Routes.Dir == "" || cfg.Routes.Suffix == "" {
		return fmt.Errorf("%w: routes dir and suffix are required", ErrInvalidRoutesConfigs)
	}

	if cfg.App.SignatureWindow <= 0 || cfg.App.TokenLifetimeDays <= 0 {
		return fmt.Errorf("%w: signature window and token lifetime must be positive", ErrInvalidAppConfigs)
	}

	return cfg.Storage.validate()
}

func (s *Storage) validate() error {
	switch s.SecretsBackend {
	case BackendMemory:
		return nil
	case BackendSQL:
		if s.DB.DSN == "" {
			return fmt.Errorf("%w: sql backend needs a DSN", ErrInvalidStorageConfigs)
		}
		if s.DB.Driver != DriverPostgres && s.DB.Driver != DriverSQLite {
			return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, s.DB.Driver)
		}
	case BackendRedis:
		if s.Redis.Addr == "" {
			return fmt.Errorf("%w: redis backend needs an address", ErrInvalidStorageConfigs)
		}
	case BackendAWS:
		if s.AWS.Region == "" {
			return fmt.Errorf("%w: aws backend needs a region", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, s.SecretsBackend)
	}

	return nil
}
