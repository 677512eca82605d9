package config

import (
	"net/url"
	"strings"
)

const redactedValue = "xxxxx"

// Redacted returns a copy of cfg that is safe to log: issuer secret values,
// the Redis password and the password part of the database DSN are masked.
// Issuer names are kept.
func (cfg StructuredConfig) Redacted() StructuredConfig {
	out := cfg

	if cfg.Storage.Secrets != nil {
		out.Storage.Secrets = make(map[string]string, len(cfg.Storage.Secrets))
		for issuer := range cfg.Storage.Secrets {
			out.Storage.Secrets[issuer] = redactedValue
		}
	}
	if cfg.Storage.Redis.Password != "" {
		out.Storage.Redis.Password = redactedValue
	}
	out.Storage.DB.DSN = redactDSN(cfg.Storage.DB.DSN)

	return out
}

// redactDSN masks the password of URL ("postgres://u:p@host/db") and
// keyword/value ("host=h password=p") connection strings.
func redactDSN(dsn string) string {
	if strings.Contains(dsn, "://") {
		if u, err := url.Parse(dsn); err == nil {
			return u.Redacted()
		}
		return redactedValue
	}

	fields := strings.Fields(dsn)
	for i, field := range fields {
		if key, _, ok := strings.Cut(field, "="); ok && strings.EqualFold(key, "password") {
			fields[i] = key + "=" + redactedValue
		}
	}
	return strings.Join(fields, " ")
}
