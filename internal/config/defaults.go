package config

import "time"

const (
	defaultHTTPAddress       = "localhost:8080"
	defaultRequestTimeout    = 30 * time.Second
	defaultBodyLimit         = 50 << 20
	defaultRoutesDir         = "routes"
	defaultRoutesSuffix      = ".js"
	defaultTokenLifetimeDays = 30
	defaultSignatureWindow   = 60 * time.Second
	defaultLogLevel          = "debug"
	defaultRedisPrefix       = "route-loader:"
	defaultAWSPrefix         = "route-loader/"
)

// defaults returns the lowest-priority configuration layer.
func defaults() *StructuredConfig {
	sentinel := true

	return &StructuredConfig{
		App: App{
			LogLevel:          defaultLogLevel,
			SentinelBypass:    &sentinel,
			TokenLifetimeDays: defaultTokenLifetimeDays,
			SignatureWindow:   defaultSignatureWindow,
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
			BodyLimit:      defaultBodyLimit,
		},
		Routes: Routes{
			Dir:    defaultRoutesDir,
			Suffix: defaultRoutesSuffix,
		},
		Storage: Storage{
			SecretsBackend: BackendMemory,
			DB:             DB{Driver: DriverPostgres},
			Redis:          Redis{Prefix: defaultRedisPrefix},
			AWS:            AWS{Prefix: defaultAWSPrefix},
		},
	}
}
