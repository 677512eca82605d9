package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-admin mount secret and key management routes
//	-routes routes directory
//	-suffix route module suffix
//	-manifest route manifest path
//	-backend secret store backend (memory|sql|redis|aws)
//	-d database DSN
//	-db-driver database driver (pgx|sqlite3)
//	-redis-addr redis address
//	-aws-region aws region
//	-c/-config json file path with configs
//	-issuer default issuer
//	-audience default token audience
//	-auth-bypass bypass every authentication check
//	-log-level log level
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var requestTimeout time.Duration
	var adminRoutes bool
	var routesDir, routesSuffix, manifest string
	var backend, databaseDSN, databaseDriver string
	var redisAddr, awsRegion string
	var jsonConfigPath string
	var defaultIssuer, defaultAudience string
	var authBypass bool
	var logLevel string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.BoolVar(&adminRoutes, "admin", false, "Mount secret and key management routes")
	flag.StringVar(&routesDir, "routes", "", "Routes directory")
	flag.StringVar(&routesSuffix, "suffix", "", "Route module suffix")
	flag.StringVar(&manifest, "manifest", "", "Route manifest path")
	flag.StringVar(&backend, "backend", "", "Secret store backend (memory, sql, redis, aws)")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&databaseDriver, "db-driver", "", "Database driver (pgx, sqlite3)")
	flag.StringVar(&redisAddr, "redis-addr", "", "Redis address")
	flag.StringVar(&awsRegion, "aws-region", "", "AWS region")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&defaultIssuer, "issuer", "", "Default issuer")
	flag.StringVar(&defaultAudience, "audience", "", "Default token audience")
	flag.BoolVar(&authBypass, "auth-bypass", false, "Bypass every authentication check")
	flag.StringVar(&logLevel, "log-level", "", "Log level")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			LogLevel:        logLevel,
			AuthBypass:      authBypass,
			DefaultIssuer:   defaultIssuer,
			DefaultAudience: defaultAudience,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			AdminRoutes:    adminRoutes,
		},
		Routes: Routes{
			Dir:      routesDir,
			Suffix:   routesSuffix,
			Manifest: manifest,
		},
		Storage: Storage{
			SecretsBackend: backend,
			DB: DB{
				DSN:    databaseDSN,
				Driver: databaseDriver,
			},
			Redis: Redis{Addr: redisAddr},
			AWS:   AWS{Region: awsRegion},
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the default server address.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
