package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		LogLevel          string   `json:"log_level"`
		Version           string   `json:"version"`
		AuthBypass        bool     `json:"auth_bypass"`
		SentinelBypass    *bool    `json:"sentinel_bypass"`
		DefaultIssuer     string   `json:"default_issuer"`
		DefaultAudience   string   `json:"default_audience"`
		TokenLifetimeDays int      `json:"token_lifetime_days"`
		SignatureWindow   Duration `json:"signature_window"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		BodyLimit      int64    `json:"body_limit"`
		AdminRoutes    bool     `json:"admin_routes"`
	} `json:"server,omitempty"`

	Routes struct {
		Dir      string `json:"dir"`
		Suffix   string `json:"suffix"`
		Manifest string `json:"manifest"`
	} `json:"routes,omitempty"`

	Storage struct {
		SecretsBackend string            `json:"secrets_backend"`
		Secrets        map[string]string `json:"secrets"`
		CacheTTL       Duration          `json:"cache_ttl"`

		DB struct {
			DSN    string `json:"dsn"`
			Driver string `json:"driver"`
		} `json:"db,omitempty"`

		Redis struct {
			Addr     string `json:"addr"`
			Password string `json:"password"`
			Prefix   string `json:"prefix"`
		} `json:"redis,omitempty"`

		AWS struct {
			Region   string `json:"region"`
			Endpoint string `json:"endpoint"`
			Prefix   string `json:"prefix"`
		} `json:"aws,omitempty"`
	} `json:"storage,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogLevel:          jsonCfg.App.LogLevel,
			Version:           jsonCfg.App.Version,
			AuthBypass:        jsonCfg.App.AuthBypass,
			SentinelBypass:    jsonCfg.App.SentinelBypass,
			DefaultIssuer:     jsonCfg.App.DefaultIssuer,
			DefaultAudience:   jsonCfg.App.DefaultAudience,
			TokenLifetimeDays: jsonCfg.App.TokenLifetimeDays,
			SignatureWindow:   time.Duration(jsonCfg.App.SignatureWindow),
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			BodyLimit:      jsonCfg.Server.BodyLimit,
			AdminRoutes:    jsonCfg.Server.AdminRoutes,
		},
		Routes: Routes{
			Dir:      jsonCfg.Routes.Dir,
			Suffix:   jsonCfg.Routes.Suffix,
			Manifest: jsonCfg.Routes.Manifest,
		},
		Storage: Storage{
			SecretsBackend: jsonCfg.Storage.SecretsBackend,
			Secrets:        jsonCfg.Storage.Secrets,
			CacheTTL:       time.Duration(jsonCfg.Storage.CacheTTL),
			DB: DB{
				DSN:    jsonCfg.Storage.DB.DSN,
				Driver: jsonCfg.Storage.DB.Driver,
			},
			Redis: Redis{
				Addr:     jsonCfg.Storage.Redis.Addr,
				Password: jsonCfg.Storage.Redis.Password,
				Prefix:   jsonCfg.Storage.Redis.Prefix,
			},
			AWS: AWS{
				Region:   jsonCfg.Storage.AWS.Region,
				Endpoint: jsonCfg.Storage.AWS.Endpoint,
				Prefix:   jsonCfg.Storage.AWS.Prefix,
			},
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
