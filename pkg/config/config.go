package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server       ServerConfig       `yaml:"server" json:"server" jsonschema:"description=HTTP server configuration"`
	Database     DatabaseConfig     `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
	Feeds        FeedsConfig        `yaml:"feeds" json:"feeds" jsonschema:"description=Release feed configuration"`
	Transmission TransmissionConfig `yaml:"transmission" json:"transmission" jsonschema:"description=Transmission dispatch configuration"`
	Catalog      CatalogConfig      `yaml:"catalog" json:"catalog" jsonschema:"description=AniList catalog configuration"`
}

// ServerConfig holds the HTTP API settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
}

// DatabaseConfig holds sqlite connection settings
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:episodarr.db?cache=shared&mode=rwc,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
}

// FeedsConfig holds release feed endpoints and client settings
type FeedsConfig struct {
	NyaaURL       string        `yaml:"nyaa_url" json:"nyaa_url" jsonschema:"default=https://nyaa.si,description=Nyaa base URL"`
	SubsPleaseURL string        `yaml:"subsplease_url" json:"subsplease_url" jsonschema:"default=https://subsplease.org,description=SubsPlease base URL"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Feed fetch timeout"`
	UserAgent     string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=episodarr/1.0,description=User agent for feed requests"`
}

// TransmissionConfig holds download client settings
type TransmissionConfig struct {
	URL         string `yaml:"url" json:"url" jsonschema:"default=http://localhost:9091/transmission/rpc,description=Transmission RPC endpoint"`
	Username    string `yaml:"username" json:"username" jsonschema:"description=RPC username"`
	Password    string `yaml:"password" json:"password" jsonschema:"description=RPC password (can use environment variable)"`
	DownloadDir string `yaml:"download_dir" json:"download_dir" jsonschema:"default=/data/Anime,description=Base download directory on the transmission host"`
	AddPaused   bool   `yaml:"add_paused" json:"add_paused" jsonschema:"default=false,description=Add torrents in paused state"`
}

// CatalogConfig holds AniList lookup settings
type CatalogConfig struct {
	URL     string        `yaml:"url" json:"url" jsonschema:"default=https://graphql.anilist.co,description=AniList GraphQL endpoint"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Lookup timeout"`
	PerPage int           `yaml:"per_page" json:"per_page" jsonschema:"default=10,minimum=1,description=Search results per page"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:episodarr.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for feeds
	if cfg.Feeds.NyaaURL == "" {
		cfg.Feeds.NyaaURL = "https://nyaa.si"
	}
	if cfg.Feeds.SubsPleaseURL == "" {
		cfg.Feeds.SubsPleaseURL = "https://subsplease.org"
	}
	if cfg.Feeds.Timeout == 0 {
		cfg.Feeds.Timeout = 30 * time.Second
	}
	if cfg.Feeds.UserAgent == "" {
		cfg.Feeds.UserAgent = "episodarr/1.0"
	}

	// set defaults for transmission
	if cfg.Transmission.URL == "" {
		cfg.Transmission.URL = "http://localhost:9091/transmission/rpc"
	}
	if cfg.Transmission.DownloadDir == "" {
		cfg.Transmission.DownloadDir = "/data/Anime"
	}

	// set defaults for catalog
	if cfg.Catalog.URL == "" {
		cfg.Catalog.URL = "https://graphql.anilist.co"
	}
	if cfg.Catalog.Timeout == 0 {
		cfg.Catalog.Timeout = 15 * time.Second
	}
	if cfg.Catalog.PerPage == 0 {
		cfg.Catalog.PerPage = 10
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Feeds.Timeout < time.Second {
		return fmt.Errorf("feeds timeout must be at least 1 second")
	}
	if cfg.Catalog.PerPage < 1 {
		return fmt.Errorf("catalog per_page must be at least 1")
	}
	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}
