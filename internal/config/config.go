package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, the country source,
// the interactive session, snapshots, preferences and the database connection.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists the CORS origins; "*" allows any origin
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-default:"*" env-separator:"," yaml:"allowedOrigins"`
		// PprofEnabled mounts the pprof handlers under /debug/pprof/
		PprofEnabled bool `env:"HTTP_PPROF_ENABLED" env-default:"false" yaml:"pprofEnabled"`
	} `yaml:"http"`

	// RestCountries configures the remote country source
	RestCountries struct {
		// BaseURL is the root of the REST Countries v3.1 API
		BaseURL string `env:"RESTCOUNTRIES_BASE_URL" env-default:"https://restcountries.com/v3.1" yaml:"baseUrl"`
		// Timeout bounds a single lookup; zero disables the client timeout
		Timeout time.Duration `env:"RESTCOUNTRIES_TIMEOUT" env-default:"10s" yaml:"timeout"`
		// DefaultCountries is the list aggregated on startup, in display order
		DefaultCountries []string `env:"RESTCOUNTRIES_DEFAULT_COUNTRIES" env-default:"Nigeria,Canada,Poland,United States of America,United Kingdom" env-separator:"," yaml:"defaultCountries"` //nolint: lll
		// MaxConcurrentLookups limits in-flight lookups of one aggregation; zero means unlimited
		MaxConcurrentLookups int `env:"RESTCOUNTRIES_MAX_CONCURRENT_LOOKUPS" env-default:"0" yaml:"maxConcurrentLookups"`
	} `yaml:"restCountries"`

	// Browse configures the interactive session
	Browse struct {
		// SearchDebounce is the quiet period before a typed search is dispatched
		SearchDebounce time.Duration `env:"BROWSE_SEARCH_DEBOUNCE" env-default:"500ms" yaml:"searchDebounce"`
	} `yaml:"browse"`

	// Snapshot configures the cached default country list
	Snapshot struct {
		// Enabled runs the periodic refresh job and serves the default list from the snapshot
		Enabled bool `env:"SNAPSHOT_ENABLED" env-default:"false" yaml:"enabled"`
		// Interval is the period of the refresh job
		Interval time.Duration `env:"SNAPSHOT_INTERVAL" env-default:"1h" yaml:"interval"`
		// TTL is the age after which a stored snapshot is ignored
		TTL time.Duration `env:"SNAPSHOT_TTL" env-default:"2h" yaml:"ttl"`
	} `yaml:"snapshot"`

	// Preferences configures where user preferences are kept
	Preferences struct {
		// Backend is either "file" or "postgres"
		Backend string `env:"PREFERENCES_BACKEND" env-default:"file" yaml:"backend"`
		// FilePath is the YAML file used by the file backend
		FilePath string `env:"PREFERENCES_FILE_PATH" env-default:".countries/preferences.yml" yaml:"filePath"`
	} `yaml:"preferences"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address; empty disables the database
		Host string `env:"DATABASE_HOST" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"countries" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// JWT holds the RS256 key pair for bearer tokens, PEM encoded
	JWT struct {
		PublicKey  string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Preference backends.
const (
	PreferencesFile     = "file"
	PreferencesPostgres = "postgres"
)

// DatabaseEnabled reports whether a database host is configured.
func (c *Config) DatabaseEnabled() bool {
	return c.Database.Host != ""
}

// Validate checks settings that cleanenv cannot express.
func (c *Config) Validate() error {
	switch c.Preferences.Backend {
	case PreferencesFile:
		if c.Preferences.FilePath == "" {
			return fmt.Errorf("preferences file path is required by the file backend")
		}
	case PreferencesPostgres:
		if !c.DatabaseEnabled() {
			return fmt.Errorf("preferences backend %q requires a database host", c.Preferences.Backend)
		}
	default:
		return fmt.Errorf("unknown preferences backend %q", c.Preferences.Backend)
	}
	if len(c.RestCountries.DefaultCountries) == 0 {
		return fmt.Errorf("default countries list is empty")
	}
	if c.Snapshot.Enabled && !c.DatabaseEnabled() {
		return fmt.Errorf("snapshots require a database host")
	}
	if c.Browse.SearchDebounce < 0 {
		return fmt.Errorf("negative search debounce %s", c.Browse.SearchDebounce)
	}

	return nil
}

// Load receives the path for yaml config file and returns a filled Config struct.
// A missing file is not an error: defaults and environment variables apply.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not read config: %w", err)
		}
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from env: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
