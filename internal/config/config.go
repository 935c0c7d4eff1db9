package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// the discovery pipeline and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

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
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"mailscout" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Discovery controls how discovery runs are enqueued and processed.
	Discovery struct {
		// MaxAttempts is the number of times a discovery job is retried before
		// it is marked failed
		MaxAttempts int `env:"DISCOVERY_MAX_ATTEMPTS" env-default:"3" yaml:"maxAttempts"`
		// ResultCacheTTL is how long a completed result is reused for new
		// requests targeting the same company
		ResultCacheTTL time.Duration `env:"DISCOVERY_RESULT_CACHE_TTL" env-default:"24h" yaml:"resultCacheTTL"`
		// MaxConcurrentSources bounds how many source connectors run in parallel
		MaxConcurrentSources int `env:"DISCOVERY_MAX_CONCURRENT_SOURCES" env-default:"3" yaml:"maxConcurrentSources"`
		// ValidateTop is how many of the highest ranked addresses get a full
		// validation pass at the end of a run; negative validates every hit
		ValidateTop int `env:"DISCOVERY_VALIDATE_TOP" env-default:"5" yaml:"validateTop"`
		// MinScore drops candidates scoring below it before deduplication
		MinScore int `env:"DISCOVERY_MIN_SCORE" env-default:"40" yaml:"minScore"`
		// SessionCacheTTL is how long a finished pipeline result is reused
		// in-process for repeat runs against the same target
		SessionCacheTTL time.Duration `env:"DISCOVERY_SESSION_CACHE_TTL" env-default:"15m" yaml:"sessionCacheTTL"`
	} `yaml:"discovery"`

	// Validator controls the email validation pipeline.
	Validator struct {
		// CacheTTL is how long validation verdicts are reused
		CacheTTL time.Duration `env:"VALIDATOR_CACHE_TTL" env-default:"6h" yaml:"cacheTTL"`
		// DNSTimeout bounds each DNS lookup during validation
		DNSTimeout time.Duration `env:"VALIDATOR_DNS_TIMEOUT" env-default:"5s" yaml:"dnsTimeout"`
		// SkipDNS disables DNS checks entirely (useful in offline environments)
		SkipDNS bool `env:"VALIDATOR_SKIP_DNS" env-default:"false" yaml:"skipDNS"`
	} `yaml:"validator"`

	// Fetcher controls outbound page fetching.
	Fetcher struct {
		// Timeout is the per-request HTTP timeout
		Timeout time.Duration `env:"FETCHER_TIMEOUT" env-default:"15s" yaml:"timeout"`
		// MaxRetries is how many times a transient fetch failure is retried
		MaxRetries int `env:"FETCHER_MAX_RETRIES" env-default:"3" yaml:"maxRetries"`
		// RetryBaseDelay is the initial backoff delay between retries
		RetryBaseDelay time.Duration `env:"FETCHER_RETRY_BASE_DELAY" env-default:"500ms" yaml:"retryBaseDelay"`
		// MaxBodyBytes caps how much of a response body is read
		MaxBodyBytes int64 `env:"FETCHER_MAX_BODY_BYTES" env-default:"2097152" yaml:"maxBodyBytes"`
	} `yaml:"fetcher"`

	// Search controls the meta-search source connector.
	Search struct {
		// SearxURL is the base URL of the SearxNG instance to query first.
		// When empty the connector goes straight to engine scraping
		SearxURL string `env:"SEARCH_SEARX_URL" env-default:"" yaml:"searxURL"`
		// MaxQueries caps how many queries are issued per discovery run
		MaxQueries int `env:"SEARCH_MAX_QUERIES" env-default:"3" yaml:"maxQueries"`
		// MaxResultPages caps how many result pages are fetched in full per query
		MaxResultPages int `env:"SEARCH_MAX_RESULT_PAGES" env-default:"3" yaml:"maxResultPages"`
		// AvoidHosts lists host suffixes whose result pages are never fetched
		// in full (their snippets are still used)
		AvoidHosts []string `env:"SEARCH_AVOID_HOSTS" env-default:"linkedin.com,facebook.com,instagram.com,twitter.com,x.com" yaml:"avoidHosts"` //nolint: lll
	} `yaml:"search"`

	// Worker contains background worker related configurations.
	Worker struct {
		// MaxWorkers is the maximum number of discovery jobs processed concurrently
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
	} `yaml:"worker"`

	// JWT contains the RS256 key pair used for API authentication.
	JWT struct {
		// PublicKey is the PEM encoded RSA public key used to verify tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is the PEM encoded RSA private key used by the jwt
		// subcommand to sign tokens. The API server never needs it
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
