package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// outbound lookups, the news feed and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the level implied by Environment when set (debug, info, warn, error)
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
		// RequestTimeout is the maximum time allowed for processing a single request.
		// A reconnaissance run waits for its slowest lookup, so keep this above Lookup.Timeout.
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists the origins the CORS middleware accepts; "*" allows any
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-default:"*" yaml:"allowedOrigins"`
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
		DatabaseName string `env:"DATABASE_NAME" env-default:"recon" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// JWT holds the RS256 key pair used for bearer authentication of progress endpoints
	JWT struct {
		// PublicKey is the PEM encoded RSA public key used to verify tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is the PEM encoded RSA private key, only needed by the jwt command
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// Lookup configures the outbound OSINT lookups
	Lookup struct {
		// Timeout bounds every single outbound request
		Timeout time.Duration `env:"LOOKUP_TIMEOUT" env-default:"10s" yaml:"timeout"`
		// DNSMode selects the DoH flavour: json or wire
		DNSMode string `env:"LOOKUP_DNS_MODE" env-default:"json" yaml:"dnsMode"`
		// DNSBaseURL is the DoH resolver
		DNSBaseURL string `env:"LOOKUP_DNS_BASE_URL" env-default:"https://dns.google" yaml:"dnsBaseURL"`
		// GitHubBaseURL is the GitHub REST API
		GitHubBaseURL string `env:"LOOKUP_GITHUB_BASE_URL" env-default:"https://api.github.com" yaml:"githubBaseURL"`
		// GitLabBaseURL is the GitLab instance
		GitLabBaseURL string `env:"LOOKUP_GITLAB_BASE_URL" env-default:"https://gitlab.com" yaml:"gitlabBaseURL"`
		// DevToBaseURL is the Dev.to (Forem) API
		DevToBaseURL string `env:"LOOKUP_DEVTO_BASE_URL" env-default:"https://dev.to" yaml:"devtoBaseURL"`
		// BitbucketBaseURL is the Bitbucket API
		BitbucketBaseURL string `env:"LOOKUP_BITBUCKET_BASE_URL" env-default:"https://api.bitbucket.org" yaml:"bitbucketBaseURL"` //nolint: lll
		// AvatarBaseURL is the avatar registry aggregator
		AvatarBaseURL string `env:"LOOKUP_AVATAR_BASE_URL" env-default:"https://unavatar.io" yaml:"avatarBaseURL"`
		// DisposableBaseURL is the disposable email reputation service
		DisposableBaseURL string `env:"LOOKUP_DISPOSABLE_BASE_URL" env-default:"https://disposable.debounce.io" yaml:"disposableBaseURL"` //nolint: lll
		// BreachBaseURL is the breach index
		BreachBaseURL string `env:"LOOKUP_BREACH_BASE_URL" env-default:"https://api.xposedornot.com" yaml:"breachBaseURL"`
	} `yaml:"lookup"`

	// News configures the cybersecurity news feed
	News struct {
		// APIKey authenticates against NewsAPI; the periodic refresh is disabled when empty
		APIKey string `env:"NEWS_API_KEY" yaml:"apiKey"`
		// BaseURL is the NewsAPI endpoint
		BaseURL string `env:"NEWS_BASE_URL" env-default:"https://newsapi.org" yaml:"baseURL"`
		// Query is the search expression used for refreshes
		Query string `env:"NEWS_QUERY" env-default:"cybersecurity OR malware OR ransomware OR \"data breach\"" yaml:"query"`
		// RefreshInterval is how often the periodic refresh job runs
		RefreshInterval time.Duration `env:"NEWS_REFRESH_INTERVAL" env-default:"1h" yaml:"refreshInterval"`
		// MaxAttempts is the maximum number of attempts for a refresh job
		MaxAttempts int `env:"NEWS_MAX_ATTEMPTS" env-default:"3" yaml:"maxAttempts"`
		// RateLimitBackoff is how long a rate limited refresh is snoozed
		RateLimitBackoff time.Duration `env:"NEWS_RATE_LIMIT_BACKOFF" env-default:"15m" yaml:"rateLimitBackoff"`
		// Workers is the number of concurrent refresh workers
		Workers int `env:"NEWS_WORKERS" env-default:"1" yaml:"workers"`
	} `yaml:"news"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
// An empty path reads the configuration from the environment only.
func Load(configPath string) (*Config, error) {
	var cfg Config
	var err error
	if configPath == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(configPath, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
