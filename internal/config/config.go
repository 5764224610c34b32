package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	// BrowserDriverChrome fetches pages with headless Chrome.
	BrowserDriverChrome = "chrome"
	// BrowserDriverStatic fetches pages with plain HTTP and parses the static HTML.
	BrowserDriverStatic = "static"

	// NotifierDriverSMTP delivers notifications by email.
	NotifierDriverSMTP = "smtp"
	// NotifierDriverLog writes notifications to the log.
	NotifierDriverLog = "log"
)

// Config represents the application configuration structure.
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
		// RequestTimeout is the maximum time allowed for processing a single request.
		// It must leave room for an ad-hoc check, which loads a page.
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"45s" yaml:"requestTimeout"`
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
		DatabaseName string `env:"DATABASE_NAME" env-default:"pricewatch" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Monitor configures batch runs
	Monitor struct {
		// Workers is the number of products checked concurrently within a run
		Workers int `env:"MONITOR_WORKERS" yaml:"workers"`
		// BatchTimeout bounds the wall-clock time of a whole run
		BatchTimeout time.Duration `env:"MONITOR_BATCH_TIMEOUT" yaml:"batchTimeout"`
		// Interval is the cadence of scheduled runs; zero disables scheduling
		Interval time.Duration `env:"MONITOR_INTERVAL" yaml:"interval"`
		// RunOnStart triggers a scheduled run as soon as the worker starts
		RunOnStart bool `env:"MONITOR_RUN_ON_START" env-default:"false" yaml:"runOnStart"`
		// PerHostInterval is the minimum spacing between page loads on the same host; zero disables it
		PerHostInterval time.Duration `env:"MONITOR_PER_HOST_INTERVAL" yaml:"perHostInterval"`
		// PerHostBurst is the number of page loads allowed on a host before spacing applies
		PerHostBurst int `env:"MONITOR_PER_HOST_BURST" yaml:"perHostBurst"`
		// DecimalSeparator pins the decimal separator ("," or "."); empty infers it per price
		DecimalSeparator string `env:"MONITOR_DECIMAL_SEPARATOR" yaml:"decimalSeparator"`
	} `yaml:"monitor"`

	// Browser configures how product pages are loaded
	Browser struct {
		// Driver is either "chrome" or "static"
		Driver string `env:"BROWSER_DRIVER" env-default:"chrome" yaml:"driver"`
		// ExecPath is the Chrome binary; empty means auto-detect
		ExecPath string `env:"BROWSER_EXEC_PATH" yaml:"execPath"`
		// RemoteURL attaches to a running browser's DevTools endpoint instead of launching one
		RemoteURL string `env:"BROWSER_REMOTE_URL" yaml:"remoteURL"`
		// Headless runs the launched browser without a window
		Headless bool `env:"BROWSER_HEADLESS" yaml:"headless"`
		// NoSandbox disables the Chrome sandbox
		NoSandbox bool `env:"BROWSER_NO_SANDBOX" env-default:"false" yaml:"noSandbox"`
		// FetchTimeout bounds loading a single page
		FetchTimeout time.Duration `env:"BROWSER_FETCH_TIMEOUT" env-default:"30s" yaml:"fetchTimeout"`
		// UserAgent overrides the browser's user agent
		UserAgent string `env:"BROWSER_USER_AGENT" yaml:"userAgent"`
	} `yaml:"browser"`

	// Notifier configures how price drops are delivered
	Notifier struct {
		// Driver is either "smtp" or "log"
		Driver string `env:"NOTIFIER_DRIVER" env-default:"log" yaml:"driver"`

		SMTP struct {
			Host     string `env:"SMTP_HOST" yaml:"host"`
			Port     int    `env:"SMTP_PORT" env-default:"587" yaml:"port"`
			Username string `env:"SMTP_USERNAME" yaml:"username"`
			Password string `env:"SMTP_PASSWORD" yaml:"password"`
			// From is the sender address
			From string `env:"SMTP_FROM" yaml:"from"`
			// TLSPolicy is one of mandatory, opportunistic or none
			TLSPolicy string        `env:"SMTP_TLS_POLICY" env-default:"opportunistic" yaml:"tlsPolicy"`
			SSL       bool          `env:"SMTP_SSL" env-default:"false" yaml:"ssl"`
			Timeout   time.Duration `env:"SMTP_TIMEOUT" env-default:"30s" yaml:"timeout"`
		} `yaml:"smtp"`
	} `yaml:"notifier"`

	// Worker configures the background job processor
	Worker struct {
		// MaxWorkers is the number of jobs processed concurrently
		MaxWorkers int `env:"WORKER_MAX_WORKERS" yaml:"maxWorkers"`
		// JobTimeoutGrace is added to the batch timeout to get the job timeout
		JobTimeoutGrace time.Duration `env:"WORKER_JOB_TIMEOUT_GRACE" yaml:"jobTimeoutGrace"`
	} `yaml:"worker"`

	// JWT configures operator authentication on the runs API
	JWT struct {
		// PublicKey verifies bearer tokens; empty disables authentication
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey signs tokens minted by the jwt command
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"30s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// setDefaults fills the fields whose zero value is meaningful. They carry no
// env-default tag since cleanenv would also apply it over a configured zero;
// the yaml file and the environment overwrite these values instead.
func (c *Config) setDefaults() {
	c.Monitor.Workers = 4
	c.Monitor.BatchTimeout = 15 * time.Minute
	c.Monitor.Interval = time.Hour
	c.Monitor.PerHostInterval = time.Second
	c.Monitor.PerHostBurst = 2
	c.Browser.Headless = true
	c.Worker.MaxWorkers = 2
	c.Worker.JobTimeoutGrace = time.Minute
}

// Validate reports configuration values that cannot work.
func (c *Config) Validate() error {
	var errs []error
	if c.Monitor.Workers < 1 {
		errs = append(errs, errors.New("monitor.workers must be at least 1"))
	}
	if c.Monitor.BatchTimeout <= 0 {
		errs = append(errs, errors.New("monitor.batchTimeout must be positive"))
	}
	if c.Monitor.Interval < 0 || c.Monitor.PerHostInterval < 0 {
		errs = append(errs, errors.New("monitor.interval and monitor.perHostInterval must not be negative"))
	}
	switch c.Monitor.DecimalSeparator {
	case "", ",", ".":
	default:
		errs = append(errs, fmt.Errorf("monitor.decimalSeparator must be empty, ',' or '.', got %q", c.Monitor.DecimalSeparator))
	}
	switch c.Browser.Driver {
	case BrowserDriverChrome, BrowserDriverStatic:
	default:
		errs = append(errs, fmt.Errorf("unknown browser.driver %q", c.Browser.Driver))
	}
	switch c.Notifier.Driver {
	case NotifierDriverLog:
	case NotifierDriverSMTP:
		if c.Notifier.SMTP.Host == "" || c.Notifier.SMTP.From == "" {
			errs = append(errs, errors.New("notifier.smtp.host and notifier.smtp.from are required for the smtp driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown notifier.driver %q", c.Notifier.Driver))
	}
	if c.Worker.MaxWorkers < 1 {
		errs = append(errs, errors.New("worker.maxWorkers must be at least 1"))
	}

	return errors.Join(errs...)
}

// Load reads variables from the optional dotenv files (".env" when none are
// given), then the yaml config file at configPath, with environment variables
// taking precedence. A missing config file is not an error: the configuration
// then comes from the environment and defaults alone.
func Load(configPath string, dotenvFiles ...string) (*Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not load %s: %w", f, err)
		}
	}

	var cfg Config
	cfg.setDefaults()
	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from env: %w", err)
		}
	} else if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
