package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

// Env variable names, referenced by tests and docs.
const (
	EnvAppEnv   = "ORDERFLOW_APP_ENV"
	EnvLogLevel = "ORDERFLOW_LOG_LEVEL"
	EnvDBPath   = "ORDERFLOW_DB_PATH"
)

type Config struct {
	App    AppConfig
	DB     DBConfig
	Ingest IngestConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"ORDERFLOW_APP_ENV" default:"dev"`
	LogLevel     string `envconfig:"ORDERFLOW_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ORDERFLOW_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	Path        string        `envconfig:"ORDERFLOW_DB_PATH" default:"orders.db"`
	BusyTimeout time.Duration `envconfig:"ORDERFLOW_DB_BUSY_TIMEOUT" default:"5s"`
	JournalMode string        `envconfig:"ORDERFLOW_DB_JOURNAL_MODE" default:"WAL"`
	Synchronous string        `envconfig:"ORDERFLOW_DB_SYNCHRONOUS" default:"NORMAL"`

	MaxOpenConns    int           `envconfig:"ORDERFLOW_DB_MAX_OPEN_CONNS" default:"1"`
	MaxIdleConns    int           `envconfig:"ORDERFLOW_DB_MAX_IDLE_CONNS" default:"1"`
	ConnMaxLifetime time.Duration `envconfig:"ORDERFLOW_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"ORDERFLOW_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// DSN renders the sqlite connection string for the configured destination,
// applying the journal and synchronization pragmas at open time.
func (d DBConfig) DSN() string {
	params := url.Values{}
	params.Set("_busy_timeout", fmt.Sprintf("%d", d.BusyTimeout.Milliseconds()))
	if d.JournalMode != "" {
		params.Set("_journal_mode", d.JournalMode)
	}
	if d.Synchronous != "" {
		params.Set("_synchronous", d.Synchronous)
	}
	return fmt.Sprintf("%s?%s", d.Path, params.Encode())
}

type IngestConfig struct {
	BatchSize int `envconfig:"ORDERFLOW_INGEST_BATCH_SIZE" default:"500"`
}
