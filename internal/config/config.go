package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Drive    DriveConfig    `yaml:"drive"`
	Ingest   IngestConfig   `yaml:"ingest"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

// DriveConfig holds remote file store credentials and endpoints.
// Credentials follow the service-account model: a client email plus an
// RSA private key in PEM form, exchanged for a bearer token at TokenURL.
type DriveConfig struct {
	ServiceAccountEmail string        `yaml:"service_account_email" env:"DRIVE_SERVICE_ACCOUNT_EMAIL"`
	PrivateKey          string        `yaml:"private_key"           env:"DRIVE_PRIVATE_KEY"`
	FolderID            string        `yaml:"folder_id"             env:"DRIVE_FOLDER_ID"`
	BaseURL             string        `yaml:"base_url"              env:"DRIVE_BASE_URL"  env-default:"https://www.googleapis.com/drive/v3"`
	TokenURL            string        `yaml:"token_url"             env:"DRIVE_TOKEN_URL" env-default:"https://oauth2.googleapis.com/token"`
	HTTPTimeout         time.Duration `yaml:"http_timeout"          env:"DRIVE_HTTP_TIMEOUT" env-default:"30s"`
}

// HasCredentials reports whether the service-account credentials required to
// talk to the file store are fully configured.
func (c DriveConfig) HasCredentials() bool {
	return c.ServiceAccountEmail != "" && c.PrivateKey != ""
}

// IngestConfig holds ingestion pipeline settings.
type IngestConfig struct {
	// FilePrefix is the expected leading token of source file names
	// ("class" matches class1_practice.csv, class2_practice.csv, ...).
	FilePrefix string `yaml:"file_prefix" env:"INGEST_FILE_PREFIX" env-default:"class"`
	// FileSuffix is the expected name suffix used by the exact-name probes.
	FileSuffix string `yaml:"file_suffix" env:"INGEST_FILE_SUFFIX" env-default:"practice"`
	// MaxProbes caps the number of concurrent exact-name probe queries
	// issued when the primary search comes back thin.
	MaxProbes int `yaml:"max_probes" env:"INGEST_MAX_PROBES" env-default:"10"`
	// PageSize is passed to the remote listing call.
	PageSize int `yaml:"page_size" env:"INGEST_PAGE_SIZE" env-default:"100"`
	// StrictRejects surfaces per-row rejection reasons as warnings instead
	// of dropping them silently.
	StrictRejects bool `yaml:"strict_rejects" env:"INGEST_STRICT_REJECTS"`
}

// DatabaseConfig holds PostgreSQL connection settings for the question sink.
// An empty DSN disables persistence; the pipeline itself never touches the DB.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
