package config

import (
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/iancoleman/strcase"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	configFileENV         = "CONFIG_FILE"
	defaultConfigFilePath = "/config/nameparser.yaml"
)

type Config struct {
	BatchMaxNames             int           `koanf:"batch_max_names" json:"batch_max_names"`
	DatabaseBusyTimeout       time.Duration `koanf:"database_busy_timeout" json:"-"`
	DatabaseConnectRetryCount int           `koanf:"database_connect_retry_count" json:"-"`
	DatabaseConnectRetryDelay time.Duration `koanf:"database_connect_retry_delay" json:"-"`
	DatabaseDebug             bool          `koanf:"database_debug" json:"-"`
	DatabaseFilePath          string        `koanf:"database_file_path" json:"-"`
	DatabaseMaxRetries        int           `koanf:"database_max_retries" json:"-"`
	MaxNameLength             int           `koanf:"max_name_length" json:"max_name_length"`
	ServerHost                string        `koanf:"server_host" json:"-"`
	ServerPort                int           `koanf:"server_port" json:"-"`
}

func defaults() *Config {
	return &Config{
		BatchMaxNames:             100,
		DatabaseBusyTimeout:       5 * time.Second,
		DatabaseConnectRetryCount: 5,
		DatabaseConnectRetryDelay: 2 * time.Second,
		DatabaseMaxRetries:        5,
		MaxNameLength:             300,
		ServerHost:                "0.0.0.0",
		ServerPort:                3690,
	}
}

// New loads the config from the YAML file at $CONFIG_FILE (if it exists) and
// then from environment variables, which take precedence. Environment
// variables use the upper snake case version of the YAML keys, e.g.
// DATABASE_FILE_PATH for database_file_path.
func New() (*Config, error) {
	cfg := defaults()
	k := koanf.New(".")

	path := os.Getenv(configFileENV)
	if path == "" {
		path = defaultConfigFilePath
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrapf(err, "failed to load config file: %s", path)
	}

	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load environment variables")
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewForTest returns a config suitable for tests, backed by an in-memory
// database.
func NewForTest() *Config {
	cfg := defaults()
	cfg.DatabaseFilePath = ":memory:"
	cfg.DatabaseConnectRetryCount = 1
	cfg.DatabaseConnectRetryDelay = 0
	cfg.ServerHost = "127.0.0.1"
	cfg.ServerPort = 0
	return cfg
}

func (cfg *Config) validate() error {
	var missing []string
	if cfg.DatabaseFilePath == "" {
		missing = append(missing, describeField("DatabaseFilePath"))
	}
	if len(missing) > 0 {
		return errors.Errorf("missing required config: %s", strings.Join(missing, ", "))
	}

	if cfg.BatchMaxNames < 1 {
		return errors.Errorf("invalid config: %s must be at least 1", describeField("BatchMaxNames"))
	}
	if cfg.DatabaseMaxRetries < 0 {
		return errors.Errorf("invalid config: %s can't be negative", describeField("DatabaseMaxRetries"))
	}
	if cfg.MaxNameLength < 1 {
		return errors.Errorf("invalid config: %s must be at least 1", describeField("MaxNameLength"))
	}
	if cfg.ServerPort < 0 || cfg.ServerPort > 65535 {
		return errors.Errorf("invalid config: %s must be between 0 and 65535", describeField("ServerPort"))
	}
	return nil
}

// describeField formats a field name the way it's written in both the
// environment and the config file, e.g. "SERVER_PORT (server_port)".
func describeField(field string) string {
	return fmt.Sprintf("%s (%s)", strcase.ToScreamingSnake(field), toSnakeCase(field))
}

func toSnakeCase(s string) string {
	return strcase.ToSnake(s)
}
