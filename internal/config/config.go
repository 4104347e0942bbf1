package config

import (
	"fmt"
	"time"
)

// Config holds all relationship journal configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"127.0.0.1"`
	Port            int           `yaml:"port"             env:"PORT"                    env-default:"3000"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"5s"`

	// StaticDir, when set, is served at / with single-page-app fallback.
	StaticDir string `yaml:"static_dir" env:"STATIC_DIR"`
}

// Storage drivers.
const (
	DriverSQLite = "sqlite"
	DriverFile   = "file"
)

type StorageConfig struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"sqlite"`

	// DatabasePath is resolved via store.DefaultDBPath when empty.
	DatabasePath string `yaml:"database_path" env:"RELATIONSHIP_DB"`

	// DataFilePath is resolved via store.DefaultDataFilePath when empty.
	DataFilePath string `yaml:"data_file_path" env:"DATA_FILE_PATH"`
}

type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"` // "text" or "json"
}

// ListenAddr returns the host:port address string.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
