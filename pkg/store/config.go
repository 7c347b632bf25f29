package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	// DefaultPath is where the data file lives when nothing overrides it,
	// relative to the working directory.
	DefaultPath = "data/important_dates.json"

	envPrefix     = "DATEKEEPER"
	configPathEnv = "DATEKEEPER_CONFIG_PATH"
)

// Config locates the data file.
type Config interface {
	// DataPath is the JSON file holding the dataset.
	DataPath() string
	// ConfigFile is the config file that was read, if any.
	ConfigFile() string
}

// LoadConfig resolves configuration from, in order of precedence, the
// environment (DATEKEEPER_PATH, also read from a .env file), a .datekeeper
// config file and the built in default.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("store: load .env: %w", err)
	}

	v := viper.New()
	v.SetDefault("path", DefaultPath)
	v.SetConfigName(".datekeeper") // .yaml is implicit
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if override := os.Getenv(configPathEnv); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config file: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	return &fileConfig{Path: path, File: v.ConfigFileUsed()}, nil
}

// NewConfig returns a Config for an explicit data file.
func NewConfig(path string) Config {
	return &fileConfig{Path: path}
}

type fileConfig struct {
	Path string `json:"path"`
	File string `json:"file,omitempty"`
}

func (f *fileConfig) DataPath() string {
	return f.Path
}

func (f *fileConfig) ConfigFile() string {
	return f.File
}
