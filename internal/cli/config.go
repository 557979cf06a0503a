package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	defaultServerURL = "http://localhost:8080"
	configDirName    = ".devjournal"
)

// Config is the CLI's persisted settings.
type Config struct {
	ServerURL  string `mapstructure:"server_url" yaml:"server_url"`
	Token      string `mapstructure:"token" yaml:"token,omitempty"`
	UserID     string `mapstructure:"user_id" yaml:"user_id,omitempty"`
	TimeoutSec int    `mapstructure:"timeout_sec" yaml:"timeout_sec"`
}

// DefaultConfigPath is ~/.devjournal/config.yaml.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, configDirName, "config.yaml"), nil
}

// LoadConfig reads configuration from file, env, and defaults.
// Precedence: env (DEVJOURNAL_*) > config file > defaults.
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DEVJOURNAL")
	v.AutomaticEnv()

	v.SetDefault("server_url", defaultServerURL)
	v.SetDefault("token", "")
	v.SetDefault("user_id", "")
	v.SetDefault("timeout_sec", 15)

	if cfgFile == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		cfgFile = p
	}
	v.SetConfigFile(cfgFile)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &c, nil
}

// SaveConfig writes c as YAML, creating the parent directory if needed.
func SaveConfig(c *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	// may hold a bearer token
	if err := os.WriteFile(path, b, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
