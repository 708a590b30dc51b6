package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
}

type HTTPConfig struct {
	Address    string `yaml:"address"`
	SwaggerDir string `yaml:"swagger_dir"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type AuthConfig struct {
	Secret          string `yaml:"secret"`
	Issuer          string `yaml:"issuer"`
	Audience        string `yaml:"audience"`
	LoginTTLSeconds int    `yaml:"login_ttl_seconds"`
	ResetTTLSeconds int    `yaml:"reset_ttl_seconds"`
}

const (
	minSecretBytes         = 32
	defaultLoginTTLSeconds = 3600
	defaultResetTTLSeconds = 300
)

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Auth.LoginTTLSeconds == 0 {
		cfg.Auth.LoginTTLSeconds = defaultLoginTTLSeconds
	}
	if cfg.Auth.ResetTTLSeconds == 0 {
		cfg.Auth.ResetTTLSeconds = defaultResetTTLSeconds
	}

	if err := cfg.Auth.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate enforces the startup contract: a signing secret of at least 32
// bytes plus non-empty issuer and audience. A short secret is a fatal startup
// error, never a warning.
func (a AuthConfig) validate() error {
	if len(a.Secret) < minSecretBytes {
		return fmt.Errorf("auth secret must be at least %d bytes long", minSecretBytes)
	}
	if a.Issuer == "" {
		return fmt.Errorf("auth issuer is required")
	}
	if a.Audience == "" {
		return fmt.Errorf("auth audience is required")
	}
	return nil
}
