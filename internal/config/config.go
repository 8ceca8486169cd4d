// Package config loads application configuration from an optional YAML file
// and the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

const configName = "quantum-recruiter"

// Config holds the full application configuration.
type Config struct {
	Port       int    `mapstructure:"port"`
	UploadsDir string `mapstructure:"uploads-dir"`
	Debug      bool   `mapstructure:"debug"`
	JSONLog    bool   `mapstructure:"json-log"`

	AdminEmail    string `mapstructure:"admin-email"`
	AdminName     string `mapstructure:"admin-name"`
	AdminPassword string `mapstructure:"admin-password"`

	Embedding EmbeddingConfig `mapstructure:"embedding"`
	OAuth     OAuthConfig     `mapstructure:"oauth"`
	SMTP      SMTPConfig      `mapstructure:"smtp"`
}

// EmbeddingConfig selects the embedding provider backend. An API key selects
// the Gemini API; otherwise project/location select Vertex AI.
type EmbeddingConfig struct {
	APIKey   string `mapstructure:"api-key"`
	Project  string `mapstructure:"project"`
	Location string `mapstructure:"location"`
	Model    string `mapstructure:"model"`
}

// OAuthConfig configures the Google sign-in handshake. Empty client id
// disables Google sign-in.
type OAuthConfig struct {
	ClientID     string `mapstructure:"client-id"`
	ClientSecret string `mapstructure:"client-secret"`
	RedirectURL  string `mapstructure:"redirect-url"`
}

// SMTPConfig configures outbound mail. DryRun (the default) logs instead of
// sending.
type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DryRun   bool   `mapstructure:"dry-run"`
}

// Load reads configuration from path, or from quantum-recruiter.yaml in the
// working directory when path is empty. A missing config file is fine; the
// defaults and environment cover everything.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	bindEnv(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(configName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 8080)
	v.SetDefault("uploads-dir", "uploads")

	v.SetDefault("admin-email", "admin@company.com")
	v.SetDefault("admin-name", "Admin User")
	v.SetDefault("admin-password", "admin123")

	v.SetDefault("embedding.location", "us-central1")
	v.SetDefault("embedding.model", "gemini-embedding-001")

	v.SetDefault("oauth.redirect-url", "http://127.0.0.1:8080/google-auth-callback")

	v.SetDefault("smtp.host", "smtp.gmail.com")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.dry-run", true)
}

func bindEnv(v *viper.Viper) {
	v.BindEnv("port", "PORT")
	v.BindEnv("embedding.api-key", "GEMINI_API_KEY")
	v.BindEnv("embedding.project", "GOOGLE_CLOUD_PROJECT")
	v.BindEnv("embedding.location", "GOOGLE_CLOUD_LOCATION")
	v.BindEnv("oauth.client-id", "GOOGLE_CLIENT_ID")
	v.BindEnv("oauth.client-secret", "GOOGLE_CLIENT_SECRET")
	v.BindEnv("smtp.username", "SMTP_USERNAME")
	v.BindEnv("smtp.password", "SMTP_PASSWORD")
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.Embedding.APIKey == "" && c.Embedding.Project == "" {
		return fmt.Errorf("embedding requires GEMINI_API_KEY or GOOGLE_CLOUD_PROJECT")
	}
	if c.OAuth.ClientID != "" && c.OAuth.ClientSecret == "" {
		return fmt.Errorf("oauth.client-secret is required when oauth.client-id is set")
	}
	if c.AdminEmail == "" || c.AdminPassword == "" {
		return fmt.Errorf("admin-email and admin-password are required")
	}
	return nil
}
