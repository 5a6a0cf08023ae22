package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config groups the client configuration (read via Viper from env vars and
// optionally a .env file).
type Config struct {
	App  AppConfig
	API  APIConfig
	Sync SyncConfig
}

// AppConfig general application settings.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
	StateDir string // durable client storage (session credentials, cart)
}

// APIConfig settings of the remote Wondershop API.
type APIConfig struct {
	BaseURL string // e.g. https://shop.example.com/api
	Timeout time.Duration
}

// SyncConfig tuning of the credential refresh path.
type SyncConfig struct {
	// RefreshSkew triggers a proactive token refresh when the access token
	// expires within this window.
	RefreshSkew time.Duration
}

// Load reads the configuration from environment variables (and optionally a
// .env file in the working directory). Env vars take priority. Expected names:
// APP_ENV, API_BASE_URL, API_TIMEOUT_SECONDS, STATE_DIR, LOG_LEVEL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Optional: .env file alongside the binary.
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // missing file is fine

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "wondershop"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
			StateDir: getString(v, "STATE_DIR", defaultStateDir()),
		},
		API: APIConfig{
			BaseURL: getString(v, "API_BASE_URL", "http://localhost:5000/api"),
			Timeout: time.Duration(getInt(v, "API_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Sync: SyncConfig{
			RefreshSkew: time.Duration(getInt(v, "TOKEN_REFRESH_SKEW_SECONDS", 30)) * time.Second,
		},
	}

	return cfg, nil
}

func defaultStateDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".wondershop"
	}
	return filepath.Join(dir, "wondershop")
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
