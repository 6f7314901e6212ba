package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Analyzer AnalyzerConfig
	CORS     CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
	StaticDir    string        `mapstructure:"static_dir"`
}

// AnalyzerConfig holds settings for the multimodal inference backend.
type AnalyzerConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// CORSConfig holds CORS settings for the companion front-end.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the DOCLENS_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DOCLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.static_dir", "./public")

	// Analyzer defaults
	v.SetDefault("analyzer.provider", "gemini")
	v.SetDefault("analyzer.api_key", "")
	v.SetDefault("analyzer.default_model", "gemini-2.0-flash")
	v.SetDefault("analyzer.timeout_secs", 30)

	// CORS defaults (localhost origins for front-end development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":            "DOCLENS_SERVER_PORT",
		"server.read_timeout":    "DOCLENS_SERVER_READ_TIMEOUT",
		"server.write_timeout":   "DOCLENS_SERVER_WRITE_TIMEOUT",
		"server.environment":     "DOCLENS_SERVER_ENVIRONMENT",
		"server.static_dir":      "DOCLENS_SERVER_STATIC_DIR",
		"analyzer.provider":      "DOCLENS_ANALYZER_PROVIDER",
		"analyzer.api_key":       "DOCLENS_ANALYZER_API_KEY",
		"analyzer.default_model": "DOCLENS_ANALYZER_DEFAULT_MODEL",
		"analyzer.timeout_secs":  "DOCLENS_ANALYZER_TIMEOUT_SECS",
		"cors.allowed_origins":   "DOCLENS_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if DOCLENS_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("DOCLENS_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
		StaticDir:    v.GetString("server.static_dir"),
	}

	cfg.Analyzer = AnalyzerConfig{
		Provider:     v.GetString("analyzer.provider"),
		APIKey:       v.GetString("analyzer.api_key"),
		DefaultModel: v.GetString("analyzer.default_model"),
		TimeoutSecs:  v.GetInt("analyzer.timeout_secs"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	return cfg, nil
}
