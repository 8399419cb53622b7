package config

import (
	"os"
	"regexp"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type (
	// Config is the root application configuration
	Config struct {
		Server  ServerConfig  `yaml:"server"`
		Logger  LoggerConfig  `yaml:"logger"`
		Storage StorageConfig `yaml:"storage"`
		Metrics MetricsConfig `yaml:"metrics"`
		Trace   TraceConfig   `yaml:"trace"`
		Notify  NotifyConfig  `yaml:"notify"`
	}

	// ServerConfig represents the HTTP server configuration
	ServerConfig struct {
		Port int `yaml:"port"`
	}

	// LoggerConfig represents the logger configuration
	LoggerConfig struct {
		Level      string `yaml:"level"`       // debug, info, warn, error
		Format     string `yaml:"format"`      // json, console
		Output     string `yaml:"output"`      // stdout, file
		FilePath   string `yaml:"file_path"`   // path to log file when output is file
		MaxSize    int    `yaml:"max_size"`    // max size of log file in MB
		MaxBackups int    `yaml:"max_backups"` // max number of backup files
		MaxAge     int    `yaml:"max_age"`     // max age of backup files in days
		Compress   bool   `yaml:"compress"`    // whether to compress backup files
		Color      bool   `yaml:"color"`       // whether to use color in console output
		Stacktrace bool   `yaml:"stacktrace"`  // whether to include stacktrace in error logs
	}

	// MetricsConfig represents the Prometheus metrics configuration
	MetricsConfig struct {
		Enabled   bool      `yaml:"enabled"`
		Namespace string    `yaml:"namespace"`
		Buckets   []float64 `yaml:"buckets"`
	}

	// TraceConfig represents the OpenTelemetry tracing configuration
	TraceConfig struct {
		Enabled     bool    `yaml:"enabled"`
		ServiceName string  `yaml:"service_name"`
		Endpoint    string  `yaml:"endpoint"` // OTLP collector endpoint
		Protocol    string  `yaml:"protocol"` // grpc or http
		Insecure    bool    `yaml:"insecure"`
		SampleRatio float64 `yaml:"sample_ratio"`
	}

	// NotifyConfig tunes the notification trigger windows
	NotifyConfig struct {
		LeaseExpiryDays int `yaml:"lease_expiry_days"` // default 30
		RentDueDays     int `yaml:"rent_due_days"`     // default 3
	}
)

// LoadConfig loads configuration from a YAML file with environment
// variable support
func LoadConfig(path string) (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Resolve environment variables
	data = resolveEnv(data)
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	setDefaults(&cfg)
	return &cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Storage.Type == "" {
		cfg.Storage.Type = "file"
	}
	if cfg.Storage.File.Path == "" {
		cfg.Storage.File.Path = "data/rentport.json"
	}
	if cfg.Notify.LeaseExpiryDays == 0 {
		cfg.Notify.LeaseExpiryDays = 30
	}
	if cfg.Notify.RentDueDays == 0 {
		cfg.Notify.RentDueDays = 3
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = "rentport"
	}
	if cfg.Trace.ServiceName == "" {
		cfg.Trace.ServiceName = "rentport"
	}
	if cfg.Trace.SampleRatio == 0 {
		cfg.Trace.SampleRatio = 1
	}
}

// resolveEnv replaces environment variable placeholders in YAML content
func resolveEnv(content []byte) []byte {
	regex := regexp.MustCompile(`\$\{(\w+)(?::([^}]*))?\}`)

	return regex.ReplaceAllFunc(content, func(match []byte) []byte {
		matches := regex.FindSubmatch(match)
		envKey := string(matches[1])
		var defaultValue string

		if len(matches) > 2 {
			defaultValue = string(matches[2])
		}

		if value, exists := os.LookupEnv(envKey); exists {
			return []byte(value)
		}
		return []byte(defaultValue)
	})
}
