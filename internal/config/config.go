package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the coach service.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Database DatabaseConfig `mapstructure:"database"`
	S3       S3Config       `mapstructure:"s3"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

type ServerConfig struct {
	Address              string        `mapstructure:"address"`
	Mode                 string        `mapstructure:"mode"` // gin mode: debug, release, test
	SessionPruneInterval time.Duration `mapstructure:"session_prune_interval"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	FormatJSON  bool   `mapstructure:"format_json"`
	File        string `mapstructure:"file"` // empty means stdout only
	ToStdout    bool   `mapstructure:"to_stdout"`
	SentryDSN   string `mapstructure:"sentry_dsn"`
	Environment string `mapstructure:"environment"`
}

// DatabaseConfig points at the optional MongoDB that receives completion records.
type DatabaseConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URI     string `mapstructure:"uri"`
	Name    string `mapstructure:"name"`
}

// S3Config configures the bucket used for exported health cards.
type S3Config struct {
	Enabled         bool   `mapstructure:"enabled"`
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// JWTConfig configures the signed coach session tokens.
type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"` // parsed from "12h", "90m", ...
}

type MetricsConfig struct {
	Namespace string `mapstructure:"namespace"`
	Subsystem string `mapstructure:"subsystem"`
}

// LoadConfig reads configuration from config.yaml in path and from the environment.
// Nested keys map to env vars with dots replaced by underscores (jwt.secret -> JWT_SECRET).
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	setDefaults(v)

	err = v.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		// No file: defaults and env vars only.
		err = nil
	} else if err != nil {
		return
	}

	err = v.Unmarshal(&config)
	if err != nil {
		return
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.session_prune_interval", "5m")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format_json", false)
	v.SetDefault("log.file", "")
	v.SetDefault("log.to_stdout", true)
	v.SetDefault("log.sentry_dsn", "")
	v.SetDefault("log.environment", "development")

	v.SetDefault("database.enabled", false)
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "fitness_coach")

	v.SetDefault("s3.enabled", false)
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket_name", "")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.access_key_id", "")
	v.SetDefault("s3.secret_access_key", "")
	v.SetDefault("s3.use_ssl", true)

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiration", "12h")

	v.SetDefault("metrics.namespace", "fitness")
	v.SetDefault("metrics.subsystem", "coach")
}
