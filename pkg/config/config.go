package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Moderation ModerationConfig `mapstructure:"moderation"`
}

type ServerConfig struct {
	Port        int           `mapstructure:"port"`
	MetricsPort int           `mapstructure:"metrics_port"`
	SecretKey   string        `mapstructure:"secret_key"`
	TokenTTL    time.Duration `mapstructure:"token_ttl"`
	CORSOrigins []string      `mapstructure:"cors_origins"`
}

type MetricsConfig struct {
	Enabled          bool `mapstructure:"enabled"`
	EnableModeration bool `mapstructure:"enable_moderation"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TLS      bool   `mapstructure:"tls"`
}

type ModerationConfig struct {
	BaseURL             string        `mapstructure:"base_url"`
	APIKey              string        `mapstructure:"api_key"`
	CensorCharacter     string        `mapstructure:"censor_character"`
	Timeout             time.Duration `mapstructure:"timeout"`
	MaxRetries          uint64        `mapstructure:"max_retries"`
	BaseDelay           time.Duration `mapstructure:"base_delay"`
	MaxDelay            time.Duration `mapstructure:"max_delay"`
	Multiplier          float64       `mapstructure:"multiplier"`
	RandomizationFactor float64       `mapstructure:"randomization_factor"`
	RetryOnServerError  bool          `mapstructure:"retry_on_server_error"`
	CacheTTL            time.Duration `mapstructure:"cache_ttl"`
	BreakerMaxFailures  uint32        `mapstructure:"breaker_max_failures"`
	BreakerTimeout      time.Duration `mapstructure:"breaker_timeout"`
}

// legacyEnv maps the environment variable names used by existing deployments
// onto config keys.
var legacyEnv = map[string]string{
	"moderation.base_url": "API_LAYER_URL",
	"moderation.api_key":  "BAD_WORDS_API_KEY",
	"database.user":       "POSTGRES_USER",
	"database.password":   "POSTGRES_PASSWORD",
	"database.host":       "POSTGRES_HOST",
	"database.port":       "POSTGRES_PORT",
	"database.name":       "POSTGRES_DB",
	"server.port":         "PORT",
}

var ErrInsecureSecretKey = errors.New("server.secret_key must be set to a non-placeholder value")

var placeholderSecrets = map[string]struct{}{
	"change-me": {},
	"changeme":  {},
	"secret":    {},
}

var globalConfig Config

// Load reads config.yaml from configPath, ./config or the working directory.
// A missing file is not an error: defaults and environment variables apply.
func Load(configPath string) error {
	cfg, err := load(viper.New(), configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	globalConfig = *cfg
	return nil
}

func load(v *viper.Viper, configPath string) (*Config, error) {
	setDefaultValues(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range legacyEnv {
		if err := v.BindEnv(key, strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file config.yaml: %w", err)
		}
	}

	var cfg Config
	decodeHook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, decodeHook); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Validate rejects settings the service must not start with.
func (c *Config) Validate() error {
	secret := strings.TrimSpace(c.Server.SecretKey)
	if _, placeholder := placeholderSecrets[strings.ToLower(secret)]; secret == "" || placeholder {
		return ErrInsecureSecretKey
	}
	return nil
}

func setDefaultValues(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.metrics_port", 9090)
	v.SetDefault("server.token_ttl", 24*time.Hour)
	v.SetDefault("server.cors_origins", "*")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.enable_moderation", true)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.name", "qa")
	v.SetDefault("database.sslmode", "disable")

	v.SetDefault("redis.enabled", true)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)

	v.SetDefault("moderation.base_url", "https://api.apilayer.com")
	v.SetDefault("moderation.censor_character", "*")
	v.SetDefault("moderation.timeout", 10*time.Second)
	v.SetDefault("moderation.max_retries", 3)
	v.SetDefault("moderation.base_delay", time.Second)
	v.SetDefault("moderation.max_delay", 30*time.Second)
	v.SetDefault("moderation.multiplier", 2.0)
	v.SetDefault("moderation.randomization_factor", 0.5)
	v.SetDefault("moderation.retry_on_server_error", false)
	v.SetDefault("moderation.cache_ttl", time.Hour)
	v.SetDefault("moderation.breaker_max_failures", 5)
	v.SetDefault("moderation.breaker_timeout", 30*time.Second)
}

func GetConfig() *Config {
	return &globalConfig
}
