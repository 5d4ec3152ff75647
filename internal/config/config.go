package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Address string `mapstructure:"address"`
	Port    int    `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	LogMode bool   `mapstructure:"log_mode"`
}

// JWTConfig carries everything the token issuer needs. Secrets and
// lifetimes are deployment configuration, handed to the issuer at
// construction rather than read from the environment at issue time.
type JWTConfig struct {
	AccessSecret      string `mapstructure:"access_secret"`
	RefreshSecret     string `mapstructure:"refresh_secret"`
	Issuer            string `mapstructure:"issuer"`
	AccessExpireMins  int    `mapstructure:"access_expire_mins"`
	RefreshExpireDays int    `mapstructure:"refresh_expire_days"`
}

// AccessTTL returns the access token lifetime, defaulting to 15 minutes.
func (c JWTConfig) AccessTTL() time.Duration {
	if c.AccessExpireMins <= 0 {
		return 15 * time.Minute
	}
	return time.Duration(c.AccessExpireMins) * time.Minute
}

// RefreshTTL returns the refresh token lifetime, defaulting to 10 days.
func (c JWTConfig) RefreshTTL() time.Duration {
	if c.RefreshExpireDays <= 0 {
		return 10 * 24 * time.Hour
	}
	return time.Duration(c.RefreshExpireDays) * 24 * time.Hour
}

type SecurityConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

type UploadConfig struct {
	Dir       string `mapstructure:"dir"`
	MaxSizeMB int    `mapstructure:"max_size_mb"`
}

type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Security SecurityConfig `mapstructure:"security"`
	Upload   UploadConfig   `mapstructure:"upload"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

var (
	appConfig *Config
	once      sync.Once
)

// Load loads configuration from given file path (e.g. "config.yaml").
// If path is empty, it defaults to "config.yaml" in current working directory.
func Load(path string) (*Config, error) {
	var err error
	once.Do(func() {
		v := viper.New()

		if path == "" {
			v.SetConfigName("config")
			v.SetConfigType("yaml")
			v.AddConfigPath(".")
		} else {
			v.SetConfigFile(path)
		}

		// environment overrides, e.g. BLOG_SERVER_PORT=9000
		v.SetEnvPrefix("BLOG")
		v.AutomaticEnv()

		if err = v.ReadInConfig(); err != nil {
			err = fmt.Errorf("read config: %w", err)
			return
		}

		var c Config
		if err = v.Unmarshal(&c); err != nil {
			err = fmt.Errorf("unmarshal config: %w", err)
			return
		}

		appConfig = &c
	})

	if err != nil {
		return nil, err
	}
	return appConfig, nil
}

// Get returns the loaded global configuration.
// Call Load() once at application startup.
func Get() *Config {
	return appConfig
}
