package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	logcfg "github.com/ncobase/studyverse/logging/logger/config"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "STUDYVERSE"

// Config represents the configuration implementation.
type Config struct {
	AppName  string
	RunMode  string
	Timezone string
	Server   *Server
	Auth     *Auth
	Logger   *logcfg.Config
	Data     *Data
	Observes *Observes
	Viper    *viper.Viper

	mu  sync.Mutex
	loc *time.Location
}

// LoadConfig loads the configuration. An empty path searches the default
// locations and falls back to defaults plus environment when no file exists.
func LoadConfig(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, alias := range envAliases {
		_ = v.BindEnv(key, EnvPrefix+"_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), alias)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.studyverse")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	return build(v)
}

func build(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		AppName:  v.GetString("app_name"),
		RunMode:  v.GetString("run_mode"),
		Timezone: v.GetString("timezone"),
		Server:   getServerConfig(v),
		Auth:     getAuth(v),
		Logger:   logcfg.GetConfig(v),
		Data:     getDataConfig(v),
		Observes: getObservesConfig(v),
		Viper:    v,
	}

	loc, err := loadLocation(cfg.Timezone)
	if err != nil {
		return nil, err
	}
	cfg.loc = loc

	if cfg.Data.Driver != DriverMongo && cfg.Data.Driver != DriverMemory {
		return nil, fmt.Errorf("unsupported data driver %q", cfg.Data.Driver)
	}
	return cfg, nil
}

// IsProd reports whether the service runs in production mode.
func (c *Config) IsProd() bool {
	return strings.EqualFold(c.RunMode, "prod") || strings.EqualFold(c.RunMode, "production")
}

// Location returns the zone used for day and week bucketing.
func (c *Config) Location() *time.Location {
	if c.loc == nil {
		return time.Local
	}
	return c.loc
}

// Watch re-reads the configuration file on change and hands the fresh
// config to callback. It does nothing when no file was loaded.
func (c *Config) Watch(callback func(*Config)) {
	if c.Viper == nil || c.Viper.ConfigFileUsed() == "" {
		return
	}
	c.Viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		c.mu.Lock()
		defer c.mu.Unlock()
		next, err := build(c.Viper)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error reloading config: %v\n", err)
			return
		}
		callback(next)
	})
	c.Viper.WatchConfig()
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", name, err)
	}
	return loc, nil
}
