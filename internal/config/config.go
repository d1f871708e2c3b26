package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Dataset  DatasetConfig
	Layout   LayoutConfig
	Filter   FilterConfig
	Log      LogConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// DatasetConfig names the registered dataset the dashboard loads. An
// unknown name fails at startup.
type DatasetConfig struct {
	Name string
}

// LayoutConfig points at the page layout file.
type LayoutConfig struct {
	Path string
}

// FilterConfig seeds the shared year range. Zero bounds mean "derive
// from the data".
type FilterConfig struct {
	Lower int
	Upper int
}

// LogConfig holds file logging settings.
type LogConfig struct {
	Path  string
	Debug bool
}

// Load reads configuration from file and env. Env var overrides use prefix CROSSDASH_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("database.path", filepath.Join(dataDir(), "crossdash.db"))
	v.SetDefault("dataset.name", "gapminder")
	v.SetDefault("layout.path", filepath.Join(os.Getenv("HOME"), ".config", "crossdash", "layout.toml"))
	v.SetDefault("filter.lower", 0)
	v.SetDefault("filter.upper", 0)
	v.SetDefault("log.path", filepath.Join(dataDir(), "crossdash.log"))
	v.SetDefault("log.debug", false)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("CROSSDASH_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "crossdash"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CROSSDASH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Filter.Lower != 0 && c.Filter.Upper != 0 && c.Filter.Lower > c.Filter.Upper {
		return Config{}, fmt.Errorf("filter bounds: lower %d exceeds upper %d", c.Filter.Lower, c.Filter.Upper)
	}
	return c, nil
}

func dataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "crossdash")
}
