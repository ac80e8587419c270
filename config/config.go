// SPDX-License-Identifier: MIT

// Package config resolves citymst settings from .citymst.yaml, CITYMST_*
// environment variables and command-line flags.
package config

import (
	"strings"
	"time"

	"github.com/katalvlaran/citymst/logutil"
	"github.com/katalvlaran/citymst/report"
	"github.com/pingcap/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. CITYMST_DATA_FILE.
const EnvPrefix = "CITYMST"

// FileName is the config file looked up in the working and home directories.
const FileName = ".citymst"

// Keys shared by flags, env vars and the config file.
const (
	KeyDataFile      = "data_file"
	KeyStartCity     = "start_city"
	KeyOutput        = "output"
	KeyMaxCities     = "max_cities"
	KeyMaxEdges      = "max_edges"
	KeyLogLevel      = "log.level"
	KeyLogEncoding   = "log.encoding"
	KeyMetricsFile   = "metrics_file"
	KeyWatchDebounce = "watch.debounce"
)

// LogConfig configures the zap logger.
type LogConfig struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

// WatchConfig configures watch mode.
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

// Config holds all runtime configuration for one citymst invocation.
type Config struct {
	DataFile    string      `mapstructure:"data_file"`
	StartCity   string      `mapstructure:"start_city"`
	Output      string      `mapstructure:"output"`
	MaxCities   int         `mapstructure:"max_cities"`
	MaxEdges    int         `mapstructure:"max_edges"`
	MetricsFile string      `mapstructure:"metrics_file"`
	Log         LogConfig   `mapstructure:"log"`
	Watch       WatchConfig `mapstructure:"watch"`
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDataFile, "cities.txt")
	v.SetDefault(KeyStartCity, "")
	v.SetDefault(KeyOutput, report.FormatText)
	v.SetDefault(KeyMaxCities, 0)
	v.SetDefault(KeyMaxEdges, 0)
	v.SetDefault(KeyMetricsFile, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogEncoding, logutil.EncodingConsole)
	v.SetDefault(KeyWatchDebounce, 200*time.Millisecond)
}

// Load applies the defaults, decodes v and validates the result.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Annotate(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects settings no command can run with.
func (c Config) Validate() error {
	switch {
	case c.DataFile == "":
		return errors.Errorf("%s must not be empty", KeyDataFile)
	case !report.ValidFormat(c.Output):
		return errors.Errorf("%s %q: want one of %v", KeyOutput, c.Output, report.Formats())
	case c.MaxCities < 0:
		return errors.Errorf("%s must be >= 0, got %d", KeyMaxCities, c.MaxCities)
	case c.MaxEdges < 0:
		return errors.Errorf("%s must be >= 0, got %d", KeyMaxEdges, c.MaxEdges)
	case c.Log.Encoding != logutil.EncodingConsole && c.Log.Encoding != logutil.EncodingJSON:
		return errors.Errorf("%s %q: want console or json", KeyLogEncoding, c.Log.Encoding)
	case c.Watch.Debounce <= 0:
		return errors.Errorf("%s must be positive, got %s", KeyWatchDebounce, c.Watch.Debounce)
	}

	return nil
}

// Init points v at the config file and environment. An explicit file must
// exist; the default .citymst.yaml is optional.
func Init(v *viper.Viper, file string, home string) error {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home != "" {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && file == "" {
			return nil
		}
		return errors.Annotatef(err, "read config %s", file)
	}

	return nil
}
