package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"static-launcher/core/logger"
	"static-launcher/core/server"
	"static-launcher/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server and launcher.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the bucket source.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"port":       "server.port",
	"host":       "server.host",
	"root":       "server.root",
	"source":     "server.source",
	"no-browser": "server.no_browser",
	"browse":     "server.browse",
	"log-level":  "log.level",
}

// LoadConfig loads configuration from flags, environment variables and the
// .env file in path. Flags win over the environment, which wins over defaults.
// flags may be nil.
func LoadConfig(path string, flags *pflag.FlagSet) (*Config, error) {
	// Ignore error if file doesn't exist (e.g. production). Load keeps
	// variables already set in the environment.
	_ = godotenv.Load(filepath.Join(path, ".env"))

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %q: %w", name, err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if !config.Server.IsValidSource() {
		return nil, fmt.Errorf("invalid server source %q (want %s, %s or %s)",
			config.Server.Source, server.SourceLocal, server.SourceBucket, server.SourceEmbedded)
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
