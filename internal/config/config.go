// Package config loads msgtool settings from .msgtool.yaml, MSGTOOL_*
// environment variables and command line flags, in increasing order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"msgtool/internal/catalog"
)

// FileName is looked up in the project root unless --config is given.
const FileName = ".msgtool.yaml"

type Config struct {
	// Root is the project directory. It comes from --root or MSGTOOL_ROOT
	// only, since the config file is looked up inside it.
	Root string `mapstructure:"root"`

	// Catalog is the catalog-definition file, relative to Root.
	Catalog string `mapstructure:"catalog"`

	EnumStart       string    `mapstructure:"enum_start"`
	Terminator      string    `mapstructure:"terminator"`
	ReferencePrefix string    `mapstructure:"reference_prefix"`
	Resources       []string  `mapstructure:"resources"`
	Sources         []string  `mapstructure:"sources"`
	Exclude         []string  `mapstructure:"exclude"`
	Placeholder     string    `mapstructure:"placeholder"`
	Log             LogConfig `mapstructure:"log"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// flagKeys maps flag names to configuration keys.
var flagKeys = map[string]string{
	"root":        "root",
	"catalog":     "catalog",
	"placeholder": "placeholder",
	"log-level":   "log.level",
	"log-format":  "log.format",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("root", ".")
	v.SetDefault("catalog", "")
	v.SetDefault("enum_start", catalog.DefaultStart)
	v.SetDefault("terminator", catalog.DefaultTerminator)
	v.SetDefault("reference_prefix", "")
	v.SetDefault("resources", []string{"resources/lang/Resource*.properties"})
	v.SetDefault("sources", []string{"src/**/*.java", "src/**/*.aj"})
	v.SetDefault("exclude", []string{})
	v.SetDefault("placeholder", catalog.DefaultPlaceholder)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// Load builds the configuration. flags may be nil; otherwise the flags
// named in flagKeys override file and environment values when set, and
// the "config" flag selects the configuration file.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("MSGTOOL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	var configFile string
	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
		if f := flags.Lookup("config"); f != nil {
			configFile = f.Value.String()
		}
	}

	root, err := filepath.Abs(v.GetString("root"))
	if err != nil {
		return nil, fmt.Errorf("resolve root: %w", err)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		fn := filepath.Join(root, FileName)
		if _, err := os.Stat(fn); err == nil {
			v.SetConfigFile(fn)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config: %w", err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// The file is optional, defaults and env vars apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Root = root

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// Validate checks for settings no command can work without.
func (c *Config) Validate() error {
	if c.Catalog == "" {
		return fmt.Errorf("catalog must be set (in %s, MSGTOOL_CATALOG or --catalog)", FileName)
	}
	if len(c.Sources) == 0 {
		return fmt.Errorf("sources must not be empty")
	}
	if len(c.Resources) == 0 {
		return fmt.Errorf("resources must not be empty")
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, not %q", c.Log.Format)
	}
	return nil
}

// ProjectOptions returns the settings describing the project layout.
func (c *Config) ProjectOptions() catalog.Options {
	return catalog.Options{
		Catalog: filepath.ToSlash(c.Catalog),
		Grammar: catalog.Grammar{
			Start:      c.EnumStart,
			Terminator: c.Terminator,
			Prefix:     c.ReferencePrefix,
		},
		Resources:   c.Resources,
		Sources:     c.Sources,
		Exclude:     c.Exclude,
		Placeholder: c.Placeholder,
	}
}
