package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides (NEXUS_COLOR, NEXUS_LOG_LEVEL, NEXUS_RULES).
const EnvPrefix = "NEXUS"

// Keys understood by the loader.
const (
	KeyLogLevel = "log_level"
	KeyColor    = "color"
	KeyRules    = "rules"
)

// ColorMode selects when reports are coloured.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config is the validator's runtime configuration.
type Config struct {
	LogLevel string    `mapstructure:"log_level"`
	Color    ColorMode `mapstructure:"color"`
	// RulesFile points at a YAML ruleset; empty means the built-in one.
	RulesFile string `mapstructure:"rules"`
}

// Defaults returns the configuration used when nothing is overridden.
func Defaults() Config {
	return Config{
		LogLevel: "warn",
		Color:    ColorNever,
	}
}

// NewViper returns a viper instance seeded with defaults and env bindings.
// Callers bind their own flags before calling Load.
func NewViper() *viper.Viper {
	v := viper.New()
	d := Defaults()
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyColor, string(d.Color))
	v.SetDefault(KeyRules, d.RulesFile)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// Load resolves the configuration. Precedence: flags > env > config file > defaults.
// configFile is optional; when set it must exist.
func Load(v *viper.Viper, configFile string) (Config, error) {
	if v == nil {
		v = NewViper()
	}
	if strings.TrimSpace(configFile) != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.Color = ColorMode(strings.ToLower(strings.TrimSpace(string(cfg.Color))))
	cfg.RulesFile = strings.TrimSpace(cfg.RulesFile)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects unknown colour modes and log levels.
func (c Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", c.Color)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level %q (want debug, info, warn or error)", c.LogLevel)
	}
	return nil
}

// ResolveColor reports whether output should be coloured.
func ResolveColor(mode ColorMode, isTTY bool) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorAuto:
		return isTTY
	default:
		return false
	}
}
