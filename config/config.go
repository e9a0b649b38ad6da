// Package config loads and validates lvlseg settings.
//
// Values come from, in increasing priority: built-in defaults, an optional
// YAML file, LVLSEG_* environment variables and bound command-line flags.
// All sources are merged by viper and the result is checked with validator
// struct tags before any command runs.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/lvlseg/graphio"
	"github.com/katalvlaran/lvlseg/segment"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables read into Config.
const EnvPrefix = "LVLSEG"

// ErrInvalid indicates that the merged configuration failed validation.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds every setting a command may use.
type Config struct {
	LogLevel     string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	Environment  string `mapstructure:"environment" validate:"required,oneof=development production"`
	DBPath       string `mapstructure:"db" validate:"required"`
	Strategy     string `mapstructure:"strategy" validate:"oneof=sorted buckets"`
	InputFormat  string `mapstructure:"input_format" validate:"oneof=text yaml grid"`
	OutputFormat string `mapstructure:"format" validate:"oneof=text json yaml"`
	Output       string `mapstructure:"output"`
	MetricsFile  string `mapstructure:"metrics_file"`

	// Constant overrides the constant carried by the problem when set.
	Constant *int64 `mapstructure:"constant" validate:"omitempty,gte=0"`

	// Grid settings, used with InputFormat "grid".
	Conn       int   `mapstructure:"conn" validate:"oneof=4 8"`
	BaseWeight int64 `mapstructure:"base_weight" validate:"gte=0"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("environment", "development")
	v.SetDefault("db", "lvlseg.db")
	v.SetDefault("strategy", segment.StrategySorted.String())
	v.SetDefault("input_format", string(graphio.FormatText))
	v.SetDefault("format", string(graphio.FormatText))
	v.SetDefault("output", "")
	v.SetDefault("metrics_file", "")
	v.SetDefault("conn", 4)
	v.SetDefault("base_weight", 1)
}

// New returns a viper instance with defaults and environment binding set up.
// When file is not empty it is read as the YAML config file.
func New(file string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	// AutomaticEnv only resolves keys viper already knows about.
	if err := v.BindEnv("constant"); err != nil {
		return nil, fmt.Errorf("binding constant: %w", err)
	}

	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", file, err)
		}
	}

	return v, nil
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

var validate = validator.New()

// Validate checks the struct tags of c.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalid, formatValidationError(err))
	}

	return nil
}

// SegmentStrategy returns the parsed engine strategy.
func (c *Config) SegmentStrategy() segment.Strategy {
	s, _ := segment.ParseStrategy(c.Strategy)
	return s
}

func formatValidationError(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}
	msgs := make([]string, 0, len(ve))
	for _, e := range ve {
		msgs = append(msgs, formatFieldError(e))
	}

	return strings.Join(msgs, "; ")
}

func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
