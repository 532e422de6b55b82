package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// EnvConfigFile names the environment variable consulted when no config path is given.
const EnvConfigFile = "LOXFRONT_CONFIG"

// Mode selects what the shell prints for every parsed expression.
type Mode string

const (
	ModeTokens Mode = "tokens"
	ModeAST    Mode = "ast"
	ModeRPN    Mode = "rpn"
	ModeEval   Mode = "eval"
)

// Modes lists the accepted modes in display order.
func Modes() []Mode {
	return []Mode{ModeTokens, ModeAST, ModeRPN, ModeEval}
}

func (m Mode) Valid() bool {
	for _, mode := range Modes() {
		if m == mode {
			return true
		}
	}
	return false
}

var (
	ErrUnsupportedFormat = errors.New("unsupported config format")
	ErrInvalidMode       = errors.New("invalid mode")
	ErrInvalidLogLevel   = errors.New("invalid log level")
)

// Config holds the shell settings.
type Config struct {
	Prompt      string `toml:"prompt" yaml:"prompt"`
	HistoryFile string `toml:"history_file" yaml:"history_file"`
	Mode        Mode   `toml:"mode" yaml:"mode"`
	LogLevel    string `toml:"log_level" yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Prompt:   "> ",
		Mode:     ModeAST,
		LogLevel: zerolog.WarnLevel.String(),
	}
}

// Load reads the file at path over the defaults. The format follows the
// extension: .toml, .yaml or .yml.
func Load(path string) (*Config, error) {
	cfg := Default()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedFormat, ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault loads path, falling back to $LOXFRONT_CONFIG and then to the defaults.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks the mode and the log level.
func (c *Config) Validate() error {
	var errs []error
	if !c.Mode.Valid() {
		errs = append(errs, fmt.Errorf("%w %q", ErrInvalidMode, c.Mode))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level parses LogLevel.
func (c *Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.NoLevel, fmt.Errorf("%w %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return level, nil
}
