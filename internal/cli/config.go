package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/contrast/internal/contrast"
)

// Environment variables read by the CLI. Flags take precedence.
const (
	envAlgorithm = "CONTRAST_ALGORITHM"
	envLogLevel  = "CONTRAST_LOG_LEVEL"
	envNoColour  = "NO_COLOR"
)

// ErrInvalidLogLevel is returned when CONTRAST_LOG_LEVEL is not a known level.
var ErrInvalidLogLevel = errors.New("invalid log level")

// Config holds settings shared by every command.
type Config struct {
	// Algorithm is the default algorithm when -a is not given.
	Algorithm contrast.Algorithm
	// LogLevel is the hclog level used when --verbose is set.
	LogLevel hclog.Level
	// NoColour disables ANSI colour previews.
	NoColour bool
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Algorithm: contrast.AlgorithmAPCA,
		LogLevel:  hclog.Debug,
	}
}

// ConfigBuilder assembles a Config from defaults and the environment.
type ConfigBuilder struct {
	config Config
	useEnv bool
	getenv func(string) (string, bool)
}

// NewConfigBuilder creates a builder starting from DefaultConfig.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		config: DefaultConfig(),
		getenv: os.LookupEnv,
	}
}

// WithEnvConfig loads configuration from CONTRAST_ALGORITHM,
// CONTRAST_LOG_LEVEL and NO_COLOR. Empty values are treated as unset.
func (b *ConfigBuilder) WithEnvConfig() *ConfigBuilder {
	b.useEnv = true
	return b
}

// WithLookupEnv replaces the environment lookup (useful for testing).
func (b *ConfigBuilder) WithLookupEnv(fn func(string) (string, bool)) *ConfigBuilder {
	b.getenv = fn
	return b
}

// Build returns the configuration. Unrecognised environment values are
// reported as errors rather than ignored.
func (b *ConfigBuilder) Build() (Config, error) {
	config := b.config
	if !b.useEnv {
		return config, nil
	}

	if v, ok := b.getenv(envAlgorithm); ok && v != "" {
		alg, err := contrast.ParseAlgorithm(v)
		if err != nil {
			return Config{}, err
		}
		config.Algorithm = alg
	}
	if v, ok := b.getenv(envLogLevel); ok && v != "" {
		level := hclog.LevelFromString(strings.TrimSpace(v))
		if level == hclog.NoLevel {
			return Config{}, fmt.Errorf("%w: %s=%q (valid levels: trace, debug, info, warn, error, off)",
				ErrInvalidLogLevel, envLogLevel, v)
		}
		config.LogLevel = level
	}
	if v, ok := b.getenv(envNoColour); ok && v != "" {
		config.NoColour = true
	}
	return config, nil
}

// newLogger returns a logger writing to the command's stderr when --verbose
// is set, and a silent logger otherwise.
func newLogger(cmd *cobra.Command, config Config) hclog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "contrast",
			Output: io.Discard,
			Level:  hclog.Off,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "contrast",
		Output: cmd.ErrOrStderr(),
		Level:  config.LogLevel,
	})
}
