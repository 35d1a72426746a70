package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"

	"github.com/nao1215/dotnetvuln/internal/parser"
	"github.com/nao1215/dotnetvuln/internal/report"
)

// Default configuration values.
const (
	// AppName is the application name.
	AppName = "dotnetvuln"

	// StdinPath is the InputPath value meaning "read standard input".
	StdinPath = "-"

	// DefaultInputFormat matches `dotnet list package --format json`.
	DefaultInputFormat = parser.FormatJSON

	// DefaultOutputFormat is the plain line-oriented summary.
	DefaultOutputFormat = report.FormatText
)

// Config holds all configuration options for a single run.
// This struct is populated from environment variables and CLI flags and
// passed through the application rather than kept in global state.
type Config struct {
	// InputPath is the file the audit report is read from.
	// StdinPath (the default) reads standard input.
	InputPath string

	// InputFormat is the structured-text format of the audit report.
	InputFormat parser.Format `env:"DOTNETVULN_INPUT_FORMAT"`

	// OutputFormat selects the report writer.
	OutputFormat report.Format `env:"DOTNETVULN_FORMAT"`

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool `env:"DOTNETVULN_VERBOSE"`

	// LogJSON writes log records as JSON instead of text.
	LogJSON bool `env:"DOTNETVULN_LOG_JSON"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		InputPath:    StdinPath,
		InputFormat:  DefaultInputFormat,
		OutputFormat: DefaultOutputFormat,
	}
}

// FromEnv returns the default Config overridden by DOTNETVULN_* environment
// variables. When environ is nil the process environment is used.
func FromEnv(environ map[string]string) (*Config, error) {
	cfg := NewConfig()

	var opts []env.Options
	if environ != nil {
		opts = append(opts, env.Options{Environment: environ})
	}
	if err := env.Parse(cfg, opts...); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// ReadsStdin reports whether the report is read from standard input.
func (c *Config) ReadsStdin() bool {
	return c.InputPath == "" || c.InputPath == StdinPath
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if !c.InputFormat.Valid() {
		return fmt.Errorf("%w (got %q)", ErrInvalidInputFormat, c.InputFormat)
	}

	if !c.OutputFormat.Valid() {
		return fmt.Errorf("%w (got %q)", ErrInvalidOutputFormat, c.OutputFormat)
	}

	return nil
}
