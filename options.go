package apidoc

import (
	"io"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules        []fx.Option
	LogLevel       string
	LogFormat      string
	LogOutput      io.Writer
	SettingsFile   string
	StrictSettings bool
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat selects "json" (default) or "text" log output.
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}

// WithLogOutput redirects logs; the default is stderr.
func WithLogOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.LogOutput = w
	}
}

// WithSettingsFile loads documentation settings from the "docs" section of a YAML file.
// When strict is true, unknown keys in that section are rejected.
func WithSettingsFile(path string, strict bool) Option {
	return func(opts *Options) {
		opts.SettingsFile = path
		opts.StrictSettings = strict
	}
}
