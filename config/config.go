package config

import (
	"errors"
	"fmt"
	"log/slog"
)

// Pipeline stage errors. Provider wraps the underlying cause with one of these.
var (
	ErrFetch    = errors.New("fetching configuration")
	ErrParse    = errors.New("parsing configuration")
	ErrValidate = errors.New("validating configuration")
)

// Parser decodes raw configuration data into target.
//
// path selects a section of the document; nested keys are separated by a
// colon ("docs:responses"). An empty path selects the whole document.
type Parser interface {
	Parse(data []byte, target any, path string) error
}

// DataFetcher returns raw configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator is implemented by configuration types that can check themselves.
type Validator interface {
	Validate() error
}

// Defaulter is implemented by configuration types that fill in missing values.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Provider returns a constructor that fetches, parses, defaults and validates a T.
// The constructor's parameters are Fx-injectable.
func Provider[T any](target *T, path string) func(Parser, DataFetcher, *slog.Logger) (*T, error) {
	return func(parser Parser, fetcher DataFetcher, logger *slog.Logger) (*T, error) {
		if logger == nil {
			logger = slog.Default()
		}

		data, err := fetcher.Fetch()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFetch, err)
		}

		err = parser.Parse(data, target, path)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrParse, path, err)
		}

		if defaulter, ok := any(target).(Defaulter); ok && defaulter.SetDefaults() {
			logger.Debug("configuration defaults applied", slog.String("path", path))
		}

		if validator, ok := any(target).(Validator); ok {
			err = validator.Validate()
			if err != nil {
				return nil, fmt.Errorf("%w %q: %w", ErrValidate, path, err)
			}
		}

		logger.Debug("configuration loaded", slog.String("path", path))

		return target, nil
	}
}
