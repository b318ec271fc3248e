// Package config loads the settings of the documentation pipeline.
//
// Loading is a fixed pipeline built by Provider:
//   - a DataFetcher returns raw bytes (a file, static data),
//   - a Parser decodes the section selected by a colon-separated path,
//   - a Defaulter, if implemented by the target, fills in missing values,
//   - a Validator, if implemented by the target, rejects bad settings.
//
// Every stage failure is wrapped with ErrFetch, ErrParse or ErrValidate.
//
// # Example
//
//	provider := config.Provider(&docctx.Settings{}, "docs")
//	settings, err := provider(yamlparser.NewParser(), static.NewFetcher(data), logger)
package config
