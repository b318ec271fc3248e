// Package yaml provides the config.Parser used for documentation settings files.
//
// It is backed by github.com/goccy/go-yaml. Colon-separated paths such as
// "docs:globalResponses" are converted to YAML paths ("$.docs.globalResponses")
// and only the selected node is decoded. WithStrict rejects unknown keys,
// which catches misspelled setting names early.
package yaml
