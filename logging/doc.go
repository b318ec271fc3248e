// Package logging builds the log/slog logger shared by the documentation pipeline.
// Output is JSON unless the text format is requested.
package logging
