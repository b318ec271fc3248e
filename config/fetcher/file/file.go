package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// MaxSize is the largest settings file the Fetcher accepts.
const MaxSize = 1 << 20

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// ErrFileTooLarge is returned when the file exceeds MaxSize.
var ErrFileTooLarge = errors.New("file exceeds maximum size")

// Fetcher implements config.DataFetcher for a settings file.
// The file is read once, at construction.
type Fetcher struct {
	path string
	data []byte
}

// NewFetcher returns an Fx-friendly constructor for a Fetcher reading fpath.
// The constructor fails if the file is missing, is a directory or is larger than MaxSize.
func NewFetcher(fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		cleanPath := filepath.Clean(fpath)

		stat, err := os.Stat(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		if stat.Size() > MaxSize {
			return nil, fmt.Errorf("path %q (%d bytes): %w", cleanPath, stat.Size(), ErrFileTooLarge)
		}

		data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
		}

		return &Fetcher{
			path: cleanPath,
			data: data,
		}, nil
	}
}

// Path returns the cleaned path the data was read from.
func (f *Fetcher) Path() string {
	return f.path
}

// Fetch returns a copy of the data read at construction.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
