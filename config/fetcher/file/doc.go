// Package file provides a file-based config.DataFetcher for documentation settings.
//
// The file is read when the Fetcher is constructed and cached, so every
// Fetch returns the same bytes for the lifetime of the application.
//
//	fetcher, err := file.NewFetcher("apidoc.yaml")()
//	if err != nil {
//	    // missing file, directory, or larger than MaxSize
//	}
//
// Use errors.Is with ErrPathIsDirectory or ErrFileTooLarge to tell failures apart.
package file
