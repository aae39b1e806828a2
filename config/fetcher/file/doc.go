// Package file provides a file-based DataFetcher implementation for the config package.
//
// The file is read at construction time and cached, meaning subsequent calls
// to Fetch() return the same data without re-reading the filesystem. Settings
// resolved from it are therefore stable for the application lifecycle.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("/etc/graph/graph.yaml")()
//	if err != nil {
//	    // Handle error: file not found, permission denied, path is directory, etc.
//	}
//	data, err := fetcher.Fetch()
//
// NewOptionalFetcher accepts a missing file and fetches no data, which leaves
// every setting on its default.
//
// Error Handling:
//   - Construction returns error if file cannot be read or path is a directory
//   - Errors include the filepath for easier debugging
//   - Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors
package file
