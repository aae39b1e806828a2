// Package toml provides a TOML parser implementation for the config package.
//
// This package uses github.com/BurntSushi/toml to decode the document and walks
// colon-separated paths (e.g., "services:graph") through the decoded tables.
//
// Usage:
//
//	parser := toml.NewParser()
//	tree, err := parser.Parse(data, "services:graph")
package toml
