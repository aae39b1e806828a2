// Package yaml provides a YAML parser implementation for the config package.
//
// This package uses github.com/goccy/go-yaml for YAML parsing with native
// PathString support for efficient path navigation. The parser converts
// colon-separated paths (e.g., "services:graph") to YAML path format
// (e.g., "$.services.graph") internally and decodes the selected section
// into a tree for config.Flatten.
//
// Usage:
//
//	parser := yaml.NewParser()
//	tree, err := parser.Parse(data, "services:graph")
//
// Path Conversion:
//   - Empty path "" -> decode entire document
//   - Single key "key" -> "$.key"
//   - Nested path "services:graph" -> "$.services.graph"
package yaml
