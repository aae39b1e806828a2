package toml

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the specified path is not found in the TOML document.
var ErrPathNotFound = errors.New("path not found")

// ErrNotATable is returned when the specified path points to a value that is not a table.
var ErrNotATable = errors.New("not a table")

// Parser implements config.Parser interface for TOML data.
type Parser struct{}

// NewParser creates a new TOML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes TOML data into a tree and returns the table selected by path.
// The path parameter uses colon (:) as separator; empty path returns the whole document.
func (p *Parser) Parse(data []byte, path string) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyData
	}

	tree := make(map[string]any)

	err := toml.Unmarshal(data, &tree)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	if path == "" {
		return tree, nil
	}

	return navigate(tree, path)
}

func navigate(tree map[string]any, path string) (map[string]any, error) {
	current := tree

	for _, key := range strings.Split(path, ":") {
		value, ok := current[key]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		table, ok := value.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotATable, path)
		}

		current = table
	}

	return current, nil
}
