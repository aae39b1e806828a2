// Package dotenv provides a parser for .env configuration data for the config package.
//
// Decoding is delegated to github.com/joho/godotenv. Keys are kept verbatim,
// so "dbms.mygroup.1000.name=Bob Dylan" yields the setting key
// "dbms.mygroup.1000.name". Keys are limited to letters, digits, "_" and ".".
// Unquoted and double-quoted values expand $VAR and ${VAR}; single-quoted
// values are taken literally. Java-style .properties data belongs to
// config/parser/properties.
//
// A colon-separated path selects the keys below a dotted prefix and strips it:
//
//	parser := dotenv.NewParser()
//	tree, err := parser.Parse(data, "dbms:mygroup")
package dotenv

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
)

// Parser implements config.Parser interface for dotenv data.
type Parser struct{}

// NewParser creates a new dotenv parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes dotenv data. Empty data yields an empty tree.
func (p *Parser) Parse(data []byte, path string) (map[string]any, error) {
	values, err := godotenv.UnmarshalBytes(data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	prefix := ""
	if path != "" {
		prefix = strings.ReplaceAll(path, ":", ".") + "."
	}

	tree := make(map[string]any, len(values))

	for key, value := range values {
		if relative, ok := strings.CutPrefix(key, prefix); ok {
			tree[relative] = value
		}
	}

	return tree, nil
}
