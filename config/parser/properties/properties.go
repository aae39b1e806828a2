// Package properties provides a parser for Java-style .properties data for the
// config package.
//
// Decoding is delegated to github.com/magiconair/properties with ${key}
// expansion disabled, so values such as "pa$word" are kept verbatim. Keys may
// contain any character the format allows, including "-":
//
//	dbms.tx-log.rotation.size=10M
//	dbms.mygroup.1000.name=Bob Dylan
//
// A colon-separated path selects the keys below a dotted prefix and strips it:
//
//	parser := properties.NewParser()
//	tree, err := parser.Parse(data, "dbms:mygroup")
package properties

import (
	"fmt"
	"strings"

	"github.com/magiconair/properties"
)

// Parser implements config.Parser interface for .properties data.
type Parser struct {
	loader *properties.Loader
}

// NewParser creates a new properties parser instance reading UTF-8 data.
func NewParser() *Parser {
	return &Parser{
		loader: &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true},
	}
}

// Parse decodes .properties data. Empty data yields an empty tree.
func (p *Parser) Parse(data []byte, path string) (map[string]any, error) {
	props, err := p.loader.LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	prefix := ""
	if path != "" {
		prefix = strings.ReplaceAll(path, ":", ".") + "."
	}

	values := props.Map()
	tree := make(map[string]any, len(values))

	for key, value := range values {
		if relative, ok := strings.CutPrefix(key, prefix); ok {
			tree[relative] = value
		}
	}

	return tree, nil
}
