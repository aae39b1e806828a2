package env

import (
	"errors"
	"os"
	"strings"

	"github.com/0xalexb/hjarta-settings/setting"
)

// ErrEmptyPrefix is returned when no prefix is given; the whole environment is never read.
var ErrEmptyPrefix = errors.New("environment prefix must not be empty")

// Separator ends every prefix; "GRAPH" and "GRAPH_" select the same variables.
const Separator = "_"

// NewLookup returns a constructor function that snapshots the environment
// variables starting with prefix into a lookup. Values are kept verbatim.
// Like file.NewFetcher it is Fx-friendly.
func NewLookup(prefix string) func() (setting.MapLookup, error) {
	return func() (setting.MapLookup, error) {
		return snapshot(prefix, os.Environ())
	}
}

func snapshot(prefix string, environ []string) (setting.MapLookup, error) {
	if prefix == "" || prefix == Separator {
		return nil, ErrEmptyPrefix
	}

	if !strings.HasSuffix(prefix, Separator) {
		prefix += Separator
	}

	lookup := make(setting.MapLookup)

	for _, entry := range environ {
		name, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}

		rest, ok := strings.CutPrefix(name, prefix)
		if !ok || rest == "" {
			continue
		}

		lookup[Key(rest)] = value
	}

	return lookup, nil
}

// Key maps an environment variable name, without prefix, to a setting key.
func Key(name string) string {
	parts := strings.Split(strings.ToLower(name), "__")
	for i, part := range parts {
		parts[i] = strings.ReplaceAll(part, "_", ".")
	}

	return strings.Join(parts, "_")
}
