package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"

	"github.com/0xalexb/hjarta-settings/setting"
)

// Parser defines an interface for decoding configuration data into a tree.
//
// The path parameter specifies a navigation path within the configuration data
// using colon (:) as the separator for nested keys. For example:
//   - "services:graph" navigates to config["services"]["graph"]
//   - "" (empty path) means decode the entire document
//
// The tree holds nested maps, lists and scalar values; see Flatten.
type Parser interface {
	Parse(data []byte, path string) (map[string]any, error)
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator is a declared setting, or group of settings, that can be checked
// against a lookup. *setting.Setting and *setting.Group implement it.
type Validator interface {
	Name() string
	Validate(lookup setting.Lookup) error
}

// ErrInvalidConfiguration is returned when declared settings fail validation.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Provider returns a function that reads, parses and flattens configuration data
// into a lookup, then validates the given settings against it.
// Empty data yields an empty lookup without calling the parser.
// Every failing setting is reported, not only the first one.
func Provider(path string, validators ...Validator) func(Parser, DataFetcher) (setting.MapLookup, error) {
	return func(parser Parser, dataSourcer DataFetcher) (setting.MapLookup, error) {
		data, err := dataSourcer.Fetch()
		if err != nil {
			return nil, fmt.Errorf("reading data error: %w", err)
		}

		tree := map[string]any{}

		// Nothing to parse, e.g. an optional file that does not exist.
		if len(bytes.TrimSpace(data)) > 0 {
			tree, err = parser.Parse(data, path)
			if err != nil {
				return nil, fmt.Errorf("parsing error: %w", err)
			}
		}

		flat, err := Flatten(tree)
		if err != nil {
			return nil, fmt.Errorf("flattening error: %w", err)
		}

		lookup := setting.MapLookup(flat)

		slog.Info("configuration loaded", slog.String("path", path), slog.Int("keys", len(lookup)))

		err = Validate(lookup, validators...)
		if err != nil {
			return nil, fmt.Errorf("validating error: %w", err)
		}

		return lookup, nil
	}
}

// Validate checks every validator against lookup and joins the failures.
func Validate(lookup setting.Lookup, validators ...Validator) error {
	var errs []error

	for _, validator := range validators {
		err := validator.Validate(lookup)
		if err != nil {
			slog.Error("invalid setting", slog.String("setting", validator.Name()), slog.Any("error", err))
			errs = append(errs, err)
		}
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrInvalidConfiguration, errors.Join(errs...))
}
