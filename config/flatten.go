package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrDuplicateKey is returned when two entries of a tree flatten to the same key,
// e.g. a literal "a.b" key next to a nested a: {b: ...}.
var ErrDuplicateKey = errors.New("duplicate setting key")

// Flatten turns a decoded tree into flat setting keys.
//
// Nested maps join their keys with ".". Lists of scalars become a single
// comma-separated value, matching setting.List(",", ...). Lists containing maps
// become numbered entries ("servers.0.host", "servers.1.host") so they can be
// read with setting.Group. Nil values become empty strings.
func Flatten(tree map[string]any) (map[string]string, error) {
	flat := make(map[string]string)

	for key, value := range tree {
		err := flattenValue(flat, key, value)
		if err != nil {
			return nil, err
		}
	}

	return flat, nil
}

func flattenValue(flat map[string]string, key string, value any) error {
	switch typed := value.(type) {
	case map[string]any:
		for child, childValue := range typed {
			err := flattenValue(flat, join(key, child), childValue)
			if err != nil {
				return err
			}
		}
	case map[any]any:
		for child, childValue := range typed {
			err := flattenValue(flat, join(key, fmt.Sprint(child)), childValue)
			if err != nil {
				return err
			}
		}
	case []map[string]any:
		for i, item := range typed {
			err := flattenValue(flat, join(key, strconv.Itoa(i)), item)
			if err != nil {
				return err
			}
		}
	case []any:
		return flattenList(flat, key, typed)
	default:
		return set(flat, key, scalar(value))
	}

	return nil
}

func flattenList(flat map[string]string, key string, items []any) error {
	nested := false

	for _, item := range items {
		switch item.(type) {
		case map[string]any, map[any]any, []any:
			nested = true
		}
	}

	if nested {
		for i, item := range items {
			err := flattenValue(flat, join(key, strconv.Itoa(i)), item)
			if err != nil {
				return err
			}
		}

		return nil
	}

	values := make([]string, 0, len(items))
	for _, item := range items {
		values = append(values, scalar(item))
	}

	return set(flat, key, strings.Join(values, ","))
}

func set(flat map[string]string, key, value string) error {
	if _, exists := flat[key]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}

	flat[key] = value

	return nil
}

func scalar(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case time.Time:
		return typed.Format(time.RFC3339)
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	default:
		return fmt.Sprint(typed)
	}
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}

	return prefix + "." + key
}
