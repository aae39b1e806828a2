package setting

import (
	"cmp"
	"fmt"
	"path/filepath"
	"regexp"
)

// Constraint validates, and may convert, a parsed value. Constraints of a setting
// run in declaration order, each receiving the value returned by the previous one.
// The lookup is the one the setting is being resolved against.
type Constraint[T any] func(value T, lookup Lookup) (T, error)

// Min rejects values below minimum.
func Min[T cmp.Ordered](minimum T) Constraint[T] {
	return func(value T, _ Lookup) (T, error) {
		if value < minimum {
			return value, fmt.Errorf("%w: minimum allowed value is %v", ErrConstraint, minimum)
		}

		return value, nil
	}
}

// Max rejects values above maximum.
func Max[T cmp.Ordered](maximum T) Constraint[T] {
	return func(value T, _ Lookup) (T, error) {
		if value > maximum {
			return value, fmt.Errorf("%w: maximum allowed value is %v", ErrConstraint, maximum)
		}

		return value, nil
	}
}

// Range rejects values outside [minimum, maximum].
func Range[T cmp.Ordered](minimum, maximum T) Constraint[T] {
	return func(value T, _ Lookup) (T, error) {
		if value < minimum || value > maximum {
			return value, fmt.Errorf("%w: must be in range %v to %v", ErrConstraint, minimum, maximum)
		}

		return value, nil
	}
}

// Matches rejects values that do not match pattern as a whole.
// It panics if pattern is not a valid regular expression.
func Matches(pattern string) Constraint[string] {
	re := regexp.MustCompile(`^(?:` + pattern + `)$`)

	return func(value string, _ Lookup) (string, error) {
		if !re.MatchString(value) {
			return value, fmt.Errorf("%w: value does not match expression %s", ErrConstraint, pattern)
		}

		return value, nil
	}
}

// NotEmpty rejects the empty string.
func NotEmpty() Constraint[string] {
	return func(value string, _ Lookup) (string, error) {
		if value == "" {
			return value, fmt.Errorf("%w: value must not be empty", ErrConstraint)
		}

		return value, nil
	}
}

// BasePath makes relative paths absolute by joining them to the value of base.
// Absolute paths are returned unchanged.
func BasePath(base *Setting[string]) Constraint[string] {
	return func(value string, lookup Lookup) (string, error) {
		if filepath.IsAbs(value) {
			return value, nil
		}

		root, err := base.Apply(lookup)
		if err != nil {
			return value, err
		}

		path, err := filepath.Abs(filepath.Join(root, value))
		if err != nil {
			return value, fmt.Errorf("resolving %q against %q: %w", value, root, err)
		}

		return path, nil
	}
}
