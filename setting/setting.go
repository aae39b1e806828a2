package setting

import (
	"fmt"
)

// Setting is a typed configuration key. It is immutable once created.
type Setting[T any] struct {
	name        string
	parser      Parser[T]
	def         Default
	constraints []Constraint[T]
}

// New declares a setting named name. A nil def means NoDefault.
func New[T any](name string, parser Parser[T], def Default, constraints ...Constraint[T]) *Setting[T] {
	if def == nil {
		def = NoDefault()
	}

	return &Setting[T]{
		name:        name,
		parser:      parser,
		def:         def,
		constraints: append([]Constraint[T](nil), constraints...),
	}
}

// Name returns the configuration key of the setting.
func (s *Setting[T]) Name() string {
	return s.name
}

// Parser returns the parser of the setting.
func (s *Setting[T]) Parser() Parser[T] {
	return s.parser
}

func (s *Setting[T]) strategy() Default {
	return s.def
}

// Apply resolves the setting against lookup.
// A setting without any value resolves to the zero value of T.
func (s *Setting[T]) Apply(lookup Lookup) (T, error) {
	value, _, err := s.Resolve(lookup)

	return value, err
}

// Validate resolves the setting against lookup and discards the value.
func (s *Setting[T]) Validate(lookup Lookup) error {
	_, _, err := s.Resolve(lookup)

	return err
}

// Resolve resolves the setting against lookup. The boolean reports whether a
// value was found at all; it is false only for settings ending in NoDefault.
func (s *Setting[T]) Resolve(lookup Lookup) (T, bool, error) {
	var zero T

	if lookup == nil {
		lookup = MapLookup(nil)
	}

	res := resolver{lookup: lookup, visiting: make(map[Ancestor]bool)}

	raw, found, err := res.raw(s)
	if err != nil {
		return zero, false, invalid(s.name, "", err)
	}

	if !found {
		return zero, false, nil
	}

	value, err := s.parser(raw)
	if err != nil {
		return zero, false, invalid(s.name, raw, fmt.Errorf("%w: %w", ErrParse, err))
	}

	for _, constraint := range s.constraints {
		value, err = constraint(value, lookup)
		if err != nil {
			return zero, false, invalid(s.name, raw, err)
		}
	}

	return value, true, nil
}

// resolver picks the effective raw value of a setting. visiting holds the
// settings on the current inheritance path.
type resolver struct {
	lookup   Lookup
	visiting map[Ancestor]bool
}

func (r *resolver) raw(s Ancestor) (string, bool, error) {
	raw, found, err := r.explicit(s)
	if err != nil || found {
		return raw, found, err
	}

	return r.fallback(s)
}

func (r *resolver) enter(s Ancestor) error {
	if r.visiting[s] {
		return &InvalidSettingError{Name: s.Name(), Value: "", Err: ErrCyclicInheritance}
	}

	r.visiting[s] = true

	return nil
}

func (r *resolver) leave(s Ancestor) {
	delete(r.visiting, s)
}

// explicit finds the nearest explicit value along the parents of s.
func (r *resolver) explicit(s Ancestor) (string, bool, error) {
	err := r.enter(s)
	if err != nil {
		return "", false, err
	}
	defer r.leave(s)

	if raw, ok := r.lookup.Get(s.Name()); ok {
		return raw, true, nil
	}

	for _, parent := range parents(s.strategy()) {
		raw, found, err := r.explicit(parent)
		if err != nil || found {
			return raw, found, err
		}
	}

	return "", false, nil
}

// fallback applies the default strategy of s, following Inherit to the parent default.
func (r *resolver) fallback(s Ancestor) (string, bool, error) {
	err := r.enter(s)
	if err != nil {
		return "", false, err
	}
	defer r.leave(s)

	def := s.strategy()
	for chained, ok := def.(chainedDefault); ok; chained, ok = def.(chainedDefault) {
		def = chained.base
	}

	switch def := def.(type) {
	case literalDefault:
		return def.raw, true, nil
	case inheritDefault:
		return r.fallback(def.parent)
	case mandatoryDefault:
		return "", false, &InvalidSettingError{Name: s.Name(), Value: "", Err: ErrMandatory}
	case noDefault:
		return "", false, nil
	default:
		return "", false, fmt.Errorf("setting %q: unsupported default %T", s.Name(), def)
	}
}
