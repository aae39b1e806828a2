package setting

import (
	"regexp"
	"slices"
	"strings"
)

// KeyValue is a raw configuration entry.
type KeyValue struct {
	Key   string
	Value string
}

// Lookup is the raw configuration source settings are resolved against.
//
// Get returns the raw value stored under exactly key. Find returns every entry
// whose key matches pattern; it returns an empty (or nil) slice when nothing matches.
type Lookup interface {
	Get(key string) (string, bool)
	Find(pattern *regexp.Regexp) []KeyValue
}

// MapLookup is a Lookup backed by a map. Find returns entries sorted by key.
type MapLookup map[string]string

// Get returns the value stored under key.
func (m MapLookup) Get(key string) (string, bool) {
	value, ok := m[key]

	return value, ok
}

// Find returns the entries whose key matches pattern.
func (m MapLookup) Find(pattern *regexp.Regexp) []KeyValue {
	var found []KeyValue

	for key, value := range m {
		if pattern.MatchString(key) {
			found = append(found, KeyValue{Key: key, Value: value})
		}
	}

	sortByKey(found)

	return found
}

// Layered combines lookups in precedence order: the first lookup holding a key wins.
// Find merges the entries of all layers under the same rule.
//
//nolint:ireturn // layered is an implementation detail
func Layered(lookups ...Lookup) Lookup {
	return layered(slices.Clone(lookups))
}

type layered []Lookup

func (l layered) Get(key string) (string, bool) {
	for _, lookup := range l {
		if value, ok := lookup.Get(key); ok {
			return value, true
		}
	}

	return "", false
}

func (l layered) Find(pattern *regexp.Regexp) []KeyValue {
	seen := make(map[string]struct{})

	var found []KeyValue

	for _, lookup := range l {
		for _, entry := range lookup.Find(pattern) {
			if _, ok := seen[entry.Key]; ok {
				continue
			}

			seen[entry.Key] = struct{}{}
			found = append(found, entry)
		}
	}

	sortByKey(found)

	return found
}

func sortByKey(entries []KeyValue) {
	slices.SortFunc(entries, func(a, b KeyValue) int {
		return strings.Compare(a.Key, b.Key)
	})
}
