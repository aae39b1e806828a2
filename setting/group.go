package setting

import (
	"regexp"
	"slices"
	"strings"
)

// Group discovers the numbered instances of a repeated sub-configuration,
// e.g. every "dbms.mygroup.<index>.*" key for the prefix "dbms.mygroup".
type Group struct {
	prefix  string
	pattern *regexp.Regexp
}

// NewGroup declares a group of sub-configurations under prefix.
func NewGroup(prefix string) *Group {
	return &Group{
		prefix:  prefix,
		pattern: regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `\.(\d+)\.(.+)$`),
	}
}

// Name returns the key prefix of the group.
func (g *Group) Name() string {
	return g.prefix
}

// Apply returns one ConfigGroup per index found in lookup, in ascending numeric
// order. No matching keys yield an empty slice.
func (g *Group) Apply(lookup Lookup) ([]ConfigGroup, error) {
	if lookup == nil {
		return []ConfigGroup{}, nil
	}

	seen := make(map[string]struct{})

	var indices []string

	for _, entry := range lookup.Find(g.pattern) {
		match := g.pattern.FindStringSubmatch(entry.Key)
		if match == nil {
			continue
		}

		if _, ok := seen[match[1]]; !ok {
			seen[match[1]] = struct{}{}
			indices = append(indices, match[1])
		}
	}

	slices.SortFunc(indices, compareIndex)

	groups := make([]ConfigGroup, 0, len(indices))
	for _, index := range indices {
		groups = append(groups, ConfigGroup{
			parent: lookup,
			scope:  g.pattern,
			prefix: g.prefix + "." + index + ".",
			index:  index,
		})
	}

	return groups, nil
}

// Validate checks that the group can be extracted from lookup.
func (g *Group) Validate(lookup Lookup) error {
	_, err := g.Apply(lookup)

	return err
}

// compareIndex orders digit strings by numeric value without parsing them,
// so indices of any length compare correctly. "07" and "7" stay distinct.
func compareIndex(a, b string) int {
	trimmedA, trimmedB := trimZeros(a), trimZeros(b)

	if c := len(trimmedA) - len(trimmedB); c != 0 {
		return c
	}

	if c := strings.Compare(trimmedA, trimmedB); c != 0 {
		return c
	}

	return strings.Compare(a, b)
}

func trimZeros(digits string) string {
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		return "0"
	}

	return trimmed
}

// ConfigGroup is the Lookup of a single group instance. Keys are relative to
// the instance, so a setting named "name" reads "<prefix>.<index>.name".
type ConfigGroup struct {
	parent Lookup
	// scope matches the keys of every instance of the group.
	scope  *regexp.Regexp
	prefix string
	index  string
}

// Index returns the digits identifying the instance.
func (g ConfigGroup) Index() string {
	return g.index
}

// Get returns the value of key within the instance.
func (g ConfigGroup) Get(key string) (string, bool) {
	return g.parent.Get(g.prefix + key)
}

// Find returns the entries of the instance whose relative key matches pattern.
func (g ConfigGroup) Find(pattern *regexp.Regexp) []KeyValue {
	var found []KeyValue

	for _, entry := range g.parent.Find(g.scope) {
		key, ok := strings.CutPrefix(entry.Key, g.prefix)
		if ok && pattern.MatchString(key) {
			found = append(found, KeyValue{Key: key, Value: entry.Value})
		}
	}

	return found
}
