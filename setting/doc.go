// Package setting provides typed configuration settings resolved against a flat
// key/value lookup.
//
// A Setting couples a key name with a Parser, a Default strategy and an ordered
// list of Constraints. Settings are declared once and resolved many times against
// different Lookup implementations; they never hold per-resolution state and are
// safe for concurrent use.
//
// # Defaults and inheritance
//
// The Default of a setting is one of four strategies:
//   - Literal: raw text parsed and constrained exactly like a configured value
//   - Inherit: the value (explicit or default) of another setting
//   - Mandatory: the lookup must provide a value, directly or through a parent
//   - NoDefault: the setting resolves to no value
//
// Chain wraps Literal, Mandatory or NoDefault so that an explicit value of a
// parent setting takes precedence over the own strategy:
//
//	a := setting.New("A", setting.String, setting.Literal("A"))
//	b := setting.New("B", setting.String, setting.Chain(a, setting.Literal("B")))
//	d := setting.New("D", setting.String, setting.Inherit(b))
//
// With an empty lookup b resolves to "B" and d resolves to "B". When the lookup
// holds A=X, both resolve to "X". The nearest explicit value always wins.
//
// # Groups
//
// A Group discovers numbered sub-configurations sharing a key prefix:
//
//	dbms.mygroup.1000.name=Bob Dylan
//	dbms.mygroup.1000.instrument=Harmonica
//
// Group.Apply returns one ConfigGroup per distinct index, ordered by ascending
// numeric index. A ConfigGroup is itself a Lookup scoped to its instance, so any
// setting resolves inside it with s.Apply(group).
package setting
