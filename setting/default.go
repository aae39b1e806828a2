package setting

// Default is the strategy a setting falls back on when the lookup holds no
// explicit value for it. The only implementations are returned by Literal,
// Inherit, Mandatory, NoDefault and Chain.
type Default interface {
	isDefault()
}

// Ancestor is a setting other settings can inherit from.
// It is implemented by *Setting[T] for every T.
type Ancestor interface {
	Name() string
	strategy() Default
}

type literalDefault struct {
	raw string
}

type inheritDefault struct {
	parent Ancestor
}

type mandatoryDefault struct{}

type noDefault struct{}

type chainedDefault struct {
	parent Ancestor
	base   Default
}

func (literalDefault) isDefault()   {}
func (inheritDefault) isDefault()   {}
func (mandatoryDefault) isDefault() {}
func (noDefault) isDefault()        {}
func (chainedDefault) isDefault()   {}

// Literal defaults to raw. The text goes through the parser and the constraints
// of the setting like any configured value.
//
//nolint:ireturn // sealed sum type
func Literal(raw string) Default {
	return literalDefault{raw: raw}
}

// Inherit defaults to whatever parent resolves to, explicit value or default.
// The parent value is parsed with the parser of the inheriting setting.
//
//nolint:ireturn // sealed sum type
func Inherit(parent Ancestor) Default {
	return inheritDefault{parent: parent}
}

// Mandatory makes resolution fail unless the lookup provides a value.
//
//nolint:ireturn // sealed sum type
func Mandatory() Default {
	return mandatoryDefault{}
}

// NoDefault resolves to no value when the lookup provides none.
//
//nolint:ireturn // sealed sum type
func NoDefault() Default {
	return noDefault{}
}

// Chain gives explicit values of parent, or of any setting parent itself
// inherits from, precedence over base. The default of parent is not used.
// A nil base means NoDefault.
//
//nolint:ireturn // sealed sum type
func Chain(parent Ancestor, base Default) Default {
	if base == nil {
		base = NoDefault()
	}

	return chainedDefault{parent: parent, base: base}
}

// parents lists the settings whose explicit values d defers to, nearest first.
func parents(d Default) []Ancestor {
	switch d := d.(type) {
	case inheritDefault:
		return []Ancestor{d.parent}
	case chainedDefault:
		return append([]Ancestor{d.parent}, parents(d.base)...)
	default:
		return nil
	}
}
