package settings

import (
	"fmt"

	"github.com/0xalexb/hjarta-settings/setting"

	"go.uber.org/fx"
)

// Named is anything identified by a configuration key, such as *setting.Setting or *setting.Group.
type Named interface {
	Name() string
}

// Tag returns the Fx name tag under which Bind and BindGroup provide a value,
// for use with fx.ParamTags or `name` struct tags.
func Tag(named Named) string {
	return fmt.Sprintf(`name:"%s"`, named.Name())
}

// Bind provides the value of s, resolved against the application lookup, as a
// named value. A resolution error fails the application start.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func Bind[T any](s *setting.Setting[T]) fx.Option {
	return fx.Provide(
		fx.Annotate(
			func(lookup setting.Lookup) (T, error) {
				return s.Apply(lookup)
			},
			fx.ResultTags(Tag(s)),
		),
	)
}

// BindGroup provides the instances of g found in the application lookup as a
// named []setting.ConfigGroup.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func BindGroup(g *setting.Group) fx.Option {
	return fx.Provide(
		fx.Annotate(
			func(lookup setting.Lookup) ([]setting.ConfigGroup, error) {
				return g.Apply(lookup)
			},
			fx.ResultTags(Tag(g)),
		),
	)
}

// Module groups the bindings of a configuration schema into an Fx module.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func Module(name string, bindings ...fx.Option) fx.Option {
	return fx.Module(name, bindings...)
}
