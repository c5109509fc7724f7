package config

import (
	"fmt"

	"go.uber.org/fx"
)

// NewModule creates an Fx module for a named configuration source.
// The name is used as both the module name and the DI named tag for the
// Source and the collected value.Map. Collection runs when the mapping is
// first requested and its error fails application start.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, src Source) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	if src == nil {
		return fx.Error(ErrNilSource)
	}

	tag := fmt.Sprintf(`name:"%s"`, name)

	return fx.Module(name,
		fx.Provide(
			fx.Annotate(
				func() Source { return src },
				fx.ResultTags(tag),
			),
		),
		fx.Provide(
			fx.Annotate(
				src.Collect,
				fx.ResultTags(tag),
			),
		),
	)
}
