package relay

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// Params for creating a Relay
type Params struct {
	fx.In

	Generator Generator
	Logger    zerolog.Logger
}

// Result of creating a Relay
type Result struct {
	fx.Out

	Relay *Relay
}

// New creates a Relay for the fx container.
func New(p Params) Result {
	return Result{
		Relay: NewRelay(p.Generator, p.Logger),
	}
}

// Module provides the Relay
func Module() fx.Option {
	return fx.Module(
		"relay",
		fx.Provide(
			New,
		),
	)
}
