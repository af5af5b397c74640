package ai

import (
	"context"

	"go.uber.org/fx"

	"github.com/sayman4141-gif/telegram-bot-firm/internal/config"
	"github.com/sayman4141-gif/telegram-bot-firm/internal/relay"
)

// Params for creating the AI client
type Params struct {
	fx.In

	Config *config.Config
}

// Result of creating the AI client
type Result struct {
	fx.Out

	Generator relay.Generator
}

// New creates the Gemini client based on configuration
func New(p Params) (Result, error) {
	client, err := NewClient(context.Background(), p.Config.APIKey, p.Config.Model)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Generator: client,
	}, nil
}

// Module provides the AI generator
func Module() fx.Option {
	return fx.Module(
		"ai",
		fx.Provide(
			New,
		),
	)
}
