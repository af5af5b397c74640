package main

import (
	"github.com/ipfans/fxlogger"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/sayman4141-gif/telegram-bot-firm/internal/ai"
	"github.com/sayman4141-gif/telegram-bot-firm/internal/bot"
	"github.com/sayman4141-gif/telegram-bot-firm/internal/config"
	"github.com/sayman4141-gif/telegram-bot-firm/internal/health"
	"github.com/sayman4141-gif/telegram-bot-firm/internal/log"
	"github.com/sayman4141-gif/telegram-bot-firm/internal/relay"
)

func main() {

	fx.New(
		config.Module(),
		log.Module(),
		ai.Module(),
		relay.Module(),
		bot.Module(),
		health.Module(),
		fx.WithLogger(
			func(logger zerolog.Logger) fxevent.Logger {
				return fxlogger.WithZerolog(logger)()
			},
		),
	).Run()
}
