package health

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/sayman4141-gif/telegram-bot-firm/internal/config"
)

type Params struct {
	fx.In

	Config *config.Config
	Logger zerolog.Logger
}

type Result struct {
	fx.Out

	Server *Server
}

// New hooks the health server into the fx lifecycle. A listen failure is
// logged inside the serving goroutine and never reaches the bot loop: the
// process keeps relaying messages with no working health endpoint rather
// than the other way around.
func New(lc fx.Lifecycle, p Params) Result {
	srv := NewServer(p.Config.Port)

	lc.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				p.Logger.Info().Int("port", p.Config.Port).Msg("health server running")
				go func() {
					err := srv.ListenAndServe()
					if err != nil && !errors.Is(err, http.ErrServerClosed) {
						p.Logger.Error().Err(err).Msg("health server stopped")
					}
				}()
				return nil
			},
			OnStop: func(ctx context.Context) error {
				p.Logger.Info().Msg("stopping health server...")
				return srv.Shutdown(ctx)
			},
		},
	)

	return Result{Server: srv}
}

func Module() fx.Option {
	return fx.Module(
		"health",
		fx.Provide(
			New,
		),
		fx.Invoke(
			func(srv *Server) {},
		),
	)
}
