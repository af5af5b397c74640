package bot

import (
	"context"

	tbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/sayman4141-gif/telegram-bot-firm/internal/config"
	"github.com/sayman4141-gif/telegram-bot-firm/internal/relay"
)

type Params struct {
	fx.In

	Config *config.Config
	Relay  *relay.Relay
}

type Result struct {
	fx.Out

	Bot *tbot.Bot
}

// New wires the relay into the Telegram long-polling transport and hooks
// the bot goroutine into the fx lifecycle.
func New(lc fx.Lifecycle, p Params, log zerolog.Logger) (Result, error) {
	opts := []tbot.Option{
		tbot.WithDefaultHandler(
			func(ctx context.Context, tg *tbot.Bot, update *models.Update) {
				handleUpdate(ctx, tg, update, p.Relay, &log)
			},
		),
	}

	tg, err := tbot.New(p.Config.Token, opts...)
	if err != nil {
		return Result{}, err
	}

	lc.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				log.Info().Msg("starting telegram bot...")
				go tg.Start(context.Background())
				return nil
			},
			OnStop: func(ctx context.Context) error {
				log.Info().Msg("stopping telegram bot...")
				return nil
			},
		},
	)

	return Result{Bot: tg}, nil
}

func Module() fx.Option {
	return fx.Module(
		"bot",
		fx.Provide(
			New,
		),
		fx.Invoke(
			func(bot *tbot.Bot) {},
		),
	)
}

// handleUpdate translates one Telegram update into a relay event, runs
// dispatch under the supervisory boundary, and delivers the reply
// fire-and-forget.
func handleUpdate(
	ctx context.Context,
	tg *tbot.Bot,
	update *models.Update,
	r *relay.Relay,
	log *zerolog.Logger,
) {
	// Convert escaped panics into one logged event; the dispatch loop
	// keeps running and the user is never told more than the handler
	// already sent.
	defer func() {
		if rec := recover(); rec != nil {
			log.Error().
				Interface("panic", rec).
				Interface("update", update).
				Msg("handler panicked")
		}
	}()

	ev, ok := classify(update, log)
	if !ok {
		return
	}

	if ev.Kind == relay.KindText {
		// Best-effort presence indicator, result ignored.
		_, _ = tg.SendChatAction(ctx, &tbot.SendChatActionParams{
			ChatID: ev.ChatID,
			Action: models.ChatActionTyping,
		})
	}

	reply := r.Dispatch(ctx, ev)
	if reply == nil {
		return
	}

	if _, err := tg.SendMessage(ctx, sendParams(reply)); err != nil {
		log.Error().
			Err(err).
			Int64("chat_id", reply.ChatID).
			Msg("unable to send message")
	}
}

// sendParams shapes a relay reply for delivery. Markdown replies use the
// legacy parse mode; the fixed help text is not escaped for MarkdownV2's
// reserved characters, so V2 would reject it outright.
func sendParams(reply *relay.Reply) *tbot.SendMessageParams {
	params := &tbot.SendMessageParams{
		ChatID: reply.ChatID,
		Text:   reply.Text,
	}
	if reply.Markdown {
		params.ParseMode = models.ParseModeMarkdownV1
	}
	return params
}

// classify maps a Telegram update onto the relay event model. Updates
// without a message, a user, or text are dropped here so handlers can
// assume text is present.
func classify(update *models.Update, log *zerolog.Logger) (relay.Event, bool) {
	if update.Message == nil {
		return relay.Event{}, false
	}

	msg := update.Message
	if msg.From == nil {
		log.Warn().
			Int64("chat_id", msg.Chat.ID).
			Msg("received message without user info")
		return relay.Event{}, false
	}

	if msg.Text == "" {
		log.Debug().
			Int64("chat_id", msg.Chat.ID).
			Msg("received message without text")
		return relay.Event{}, false
	}

	ev := relay.Event{
		ChatID: msg.Chat.ID,
		Sender: msg.From.FirstName,
		Text:   msg.Text,
	}

	switch command(msg.Text) {
	case "start":
		ev.Kind = relay.KindStart
	case "help":
		ev.Kind = relay.KindHelp
	case "":
		ev.Kind = relay.KindText
	default:
		// Unrecognized commands are ignored, same as a text-only
		// message filter would do.
		return relay.Event{}, false
	}

	return ev, true
}

// command extracts the command name from a message, or "" for plain text.
// "/start@MyBot arg" yields "start".
func command(text string) string {
	if len(text) == 0 || text[0] != '/' {
		return ""
	}

	name := text[1:]
	for i := 0; i < len(name); i++ {
		if name[i] == ' ' || name[i] == '@' {
			name = name[:i]
			break
		}
	}
	return name
}
