package relay

import (
	"context"

	"github.com/rs/zerolog"
)

// WelcomeMessage is sent in response to /start.
const WelcomeMessage = "🤖 Hello! I'm your AI assistant powered by The Firm Team.\n\n" +
	"I can help you with:\n" +
	"• Answering questions\n" +
	"• Creative writing\n" +
	"• Problem solving\n" +
	"• General conversation\n\n" +
	"Just send me any message and I'll respond using AI!"

// HelpMessage is sent in response to /help, with Markdown formatting.
const HelpMessage = "🆘 **How to use this bot:**\n\n" +
	"/start - Start the bot\n" +
	"/help - Show this help message\n\n" +
	"Simply send me any text message and I'll respond using AI!\n\n" +
	"Examples:\n" +
	"• Ask me questions: 'What is quantum physics?'\n" +
	"• Creative tasks: 'Write a short story about space'\n" +
	"• Problem solving: 'Help me debug this code'\n" +
	"• General chat: 'How are you today?'"

// ApologyMessage is sent when the AI call fails.
const ApologyMessage = "🚫 Sorry, I encountered an error while processing your message. " +
	"Please try again in a moment."

// previewLen bounds the inbound text logged per message.
const previewLen = 50

// Relay routes inbound events to their handler by kind. Dispatch is
// stateless; each event is handled independently with no cross-message
// memory.
type Relay struct {
	gen      Generator
	log      zerolog.Logger
	handlers map[Kind]Handler
}

// NewRelay builds a Relay around the given generator.
func NewRelay(gen Generator, log zerolog.Logger) *Relay {
	r := &Relay{
		gen: gen,
		log: log,
	}
	r.handlers = map[Kind]Handler{
		KindStart: r.handleStart,
		KindHelp:  r.handleHelp,
		KindText:  r.handleText,
	}
	return r
}

// Dispatch selects the handler matching the event's kind and runs it.
// Unknown kinds produce no reply.
func (r *Relay) Dispatch(ctx context.Context, ev Event) *Reply {
	handler, ok := r.handlers[ev.Kind]
	if !ok {
		r.log.Debug().
			Int64("chat_id", ev.ChatID).
			Stringer("kind", ev.Kind).
			Msg("no handler for event kind")
		return nil
	}
	return handler(ctx, ev)
}

func (r *Relay) handleStart(_ context.Context, ev Event) *Reply {
	r.log.Info().
		Int64("chat_id", ev.ChatID).
		Str("sender", ev.Sender).
		Msg("started conversation")

	return &Reply{
		ChatID: ev.ChatID,
		Text:   WelcomeMessage,
	}
}

func (r *Relay) handleHelp(_ context.Context, ev Event) *Reply {
	return &Reply{
		ChatID:   ev.ChatID,
		Text:     HelpMessage,
		Markdown: true,
	}
}

func (r *Relay) handleText(ctx context.Context, ev Event) *Reply {
	r.log.Info().
		Int64("chat_id", ev.ChatID).
		Str("sender", ev.Sender).
		Str("preview", preview(ev.Text)).
		Msg("received message")

	response, err := r.gen.Generate(ctx, ev.Text)
	if err != nil {
		r.log.Error().
			Err(err).
			Int64("chat_id", ev.ChatID).
			Msg("unable to generate ai response")
		return &Reply{
			ChatID: ev.ChatID,
			Text:   ApologyMessage,
		}
	}

	r.log.Info().
		Int64("chat_id", ev.ChatID).
		Str("sender", ev.Sender).
		Msg("sending ai response")

	return &Reply{
		ChatID: ev.ChatID,
		Text:   response,
	}
}

// preview caps logged inbound text at previewLen runes. The ellipsis is
// always appended, even for short messages.
func preview(text string) string {
	runes := []rune(text)
	if len(runes) > previewLen {
		runes = runes[:previewLen]
	}
	return string(runes) + "..."
}
