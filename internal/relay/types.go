package relay

import "context"

// Kind tags the shape of an inbound event.
type Kind int

const (
	// KindStart is the /start command.
	KindStart Kind = iota
	// KindHelp is the /help command.
	KindHelp
	// KindText is any plain text message.
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindStart:
		return "start"
	case KindHelp:
		return "help"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Event is one unit of incoming chat activity, read-only and discarded
// after its handler returns.
type Event struct {
	ChatID int64
	Sender string
	Text   string
	Kind   Kind
}

// Reply is at most one outbound message per event. Delivery is
// fire-and-forget; nothing here tracks confirmation.
type Reply struct {
	ChatID   int64
	Text     string
	Markdown bool
}

// Generator is the boundary wrapping the generative-text service call.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Handler maps one inbound event to at most one outbound reply.
type Handler func(ctx context.Context, ev Event) *Reply
