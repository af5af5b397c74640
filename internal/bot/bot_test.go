package bot

import (
	"testing"

	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sayman4141-gif/telegram-bot-firm/internal/relay"
)

func update(text string) *models.Update {
	return &models.Update{
		Message: &models.Message{
			Chat: models.Chat{ID: 42},
			From: &models.User{FirstName: "Alice"},
			Text: text,
		},
	}
}

func Test_classify_maps_commands_and_text_to_event_kinds(t *testing.T) {
	log := zerolog.Nop()

	tests := []struct {
		text string
		kind relay.Kind
	}{
		{"/start", relay.KindStart},
		{"/start@SomeBot", relay.KindStart},
		{"/help", relay.KindHelp},
		{"/help extra words", relay.KindHelp},
		{"hello there", relay.KindText},
		{"multi\nline\ntext", relay.KindText},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			ev, ok := classify(update(tt.text), &log)
			require.True(t, ok)
			assert.Equal(t, tt.kind, ev.Kind)
			assert.Equal(t, int64(42), ev.ChatID)
			assert.Equal(t, "Alice", ev.Sender)
			assert.Equal(t, tt.text, ev.Text)
		})
	}
}

func Test_classify_drops_unrecognized_commands(t *testing.T) {
	log := zerolog.Nop()

	_, ok := classify(update("/settings"), &log)
	assert.False(t, ok)
}

func Test_classify_drops_updates_without_a_message(t *testing.T) {
	log := zerolog.Nop()

	_, ok := classify(&models.Update{}, &log)
	assert.False(t, ok)
}

func Test_classify_drops_messages_without_text(t *testing.T) {
	log := zerolog.Nop()

	_, ok := classify(update(""), &log)
	assert.False(t, ok)
}

func Test_classify_drops_messages_without_a_user(t *testing.T) {
	log := zerolog.Nop()

	u := update("hello")
	u.Message.From = nil

	_, ok := classify(u, &log)
	assert.False(t, ok)
}

func Test_markdown_replies_use_the_legacy_parse_mode(t *testing.T) {
	params := sendParams(&relay.Reply{
		ChatID:   42,
		Text:     relay.HelpMessage,
		Markdown: true,
	})

	assert.Equal(t, relay.HelpMessage, params.Text)
	// The help text carries unescaped '-', '!' and '.', which MarkdownV2
	// refuses to parse; only the legacy mode delivers it.
	assert.Equal(t, models.ParseModeMarkdownV1, params.ParseMode)
	assert.NotEqual(t, models.ParseModeMarkdown, params.ParseMode)
}

func Test_plain_replies_carry_no_parse_mode(t *testing.T) {
	params := sendParams(&relay.Reply{
		ChatID: 42,
		Text:   "plain response",
	})

	assert.Equal(t, "plain response", params.Text)
	assert.Empty(t, string(params.ParseMode))
}

func Test_command_extracts_the_bare_command_name(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"/start", "start"},
		{"/start@SomeBot", "start"},
		{"/help me please", "help"},
		{"plain text", ""},
		{"", ""},
		{"not/a/command", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, command(tt.text), "command(%q)", tt.text)
	}
}
