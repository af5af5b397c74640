package ai_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"

	"github.com/sayman4141-gif/telegram-bot-firm/internal/ai"
)

// FakeModel is a canned llms.Model that records the messages it was given.
type FakeModel struct {
	resp     *llms.ContentResponse
	err      error
	messages []llms.MessageContent
}

func (m *FakeModel) GenerateContent(
	_ context.Context, messages []llms.MessageContent, _ ...llms.CallOption,
) (*llms.ContentResponse, error) {
	m.messages = messages
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

func (m *FakeModel) Call(
	ctx context.Context, prompt string, options ...llms.CallOption,
) (string, error) {
	resp, err := m.GenerateContent(
		ctx, []llms.MessageContent{llms.TextParts(llms.ChatMessageTypeHuman, prompt)}, options...,
	)
	if err != nil {
		return "", err
	}
	return resp.Choices[0].Content, nil
}

func Test_generate_sends_the_prompt_as_a_single_human_message(t *testing.T) {
	model := &FakeModel{
		resp: &llms.ContentResponse{
			Choices: []*llms.ContentChoice{{Content: "generated"}},
		},
	}
	client := ai.NewClientWithModel(model)

	out, err := client.Generate(context.Background(), "what is go?")
	require.NoError(t, err)

	assert.Equal(t, "generated", out)
	require.Len(t, model.messages, 1)
	assert.Equal(t, llms.ChatMessageTypeHuman, model.messages[0].Role)
}

func Test_generate_wraps_upstream_errors(t *testing.T) {
	model := &FakeModel{err: errors.New("deadline exceeded")}
	client := ai.NewClientWithModel(model)

	_, err := client.Generate(context.Background(), "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deadline exceeded")
}

func Test_generate_rejects_an_empty_choice_list(t *testing.T) {
	model := &FakeModel{resp: &llms.ContentResponse{}}
	client := ai.NewClientWithModel(model)

	_, err := client.Generate(context.Background(), "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}
