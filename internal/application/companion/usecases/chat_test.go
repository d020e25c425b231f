package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kindredhq/kindred/internal/shared/errors"
	"github.com/kindredhq/kindred/internal/shared/logger"
)

type mockCompanionClient struct {
	chatFunc func(ctx context.Context, history []Message) (string, error)
}

func (m *mockCompanionClient) Chat(ctx context.Context, history []Message) (string, error) {
	if m.chatFunc != nil {
		return m.chatFunc(ctx, history)
	}
	return "I hear you.", nil
}

func TestChatUseCase(t *testing.T) {
	log := logger.NewLogger()

	t.Run("relays history and returns reply", func(t *testing.T) {
		var relayed []Message
		client := &mockCompanionClient{
			chatFunc: func(ctx context.Context, history []Message) (string, error) {
				relayed = history
				return "That sounds really hard.", nil
			},
		}
		uc := NewChatUseCase(client, log)

		result, err := uc.Execute(context.Background(), ChatCommand{
			UserToken: "tok_viewer0001",
			Messages: []ChatMessage{
				{Role: "user", Content: "I had a rough week"},
				{Role: "assistant", Content: "I'm here to listen."},
				{Role: "user", Content: "Thanks"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "That sounds really hard.", result.Reply)
		require.Len(t, relayed, 3)
		assert.Equal(t, "user", relayed[2].Role)
	})

	t.Run("trims long histories", func(t *testing.T) {
		var relayed []Message
		client := &mockCompanionClient{
			chatFunc: func(ctx context.Context, history []Message) (string, error) {
				relayed = history
				return "ok", nil
			},
		}
		uc := NewChatUseCase(client, log)

		messages := make([]ChatMessage, 0, maxHistoryMessages+10)
		for i := 0; i < maxHistoryMessages+10; i++ {
			messages = append(messages, ChatMessage{Role: "user", Content: "hi"})
		}

		_, err := uc.Execute(context.Background(), ChatCommand{
			UserToken: "tok_viewer0001",
			Messages:  messages,
		})
		require.NoError(t, err)
		assert.Len(t, relayed, maxHistoryMessages)
	})

	t.Run("validation", func(t *testing.T) {
		uc := NewChatUseCase(&mockCompanionClient{}, log)

		tests := []struct {
			name string
			cmd  ChatCommand
		}{
			{"missing token", ChatCommand{Messages: []ChatMessage{{Role: "user", Content: "hi"}}}},
			{"no messages", ChatCommand{UserToken: "tok_viewer0001"}},
			{"bad role", ChatCommand{UserToken: "tok_viewer0001", Messages: []ChatMessage{{Role: "system", Content: "hi"}}}},
			{"empty content", ChatCommand{UserToken: "tok_viewer0001", Messages: []ChatMessage{{Role: "user"}}}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := uc.Execute(context.Background(), tt.cmd)
				assert.True(t, errors.IsValidationError(err))
			})
		}
	})

	t.Run("upstream failure maps to upstream error", func(t *testing.T) {
		client := &mockCompanionClient{
			chatFunc: func(ctx context.Context, history []Message) (string, error) {
				return "", assert.AnError
			},
		}
		uc := NewChatUseCase(client, log)

		_, err := uc.Execute(context.Background(), ChatCommand{
			UserToken: "tok_viewer0001",
			Messages:  []ChatMessage{{Role: "user", Content: "hi"}},
		})
		assert.True(t, errors.IsUpstreamError(err))
	})
}
