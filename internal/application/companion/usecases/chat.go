package usecases

import (
	"context"

	"github.com/kindredhq/kindred/internal/shared/errors"
	"github.com/kindredhq/kindred/internal/shared/logger"
)

// maxHistoryMessages bounds how much conversation is relayed upstream.
const maxHistoryMessages = 40

// Message is one turn of a companion conversation as relayed upstream.
type Message struct {
	Role    string
	Content string
}

// CompanionClient relays a conversation to the model and returns the
// next assistant turn.
type CompanionClient interface {
	Chat(ctx context.Context, history []Message) (string, error)
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCommand struct {
	UserToken string
	Messages  []ChatMessage
}

type ChatResult struct {
	Reply string `json:"reply"`
}

type ChatUseCase struct {
	client CompanionClient
	logger logger.Interface
}

func NewChatUseCase(client CompanionClient, logger logger.Interface) *ChatUseCase {
	return &ChatUseCase{
		client: client,
		logger: logger,
	}
}

// Execute relays the conversation and returns the model's reply. The
// companion holds no state; the client resubmits history every turn, so
// an upstream failure leaves nothing to clean up.
func (uc *ChatUseCase) Execute(ctx context.Context, cmd ChatCommand) (*ChatResult, error) {
	if len(cmd.UserToken) == 0 {
		return nil, errors.NewValidationError("user token is required")
	}
	if len(cmd.Messages) == 0 {
		return nil, errors.NewValidationError("at least one message is required")
	}

	history := cmd.Messages
	if len(history) > maxHistoryMessages {
		history = history[len(history)-maxHistoryMessages:]
	}

	relay := make([]Message, 0, len(history))
	for _, msg := range history {
		if msg.Role != "user" && msg.Role != "assistant" {
			return nil, errors.NewValidationError("message role must be user or assistant")
		}
		if len(msg.Content) == 0 {
			return nil, errors.NewValidationError("message content is required")
		}
		relay = append(relay, Message{Role: msg.Role, Content: msg.Content})
	}

	reply, err := uc.client.Chat(ctx, relay)
	if err != nil {
		uc.logger.Errorw("companion chat failed", "error", err)
		return nil, errors.NewUpstreamError("companion is unavailable")
	}

	uc.logger.Debugw("companion chat completed", "messages", len(relay))

	return &ChatResult{Reply: reply}, nil
}
