package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	companion "github.com/kindredhq/kindred/internal/application/companion/usecases"
	sharedConfig "github.com/kindredhq/kindred/internal/shared/config"
	"github.com/kindredhq/kindred/internal/shared/logger"
)

const summarySystemPrompt = "You summarize peer support requests in one or two " +
	"compassionate sentences so a helper can quickly understand the situation. " +
	"Never include advice, judgment, or identifying details."

const companionSystemPrompt = "You are a warm, supportive companion on an anonymous " +
	"peer support platform. Listen, validate feelings, and gently encourage the " +
	"person to connect with a human helper for anything serious. You are not a " +
	"therapist and never give medical advice. If someone mentions self-harm, " +
	"encourage them to contact a crisis line immediately."

// OpenAIService backs dilemma summarization and the companion chat.
// Every call is bounded by the configured timeout, so a slow upstream
// can delay a response but never wedge a request.
type OpenAIService struct {
	client  openai.Client
	model   string
	timeout time.Duration
	logger  logger.Interface
}

func NewOpenAIService(cfg *sharedConfig.AIConfig, log logger.Interface) *OpenAIService {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 20 * time.Second
	}

	return &OpenAIService{
		client:  openai.NewClient(opts...),
		model:   model,
		timeout: timeout,
		logger:  log,
	}
}

func (s *OpenAIService) SummarizeDilemma(ctx context.Context, content string) (string, error) {
	messages := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(summarySystemPrompt),
		openai.UserMessage(content),
	}

	return s.complete(ctx, messages, 256)
}

func (s *OpenAIService) Chat(ctx context.Context, history []companion.Message) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+1)
	messages = append(messages, openai.SystemMessage(companionSystemPrompt))

	for _, msg := range history {
		switch msg.Role {
		case "assistant":
			messages = append(messages, openai.AssistantMessage(msg.Content))
		default:
			messages = append(messages, openai.UserMessage(msg.Content))
		}
	}

	return s.complete(ctx, messages, 1024)
}

func (s *OpenAIService) complete(ctx context.Context, messages []openai.ChatCompletionMessageParamUnion, maxTokens int64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:               s.model,
		Messages:            messages,
		MaxCompletionTokens: openai.Int(maxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("openai completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	s.logger.Debugw("completion finished",
		"model", s.model,
		"duration_ms", time.Since(start).Milliseconds(),
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens)

	return resp.Choices[0].Message.Content, nil
}
