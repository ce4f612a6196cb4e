// Package responder implements the wrap-up language-model collaborator on
// Google Gemini via the eino chat model component.
package responder

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"

	"github.com/travel-assistant-poc/server/internal/assistant/model"
	logx "github.com/travel-assistant-poc/server/pkg/logger"
)

// GeminiResponder generates free-form assistant replies once the scripted
// flow has finished. Each call is single-attempt; failures surface to the
// engine, which substitutes its fixed apology.
type GeminiResponder struct {
	chatModel *gemini.ChatModel
	modelName string
}

// NewGeminiResponder builds the Gemini client and chat model from config.
func NewGeminiResponder(ctx context.Context, cfg model.ResponderConfig) (*GeminiResponder, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = cfg.BaseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		logx.Error().Err(err).Msg("Error creating Gemini client")
		return nil, fmt.Errorf("error creating Gemini client: %w", err)
	}

	chatModel, err := gemini.NewChatModel(ctx, &gemini.Config{
		Client:      client,
		Model:       cfg.Model,
		Temperature: &cfg.Temperature,
		MaxTokens:   &cfg.MaxTokens,
	})
	if err != nil {
		logx.Error().Err(err).Msg("Error creating response model")
		return nil, fmt.Errorf("error creating response model: %w", err)
	}

	return &GeminiResponder{chatModel: chatModel, modelName: cfg.Model}, nil
}

// Respond prepends the assistant persona to the transcript and generates a
// single reply.
func (r *GeminiResponder) Respond(ctx context.Context, transcript []*schema.Message) (string, error) {
	messages := make([]*schema.Message, 0, len(transcript)+1)
	messages = append(messages, schema.SystemMessage(personaPrompt))
	messages = append(messages, transcript...)

	out, err := r.chatModel.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("generate reply: %w", err)
	}
	if out == nil {
		return "", fmt.Errorf("model %s returned no message", r.modelName)
	}
	return out.Content, nil
}

var _ model.Responder = (*GeminiResponder)(nil)
