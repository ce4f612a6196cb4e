package server

import (
	"context"
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/travel-assistant-poc/server/internal/assistant/engine"
	"github.com/travel-assistant-poc/server/internal/assistant/model"
	"github.com/travel-assistant-poc/server/internal/speech"
	logx "github.com/travel-assistant-poc/server/pkg/logger"
)

// ChatHandler serves the chat endpoint. Conversation state is round-tripped
// through the request and response; the handler only adds audio synthesis and
// the best-effort transcript mirror on top of the engine.
type ChatHandler struct {
	engine      *engine.Engine
	synthesizer speech.Synthesizer
	transcripts model.TranscriptStore
}

// NewChatHandler wires the handler. synthesizer and transcripts may be nil;
// audio degrades to "" and mirroring is skipped.
func NewChatHandler(eng *engine.Engine, synthesizer speech.Synthesizer, transcripts model.TranscriptStore) *ChatHandler {
	return &ChatHandler{engine: eng, synthesizer: synthesizer, transcripts: transcripts}
}

func (h *ChatHandler) Register(router *gin.RouterGroup) {
	router.POST("/chat", h.chat)
}

func (h *ChatHandler) chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state := req.ConversationState
	if state == nil {
		state = model.NewConversationState()
	}

	res, err := h.engine.Advance(c.Request.Context(), state, req.Message)
	if err != nil {
		logx.Error().Err(err).Msg("conversation turn failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.NewString()
	}
	h.mirror(c.Request.Context(), conversationID, res)

	c.JSON(http.StatusOK, model.ChatResponse{
		TextResponse:             res.Reply,
		AudioResponse:            h.synthesize(c.Request.Context(), res.Reply),
		UpdatedConversationState: res.State,
		TravelOptions:            res.TravelOptions,
		Itinerary:                res.Itinerary,
		CurrentStage:             res.Stage,
		ConversationID:           conversationID,
	})
}

// synthesize returns base64 audio for the reply, or "" when no synthesizer is
// configured or synthesis fails. A failed synthesis never fails the request.
func (h *ChatHandler) synthesize(ctx context.Context, text string) string {
	if h.synthesizer == nil {
		return ""
	}
	audio, err := h.synthesizer.Synthesize(ctx, text)
	if err != nil {
		logx.Warn().Err(err).Msg("audio synthesis failed, returning text only")
		return ""
	}
	return base64.StdEncoding.EncodeToString(audio)
}

// mirror keeps the transcript store in step with the conversation: the
// destination trigger resets the mirrored history, and each wrap-up turn
// appends its user/assistant pair. Mirror failures are logged and swallowed.
func (h *ChatHandler) mirror(ctx context.Context, conversationID string, res *engine.Result) {
	if h.transcripts == nil {
		return
	}
	switch res.Stage {
	case model.StageDatesAndDeparture:
		if err := h.transcripts.ClearHistory(ctx, conversationID); err != nil {
			logx.Warn().Err(err).Str("conversationID", conversationID).Msg("failed to clear mirrored transcript")
		}
	case model.StageWrapUp:
		n := len(res.State.Messages)
		if n < 2 {
			return
		}
		for _, msg := range res.State.Messages[n-2:] {
			if err := h.transcripts.AddMessage(ctx, conversationID, msg); err != nil {
				logx.Warn().Err(err).Str("conversationID", conversationID).Msg("failed to mirror transcript message")
				return
			}
		}
	}
}
