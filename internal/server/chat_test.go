package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travel-assistant-poc/server/internal/assistant/catalog"
	"github.com/travel-assistant-poc/server/internal/assistant/engine"
	"github.com/travel-assistant-poc/server/internal/assistant/itinerary"
	"github.com/travel-assistant-poc/server/internal/assistant/model"
	"github.com/travel-assistant-poc/server/internal/email"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubResponder struct {
	reply string
	err   error
}

func (s *stubResponder) Respond(context.Context, []*schema.Message) (string, error) {
	return s.reply, s.err
}

type stubSynthesizer struct {
	audio []byte
	err   error
}

func (s *stubSynthesizer) Synthesize(context.Context, string) ([]byte, error) {
	return s.audio, s.err
}

type failingFlights struct{}

func (failingFlights) SearchFlights(context.Context, model.FlightQuery) ([]model.Flight, error) {
	return nil, errors.New("flight backend down")
}

// recordingTranscripts records mirror calls for assertions.
type recordingTranscripts struct {
	added   []*schema.Message
	addedID string
	cleared []string
}

func (r *recordingTranscripts) AddMessage(_ context.Context, conversationID string, m *schema.Message) error {
	r.addedID = conversationID
	r.added = append(r.added, m)
	return nil
}

func (r *recordingTranscripts) LoadHistory(_ context.Context, conversationID string) (*model.Transcript, error) {
	return &model.Transcript{ConversationID: conversationID, Messages: r.added}, nil
}

func (r *recordingTranscripts) ClearHistory(_ context.Context, conversationID string) error {
	r.cleared = append(r.cleared, conversationID)
	return nil
}

func (r *recordingTranscripts) MessageCount(context.Context, string) (int, error) {
	return len(r.added), nil
}

func newTestEngine() *engine.Engine {
	return engine.New(
		catalog.NewFlightSearch(),
		catalog.NewHotelSearch(),
		itinerary.NewPlanner(),
		email.NewSender(),
		&stubResponder{reply: "Of course, it's done!"},
	)
}

func performChat(t *testing.T, router *gin.Engine, req model.ChatRequest) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(req)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, r)
	return w
}

func decodeChat(t *testing.T, w *httptest.ResponseRecorder) model.ChatResponse {
	t.Helper()
	var resp model.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHealth(t *testing.T) {
	router := NewRouter(NewChatHandler(newTestEngine(), nil, nil))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
}

func TestChat_FirstTurn(t *testing.T) {
	router := NewRouter(NewChatHandler(newTestEngine(), nil, nil))

	w := performChat(t, router, model.ChatRequest{Message: "hello"})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeChat(t, w)
	assert.Equal(t, model.StageInitial, resp.CurrentStage)
	assert.Contains(t, resp.TextResponse, "visit Dubai")
	assert.Empty(t, resp.AudioResponse)
	assert.NotEmpty(t, resp.ConversationID)
	require.NotNil(t, resp.UpdatedConversationState)
	assert.Equal(t, model.StageInitial, resp.UpdatedConversationState.Stage)
	assert.Nil(t, resp.TravelOptions)
	assert.Nil(t, resp.Itinerary)
}

func TestChat_MissingMessage(t *testing.T) {
	router := NewRouter(NewChatHandler(newTestEngine(), nil, nil))

	w := performChat(t, router, model.ChatRequest{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChat_TravelOptionsTurn(t *testing.T) {
	router := NewRouter(NewChatHandler(newTestEngine(), nil, nil))

	st := model.NewConversationState()
	st.Stage = model.StageDatesAndDeparture

	w := performChat(t, router, model.ChatRequest{
		Message:           "2000 aed, leaving from Lahore",
		ConversationState: st,
	})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeChat(t, w)
	assert.Equal(t, model.StageBooking, resp.CurrentStage)
	require.NotNil(t, resp.TravelOptions)
	assert.Len(t, resp.TravelOptions.Flights, 2)
	assert.Len(t, resp.TravelOptions.Hotels, 2)
	assert.Equal(t, 2000, resp.UpdatedConversationState.Budget)
}

func TestChat_SynthesisSuccess(t *testing.T) {
	synth := &stubSynthesizer{audio: []byte("mpeg")}
	router := NewRouter(NewChatHandler(newTestEngine(), synth, nil))

	w := performChat(t, router, model.ChatRequest{Message: "hello"})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeChat(t, w)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("mpeg")), resp.AudioResponse)
}

func TestChat_SynthesisFailureDegrades(t *testing.T) {
	synth := &stubSynthesizer{err: errors.New("voice service down")}
	router := NewRouter(NewChatHandler(newTestEngine(), synth, nil))

	w := performChat(t, router, model.ChatRequest{Message: "hello"})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeChat(t, w)
	assert.NotEmpty(t, resp.TextResponse)
	assert.Empty(t, resp.AudioResponse)
}

func TestChat_CollaboratorFailureIsServerError(t *testing.T) {
	eng := engine.New(failingFlights{}, catalog.NewHotelSearch(), itinerary.NewPlanner(), email.NewSender(), &stubResponder{})
	router := NewRouter(NewChatHandler(eng, nil, nil))

	st := model.NewConversationState()
	st.Stage = model.StageDatesAndDeparture

	w := performChat(t, router, model.ChatRequest{Message: "3000 aed", ConversationState: st})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "flight backend down")
}

func TestChat_WrapUpMirrorsTranscript(t *testing.T) {
	transcripts := &recordingTranscripts{}
	router := NewRouter(NewChatHandler(newTestEngine(), nil, transcripts))

	st := model.NewConversationState()
	st.Stage = model.StageWrapUp

	w := performChat(t, router, model.ChatRequest{
		Message:           "change my hotel please",
		ConversationState: st,
		ConversationID:    "conv-42",
	})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeChat(t, w)
	assert.Equal(t, "conv-42", resp.ConversationID)
	require.Len(t, transcripts.added, 2)
	assert.Equal(t, "conv-42", transcripts.addedID)
	assert.Equal(t, schema.User, transcripts.added[0].Role)
	assert.Equal(t, "change my hotel please", transcripts.added[0].Content)
	assert.Equal(t, schema.Assistant, transcripts.added[1].Role)
}

func TestChat_DestinationTriggerClearsMirror(t *testing.T) {
	transcripts := &recordingTranscripts{}
	router := NewRouter(NewChatHandler(newTestEngine(), nil, transcripts))

	st := model.NewConversationState()
	st.Stage = model.StageWrapUp
	st.Messages = []*schema.Message{schema.UserMessage("old turn")}

	w := performChat(t, router, model.ChatRequest{
		Message:           "actually let's visit Dubai again",
		ConversationState: st,
		ConversationID:    "conv-42",
	})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeChat(t, w)
	assert.Equal(t, model.StageDatesAndDeparture, resp.CurrentStage)
	assert.Equal(t, []string{"conv-42"}, transcripts.cleared)
	assert.Empty(t, transcripts.added)
}
