package speech

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travel-assistant-poc/server/internal/assistant/model"
)

func newTestConfig(baseURL string) model.SpeechConfig {
	return model.SpeechConfig{
		APIKey:  "test-key",
		BaseURL: baseURL,
		VoiceID: "voice-123",
		ModelID: "eleven_monolingual_v1",
		Timeout: 5,
	}
}

func TestElevenLabs_Synthesize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/text-to-speech/voice-123", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("xi-api-key"))

		var body synthesizeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Sounds fun!", body.Text)
		assert.Equal(t, "eleven_monolingual_v1", body.ModelID)

		w.Write([]byte("fake-mpeg-bytes"))
	}))
	defer srv.Close()

	audio, err := NewElevenLabs(newTestConfig(srv.URL)).Synthesize(context.Background(), "Sounds fun!")

	require.NoError(t, err)
	assert.Equal(t, []byte("fake-mpeg-bytes"), audio)
}

func TestElevenLabs_SynthesizeRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"invalid api key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := NewElevenLabs(newTestConfig(srv.URL)).Synthesize(context.Background(), "hello")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestElevenLabs_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("audio"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewElevenLabs(newTestConfig(srv.URL)).Synthesize(ctx, "hello")
	assert.Error(t, err)
}
