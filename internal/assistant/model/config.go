package model

// ================ Config ================
type ConversationConfig struct {
	// TTL bounds how long a mirrored transcript survives without activity.
	TTL string `envconfig:"CONVERSATION_TTL" default:"24h"`
}

type ResponderConfig struct {
	APIKey      string  `envconfig:"GEMINI_API_KEY" required:"true"`
	BaseURL     string  `envconfig:"GEMINI_BASE_URL"`
	Model       string  `envconfig:"RESPONSE_MODEL" default:"gemini-2.0-flash"`
	MaxTokens   int     `envconfig:"RESPONSE_MAX_TOKENS" default:"2000"`
	Temperature float32 `envconfig:"RESPONSE_TEMPERATURE" default:"0.4"`
}

type SpeechConfig struct {
	APIKey  string `envconfig:"ELEVENLABS_API_KEY"`
	BaseURL string `envconfig:"ELEVENLABS_BASE_URL" default:"https://api.elevenlabs.io"`
	VoiceID string `envconfig:"ELEVENLABS_VOICE_ID" default:"21m00Tcm4TlvDq8ikWAM"`
	ModelID string `envconfig:"ELEVENLABS_MODEL_ID" default:"eleven_monolingual_v1"`
	Timeout int    `envconfig:"ELEVENLABS_TIMEOUT" default:"30"`
}
