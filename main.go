package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/travel-assistant-poc/server/internal/assistant/catalog"
	"github.com/travel-assistant-poc/server/internal/assistant/engine"
	"github.com/travel-assistant-poc/server/internal/assistant/itinerary"
	"github.com/travel-assistant-poc/server/internal/assistant/model"
	"github.com/travel-assistant-poc/server/internal/assistant/repo"
	"github.com/travel-assistant-poc/server/internal/assistant/responder"
	"github.com/travel-assistant-poc/server/internal/core"
	"github.com/travel-assistant-poc/server/internal/email"
	"github.com/travel-assistant-poc/server/internal/server"
	"github.com/travel-assistant-poc/server/internal/speech"
	logx "github.com/travel-assistant-poc/server/pkg/logger"
	pkgredis "github.com/travel-assistant-poc/server/pkg/redis"
)

// AppConfig defines all configurable parameters for the service, sourced from
// environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment string `envconfig:"APP_ENV" default:"development"`
	HTTPAddr    string `envconfig:"HTTP_ADDR" default:":8000"`

	// Infrastructure
	Redis pkgredis.Config

	// Collaborators
	Responder    model.ResponderConfig
	Speech       model.SpeechConfig
	Conversation model.ConversationConfig
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}

	logx.Init(logx.LoggerOpts{Environment: core.ParseEnvironment(cfg.Environment)})

	rdb, err := cfg.Redis.New()
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to initialise Redis client")
	}
	defer rdb.Close()

	ttl, err := time.ParseDuration(cfg.Conversation.TTL)
	if err != nil {
		logx.Fatal().Err(err).Str("ttl", cfg.Conversation.TTL).Msg("invalid CONVERSATION_TTL")
	}

	gemini, err := responder.NewGeminiResponder(ctx, cfg.Responder)
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to initialise responder")
	}

	eng := engine.New(
		catalog.NewFlightSearch(),
		catalog.NewHotelSearch(),
		itinerary.NewPlanner(),
		email.NewSender(),
		gemini,
	)

	var synthesizer speech.Synthesizer
	if cfg.Speech.APIKey != "" {
		synthesizer = speech.NewElevenLabs(cfg.Speech)
	} else {
		logx.Warn().Msg("ELEVENLABS_API_KEY not set, audio responses disabled")
	}

	transcripts := repo.NewRedisTranscriptStore(rdb, ttl)
	router := server.NewRouter(server.NewChatHandler(eng, synthesizer, transcripts))

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	logx.Info().Str("addr", cfg.HTTPAddr).Msg("travel assistant listening")

	select {
	case err := <-errCh:
		logx.Fatal().Err(err).Msg("http server failed")
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logx.Error().Err(err).Msg("shutdown http server")
		}
	}
}
