package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/voicebridge/voicebridge/internal/api/handlers"
	"github.com/voicebridge/voicebridge/internal/api/middleware"
	"github.com/voicebridge/voicebridge/internal/config"
	"github.com/voicebridge/voicebridge/internal/pipeline"
)

type Router struct {
	mux     *chi.Mux
	cfg     *config.Config
	scratch *pipeline.Scratch
}

func NewRouter(cfg *config.Config, scratch *pipeline.Scratch) *Router {
	return &Router{
		mux:     chi.NewRouter(),
		cfg:     cfg,
		scratch: scratch,
	}
}

func (rt *Router) Setup() (http.Handler, error) {
	r := rt.mux

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS([]string{"*"}))

	rl := middleware.NewRateLimiter(10, 20)
	r.Use(rl.Limit)

	// Health endpoints
	health := handlers.NewHealthHandler(rt.scratch)
	r.Get("/healthz", health.Healthz)
	r.Get("/readyz", health.Readyz)

	// Engine adapters and serving pipeline
	rec, err := pipeline.BuildRecognizer(rt.cfg.Recognition)
	if err != nil {
		return nil, fmt.Errorf("recognition backend: %w", err)
	}
	syn, err := pipeline.BuildSynthesizer(rt.cfg.Synthesis)
	if err != nil {
		return nil, fmt.Errorf("synthesis backend: %w", err)
	}
	slog.Info("engines configured", "recognizer", rec.Name(), "synthesizer", syn.Name())

	speech := handlers.NewSpeechHandler(pipeline.New(rec, syn, slog.Default()), rt.scratch)
	r.Post("/text-to-audio/", speech.TextToAudio)
	r.Post("/audio-to-audio/", speech.AudioToAudio)

	return r, nil
}
