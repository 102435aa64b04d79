// Command text-to-audio synthesizes speech from text, mirroring the
// /text-to-audio/ endpoint for offline use.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/voicebridge/voicebridge/internal/config"
	"github.com/voicebridge/voicebridge/internal/pipeline"
	"github.com/voicebridge/voicebridge/internal/synthesis"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	modelName := flag.String("model_name", "", "voice model identifier (required)")
	text := flag.String("text", "", "text to synthesize (required)")
	outputPath := flag.String("output_path", "", "output WAV file path (required)")
	speakerIdx := flag.Int("speaker_idx", 0, "speaker index within a multi-speaker model")
	speed := flag.Float64("speed", 1.0, "synthesis speed, 1.0 = normal")
	flag.Parse()

	if *modelName == "" || *text == "" || *outputPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	syn, err := pipeline.BuildSynthesizer(cfg.Synthesis)
	if err != nil {
		slog.Error("failed to build synthesis backend", "error", err)
		os.Exit(1)
	}

	err = syn.Synthesize(context.Background(), synthesis.Request{
		Text:       *text,
		Model:      *modelName,
		SpeakerIdx: *speakerIdx,
		Speed:      *speed,
		OutputPath: *outputPath,
	})
	if err != nil {
		slog.Error("synthesis failed", "model", *modelName, "error", err)
		os.Exit(1)
	}

	slog.Info("audio generated", "output", *outputPath)
}
