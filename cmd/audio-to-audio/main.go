// Command audio-to-audio converts an audio file into the target voice
// by transcribing it and resynthesizing the transcript, mirroring the
// /audio-to-audio/ endpoint for offline use.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/voicebridge/voicebridge/internal/config"
	"github.com/voicebridge/voicebridge/internal/pipeline"
	"github.com/voicebridge/voicebridge/internal/recognition"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	inputAudio := flag.String("input_audio", "", "input audio file, wav or mp3 (required)")
	ttsModel := flag.String("tts_model", "", "target voice model identifier (required)")
	outputPath := flag.String("output_path", "", "output WAV file path (required)")
	speakerIdx := flag.Int("speaker_idx", 0, "speaker index within a multi-speaker model")
	speed := flag.Float64("speed", 1.0, "synthesis speed, 1.0 = normal")
	modelSize := flag.String("whisper_model_size", recognition.DefaultModelSize,
		"whisper preset: tiny, base, small, medium, large")
	flag.Parse()

	if *inputAudio == "" || *ttsModel == "" || *outputPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if _, err := os.Stat(*inputAudio); err != nil {
		slog.Error("input audio file does not exist", "path", *inputAudio)
		os.Exit(1)
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	rec, err := pipeline.BuildRecognizer(cfg.Recognition)
	if err != nil {
		slog.Error("failed to build recognition backend", "error", err)
		os.Exit(1)
	}
	syn, err := pipeline.BuildSynthesizer(cfg.Synthesis)
	if err != nil {
		slog.Error("failed to build synthesis backend", "error", err)
		os.Exit(1)
	}

	p := pipeline.New(rec, syn, logger)

	result, err := p.AudioToAudio(context.Background(), pipeline.ConversionRequest{
		InputPath:        *inputAudio,
		TTSModel:         *ttsModel,
		SpeakerIdx:       *speakerIdx,
		Speed:            *speed,
		WhisperModelSize: *modelSize,
		OutputPath:       *outputPath,
	})
	if err != nil {
		slog.Error("conversion failed", "tts_model", *ttsModel, "error", err)
		os.Exit(1)
	}

	slog.Info("audio converted", "output", *outputPath, "language", result.Language)
}
