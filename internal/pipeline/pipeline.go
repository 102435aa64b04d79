// Package pipeline composes the recognition and synthesis adapters
// into the two serving flows: text→audio and audio→audio.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/voicebridge/voicebridge/internal/recognition"
	"github.com/voicebridge/voicebridge/internal/synthesis"
)

// TextToSpeechRequest describes one text→audio run.
type TextToSpeechRequest struct {
	Text       string
	ModelName  string
	SpeakerIdx int
	Speed      float64
	OutputPath string
}

// ConversionRequest describes one audio→audio run.
type ConversionRequest struct {
	InputPath        string
	TTSModel         string
	SpeakerIdx       int
	Speed            float64
	WhisperModelSize string
	OutputPath       string
}

// Pipeline sequences adapter calls. It holds no per-request state;
// callers pass unique output paths from a Scratch.
type Pipeline struct {
	rec recognition.Recognizer
	syn synthesis.Synthesizer
	log *slog.Logger
}

func New(rec recognition.Recognizer, syn synthesis.Synthesizer, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{rec: rec, syn: syn, log: log}
}

// TextToSpeech synthesizes text in the requested voice, writing the
// waveform to req.OutputPath.
func (p *Pipeline) TextToSpeech(ctx context.Context, req TextToSpeechRequest) error {
	p.log.Info("synthesizing text",
		"model", req.ModelName,
		"speaker_idx", req.SpeakerIdx,
		"speed", req.Speed,
		"chars", len(req.Text),
	)

	err := p.syn.Synthesize(ctx, synthesis.Request{
		Text:       req.Text,
		Model:      req.ModelName,
		SpeakerIdx: req.SpeakerIdx,
		Speed:      req.Speed,
		OutputPath: req.OutputPath,
	})
	if err != nil {
		return fmt.Errorf("synthesize: %w", err)
	}
	return nil
}

// AudioToAudio transcribes the input audio and resynthesizes the
// transcript in the target voice. The two phases run strictly in
// sequence; the detected source language is logged and discarded, and
// an empty transcript is still handed to the synthesizer.
func (p *Pipeline) AudioToAudio(ctx context.Context, req ConversionRequest) (*recognition.Result, error) {
	result, err := p.rec.Transcribe(ctx, recognition.Request{
		FilePath:  req.InputPath,
		ModelSize: req.WhisperModelSize,
	})
	if err != nil {
		return nil, fmt.Errorf("transcribe: %w", err)
	}

	p.log.Info("transcription complete",
		"language", result.Language,
		"chars", len(result.Text),
		"model_size", req.WhisperModelSize,
	)

	err = p.syn.Synthesize(ctx, synthesis.Request{
		Text:       result.Text,
		Model:      req.TTSModel,
		SpeakerIdx: req.SpeakerIdx,
		Speed:      req.Speed,
		OutputPath: req.OutputPath,
	})
	if err != nil {
		return nil, fmt.Errorf("synthesize: %w", err)
	}
	return result, nil
}
