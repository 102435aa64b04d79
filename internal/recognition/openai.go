package recognition

import (
	"context"
	"fmt"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIConfig holds configuration for the OpenAI Whisper backend.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string // default: "https://api.openai.com/v1"
	Model   string // default: "whisper-1"
}

// OpenAIRecognizer transcribes audio using OpenAI's Whisper API. The
// hosted API exposes a single model, so the preset tier is validated
// here but does not change which remote model is called.
type OpenAIRecognizer struct {
	cfg    OpenAIConfig
	client *openai.Client
}

// NewOpenAIRecognizer creates an OpenAIRecognizer with sensible defaults applied.
func NewOpenAIRecognizer(cfg OpenAIConfig) *OpenAIRecognizer {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "whisper-1"
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL

	return &OpenAIRecognizer{
		cfg:    cfg,
		client: openai.NewClientWithConfig(clientCfg),
	}
}

func (o *OpenAIRecognizer) Name() string { return "openai-whisper" }

// Transcribe sends the audio file to the Whisper API and returns the
// trimmed transcript with the detected language.
func (o *OpenAIRecognizer) Transcribe(ctx context.Context, req Request) (*Result, error) {
	if err := checkSize(req.ModelSize); err != nil {
		return nil, err
	}
	if _, err := os.Stat(req.FilePath); err != nil {
		return nil, fmt.Errorf("open audio file: %w", err)
	}

	resp, err := o.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    o.cfg.Model,
		FilePath: req.FilePath,
		Format:   openai.AudioResponseFormatVerboseJSON,
	})
	if err != nil {
		return nil, fmt.Errorf("transcription request: %w", err)
	}

	return &Result{
		Text:     strings.TrimSpace(resp.Text),
		Language: resp.Language,
		Duration: resp.Duration,
	}, nil
}
