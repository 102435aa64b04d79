package synthesis

import (
	"context"
	"fmt"
	"io"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIConfig holds configuration for the OpenAI TTS backend.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string // default: "https://api.openai.com/v1"
}

// speechModels are the voice models the hosted API accepts.
var speechModels = map[string]bool{
	string(openai.TTSModel1):   true,
	string(openai.TTSModel1HD): true,
}

// speakerVoices maps the speaker index onto the API's fixed voice set.
var speakerVoices = []openai.SpeechVoice{
	openai.VoiceAlloy,
	openai.VoiceEcho,
	openai.VoiceFable,
	openai.VoiceOnyx,
	openai.VoiceNova,
	openai.VoiceShimmer,
}

// OpenAISynthesizer generates speech through OpenAI's TTS API and
// persists the WAV stream to the requested output path.
type OpenAISynthesizer struct {
	cfg    OpenAIConfig
	client *openai.Client
}

// NewOpenAISynthesizer creates an OpenAISynthesizer with sensible defaults applied.
func NewOpenAISynthesizer(cfg OpenAIConfig) *OpenAISynthesizer {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL

	return &OpenAISynthesizer{
		cfg:    cfg,
		client: openai.NewClientWithConfig(clientCfg),
	}
}

func (o *OpenAISynthesizer) Name() string { return "openai-tts" }

// Synthesize converts text to audio and writes the WAV bytes to the output path.
func (o *OpenAISynthesizer) Synthesize(ctx context.Context, req Request) error {
	if !speechModels[req.Model] {
		return fmt.Errorf("%w: %q", ErrModelNotFound, req.Model)
	}
	if req.SpeakerIdx < 0 || req.SpeakerIdx >= len(speakerVoices) {
		return fmt.Errorf("speaker index %d outside voice set (0-%d)", req.SpeakerIdx, len(speakerVoices)-1)
	}

	speechReq := openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(req.Model),
		Input:          req.Text,
		Voice:          speakerVoices[req.SpeakerIdx],
		ResponseFormat: openai.SpeechResponseFormatWav,
	}
	if req.Speed > 0 {
		speechReq.Speed = req.Speed
	}

	stream, err := o.client.CreateSpeech(ctx, speechReq)
	if err != nil {
		return fmt.Errorf("speech request: %w", err)
	}
	defer stream.Close()

	out, err := os.Create(req.OutputPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	if _, err := io.Copy(out, stream); err != nil {
		out.Close()
		return fmt.Errorf("write audio: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}
	return nil
}
