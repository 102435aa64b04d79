package pipeline

import (
	"fmt"

	"github.com/voicebridge/voicebridge/internal/config"
	"github.com/voicebridge/voicebridge/internal/recognition"
	"github.com/voicebridge/voicebridge/internal/synthesis"
)

// BuildRecognizer selects the speech-to-text backend from configuration.
func BuildRecognizer(cfg config.RecognitionConfig) (recognition.Recognizer, error) {
	switch cfg.Backend {
	case "openai":
		return recognition.NewOpenAIRecognizer(recognition.OpenAIConfig{
			APIKey:  cfg.OpenAIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.OpenAIModel,
		}), nil
	case "local":
		return recognition.NewLocalRecognizer(recognition.LocalConfig{
			BaseURL: cfg.LocalBaseURL,
		}), nil
	default:
		return nil, fmt.Errorf("unknown recognition backend %q", cfg.Backend)
	}
}

// BuildSynthesizer selects the text-to-speech backend from configuration.
func BuildSynthesizer(cfg config.SynthesisConfig) (synthesis.Synthesizer, error) {
	switch cfg.Backend {
	case "openai":
		return synthesis.NewOpenAISynthesizer(synthesis.OpenAIConfig{
			APIKey:  cfg.OpenAIKey,
			BaseURL: cfg.OpenAIBaseURL,
		}), nil
	case "local":
		return synthesis.NewLocalSynthesizer(synthesis.LocalConfig{
			PiperBinPath: cfg.LocalBinPath,
			ModelDir:     cfg.LocalModelDir,
		}), nil
	default:
		return nil, fmt.Errorf("unknown synthesis backend %q", cfg.Backend)
	}
}
