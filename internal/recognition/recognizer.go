// Package recognition wraps speech-to-text engines behind a narrow
// interface so the serving pipeline never touches an engine directly.
package recognition

import "context"

// Request holds the parameters for one transcription call.
type Request struct {
	FilePath  string `json:"file_path"`
	ModelSize string `json:"model_size,omitempty"` // preset tier: tiny, base, small, medium, large
}

// Result holds the transcription outcome.
type Result struct {
	Text     string  `json:"text"`
	Language string  `json:"language"`
	Duration float64 `json:"duration"`
}

// Recognizer is the interface for speech-to-text backends.
type Recognizer interface {
	Transcribe(ctx context.Context, req Request) (*Result, error)
	Name() string
}
