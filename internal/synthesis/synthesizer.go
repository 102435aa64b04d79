// Package synthesis wraps text-to-speech engines behind a narrow
// interface. Every backend persists the generated waveform to the
// output path named in the request.
package synthesis

import (
	"context"
	"errors"
)

// ErrModelNotFound marks a voice model identifier that resolves to no
// installed or known model. The request shell maps it to a client error.
var ErrModelNotFound = errors.New("synthesis model not found")

// Request holds the parameters for one synthesis call.
type Request struct {
	Text       string  `json:"text"`
	Model      string  `json:"model"`
	SpeakerIdx int     `json:"speaker_idx,omitempty"`
	Speed      float64 `json:"speed,omitempty"` // 1.0 = normal; passed through unvalidated
	OutputPath string  `json:"output_path"`
}

// Synthesizer is the interface for text-to-speech backends.
type Synthesizer interface {
	Synthesize(ctx context.Context, req Request) error
	Name() string
}
