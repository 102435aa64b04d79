package synthesis

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// LocalConfig holds configuration for the local Piper TTS backend.
type LocalConfig struct {
	PiperBinPath string // default: "piper"
	ModelDir     string // directory holding .onnx voice models
}

// LocalSynthesizer runs the Piper binary as a subprocess. The model
// identifier is resolved to "<ModelDir>/<identifier>.onnx"; speaker
// index and speed map to Piper's --speaker and --length_scale flags.
type LocalSynthesizer struct {
	cfg LocalConfig
}

// NewLocalSynthesizer creates a LocalSynthesizer backed by a local Piper binary.
func NewLocalSynthesizer(cfg LocalConfig) *LocalSynthesizer {
	if cfg.PiperBinPath == "" {
		cfg.PiperBinPath = "piper"
	}
	return &LocalSynthesizer{cfg: cfg}
}

func (l *LocalSynthesizer) Name() string { return "local-piper" }

// Synthesize pipes text into Piper via stdin and writes the WAV to the output path.
func (l *LocalSynthesizer) Synthesize(ctx context.Context, req Request) error {
	modelPath, err := l.resolveModel(req.Model)
	if err != nil {
		return err
	}

	args := []string{
		"--model", modelPath,
		"--output_file", req.OutputPath,
		"--speaker", strconv.Itoa(req.SpeakerIdx),
	}
	if req.Speed > 0 {
		// Piper scales phoneme length, the inverse of playback speed.
		args = append(args, "--length_scale", strconv.FormatFloat(1.0/req.Speed, 'f', -1, 64))
	}

	cmd := exec.CommandContext(ctx, l.cfg.PiperBinPath, args...)
	cmd.Stdin = strings.NewReader(req.Text)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("piper failed: %w (stderr: %s)", err, stderr.String())
	}
	return nil
}

// resolveModel maps a voice model identifier to an installed .onnx file.
func (l *LocalSynthesizer) resolveModel(model string) (string, error) {
	if model == "" {
		return "", fmt.Errorf("%w: empty model name", ErrModelNotFound)
	}

	path := filepath.Join(l.cfg.ModelDir, filepath.FromSlash(model)+".onnx")
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %q (%s)", ErrModelNotFound, model, path)
	}
	return path, nil
}
