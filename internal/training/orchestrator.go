// Package training drives the three voice-cloning training phases of an
// external Real-Time-Voice-Cloning checkout as child processes. No
// training logic lives here; the orchestrator locates each phase's
// entry script, launches it, and stops the run on the first failure.
package training

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
)

// Static errors.
var (
	ErrScriptNotFound  = errors.New("training script not found")
	ErrDatasetNotFound = errors.New("dataset root is not a directory")
	ErrRepoNotFound    = errors.New("voice-cloning repository not found")
)

// Default epoch counts per phase.
const (
	DefaultEncoderEpochs     = 100
	DefaultSynthesizerEpochs = 1000
	DefaultVocoderEpochs     = 250000
)

// phase is one step of the training run. Scripts are resolved relative
// to the repository root; args are the phase script's own CLI flags.
type phase struct {
	name      string
	script    string
	outputDir string
	args      []string
}

// Orchestrator runs encoder, synthesizer and vocoder training strictly
// in sequence. A missing script or a non-zero exit aborts the run;
// later phases are never started after a failure.
type Orchestrator struct {
	RepoRoot    string
	DatasetRoot string
	PythonBin   string // default: "python3"

	EncoderEpochs     int
	SynthesizerEpochs int
	VocoderEpochs     int

	Log    *slog.Logger
	Stdout io.Writer // child process stdout, default os.Stdout
	Stderr io.Writer // child process stderr, default os.Stderr
}

// New returns an Orchestrator with defaults filled in.
func New(repoRoot, datasetRoot string) *Orchestrator {
	return &Orchestrator{
		RepoRoot:          repoRoot,
		DatasetRoot:       datasetRoot,
		PythonBin:         "python3",
		EncoderEpochs:     DefaultEncoderEpochs,
		SynthesizerEpochs: DefaultSynthesizerEpochs,
		VocoderEpochs:     DefaultVocoderEpochs,
		Log:               slog.Default(),
		Stdout:            os.Stdout,
		Stderr:            os.Stderr,
	}
}

// Run executes the full training sequence, stopping at the first
// failed phase and returning its error unchanged apart from wrapping.
func (o *Orchestrator) Run(ctx context.Context) error {
	if info, err := os.Stat(o.DatasetRoot); err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrDatasetNotFound, o.DatasetRoot)
	}
	if info, err := os.Stat(o.RepoRoot); err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrRepoNotFound, o.RepoRoot)
	}

	for _, p := range o.phases() {
		if err := o.runPhase(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func (o *Orchestrator) phases() []phase {
	return []phase{
		{
			name:      "encoder",
			script:    filepath.Join("encoder", "encoder_train.py"),
			outputDir: filepath.Join("encoder", "saved_models"),
			args: []string{
				"--datasets_root", o.DatasetRoot,
				"--training_epochs", strconv.Itoa(o.EncoderEpochs),
			},
		},
		{
			name:      "synthesizer",
			script:    filepath.Join("synthesizer", "synthesizer_train.py"),
			outputDir: filepath.Join("synthesizer", "saved_models"),
			args: []string{
				"--datasets_root", o.DatasetRoot,
				"--n_epochs", strconv.Itoa(o.SynthesizerEpochs),
			},
		},
		{
			// The vocoder trains from the synthesizer's output, not
			// from the raw dataset.
			name:      "vocoder",
			script:    filepath.Join("vocoder", "vocoder_train.py"),
			outputDir: filepath.Join("vocoder", "saved_models"),
			args: []string{
				"--n_epochs", strconv.Itoa(o.VocoderEpochs),
			},
		},
	}
}

func (o *Orchestrator) runPhase(ctx context.Context, p phase) error {
	scriptPath := filepath.Join(o.RepoRoot, p.script)
	if _, err := os.Stat(scriptPath); err != nil {
		return fmt.Errorf("%w: %s", ErrScriptNotFound, scriptPath)
	}

	outputDir := filepath.Join(o.RepoRoot, p.outputDir)
	if err := os.MkdirAll(outputDir, 0o750); err != nil {
		return fmt.Errorf("create %s output dir: %w", p.name, err)
	}

	args := append([]string{scriptPath}, p.args...)
	args = append(args, "--save_path", outputDir)

	o.Log.Info("starting training phase", "phase", p.name, "script", scriptPath)

	cmd := exec.CommandContext(ctx, o.PythonBin, args...)
	cmd.Dir = o.RepoRoot
	cmd.Stdout = o.Stdout
	cmd.Stderr = o.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s phase: %w", p.name, err)
	}

	o.Log.Info("training phase complete", "phase", p.name, "saved_models", outputDir)
	return nil
}

// ExitCode extracts the child process exit code from a Run error so
// callers can propagate it unchanged. Errors that carry no exit code
// report 1.
func ExitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}
