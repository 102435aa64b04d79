package training_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voicebridge/voicebridge/internal/training"
)

// fakeRepo builds a Real-Time-Voice-Cloning-shaped checkout whose phase
// scripts are shell scripts recording a marker file when run.
func fakeRepo(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	for _, phase := range []string{"encoder", "synthesizer", "vocoder"} {
		writePhaseScript(t, root, phase, 0)
	}

	return root
}

func writePhaseScript(t *testing.T, root, phase string, exitCode int) {
	t.Helper()

	dir := filepath.Join(root, phase)
	require.NoError(t, os.MkdirAll(dir, 0o750))

	script := fmt.Sprintf("#!/bin/sh\ntouch %s\nexit %d\n",
		filepath.Join(root, phase+".ran"), exitCode)
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, phase+"_train.py"), []byte(script), 0o755))
}

func newOrchestrator(t *testing.T, repoRoot, datasetRoot string) *training.Orchestrator {
	t.Helper()

	o := training.New(repoRoot, datasetRoot)
	o.PythonBin = "/bin/sh"
	o.Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	o.Stdout = io.Discard
	o.Stderr = io.Discard

	return o
}

func TestRunAllPhases(t *testing.T) {
	t.Parallel()

	repo := fakeRepo(t)
	o := newOrchestrator(t, repo, t.TempDir())

	require.NoError(t, o.Run(context.Background()))

	for _, phase := range []string{"encoder", "synthesizer", "vocoder"} {
		assert.FileExists(t, filepath.Join(repo, phase+".ran"), phase)
		assert.DirExists(t, filepath.Join(repo, phase, "saved_models"), phase)
	}
}

func TestRunMissingDatasetAbortsBeforeAnyPhase(t *testing.T) {
	t.Parallel()

	repo := fakeRepo(t)
	o := newOrchestrator(t, repo, filepath.Join(t.TempDir(), "nope"))

	err := o.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, training.ErrDatasetNotFound)
	assert.NoFileExists(t, filepath.Join(repo, "encoder.ran"))
}

func TestRunMissingRepo(t *testing.T) {
	t.Parallel()

	o := newOrchestrator(t, filepath.Join(t.TempDir(), "nope"), t.TempDir())

	err := o.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, training.ErrRepoNotFound)
}

func TestRunMissingEncoderScriptSkipsLaterPhases(t *testing.T) {
	t.Parallel()

	repo := fakeRepo(t)
	require.NoError(t, os.Remove(filepath.Join(repo, "encoder", "encoder_train.py")))

	o := newOrchestrator(t, repo, t.TempDir())

	err := o.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, training.ErrScriptNotFound)
	assert.Contains(t, err.Error(), "encoder_train.py")

	assert.NoFileExists(t, filepath.Join(repo, "synthesizer.ran"))
	assert.NoFileExists(t, filepath.Join(repo, "vocoder.ran"))
}

func TestRunFailingPhasePropagatesExitCode(t *testing.T) {
	t.Parallel()

	repo := fakeRepo(t)
	writePhaseScript(t, repo, "synthesizer", 7)

	o := newOrchestrator(t, repo, t.TempDir())

	err := o.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "synthesizer phase")
	assert.Equal(t, 7, training.ExitCode(err))

	// Encoder ran, vocoder never started.
	assert.FileExists(t, filepath.Join(repo, "encoder.ran"))
	assert.NoFileExists(t, filepath.Join(repo, "vocoder.ran"))
}

func TestExitCodeWithoutExitError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, training.ExitCode(training.ErrScriptNotFound))
}
