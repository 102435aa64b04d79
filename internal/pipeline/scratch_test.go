package pipeline_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voicebridge/voicebridge/internal/pipeline"
)

func TestNewScratchCreatesDir(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "scratch")

	scratch, err := pipeline.NewScratch(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, scratch.Dir())
	assert.DirExists(t, dir)
}

func TestScratchPathsAreUnique(t *testing.T) {
	t.Parallel()

	scratch, err := pipeline.NewScratch(t.TempDir())
	require.NoError(t, err)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		for _, path := range []string{
			scratch.InputPath(".mp3"),
			scratch.TTSOutputPath(),
			scratch.ConversionOutputPath(),
		} {
			assert.False(t, seen[path], "duplicate path %s", path)
			seen[path] = true
		}
	}
}

func TestScratchPathNaming(t *testing.T) {
	t.Parallel()

	scratch, err := pipeline.NewScratch(t.TempDir())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(filepath.Base(scratch.InputPath(".mp3")), "input_"))
	assert.True(t, strings.HasSuffix(scratch.InputPath(".mp3"), ".mp3"))
	assert.True(t, strings.HasPrefix(filepath.Base(scratch.TTSOutputPath()), "tts_output_"))
	assert.True(t, strings.HasSuffix(scratch.TTSOutputPath(), ".wav"))
	assert.True(t, strings.HasPrefix(filepath.Base(scratch.ConversionOutputPath()), "a2a_output_"))
}

func TestSaveUploadAndRemove(t *testing.T) {
	t.Parallel()

	scratch, err := pipeline.NewScratch(t.TempDir())
	require.NoError(t, err)

	path, err := scratch.SaveUpload(strings.NewReader("fake audio bytes"), ".wav")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fake audio bytes", string(data))

	require.NoError(t, scratch.Remove(path))
	assert.NoFileExists(t, path)

	// Removing twice is not an error.
	require.NoError(t, scratch.Remove(path))
}
