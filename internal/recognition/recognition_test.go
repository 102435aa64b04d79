package recognition_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voicebridge/voicebridge/internal/recognition"
)

func TestValidSize(t *testing.T) {
	t.Parallel()

	for _, size := range []string{"tiny", "base", "small", "medium", "large"} {
		assert.True(t, recognition.ValidSize(size), size)
	}
	for _, size := range []string{"", "huge", "TINY", "base.en"} {
		assert.False(t, recognition.ValidSize(size), size)
	}
}

func writeTestAudio(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "speech.wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFF fake wav"), 0o600))

	return path
}

func TestLocalRecognizerTranscribe(t *testing.T) {
	t.Parallel()

	var gotModel, gotFormat string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/audio/transcriptions", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		gotModel = r.FormValue("model")
		gotFormat = r.FormValue("response_format")

		_, _, err := r.FormFile("file")
		require.NoError(t, err)

		json.NewEncoder(w).Encode(map[string]any{
			"text":     "  ola mundo  ",
			"language": "pt",
			"duration": 2.5,
		})
	}))
	defer srv.Close()

	rec := recognition.NewLocalRecognizer(recognition.LocalConfig{BaseURL: srv.URL})

	result, err := rec.Transcribe(context.Background(), recognition.Request{
		FilePath:  writeTestAudio(t),
		ModelSize: "base",
	})
	require.NoError(t, err)

	assert.Equal(t, "ola mundo", result.Text)
	assert.Equal(t, "pt", result.Language)
	assert.InEpsilon(t, 2.5, result.Duration, 0.001)
	assert.Equal(t, "ggml-base.bin", gotModel)
	assert.Equal(t, "verbose_json", gotFormat)
}

func TestLocalRecognizerUnknownSize(t *testing.T) {
	t.Parallel()

	rec := recognition.NewLocalRecognizer(recognition.LocalConfig{BaseURL: "http://unused"})

	_, err := rec.Transcribe(context.Background(), recognition.Request{
		FilePath:  writeTestAudio(t),
		ModelSize: "huge",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, recognition.ErrModelNotFound)
	assert.Contains(t, err.Error(), "huge")
}

func TestLocalRecognizerServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model failed to load", http.StatusInternalServerError)
	}))
	defer srv.Close()

	rec := recognition.NewLocalRecognizer(recognition.LocalConfig{BaseURL: srv.URL})

	_, err := rec.Transcribe(context.Background(), recognition.Request{
		FilePath:  writeTestAudio(t),
		ModelSize: "tiny",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestLocalRecognizerMissingFile(t *testing.T) {
	t.Parallel()

	rec := recognition.NewLocalRecognizer(recognition.LocalConfig{BaseURL: "http://unused"})

	_, err := rec.Transcribe(context.Background(), recognition.Request{
		FilePath:  filepath.Join(t.TempDir(), "missing.wav"),
		ModelSize: "tiny",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, recognition.ErrModelNotFound)
}

func TestOpenAIRecognizerUnknownSize(t *testing.T) {
	t.Parallel()

	rec := recognition.NewOpenAIRecognizer(recognition.OpenAIConfig{APIKey: "test"})

	_, err := rec.Transcribe(context.Background(), recognition.Request{
		FilePath:  writeTestAudio(t),
		ModelSize: "huge",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, recognition.ErrModelNotFound)
}
