package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voicebridge/voicebridge/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.Equal(t, "temp_audio_outputs", cfg.Scratch.Dir)
	assert.Equal(t, "openai", cfg.Recognition.Backend)
	assert.Equal(t, "http://localhost:8178", cfg.Recognition.LocalBaseURL)
	assert.Equal(t, "openai", cfg.Synthesis.Backend)
	assert.Equal(t, "piper", cfg.Synthesis.LocalBinPath)
	assert.Equal(t, "models", cfg.Synthesis.LocalModelDir)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SCRATCH_DIR", t.TempDir())
	t.Setenv("STT_BACKEND", "local")
	t.Setenv("TTS_BACKEND", "local")
	t.Setenv("TTS_LOCAL_MODEL_DIR", "/opt/voices")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Addr())
	assert.Equal(t, "local", cfg.Recognition.Backend)
	assert.Equal(t, "local", cfg.Synthesis.Backend)
	assert.Equal(t, "/opt/voices", cfg.Synthesis.LocalModelDir)
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-port")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SERVER_PORT")
}
