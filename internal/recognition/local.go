package recognition

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LocalConfig holds configuration for the local whisper.cpp backend.
type LocalConfig struct {
	BaseURL string // default: "http://localhost:8178"
}

// LocalRecognizer talks to a whisper.cpp server exposing the
// OpenAI-compatible transcription endpoint. The preset tier selects
// the ggml model file by name.
// Start the server with: ./server -m models/ggml-base.bin --port 8178
type LocalRecognizer struct {
	cfg        LocalConfig
	httpClient *http.Client
}

// NewLocalRecognizer creates a LocalRecognizer backed by a local whisper.cpp HTTP server.
func NewLocalRecognizer(cfg LocalConfig) *LocalRecognizer {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8178"
	}
	return &LocalRecognizer{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 300 * time.Second,
		},
	}
}

func (l *LocalRecognizer) Name() string { return "local-whisper" }

// Transcribe uploads the audio file to the local server as a multipart form.
func (l *LocalRecognizer) Transcribe(ctx context.Context, req Request) (*Result, error) {
	if err := checkSize(req.ModelSize); err != nil {
		return nil, err
	}

	f, err := os.Open(req.FilePath)
	if err != nil {
		return nil, fmt.Errorf("open audio file: %w", err)
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	fw, err := mw.CreateFormFile("file", filepath.Base(req.FilePath))
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err = io.Copy(fw, f); err != nil {
		return nil, fmt.Errorf("copy audio data: %w", err)
	}

	_ = mw.WriteField("model", "ggml-"+req.ModelSize+".bin")
	_ = mw.WriteField("response_format", "verbose_json")

	if err = mw.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", l.cfg.BaseURL+"/audio/transcriptions", &body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := l.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("transcription request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("transcription failed (status %d): %s", resp.StatusCode, string(respBody))
	}

	var apiResp struct {
		Text     string  `json:"text"`
		Language string  `json:"language"`
		Duration float64 `json:"duration"`
	}
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	return &Result{
		Text:     strings.TrimSpace(apiResp.Text),
		Language: apiResp.Language,
		Duration: apiResp.Duration,
	}, nil
}
