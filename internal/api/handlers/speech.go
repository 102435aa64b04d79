package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/voicebridge/voicebridge/internal/pipeline"
	"github.com/voicebridge/voicebridge/internal/recognition"
	"github.com/voicebridge/voicebridge/internal/synthesis"
)

const maxUploadBytes = 64 << 20 // 64MB

// SpeechHandler is the request shell around the two serving flows. It
// owns temp-file bookkeeping and maps adapter errors to status codes;
// all audio work happens in the pipeline.
type SpeechHandler struct {
	pipeline *pipeline.Pipeline
	scratch  *pipeline.Scratch
}

func NewSpeechHandler(p *pipeline.Pipeline, scratch *pipeline.Scratch) *SpeechHandler {
	return &SpeechHandler{pipeline: p, scratch: scratch}
}

// TextToAudio synthesizes the posted text and returns the WAV file.
func (h *SpeechHandler) TextToAudio(w http.ResponseWriter, r *http.Request) {
	text := r.FormValue("text")
	if text == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "text required"})
		return
	}
	modelName := r.FormValue("model_name")
	if modelName == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "model_name required"})
		return
	}

	speakerIdx, speed, err := voiceParams(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	outputPath := h.scratch.TTSOutputPath()

	err = h.pipeline.TextToSpeech(r.Context(), pipeline.TextToSpeechRequest{
		Text:       text,
		ModelName:  modelName,
		SpeakerIdx: speakerIdx,
		Speed:      speed,
		OutputPath: outputPath,
	})
	if err != nil {
		slog.Error("text-to-audio failed", "model", modelName, "error", err)
		writeSpeechError(w, err)
		return
	}

	if _, err := os.Stat(outputPath); err != nil {
		writeJSON(w, http.StatusInternalServerError,
			map[string]string{"error": "synthesis reported success but produced no output file"})
		return
	}

	serveWav(w, r, outputPath)
}

// AudioToAudio transcribes the uploaded audio and resynthesizes it in
// the target voice. The temporary input file is always removed once
// the response has been written.
func (h *SpeechHandler) AudioToAudio(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid multipart form"})
		return
	}

	file, header, err := r.FormFile("input_audio_file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "input_audio_file required"})
		return
	}
	defer file.Close()

	ttsModel := r.FormValue("tts_model")
	if ttsModel == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "tts_model required"})
		return
	}

	speakerIdx, speed, err := voiceParams(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	modelSize := r.FormValue("whisper_model_size")
	if modelSize == "" {
		modelSize = recognition.DefaultModelSize
	}

	inputPath, err := h.scratch.SaveUpload(file, filepath.Ext(header.Filename))
	if err != nil {
		slog.Error("failed to save uploaded audio", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to save input audio file"})
		return
	}
	defer func() {
		if err := h.scratch.Remove(inputPath); err != nil {
			slog.Warn("failed to remove temp input file", "path", inputPath, "error", err)
		}
	}()

	outputPath := h.scratch.ConversionOutputPath()

	result, err := h.pipeline.AudioToAudio(r.Context(), pipeline.ConversionRequest{
		InputPath:        inputPath,
		TTSModel:         ttsModel,
		SpeakerIdx:       speakerIdx,
		Speed:            speed,
		WhisperModelSize: modelSize,
		OutputPath:       outputPath,
	})
	if err != nil {
		slog.Error("audio-to-audio failed", "tts_model", ttsModel, "whisper_model_size", modelSize, "error", err)
		writeSpeechError(w, err)
		return
	}
	slog.Info("audio converted", "language", result.Language, "transcript_chars", len(result.Text))

	if _, err := os.Stat(outputPath); err != nil {
		writeJSON(w, http.StatusInternalServerError,
			map[string]string{"error": "conversion reported success but produced no output file"})
		return
	}

	serveWav(w, r, outputPath)
}

// voiceParams reads the optional speaker_idx and speed form fields,
// applying the documented defaults.
func voiceParams(r *http.Request) (int, float64, error) {
	speakerIdx := 0
	if v := r.FormValue("speaker_idx"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid speaker_idx %q", v)
		}
		speakerIdx = i
	}

	speed := 1.0
	if v := r.FormValue("speed"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid speed %q", v)
		}
		speed = f
	}

	return speakerIdx, speed, nil
}

// writeSpeechError maps adapter errors onto the response taxonomy:
// unknown models and presets are the client's mistake, everything else
// is an internal failure.
func writeSpeechError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, recognition.ErrModelNotFound) || errors.Is(err, synthesis.ErrModelNotFound) {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// serveWav returns the generated file as the response body along with
// its generated filename. Removal of the output file is left to the
// hosting layer.
func serveWav(w http.ResponseWriter, r *http.Request, path string) {
	filename := filepath.Base(path)
	w.Header().Set("Content-Type", "audio/wav")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	http.ServeFile(w, r, path)
}
