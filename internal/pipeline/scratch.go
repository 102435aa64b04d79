package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Scratch hands out uniquely named temp file paths inside one shared
// directory. Concurrent requests never collide because every path
// embeds a fresh UUID; the directory itself is never cleaned on startup.
type Scratch struct {
	dir string
}

// NewScratch creates the scratch directory if needed and returns a
// Scratch rooted there.
func NewScratch(dir string) (*Scratch, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create scratch dir: %w", err)
	}
	return &Scratch{dir: dir}, nil
}

func (s *Scratch) Dir() string { return s.dir }

// InputPath returns a unique path for an uploaded input file, keeping
// the upload's original extension.
func (s *Scratch) InputPath(ext string) string {
	return filepath.Join(s.dir, fmt.Sprintf("input_%s%s", uuid.New(), ext))
}

// TTSOutputPath returns a unique path for a text-to-speech result.
func (s *Scratch) TTSOutputPath() string {
	return filepath.Join(s.dir, fmt.Sprintf("tts_output_%s.wav", uuid.New()))
}

// ConversionOutputPath returns a unique path for an audio-to-audio result.
func (s *Scratch) ConversionOutputPath() string {
	return filepath.Join(s.dir, fmt.Sprintf("a2a_output_%s.wav", uuid.New()))
}

// SaveUpload streams the upload into a fresh input file and returns its path.
func (s *Scratch) SaveUpload(r io.Reader, ext string) (string, error) {
	path := s.InputPath(ext)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create input file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("write input file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close input file: %w", err)
	}
	return path, nil
}

// Remove deletes a scratch file. Missing files are not an error so
// cleanup can run unconditionally.
func (s *Scratch) Remove(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
