// Package jsonfile persists the summary document and loads it back for
// re-rendering.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/avilla-dev/cursor-wrapped/internal/models"
)

// Write serializes the summary as indented JSON at path. The write goes
// through a temp file and rename so a crash never leaves a truncated
// document behind.
func Write(path string, s *models.Summary) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create summary directory: %w", err)
		}
	}

	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0o600); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	if err := os.Rename(tmpFile, path); err != nil {
		_ = os.Remove(tmpFile)
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}

// Load reads a previously persisted summary document and validates it before
// handing it to presenters.
func Load(path string) (*models.Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read summary: %w", err)
	}
	var s models.Summary
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode summary %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("summary %s: %w", path, err)
	}
	return &s, nil
}

// Presenter adapts Write to the report.Presenter interface so the persisted
// document participates in the same fan-out as the display renderers.
type Presenter struct {
	Path string
}

// Render persists the summary at the configured path.
func (p Presenter) Render(s *models.Summary) error {
	return Write(p.Path, s)
}
