package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/tada/internal/model"
)

// Encodes the current view for scripts and pipes. Nothing is read back:
// the task list lives only in memory.

// Format selects the encoding.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat accepts text, json, yaml (any case; "yml" too).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return Text, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("unknown format %q (want text, json or yaml)", s)
}

// Document is the encoded shape: tasks in display order plus stats.
type Document struct {
	Tasks []model.Task `json:"tasks" yaml:"tasks"`
	Stats model.Stats  `json:"stats" yaml:"stats"`
}

// Write encodes doc to w. Text is not handled here; callers render it.
func Write(w io.Writer, f Format, doc Document) error {
	if doc.Tasks == nil {
		doc.Tasks = []model.Task{}
	}
	switch f {
	case JSON:
		b, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}
		b = append(b, '\n')
		if _, err := w.Write(b); err != nil {
			return fmt.Errorf("write: %w", err)
		}
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("yaml marshal: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("yaml close: %w", err)
		}
	default:
		return fmt.Errorf("export: unsupported format %q", f)
	}
	return nil
}
