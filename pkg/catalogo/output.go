package catalogo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// timestampLayout formats metadata.lastUpdated.
const timestampLayout = "2006-01-02 15:04:05"

// EncodeJSON renders a document as indented UTF-8 JSON. Non-ASCII and
// HTML characters are written literally.
func EncodeJSON(doc any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteJSON encodes doc and writes it to path, creating parent directories.
// It returns the number of bytes written.
func WriteJSON(path string, doc any) (int, error) {
	data, err := EncodeJSON(doc)
	if err != nil {
		return 0, fmt.Errorf("serialization failed: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return 0, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return 0, fmt.Errorf("failed to write output: %w", err)
	}
	return len(data), nil
}

// ReadJSON decodes a previously written document.
func ReadJSON(path string, doc any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, doc)
}
