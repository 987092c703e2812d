// Package loader turns raw JSON input from files, strings, or streams into
// response documents.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Hiida3li/NewsGenie-nlp-pipeline/internal/models"
)

// ErrInvalidJSON indicates input that could not be decoded as a response
// document.
var ErrInvalidJSON = errors.New("invalid JSON")

// FromBytes decodes data into a response document. The document must be a
// JSON object; anything else wraps ErrInvalidJSON.
func FromBytes(data []byte) (*models.RawResponse, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	// A bare JSON null unmarshals into a nil map without error.
	if doc == nil {
		return nil, fmt.Errorf("%w: document is not a JSON object", ErrInvalidJSON)
	}

	return &models.RawResponse{Doc: doc, Raw: data}, nil
}

// FromString decodes a JSON document passed directly as text.
func FromString(input string) (*models.RawResponse, error) {
	return FromBytes([]byte(input))
}

// FromFile reads and decodes a JSON file. A missing file surfaces an error
// satisfying errors.Is(err, fs.ErrNotExist).
func FromFile(path string) (*models.RawResponse, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file %s: %w", path, err)
	}

	return FromBytes(data)
}

// FromReader decodes a JSON document from r, typically stdin.
func FromReader(r io.Reader) (*models.RawResponse, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input stream: %w", err)
	}

	return FromBytes(data)
}
