package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nao1215/dotnetvuln/internal/model"
)

// Format is the structured-text format of the input document.
type Format string

const (
	// FormatJSON decodes the input as JSON. This is the default.
	FormatJSON Format = "json"

	// FormatYAML decodes the input as YAML.
	FormatYAML Format = "yaml"

	// FormatAuto picks JSON or YAML from the first non-space byte.
	FormatAuto Format = "auto"
)

// Formats lists the supported input formats.
var Formats = []Format{FormatJSON, FormatYAML, FormatAuto}

// Valid reports whether f is a supported input format.
func (f Format) Valid() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatAuto:
		return true
	default:
		return false
	}
}

// ParseFormat parses a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
	return f, nil
}

// Decode reads all of r and decodes it as a Document in the given format.
//
// Input that is empty or only whitespace decodes to an empty Document.
// A well-formed document whose root is not a mapping also decodes to an
// empty Document.
func Decode(r io.Reader, format Format) (*model.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return DecodeBytes(data, format)
}

// DecodeBytes decodes data as a Document in the given format.
func DecodeBytes(data []byte, format Format) (*model.Document, error) {
	if !format.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return model.FromTree(nil), nil
	}
	if format == FormatAuto {
		format = detectFormat(data)
	}

	var (
		tree any
		err  error
	)
	switch format {
	case FormatYAML:
		tree, err = decodeYAML(data)
	default:
		tree, err = decodeJSON(data)
	}
	if err != nil {
		return nil, &InputFormatError{Format: format, Err: err}
	}

	return model.FromTree(tree), nil
}

// detectFormat returns FormatJSON when data looks like a JSON object or array.
func detectFormat(data []byte) Format {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return FormatJSON
	}
	return FormatYAML
}

// decodeJSON decodes exactly one JSON value. Numbers are kept as json.Number
// so version strings written as numbers keep their original spelling.
func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, errors.New("unexpected data after top-level value")
	}
	return tree, nil
}

// decodeYAML decodes the first YAML document.
func decodeYAML(data []byte) (any, error) {
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}
