// Package document loads JSON and YAML files into the generic value tree the
// comparison engine consumes.
package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Format is the wire format of an input document, detected by extension.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Detect returns the format for a file path. Anything that is not .yaml or
// .yml is treated as JSON, matching the tool's documented behavior.
func Detect(path string) Format {
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return FormatYAML
	}
	return FormatJSON
}

// ParseError reports a document that could not be parsed into an object
// tree. It names the offending file.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads and parses one document.
func Load(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	return Parse(path, data)
}

// Parse decodes data according to the format detected from path and
// normalizes the result into nested map[string]any / []any values.
func Parse(path string, data []byte) (map[string]any, error) {
	var tree map[string]any
	switch Detect(path) {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
	default:
		if err := json.Unmarshal(data, &tree); err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
	}
	if tree == nil {
		return nil, &ParseError{Path: path, Err: errors.New("document root must be an object")}
	}
	return normalize(tree).(map[string]any), nil
}

// normalize flattens decoder-specific shapes: YAML maps with non-string keys
// become map[string]any and timestamps become RFC 3339 strings, so deep
// equality and type classification behave the same for both formats.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for key, val := range t {
			t[key] = normalize(val)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for key, val := range t {
			m[fmt.Sprint(key)] = normalize(val)
		}
		return m
	case []any:
		for i := range t {
			t[i] = normalize(t[i])
		}
		return t
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return v
	}
}

// PrettyJSON re-indents a compact JSON value for display. Input that is not
// valid JSON comes back unchanged.
func PrettyJSON(s string) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(s), "", "  "); err != nil {
		return s
	}
	return buf.String()
}
