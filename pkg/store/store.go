// Package store persists sessions as versioned JSON files and loads them
// back. A loaded session is identical in shape to a freshly computed one.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/wonderfulspam/datadiff/pkg/diff"
)

// Version is the session file schema version this build writes. Readers
// reject any other version instead of guessing.
const Version = 1

// SchemaError reports a session file that is corrupt or self-inconsistent.
// Such files are rejected outright, never repaired.
type SchemaError struct {
	Path string
	Msg  string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("session file %s: %s", e.Path, e.Msg)
}

type fileSession struct {
	Version        int           `json:"version"`
	Kinds          []diff.Kind   `json:"kinds"`
	OrderSensitive bool          `json:"order_sensitive"`
	Left           string        `json:"left"`
	Right          string        `json:"right"`
	Records        []diff.Record `json:"records"`
}

// Save writes the session to path.
func Save(session *diff.Session, path string) error {
	left, right := session.Labels()
	fs := fileSession{
		Version:        Version,
		Kinds:          session.Kinds(),
		OrderSensitive: session.OrderSensitive(),
		Left:           left,
		Right:          right,
		Records:        session.Records(),
	}
	data, err := json.MarshalIndent(fs, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	return nil
}

// Load reads and validates a session file.
func Load(path string) (*diff.Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading session file: %w", err)
	}
	var fs fileSession
	if err := json.Unmarshal(data, &fs); err != nil {
		return nil, &SchemaError{Path: path, Msg: "not a valid session file: " + err.Error()}
	}
	if err := validate(&fs); err != nil {
		return nil, &SchemaError{Path: path, Msg: err.Error()}
	}
	return diff.NewSession(fs.Kinds, fs.OrderSensitive, fs.Records, fs.Left, fs.Right), nil
}

// validate checks schema self-consistency: a supported version, known and
// non-empty kinds, and every record's kind a member of the file's own kinds.
func validate(fs *fileSession) error {
	if fs.Version != Version {
		return fmt.Errorf("unsupported version %d (this build reads version %d)", fs.Version, Version)
	}
	if len(fs.Kinds) == 0 {
		return errors.New("no difference kinds recorded")
	}
	for _, k := range fs.Kinds {
		if !diff.KnownKind(k) {
			return fmt.Errorf("unknown difference kind %q", k)
		}
	}
	stored := diff.NewKindSet(fs.Kinds...)
	for i, r := range fs.Records {
		if !diff.KnownKind(r.Kind) {
			return fmt.Errorf("record %d has unknown kind %q", i, r.Kind)
		}
		if !stored.Has(r.Kind) {
			return fmt.Errorf("record %d has kind %q, which the file does not declare", i, r.Kind)
		}
	}
	return nil
}
