// Package persist stores the contact collection as a TOML file.
//
// The on-disk format is deliberately boring:
//
//	[[contacts]]
//	first_name = "Ann"
//	last_name = "Lee"
//	phone = "555-0101"
//
// Failures degrade gracefully. A missing or unparseable file loads as an
// absent collection (nil) after a diagnostic log entry; it never surfaces as
// an error to the store. Save errors are logged here and also returned so
// the caller can decide what to report.
package persist

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/fogmite/rolodex/internal/contact"
)

// File reads and writes a contact collection at a fixed path.
type File struct {
	path string
	log  *slog.Logger
}

type document struct {
	Contacts []contact.Contact `toml:"contacts"`
}

// NewFile returns a File for the given path. A nil logger discards
// diagnostics.
func NewFile(path string, logger *slog.Logger) *File {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &File{path: path, log: logger}
}

// Path returns the backing file path.
func (f *File) Path() string { return f.path }

// Load reads the collection from disk. A missing file returns nil with no
// log noise; a read or parse failure returns nil after logging. Load never
// returns an error because a broken backing file must not stop the session.
func (f *File) Load() []contact.Contact {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			f.log.Warn("read contacts failed", "path", f.path, "error", err)
		}
		return nil
	}

	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		f.log.Warn("parse contacts failed", "path", f.path, "error", err)
		return nil
	}
	return doc.Contacts
}

// Save writes the collection, creating intermediate directories as needed.
func (f *File) Save(contacts []contact.Contact) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		f.log.Warn("create contacts dir failed", "path", dir, "error", err)
		return fmt.Errorf("create contacts dir: %w", err)
	}

	data, err := toml.Marshal(document{Contacts: contacts})
	if err != nil {
		f.log.Warn("marshal contacts failed", "error", err)
		return fmt.Errorf("marshal contacts: %w", err)
	}

	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		f.log.Warn("write contacts failed", "path", f.path, "error", err)
		return fmt.Errorf("write contacts: %w", err)
	}
	return nil
}

// ExpandPath resolves a leading ~ against the user's home directory and
// makes the result absolute.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
