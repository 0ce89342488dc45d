// Package config loads the rolodex configuration file.
//
// The file lives at ~/.config/rolodex/config.toml and every field is
// optional:
//
//	contacts_path = "~/.local/share/rolodex/contacts.toml"
//	log_dir = "~/.local/share/rolodex"
//	row_height = 1
//	row_gap = 0
//	overscan = 2
//
// A missing file is not an error; rolodex works out of the box with the
// defaults above. Only parse failures surface.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/fogmite/rolodex/internal/persist"
)

// Config carries the resolved settings.
type Config struct {
	ContactsPath string
	LogDir       string
	RowHeight    int
	RowGap       int
	Overscan     int
}

const (
	defaultConfigPath   = "~/.config/rolodex/config.toml"
	defaultDataDir      = "~/.local/share/rolodex"
	defaultContactsFile = "contacts.toml"

	defaultRowHeight = 1
	defaultRowGap    = 0
	defaultOverscan  = 2
)

// Load reads the config at path, or the default location when path is
// empty, falling back to defaults for anything missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	// Pointer fields distinguish "absent" from an explicit zero.
	var raw struct {
		ContactsPath string `toml:"contacts_path"`
		LogDir       string `toml:"log_dir"`
		RowHeight    *int   `toml:"row_height"`
		RowGap       *int   `toml:"row_gap"`
		Overscan     *int   `toml:"overscan"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if p := strings.TrimSpace(raw.ContactsPath); p != "" {
		cfg.ContactsPath = mustExpand(p)
	}
	if d := strings.TrimSpace(raw.LogDir); d != "" {
		cfg.LogDir = mustExpand(d)
	}
	if raw.RowHeight != nil && *raw.RowHeight > 0 {
		cfg.RowHeight = *raw.RowHeight
	}
	if raw.RowGap != nil && *raw.RowGap >= 0 {
		cfg.RowGap = *raw.RowGap
	}
	if raw.Overscan != nil && *raw.Overscan >= 0 {
		cfg.Overscan = *raw.Overscan
	}

	return cfg, nil
}

// LogPath returns the diagnostic log file path.
func (c Config) LogPath() string {
	return filepath.Join(c.LogDir, "rolodex.log")
}

func defaults() Config {
	dataDir := mustExpand(defaultDataDir)
	return Config{
		ContactsPath: filepath.Join(dataDir, defaultContactsFile),
		LogDir:       dataDir,
		RowHeight:    defaultRowHeight,
		RowGap:       defaultRowGap,
		Overscan:     defaultOverscan,
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return persist.ExpandPath(defaultConfigPath)
	}
	return persist.ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := persist.ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}
