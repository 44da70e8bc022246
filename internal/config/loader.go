package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads every configuration document.
// With an empty dir the embedded defaults are used. Otherwise each document
// must exist in dir and parse cleanly: a missing or malformed document is an
// error, since the game cannot run on partial geometry or styling.
func Load(dir string) (*Documents, error) {
	if dir == "" {
		return Defaults()
	}

	dir = ExpandHome(dir)
	docs := &Documents{Source: dir}
	for _, name := range DocumentNames {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
		}
		if err := decode(name, data, docs.target(name)); err != nil {
			return nil, err
		}
	}

	applyDefaults(docs)
	if err := Validate(docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// target returns the field a document decodes into.
func (d *Documents) target(name string) any {
	switch name {
	case DocApp:
		return &d.App
	case DocMainMenu:
		return &d.MainMenu
	case DocInfoMenu:
		return &d.InfoMenu
	case DocHelpMenu:
		return &d.HelpMenu
	case DocGame:
		return &d.Game
	case DocFonts:
		return &d.Fonts
	case DocStyles:
		return &d.Styles
	case DocPositions:
		return &d.Positions
	default:
		return nil
	}
}

// decode parses one document strictly: unknown keys are rejected so typos
// surface at startup instead of silently falling back to zero values.
func decode(name string, data []byte, out any) error {
	if out == nil {
		return fmt.Errorf("config: unknown document %s", name)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return fmt.Errorf("config: failed to parse %s: %w", name, ErrEmpty)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: failed to parse %s: %w", name, err)
	}
	return nil
}

// applyDefaults fills optional fields left empty by a document.
func applyDefaults(d *Documents) {
	if d.App.Scale <= 0 {
		d.App.Scale = 12
	}
	if strings.TrimSpace(d.App.DefaultPlayer) == "" {
		d.App.DefaultPlayer = "player"
	}
	if d.Game.MissRule == "" {
		d.Game.MissRule = MissExit
	}
	if d.Game.Score.Format == "" {
		d.Game.Score.Format = "%d"
	}
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
