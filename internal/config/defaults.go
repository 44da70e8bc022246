package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed defaults/*.yaml
var defaultFS embed.FS

// SourceEmbedded is the Source of documents parsed from the built-in defaults.
const SourceEmbedded = "embedded defaults"

// DefaultYAML returns the embedded default for a document, or nil if the
// name is unknown.
func DefaultYAML(name string) []byte {
	data, err := defaultFS.ReadFile("defaults/" + name)
	if err != nil {
		return nil
	}
	return data
}

// Defaults parses the embedded default documents.
func Defaults() (*Documents, error) {
	docs := &Documents{Source: SourceEmbedded}
	for _, name := range DocumentNames {
		if err := decode(name, DefaultYAML(name), docs.target(name)); err != nil {
			return nil, err
		}
	}
	applyDefaults(docs)
	if err := Validate(docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Dump writes the embedded default documents into dir so they can be edited
// and passed back with --config. Existing files are left untouched unless
// overwrite is set.
func Dump(dir string, overwrite bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("config: cannot create directory %s: %w", dir, err)
	}

	var written []string
	for _, name := range DocumentNames {
		path := filepath.Join(dir, name)
		if !overwrite {
			if _, err := os.Stat(path); err == nil {
				continue
			}
		}
		if err := os.WriteFile(path, DefaultYAML(name), 0o644); err != nil {
			return written, fmt.Errorf("config: cannot write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
