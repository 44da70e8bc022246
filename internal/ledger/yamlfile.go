package ledger

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// YAMLFile stores the ledger as a YAML sequence of {name, result} records.
type YAMLFile struct {
	Path string
}

// Ensure YAMLFile implements Backend
var _ Backend = (*YAMLFile)(nil)

// record is the on-disk form of a Result. Pointers tell a missing key from a
// zero value.
type record struct {
	Name   *string `yaml:"name"`
	Result *int    `yaml:"result"`
}

// NewYAMLFile creates a backend for the document at path.
func NewYAMLFile(path string) *YAMLFile {
	return &YAMLFile{Path: path}
}

// Load reads the document. A file that does not exist yet is an empty
// ledger. Unknown keys, entries without a name or result, and any other read
// or parse failure are errors.
func (f *YAMLFile) Load() ([]Result, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", f.Path, err)
	}

	var records []record
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&records); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("cannot parse %s: %w", f.Path, err)
	}

	results := make([]Result, 0, len(records))
	for i, r := range records {
		switch {
		case r.Name == nil:
			return nil, fmt.Errorf("cannot parse %s: entry %d: missing name", f.Path, i+1)
		case r.Result == nil:
			return nil, fmt.Errorf("cannot parse %s: entry %d: missing result", f.Path, i+1)
		}
		results = append(results, Result{Name: *r.Name, Result: *r.Result})
	}
	return results, nil
}

// Save overwrites the document wholesale. The new content is written to a
// temporary file in the same directory and renamed over the old one.
func (f *YAMLFile) Save(results []Result) error {
	if results == nil {
		results = []Result{}
	}
	data, err := yaml.Marshal(results)
	if err != nil {
		return fmt.Errorf("cannot encode results: %w", err)
	}

	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // Already renamed on success

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), f.Path); err != nil {
		return fmt.Errorf("cannot replace %s: %w", f.Path, err)
	}
	return nil
}
