// Package ledger keeps the table of round results: an in-memory list that is
// read from durable storage at startup and written back on explicit exit.
package ledger

import (
	"fmt"
	"sort"
)

// Result is the outcome of one completed round.
type Result struct {
	Name   string `yaml:"name"`
	Result int    `yaml:"result"`
}

// Backend loads and saves the whole ledger as one document.
type Backend interface {
	Load() ([]Result, error)
	Save(results []Result) error
}

// Ledger is the ordered list of results. It is owned by a single loop and
// is not safe for concurrent use.
type Ledger struct {
	entries []Result
	backend Backend
}

// New creates an empty ledger backed by backend. A nil backend keeps the
// ledger in memory only.
func New(backend Backend) *Ledger {
	return &Ledger{backend: backend}
}

// Load replaces the in-memory entries with the backend's contents.
func (l *Ledger) Load() error {
	if l.backend == nil {
		return nil
	}
	entries, err := l.backend.Load()
	if err != nil {
		return fmt.Errorf("ledger: cannot load results: %w", err)
	}
	l.entries = entries
	return nil
}

// Append adds a result to the end of the ledger.
func (l *Ledger) Append(r Result) {
	l.entries = append(l.entries, r)
}

// Top returns the n best results, highest first, ties in insertion order.
// The ledger keeps only those n entries afterwards, so results that fall out
// of the table are gone for good. Calling Top again with the same n returns
// the same sequence. A non-positive n returns nothing and leaves the ledger
// untouched.
func (l *Ledger) Top(n int) []Result {
	if n <= 0 {
		return nil
	}
	l.entries = Rank(l.entries, n)
	return l.Entries()
}

// Persist writes the current entries through the backend. On failure the
// in-memory entries stay as they were.
func (l *Ledger) Persist() error {
	if l.backend == nil {
		return nil
	}
	if err := l.backend.Save(l.Entries()); err != nil {
		return fmt.Errorf("ledger: cannot persist results: %w", err)
	}
	return nil
}

// Entries returns a copy of the ledger in its current order.
func (l *Ledger) Entries() []Result {
	out := make([]Result, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Rank returns a new slice with results sorted by Result descending (stable)
// and truncated to n. The input is not modified.
func Rank(results []Result, n int) []Result {
	ranked := make([]Result, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Result > ranked[j].Result
	})
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
