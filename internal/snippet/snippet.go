// Copyright Speech Synthesis Lab, 2026. All rights reserved.

// Package snippet collects slide text from a directory of plain-text files.
// Each recognized file becomes one entry: the filename (extension removed) is
// the entry identifier and the file contents (trimmed) are the slide body.
package snippet

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// textExtensions is the recognized set of snippet file extensions. The match
// is case-sensitive: only these four spellings are accepted.
var textExtensions = map[string]bool{
	".txt":  true,
	".TXT":  true,
	".text": true,
	".TEXT": true,
}

// Entry is one collected snippet.
type Entry struct {
	// ID is the source file's base name with the extension removed.
	ID string

	// Content is the file body with leading and trailing whitespace trimmed.
	Content string
}

// Collection holds the collected entries in deck order. Order is the sorted
// filename order of the source directory, fixed at collection time.
type Collection struct {
	ids     []string
	entries map[string]Entry
}

// Len returns the number of entries.
func (c *Collection) Len() int {
	return len(c.ids)
}

// IDs returns the entry identifiers in deck order.
func (c *Collection) IDs() []string {
	out := make([]string, len(c.ids))
	copy(out, c.ids)
	return out
}

// Get returns the entry for id, if present.
func (c *Collection) Get(id string) (Entry, bool) {
	e, ok := c.entries[id]
	return e, ok
}

// Entries returns the entries in deck order.
func (c *Collection) Entries() []Entry {
	out := make([]Entry, 0, len(c.ids))
	for _, id := range c.ids {
		out = append(out, c.entries[id])
	}
	return out
}

// add stores an entry, replacing any previous entry with the same ID while
// keeping its original position.
func (c *Collection) add(e Entry) {
	if _, exists := c.entries[e.ID]; !exists {
		c.ids = append(c.ids, e.ID)
	}
	c.entries[e.ID] = e
}

// Collect reads all recognized text files in dir and returns them as a
// Collection. Entries follow sorted filename order. Two files sharing a base
// name under different extensions collapse to a single entry; the
// last-enumerated file wins. A missing or unreadable directory is an error.
func Collect(dir string) (*Collection, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading text directory %s: %w", dir, err)
	}

	col := &Collection{entries: make(map[string]Entry)}
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		name := de.Name()
		ext := filepath.Ext(name)
		if !textExtensions[ext] {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("reading snippet %s: %w", name, err)
		}

		col.add(Entry{
			ID:      strings.TrimSuffix(name, ext),
			Content: strings.TrimSpace(string(data)),
		})
	}

	return col, nil
}
