// Package text loads localized text tables (infotexts).
package text

import (
	"context"
	"fmt"
	"io"
	"path"

	"golang.org/x/text/cases"

	"github.com/osse101/BaroCatalog_Go/internal/locate"
	"github.com/osse101/BaroCatalog_Go/internal/logger"
	"github.com/osse101/BaroCatalog_Go/internal/node"
)

// TextsDir holds one sub-directory per language.
const TextsDir = "Content/Texts"

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = "English"

// Log messages
const (
	LogMsgTextFileFailed = "Text file could not be loaded, skipping"
	LogMsgTextsLoaded    = "Text tables loaded"
)

// Table maps text ids to their localized variants. Keys are case-insensitive; when an
// id is defined more than once every value is kept in load order.
type Table struct {
	entries map[string][]string
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{entries: make(map[string][]string)}
}

func key(id string) string {
	return cases.Fold().String(id)
}

// Add appends a value for id.
func (t *Table) Add(id, value string) {
	k := key(id)
	t.entries[k] = append(t.entries[k], value)
}

// Lookup returns the first value for id.
func (t *Table) Lookup(id string) (string, bool) {
	vs := t.entries[key(id)]
	if len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

// All returns every value for id.
func (t *Table) All(id string) []string {
	return t.entries[key(id)]
}

// Len returns the number of distinct ids.
func (t *Table) Len() int {
	return len(t.entries)
}

// Parse adds every child element of an infotexts document: the tag is the id and the
// element text the value. Elements without text are ignored.
func (t *Table) Parse(r io.Reader) error {
	root, err := node.Decode(r)
	if err != nil {
		return fmt.Errorf("failed to parse text file: %w", err)
	}
	for _, c := range root.Children {
		if c.Text == "" {
			continue
		}
		t.Add(c.Tag, c.Text)
	}
	return nil
}

// Load reads every text file of a language from the installation. Unreadable files are
// logged and skipped.
func Load(ctx context.Context, loc *locate.Locator, language string) (*Table, error) {
	if language == "" {
		language = DefaultLanguage
	}
	files, err := loc.Find(path.Join(TextsDir, language), ".xml")
	if err != nil {
		return nil, fmt.Errorf("failed to list %s texts: %w", language, err)
	}

	log := logger.FromContext(ctx)
	t := NewTable()
	for _, f := range files {
		if err := t.loadFile(loc, f); err != nil {
			log.Warn(LogMsgTextFileFailed, "file", f, "error", err)
		}
	}
	log.Info(LogMsgTextsLoaded, "language", language, "files", len(files), "entries", t.Len())
	return t, nil
}

func (t *Table) loadFile(loc *locate.Locator, file string) error {
	f, err := loc.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()
	return t.Parse(f)
}
