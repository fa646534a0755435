// Package locate finds game files on disk. Content files reference each other with
// paths whose case often differs from the files on disk, which matters on case-sensitive
// file systems.
package locate

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Defaults for NewLocator callers that have no configuration.
const (
	DefaultCacheSize = 4096
	DefaultCacheTTL  = 0
)

// ErrNotFound is returned when no file matches a game path, in any case.
var ErrNotFound = fmt.Errorf("game path not found: %w", fs.ErrNotExist)

// Locator resolves game-root-relative slash paths to files under root.
type Locator struct {
	root  string
	cache *pathCache
}

// NewLocator creates a Locator for the game installation at root.
func NewLocator(root string, cacheSize int, ttl time.Duration) *Locator {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	return &Locator{root: root, cache: newPathCache(cacheSize, ttl)}
}

// Root returns the game installation directory.
func (l *Locator) Root() string {
	return l.root
}

// Clean normalises a game path: forward slashes, no leading slash, no dot segments.
func Clean(rel string) string {
	rel = strings.ReplaceAll(strings.TrimSpace(rel), `\`, "/")
	return strings.TrimPrefix(path.Clean("/"+rel), "/")
}

// Resolve returns the on-disk path for a game path. An exact match is used when it
// exists; otherwise each segment is matched case-insensitively.
func (l *Locator) Resolve(rel string) (string, error) {
	rel = Clean(rel)
	key := strings.ToLower(rel)
	if p, ok := l.cache.Get(key); ok {
		return p, nil
	}

	exact := filepath.Join(l.root, filepath.FromSlash(rel))
	if _, err := os.Stat(exact); err == nil {
		l.cache.Set(key, exact)
		return exact, nil
	}

	cur := l.root
	if rel != "" {
		for _, seg := range strings.Split(rel, "/") {
			next, err := matchEntry(cur, seg)
			if err != nil {
				return "", fmt.Errorf("%w: %s", ErrNotFound, rel)
			}
			cur = filepath.Join(cur, next)
		}
	}
	l.cache.Set(key, cur)
	return cur, nil
}

// Open resolves and opens a game path.
func (l *Locator) Open(rel string) (*os.File, error) {
	p, err := l.Resolve(rel)
	if err != nil {
		return nil, err
	}
	return os.Open(p)
}

// Find lists the game paths of files under dir with the given extension, recursively
// and sorted. Returned paths keep the on-disk case.
func (l *Locator) Find(dir, ext string) ([]string, error) {
	base, err := l.Resolve(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	err = filepath.WalkDir(base, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(p), ext) {
			return nil
		}
		rel, err := filepath.Rel(l.root, p)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	sort.Strings(out)
	return out, nil
}

func matchEntry(dir, name string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}
	for _, e := range entries {
		if e.Name() == name {
			return name, nil
		}
	}
	for _, e := range entries {
		if strings.EqualFold(e.Name(), name) {
			return e.Name(), nil
		}
	}
	return "", errors.New("no match")
}
