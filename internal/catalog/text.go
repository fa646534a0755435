package catalog

// TextSource looks up localized strings by text id.
type TextSource interface {
	Lookup(key string) (string, bool)
}

// NoTexts is a TextSource with no entries. Names fall back to ids.
type NoTexts struct{}

// Lookup always misses.
func (NoTexts) Lookup(string) (string, bool) { return "", false }
