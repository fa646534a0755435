package export

import (
	"context"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/osse101/BaroCatalog_Go/internal/domain"
	"github.com/osse101/BaroCatalog_Go/internal/logger"
	"github.com/osse101/BaroCatalog_Go/internal/metrics"
)

// SearchEntry is one item in the search document. Ingredient and output names are
// flattened into strings so the search front end can index them as text.
type SearchEntry struct {
	ID       string `json:"identifier"`
	Name     string `json:"name"`
	Recipes  string `json:"recipes"`  // recipes joined by ";", ingredients by ","
	DeconsTo string `json:"deconsTo"` // output names joined by ","
	Price    string `json:"prices"`   // default base price, empty when not tradeable
}

// SearchEntries builds one entry per item. names maps ids to display names; ids missing
// from it are used as their own name.
func SearchEntries(items []*domain.Item, names map[string]string) []SearchEntry {
	nameOf := func(id string) string {
		if n, ok := names[id]; ok && n != "" {
			return n
		}
		return id
	}

	entries := make([]SearchEntry, 0, len(items))
	for _, item := range items {
		recipes := make([]string, 0, len(item.Recipes))
		for _, r := range item.Recipes {
			recipes = append(recipes, joinNames(r.Required, nameOf))
		}
		entry := SearchEntry{
			ID:      item.ID,
			Name:    item.Name,
			Recipes: strings.Join(recipes, ";"),
		}
		if item.Deconstruct != nil {
			entry.DeconsTo = joinNames(item.Deconstruct.Output, nameOf)
		}
		if item.Pricing != nil {
			entry.Price = strconv.Itoa(item.Pricing.Default().BasePrice)
		}
		entries = append(entries, entry)
	}
	return entries
}

// joinNames lists the names of the ids in amounts, sorted by id.
func joinNames(amounts map[string]int, nameOf func(string) string) string {
	ids := make([]string, 0, len(amounts))
	for id := range amounts {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = nameOf(id)
	}
	return strings.Join(out, ",")
}

// WriteSearchDoc writes the search document for items.
func (e *Exporter) WriteSearchDoc(ctx context.Context, items []*domain.Item, names map[string]string) error {
	entries := SearchEntries(items, names)
	if err := SaveJSON(filepath.Join(e.outDir, SearchDocFile), entries); err != nil {
		metrics.ExportFailures.WithLabelValues(StageWrite).Inc()
		return err
	}
	logger.FromContext(ctx).Info(LogMsgSearchDocWritten, "items", len(entries))
	return nil
}
