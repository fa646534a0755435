// Package export writes resolved catalog items as JSON documents and cropped textures.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/osse101/BaroCatalog_Go/internal/domain"
	"github.com/osse101/BaroCatalog_Go/internal/logger"
	"github.com/osse101/BaroCatalog_Go/internal/metrics"
	"github.com/osse101/BaroCatalog_Go/internal/validation"
)

// Exporter writes catalog documents under one output directory.
type Exporter struct {
	outDir     string
	validator  validation.SchemaValidator
	schemaPath string
}

// NewExporter creates an Exporter. An empty schemaPath uses DefaultSchemaPath; a nil
// validator disables document validation.
func NewExporter(outDir string, v validation.SchemaValidator, schemaPath string) *Exporter {
	if schemaPath == "" {
		schemaPath = DefaultSchemaPath
	}
	return &Exporter{outDir: outDir, validator: v, schemaPath: schemaPath}
}

// OutDir returns the directory documents are written to.
func (e *Exporter) OutDir() string {
	return e.outDir
}

// DefaultListing is the document describing the merchants and the preset listings.
type DefaultListing struct {
	Merchants     []string       `json:"merchants"`
	Default       domain.Listing `json:"default"`
	ListedDefault domain.Listing `json:"listedDefault"`
}

// WriteItems writes one <id>.json document per item. Items whose document fails schema
// validation or cannot be written are logged and left out; the returned error counts them.
// It returns the ids of the items written, in input order.
func (e *Exporter) WriteItems(ctx context.Context, items []*domain.Item) ([]string, error) {
	log := logger.FromContext(ctx)

	written := make([]string, 0, len(items))
	for _, item := range items {
		if err := e.writeItem(item); err != nil {
			log.Warn(LogMsgItemRejected, "item", item.ID, "error", err)
			continue
		}
		metrics.ItemsExported.Inc()
		written = append(written, item.ID)
	}

	log.Info(LogMsgItemsWritten, "dir", e.outDir, "items", len(written))
	if failed := len(items) - len(written); failed > 0 {
		return written, fmt.Errorf(ErrMsgItemsFailed, failed, len(items))
	}
	return written, nil
}

func (e *Exporter) writeItem(item *domain.Item) error {
	data, err := json.MarshalIndent(item, "", "  ")
	if err != nil {
		metrics.ExportFailures.WithLabelValues(StageEncode).Inc()
		return fmt.Errorf(ErrMsgMarshalFailed, err)
	}
	if e.validator != nil {
		if err := e.validator.ValidateBytes(data, e.schemaPath); err != nil {
			metrics.ExportFailures.WithLabelValues(StageValidate).Inc()
			return err
		}
	}
	if err := writeFile(e.itemPath(item.ID), data); err != nil {
		metrics.ExportFailures.WithLabelValues(StageWrite).Inc()
		return err
	}
	return nil
}

func (e *Exporter) itemPath(id string) string {
	return filepath.Join(e.outDir, id+".json")
}

// WriteItemList writes the list of exported ids.
func (e *Exporter) WriteItemList(ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	if err := SaveJSON(filepath.Join(e.outDir, ItemListFile), ids); err != nil {
		metrics.ExportFailures.WithLabelValues(StageWrite).Inc()
		return err
	}
	return nil
}

// WriteDefaultListing writes the merchant list with the catalog and listed presets.
func (e *Exporter) WriteDefaultListing(ctx context.Context, merchants []string, presets domain.ListingPresets) error {
	if merchants == nil {
		merchants = []string{}
	}
	doc := DefaultListing{
		Merchants:     merchants,
		Default:       presets.Catalog.Clone(),
		ListedDefault: presets.Listed.Clone(),
	}
	if err := SaveJSON(filepath.Join(e.outDir, DefaultListingFile), doc); err != nil {
		metrics.ExportFailures.WithLabelValues(StageWrite).Inc()
		return err
	}
	logger.FromContext(ctx).Info(LogMsgListingWritten, "merchants", len(merchants))
	return nil
}
