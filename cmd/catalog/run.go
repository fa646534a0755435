package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/BaroCatalog_Go/internal/catalog"
	"github.com/osse101/BaroCatalog_Go/internal/config"
	"github.com/osse101/BaroCatalog_Go/internal/content"
	"github.com/osse101/BaroCatalog_Go/internal/domain"
	"github.com/osse101/BaroCatalog_Go/internal/export"
	"github.com/osse101/BaroCatalog_Go/internal/locate"
	"github.com/osse101/BaroCatalog_Go/internal/logger"
	"github.com/osse101/BaroCatalog_Go/internal/metrics"
	"github.com/osse101/BaroCatalog_Go/internal/pricing"
	"github.com/osse101/BaroCatalog_Go/internal/text"
	"github.com/osse101/BaroCatalog_Go/internal/validation"
)

// summary counts what one run produced.
type summary struct {
	Resolved   int
	Skipped    int
	SkipCounts map[string]int
	Exported   int
	Textures   int
}

// run loads, resolves and exports the catalog. Per-item export failures are logged and
// counted; only failures that leave no usable output are returned.
func run(ctx context.Context, cfg *config.Config, textures bool) (*summary, error) {
	log := logger.FromContext(ctx)
	loc := locate.NewLocator(cfg.GameRoot, cfg.PathCacheSize, cfg.PathCacheTTL)

	pkgPath := cfg.PackageFile
	if pkgPath == "" {
		pkgPath = content.VanillaPackagePath
	}
	pkg, err := content.LoadPackage(loc, pkgPath)
	if err != nil {
		log.Warn(LogMsgPackageFallback, "package", pkgPath, "error", err)
		pkg = nil
	} else {
		log.Info(LogMsgGameVersion, "package", pkg.Name, "version", pkg.Version)
	}

	var texts catalog.TextSource = catalog.NoTexts{}
	if table, err := text.Load(ctx, loc, cfg.Language); err != nil {
		log.Warn(LogMsgTextsUnavailable, "language", cfg.Language, "error", err)
	} else {
		texts = table
	}

	loader := content.NewLoader(loc, content.Options{SkipEventItems: cfg.SkipEventItems})
	files, err := loader.ItemFiles(ctx, pkg)
	if err != nil {
		return nil, err
	}
	records, err := loader.LoadRecords(ctx, files)
	if err != nil {
		return nil, err
	}

	resolver := catalog.NewResolver(pricing.NewResolver(cfg.Listings.Presets), texts)
	res := resolver.ResolveAll(ctx, records)

	out := &summary{
		Resolved:   len(res.Items),
		Skipped:    len(res.Skipped),
		SkipCounts: res.SkipCounts(),
	}

	exp := export.NewExporter(cfg.OutputDir, validation.NewSchemaValidator(), cfg.SchemaPath)
	ids, err := exp.WriteItems(ctx, res.Items)
	if err != nil {
		log.Warn(LogMsgExportIncomplete, "error", err)
	}
	out.Exported = len(ids)
	if len(res.Items) > 0 && len(ids) == 0 {
		return out, fmt.Errorf("no items exported: %w", err)
	}
	if err := exp.WriteItemList(ids); err != nil {
		return out, err
	}
	if err := exp.WriteDefaultListing(ctx, cfg.Listings.Merchants, cfg.Listings.Presets); err != nil {
		return out, err
	}
	written := exported(res, ids)
	if err := exp.WriteSearchDoc(ctx, written, resolver.Names(records)); err != nil {
		return out, err
	}

	if textures {
		n, err := writeTextures(ctx, cfg, loc, written)
		out.Textures = n
		if err != nil {
			log.Warn(LogMsgExportIncomplete, "error", err)
		}
	}

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			return out, err
		}
		log.Info(LogMsgMetricsWritten, "file", cfg.MetricsFile)
	}
	return out, nil
}

func writeTextures(ctx context.Context, cfg *config.Config, loc *locate.Locator, items []*domain.Item) (int, error) {
	cropper, err := export.NewPNGCropper(export.DefaultSheetCacheSize)
	if err != nil {
		return 0, err
	}
	w := export.NewTextureWriter(cfg.OutputDir, loc, cropper, cfg.Workers)
	n, err := w.Write(ctx, export.Jobs(items))
	if err != nil && n == 0 && len(items) > 0 {
		return 0, errors.Join(errors.New("no textures written"), err)
	}
	return n, err
}

// exported returns the items whose documents were written, in resolution order.
func exported(res *catalog.Result, ids []string) []*domain.Item {
	items := make([]*domain.Item, 0, len(ids))
	for _, id := range ids {
		if item, ok := res.ByID[id]; ok {
			items = append(items, item)
		}
	}
	return items
}
