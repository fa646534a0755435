package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/osse101/BaroCatalog_Go/internal/domain"
	"github.com/osse101/BaroCatalog_Go/internal/logger"
	"github.com/osse101/BaroCatalog_Go/internal/metrics"
	"github.com/osse101/BaroCatalog_Go/internal/node"
)

// Skip records why a record is missing from the catalog.
type Skip struct {
	ID     string
	File   string
	Reason string
	Err    error
}

// Result is the outcome of resolving a batch of records.
type Result struct {
	Items   []*domain.Item // resolution order
	ByID    map[string]*domain.Item
	Skipped []Skip
}

// SkipCounts returns the number of skipped records per reason.
func (r *Result) SkipCounts() map[string]int {
	counts := make(map[string]int)
	for _, s := range r.Skipped {
		counts[s.Reason]++
	}
	return counts
}

// Index maps explicit identifiers to records. A later record with the same identifier
// replaces an earlier one.
func Index(ctx context.Context, records []*node.Node) map[string]*node.Node {
	log := logger.FromContext(ctx)
	index := make(map[string]*node.Node, len(records))
	for _, rec := range records {
		id, ok := rec.Attr(AttrIdentifier)
		if !ok {
			continue
		}
		if prev, dup := index[id]; dup {
			log.Debug(LogMsgDuplicateIdentifier, "item", id, "previous", prev.File, "file", rec.File)
		}
		index[id] = rec
	}
	return index
}

// ResolveAll resolves every record in order. The variant index is built before any
// record is resolved; a record that cannot be resolved is reported in Result.Skipped
// and never fails the batch.
func (r *Resolver) ResolveAll(ctx context.Context, records []*node.Node) *Result {
	if _, ok := logger.RunIDFromContext(ctx); !ok {
		ctx = logger.WithRunID(ctx, logger.NewRunID())
	}
	log := logger.FromContext(ctx)
	start := time.Now()

	index := Index(ctx, records)
	res := &Result{
		Items: make([]*domain.Item, 0, len(records)),
		ByID:  make(map[string]*domain.Item, len(records)),
	}
	position := make(map[string]int, len(records))

	for _, rec := range records {
		if rec == nil {
			continue
		}
		ancestor := r.ancestorOf(ctx, rec, index)
		item, err := r.ResolveItem(ctx, rec, ancestor)
		if err != nil {
			skip := Skip{ID: ItemID(rec), File: rec.File, Reason: skipReason(err), Err: err}
			res.Skipped = append(res.Skipped, skip)
			metrics.RecordsSkipped.WithLabelValues(skip.Reason).Inc()
			log.Info(LogMsgRecordSkipped, "item", skip.ID, "file", skip.File, "reason", skip.Reason, "error", err)
			continue
		}

		if i, dup := position[item.ID]; dup {
			res.Items[i] = item
		} else {
			position[item.ID] = len(res.Items)
			res.Items = append(res.Items, item)
		}
		res.ByID[item.ID] = item
		metrics.RecordsResolved.Inc()
	}

	elapsed := time.Since(start)
	metrics.ResolveDuration.Observe(elapsed.Seconds())
	log.Info(LogMsgBatchResolved,
		"records", len(records),
		"items", len(res.Items),
		"skipped", len(res.Skipped),
		"duration", elapsed)
	return res
}

func (r *Resolver) ancestorOf(ctx context.Context, rec *node.Node, index map[string]*node.Node) *node.Node {
	parentID, ok := rec.Attr(AttrVariantOf)
	if !ok {
		return nil
	}
	log := logger.FromContext(ctx)
	ancestor, ok := index[parentID]
	if !ok {
		log.Warn(LogMsgAncestorNotFound, "file", rec.File, "variantof", parentID)
		return nil
	}
	if grand, ok := ancestor.Attr(AttrVariantOf); ok {
		log.Debug(LogMsgVariantChain, "variantof", parentID, "ancestor_variantof", grand)
	}
	return ancestor
}

func skipReason(err error) string {
	switch {
	case errors.Is(err, ErrNoDirectory):
		return metrics.ReasonNoDirectory
	case errors.Is(err, ErrNoSprite):
		return metrics.ReasonNoSprite
	default:
		return metrics.ReasonBadSprite
	}
}
