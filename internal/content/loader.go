// Package content reads content package definitions and the item records they list.
package content

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/osse101/BaroCatalog_Go/internal/domain"
	"github.com/osse101/BaroCatalog_Go/internal/locate"
	"github.com/osse101/BaroCatalog_Go/internal/logger"
	"github.com/osse101/BaroCatalog_Go/internal/metrics"
	"github.com/osse101/BaroCatalog_Go/internal/node"
)

// Options control which records the loader keeps.
type Options struct {
	// SkipEventItems drops records whose identifier ends in "_event".
	SkipEventItems bool
}

// Loader reads item records from a game installation.
type Loader struct {
	locator *locate.Locator
	opts    Options
}

// NewLoader creates a Loader reading through loc.
func NewLoader(loc *locate.Locator, opts Options) *Loader {
	return &Loader{locator: loc, opts: opts}
}

// ItemFiles returns the item files listed by the package, or every XML file under
// Content/Items when the package is nil or lists none.
func (l *Loader) ItemFiles(ctx context.Context, pkg *domain.ContentPackage) ([]string, error) {
	if pkg != nil && len(pkg.Items) > 0 {
		return pkg.Items, nil
	}
	logger.FromContext(ctx).Info(LogMsgDiscoveredFiles, "dir", ItemsDir)
	found, err := l.locator.Find(ItemsDir, XMLExt)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListItemsFailed, err)
	}
	return found, nil
}

// LoadRecords loads the records of every file in order. A file that cannot be read or
// parsed is logged and skipped; an error is returned only when nothing could be loaded
// from a non-empty file list.
func (l *Loader) LoadRecords(ctx context.Context, files []string) ([]*node.Node, error) {
	log := logger.FromContext(ctx)

	var records []*node.Node
	loaded := 0
	for _, f := range files {
		recs, err := l.LoadFile(ctx, f)
		if err != nil {
			log.Warn(LogMsgFileFailed, "file", f, "error", err)
			continue
		}
		loaded++
		records = append(records, recs...)
	}
	if len(files) > 0 && loaded == 0 {
		return nil, fmt.Errorf(ErrMsgNoRecordsLoaded, len(files))
	}

	log.Info(LogMsgRecordsLoaded, "files", loaded, "records", len(records))
	return records, nil
}

// LoadFile loads the records of one item file. Files whose root is not <Items>
// (item assemblies and other prefabs) yield no records. Each record gets the file's
// directory and name as origin metadata.
func (l *Loader) LoadFile(ctx context.Context, file string) ([]*node.Node, error) {
	file = locate.Clean(file)
	f, err := l.locator.Open(file)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgOpenRecordsFailed, file, err)
	}
	defer f.Close()

	root, err := node.Decode(f)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgParseRecordsFailed, file, err)
	}
	log := logger.FromContext(ctx)
	if root.Tag != domain.TagItems {
		log.Debug(LogMsgNotAnItemsFile, "file", file, "root", root.Tag)
		return nil, nil
	}

	dir, name := path.Split(file)
	dir = strings.TrimSuffix(dir, "/")
	records := make([]*node.Node, 0, len(root.Children))
	for i, rec := range root.Children {
		if l.opts.SkipEventItems && isEventItem(rec) {
			metrics.RecordsSkipped.WithLabelValues(metrics.ReasonFiltered).Inc()
			log.Debug(LogMsgEventSkipped, "item", rec.String(AttrIdentifier, ""), "file", file)
			continue
		}
		rec.Dir = dir
		rec.File = name
		rec.Ordinal = i
		records = append(records, rec)
	}
	return records, nil
}

func isEventItem(rec *node.Node) bool {
	id, ok := rec.Attr(AttrIdentifier)
	return ok && strings.HasSuffix(id, EventSuffix)
}
