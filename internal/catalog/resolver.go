// Package catalog turns loaded content records into resolved catalog items.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/osse101/BaroCatalog_Go/internal/domain"
	"github.com/osse101/BaroCatalog_Go/internal/logger"
	"github.com/osse101/BaroCatalog_Go/internal/metrics"
	"github.com/osse101/BaroCatalog_Go/internal/node"
	"github.com/osse101/BaroCatalog_Go/internal/pricing"
	"github.com/osse101/BaroCatalog_Go/internal/recipe"
	"github.com/osse101/BaroCatalog_Go/internal/texture"
	"github.com/osse101/BaroCatalog_Go/internal/variant"
)

// Resolver builds one Item per record. It holds no per-record state and can be reused.
type Resolver struct {
	pricing *pricing.Resolver
	texts   TextSource
}

// NewResolver creates a Resolver. A nil text source behaves like NoTexts.
func NewResolver(p *pricing.Resolver, texts TextSource) *Resolver {
	if texts == nil {
		texts = NoTexts{}
	}
	return &Resolver{pricing: p, texts: texts}
}

// ResolveItem resolves a record against its optional variant ancestor.
//
// Records without an origin directory or a usable sprite are rejected with an error
// wrapping domain.ErrUnresolvableRecord. Failures in pricing, deconstruction, recipes,
// the inventory icon or colours only drop that part of the item.
func (r *Resolver) ResolveItem(ctx context.Context, record, ancestor *node.Node) (*domain.Item, error) {
	if record == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnresolvableRecord, ErrMsgNoRecord)
	}
	if record.Dir == "" {
		return nil, ErrNoDirectory
	}

	m := variant.New(record, ancestor)
	sprite, ok := m.Child(domain.TagSprite)
	if !ok {
		return nil, ErrNoSprite
	}

	id := ItemID(record)
	log := logger.FromContext(ctx).With("item", id)

	spriteTint := r.colour(ctx, m, AttrSpriteColor)
	spriteTex, err := texture.ResolveSprite(sprite, originDir(sprite, record), spriteTint)
	if err != nil {
		return nil, fmt.Errorf("%w: sprite: %w", domain.ErrUnresolvableRecord, err)
	}

	name, desc := r.localize(record, id)
	if gm, ok := m.Child(domain.TagGeneticMat); ok {
		name, desc = r.substituteMaterial(gm, name, desc)
	}

	item := &domain.Item{
		ID:          id,
		Name:        name,
		Description: desc,
		Category:    m.String(AttrCategory, domain.DefaultCategory),
		Tags:        splitTags(m.String(AttrTags, "")),
		Sprite:      spriteTex,
	}

	if price, ok := m.Child(domain.TagPrice); ok {
		info, err := r.pricing.Resolve(ctx, price)
		if err != nil {
			downgrade(log, metrics.ComponentPricing, err)
		} else {
			item.Pricing = info
		}
	}

	if decon, ok := m.Child(domain.TagDeconstruct); ok {
		d, err := recipe.ResolveDeconstruct(decon)
		if err != nil {
			downgrade(log, metrics.ComponentDeconstruct, err)
		} else {
			item.Deconstruct = d
		}
	}

	recipes, errs := recipe.ResolveAll(m.Children(domain.TagFabricate))
	for _, err := range errs {
		downgrade(log, metrics.ComponentRecipe, err)
	}
	item.Recipes = recipes

	if icon, ok := m.Child(domain.TagInventoryIcon); ok {
		tex, err := texture.ResolveIcon(icon, originDir(icon, record), r.colour(ctx, m, AttrInventoryIconColor))
		if err != nil {
			downgrade(log, metrics.ComponentIcon, err)
		} else {
			item.Icon = tex
		}
	}

	return item, nil
}

// ItemID returns the record's explicit identifier, or the origin file name joined with
// a hash of the record's structure and its ordinal in that file when it has none.
func ItemID(record *node.Node) string {
	if id, ok := record.Attr(AttrIdentifier); ok {
		return id
	}
	d := xxhash.New()
	_, _ = d.WriteString(strconv.Itoa(record.Ordinal) + "\x00")
	writeNode(d, record)
	return fmt.Sprintf("%s_%016x", record.File, d.Sum64())
}

// writeNode hashes tag, attributes, text and children in document order.
func writeNode(d *xxhash.Digest, n *node.Node) {
	_, _ = d.WriteString("<" + n.Tag)
	for _, a := range n.Attrs {
		_, _ = d.WriteString("\x00" + a.Name + "=" + a.Value)
	}
	_, _ = d.WriteString(">" + n.Text)
	for _, c := range n.Children {
		writeNode(d, c)
	}
	_, _ = d.WriteString("</>")
}

// Names maps the explicit identifier of every record to its display name: the text
// table entry, then the record's name attribute, then the identifier. Records need not
// resolve to be named. A later record with the same identifier replaces an earlier one.
func (r *Resolver) Names(records []*node.Node) map[string]string {
	names := make(map[string]string, len(records))
	for _, rec := range records {
		id, ok := rec.Attr(AttrIdentifier)
		if !ok {
			continue
		}
		name, ok := r.texts.Lookup(TextPrefixName + rec.String(AttrNameIdentifier, id))
		if !ok {
			name = rec.String(AttrName, id)
		}
		names[id] = name
	}
	return names
}

func (r *Resolver) localize(record *node.Node, id string) (name, desc string) {
	name, ok := r.texts.Lookup(TextPrefixName + record.String(AttrNameIdentifier, id))
	if !ok {
		name = id
	}
	desc, _ = r.texts.Lookup(TextPrefixDescription + record.String(AttrDescriptionIdentifier, id))
	return name, desc
}

// substituteMaterial fills the generic genetic material placeholders. Either
// substitution is skipped when its inputs are missing.
func (r *Resolver) substituteMaterial(gm *node.Node, name, desc string) (string, string) {
	if key, ok := gm.Attr(AttrNameIdentifier); ok {
		typeName, found := r.texts.Lookup(key)
		if !found {
			typeName, found = r.texts.Lookup(TextPrefixName + key)
		}
		if found {
			name = strings.ReplaceAll(name, PlaceholderType, typeName)
		}
	}
	lo, okLo := gm.Attr(AttrTooltipValueMin)
	hi, okHi := gm.Attr(AttrTooltipValueMax)
	if okLo && okHi {
		desc = strings.ReplaceAll(desc, PlaceholderValue, lo+"-"+hi)
	}
	return name, desc
}

func (r *Resolver) colour(ctx context.Context, m *variant.Merger, key string) *domain.Colour {
	s, ok := m.Attr(key)
	if !ok {
		return nil
	}
	c, err := texture.ParseColour(s)
	if err != nil {
		downgrade(logger.FromContext(ctx), metrics.ComponentColour, err)
		return nil
	}
	return &c
}

// originDir is the directory relative texture paths resolve against: the ancestor's
// for borrowed nodes, the record's otherwise.
func originDir(n, record *node.Node) string {
	if n.Dir != "" {
		return n.Dir
	}
	return record.Dir
}

func splitTags(s string) []string {
	tags := []string{}
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func downgrade(log *slog.Logger, component string, err error) {
	metrics.SubtreesDowngraded.WithLabelValues(component).Inc()
	log.Warn(LogMsgSubtreeDowngraded, "component", component, "error", err)
}
