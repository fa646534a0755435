// Package pricing builds per-merchant listings from a Price sub-tree.
//
// Every field of a merchant listing resolves in this order: the merchant's own
// <Price storeidentifier=...> attribute, the attribute on the item-level Price node,
// then the "listed" preset. The item's baseline (returned for unknown merchants) resolves
// from the item-level attribute, then the catalog preset.
package pricing

import (
	"context"
	"fmt"
	"maps"
	"strings"

	"github.com/osse101/BaroCatalog_Go/internal/domain"
	"github.com/osse101/BaroCatalog_Go/internal/logger"
	"github.com/osse101/BaroCatalog_Go/internal/node"
)

// Resolver turns merged Price nodes into PricingInfo.
type Resolver struct {
	presets domain.ListingPresets
}

// NewResolver creates a Resolver using the given presets.
func NewResolver(presets domain.ListingPresets) *Resolver {
	return &Resolver{presets: presets}
}

// Presets returns the presets this resolver falls back to.
func (r *Resolver) Presets() domain.ListingPresets {
	return r.presets
}

// Resolve builds the PricingInfo for a Price node. A nil node yields nil: the item is not tradeable.
func (r *Resolver) Resolve(ctx context.Context, price *node.Node) (*domain.PricingInfo, error) {
	if price == nil {
		return nil, nil
	}
	if !price.IsTag(domain.TagPrice) {
		return nil, fmt.Errorf(ErrFmtNotPrice, domain.ErrStructuralMismatch, price.Tag)
	}
	log := logger.FromContext(ctx)

	item, err := readListing(price)
	if err != nil {
		return nil, err
	}
	if item.basePrice == nil {
		return nil, fmt.Errorf(ErrFmtMissingBasePrice, domain.ErrMissingRequiredAttribute, price.Tag)
	}

	requiredFaction, hasRequiredFaction := price.Attr(AttrRequiredFaction)
	if hasRequiredFaction {
		item.requireFaction(requiredFaction)
	}

	if _, ok := price.Child(domain.TagClear); ok {
		log.Warn(LogMsgClearIgnored, "file", price.File)
	}
	if item.skippedFactions > 0 {
		log.Debug(LogMsgEmptyFaction, "count", item.skippedFactions)
	}

	overrides := make(map[string]domain.Listing)
	for _, child := range price.ChildrenByTag(domain.TagPrice) {
		store, ok := child.Attr(AttrStoreIdentifier)
		if !ok {
			continue
		}
		merchant := NormalizeMerchantID(store)

		attrs, err := readListing(child)
		if err != nil {
			return nil, fmt.Errorf(ErrFmtMerchantListing, merchant, err)
		}
		if hasRequiredFaction && attrs.repRequired != nil {
			attrs.requireFaction(requiredFaction)
		}

		if _, dup := overrides[merchant]; dup {
			log.Debug(LogMsgDuplicateMerchant, "merchant", merchant)
		}
		// Merchants fall back to the listed preset, not the catalog default, as the front end expects.
		overrides[merchant] = attrs.over(item.over(r.presets.Listed))
	}

	return domain.NewPricingInfo(item.over(r.presets.Catalog), overrides), nil
}

// NormalizeMerchantID strips the literal "merchant" prefix from a store identifier.
func NormalizeMerchantID(storeIdentifier string) string {
	return strings.TrimPrefix(storeIdentifier, domain.MerchantPrefix)
}

// listingAttrs holds the fields a single Price node sets explicitly. nil means unset.
type listingAttrs struct {
	basePrice           *int
	minAvailable        *int
	maxAvailable        *int
	sold                *bool
	canBeSpecial        *bool
	multiplier          *float64
	buyingPriceModifier *float64
	minLevelDifficulty  *int
	requiresUnlock      *bool
	repRequired         map[string]int // nil: no Reputation children

	skippedFactions int
}

func readListing(n *node.Node) (listingAttrs, error) {
	var a listingAttrs
	var err error
	if a.basePrice, err = optInt(n, AttrBasePrice); err != nil {
		return a, err
	}
	if a.minAvailable, err = optInt(n, AttrMinAvailable); err != nil {
		return a, err
	}
	if a.maxAvailable, err = optInt(n, AttrMaxAvailable); err != nil {
		return a, err
	}
	if a.minLevelDifficulty, err = optInt(n, AttrMinLevelDifficulty); err != nil {
		return a, err
	}
	if a.sold, err = optBool(n, AttrSold); err != nil {
		return a, err
	}
	if a.canBeSpecial, err = optBool(n, AttrCanBeSpecial); err != nil {
		return a, err
	}
	if a.requiresUnlock, err = optBool(n, AttrRequiresUnlock); err != nil {
		return a, err
	}
	if a.multiplier, err = optFloat(n, AttrMultiplier); err != nil {
		return a, err
	}
	if a.buyingPriceModifier, err = optFloat(n, AttrBuyingPriceModifier); err != nil {
		return a, err
	}

	reps := n.ChildrenByTag(domain.TagReputation)
	if len(reps) > 0 {
		a.repRequired = make(map[string]int, len(reps))
		for _, rep := range reps {
			faction, ok := rep.Attr(AttrFaction)
			if !ok {
				a.skippedFactions++
				continue
			}
			minRep, err := rep.IntOr(AttrMin, 0)
			if err != nil {
				return a, err
			}
			a.repRequired[faction] = minRep
		}
	}
	return a, nil
}

// requireFaction adds the implied minimum reputation for a requiredfaction attribute.
func (a *listingAttrs) requireFaction(faction string) {
	if a.repRequired == nil {
		a.repRequired = make(map[string]int, 1)
	}
	a.repRequired[faction] = domain.RequiredFactionReputation
}

// over returns base with every explicitly set field replaced.
// A set reputation map replaces the base map wholesale.
func (a listingAttrs) over(base domain.Listing) domain.Listing {
	out := base.Clone()
	if a.basePrice != nil {
		out.BasePrice = *a.basePrice
	}
	if a.minAvailable != nil {
		out.MinAvailable = *a.minAvailable
	}
	if a.maxAvailable != nil {
		v := *a.maxAvailable
		out.MaxAvailable = &v
	}
	if a.sold != nil {
		out.Sold = *a.sold
	}
	if a.canBeSpecial != nil {
		out.CanBeSpecial = *a.canBeSpecial
	}
	if a.multiplier != nil {
		out.Multiplier = *a.multiplier
	}
	if a.buyingPriceModifier != nil {
		out.BuyingPriceModifier = *a.buyingPriceModifier
	}
	if a.minLevelDifficulty != nil {
		out.MinLevelDifficulty = *a.minLevelDifficulty
	}
	if a.requiresUnlock != nil {
		out.RequiresUnlock = *a.requiresUnlock
	}
	if a.repRequired != nil {
		out.RepRequired = maps.Clone(a.repRequired)
	}
	return out
}

func optInt(n *node.Node, key string) (*int, error) {
	v, ok, err := n.Int(key)
	if err != nil || !ok {
		return nil, err
	}
	return &v, nil
}

func optFloat(n *node.Node, key string) (*float64, error) {
	v, ok, err := n.Float(key)
	if err != nil || !ok {
		return nil, err
	}
	return &v, nil
}

func optBool(n *node.Node, key string) (*bool, error) {
	v, ok, err := n.Bool(key)
	if err != nil || !ok {
		return nil, err
	}
	return &v, nil
}
