package domain

import (
	"encoding/json"
	"maps"
	"slices"
)

// Listing is one merchant's pricing and availability for an item.
// Field names follow the lowercase attribute names of a Price node.
type Listing struct {
	BasePrice           int            `json:"basePrice" yaml:"basePrice" validate:"gte=0"`
	MinAvailable        int            `json:"minAvailable" yaml:"minAvailable" validate:"gte=0"`
	MaxAvailable        *int           `json:"maxAvailable" yaml:"maxAvailable" validate:"omitempty,gte=0"` // nil: defaults to MinAvailable
	Sold                bool           `json:"sold" yaml:"sold"`
	CanBeSpecial        bool           `json:"canBeSpecial" yaml:"canBeSpecial"`
	Multiplier          float64        `json:"multiplier" yaml:"multiplier" validate:"gte=0"`
	BuyingPriceModifier float64        `json:"buyingPriceModifier" yaml:"buyingPriceModifier" validate:"gte=0"`
	MinLevelDifficulty  int            `json:"minLevelDifficulty" yaml:"minLevelDifficulty" validate:"gte=0,lte=100"`
	RepRequired         map[string]int `json:"repRequired" yaml:"repRequired"` // faction -> minimum reputation
	RequiresUnlock      bool           `json:"requiresUnlock" yaml:"requiresUnlock"`
}

// EffectivePrice is the purchase price at this merchant. Never negative.
func (l Listing) EffectivePrice() float64 {
	p := float64(l.BasePrice) * l.Multiplier * l.BuyingPriceModifier
	if p < 0 {
		return 0
	}
	return p
}

// SellPrice is what this merchant pays for the item.
func (l Listing) SellPrice() float64 {
	p := float64(l.BasePrice) * l.Multiplier * SellPriceRatio
	if p < 0 {
		return 0
	}
	return p
}

// Availability returns the stock range offered. Unsold listings offer nothing.
func (l Listing) Availability() (minimum, maximum int) {
	if !l.Sold {
		return 0, 0
	}
	if l.MaxAvailable == nil {
		return l.MinAvailable, l.MinAvailable
	}
	return l.MinAvailable, *l.MaxAvailable
}

// Clone returns a deep copy so callers never share the reputation map or max pointer.
func (l Listing) Clone() Listing {
	out := l
	if l.MaxAvailable != nil {
		v := *l.MaxAvailable
		out.MaxAvailable = &v
	}
	out.RepRequired = maps.Clone(l.RepRequired)
	if out.RepRequired == nil {
		out.RepRequired = map[string]int{}
	}
	return out
}

// ListingPresets are the process-wide fallbacks used while building listings.
type ListingPresets struct {
	// Catalog is the catalog-wide constant default. An item's baseline listing
	// falls back to it for any field the Price node leaves unset.
	Catalog Listing `json:"default" yaml:"catalog"`
	// Listed is the "commonly offered" default. A merchant-specific listing falls
	// back to it after the item's own baseline.
	Listed Listing `json:"listedDefault" yaml:"listed"`
}

// DefaultListingPresets returns the built-in presets.
func DefaultListingPresets() ListingPresets {
	return ListingPresets{
		Catalog: Listing{
			MinAvailable:        0,
			MaxAvailable:        intPtr(0),
			Sold:                false,
			CanBeSpecial:        true,
			Multiplier:          1.0,
			BuyingPriceModifier: 1.0,
			RepRequired:         map[string]int{},
		},
		Listed: Listing{
			MinAvailable:        5,
			MaxAvailable:        nil,
			Sold:                true,
			CanBeSpecial:        true,
			Multiplier:          1.0,
			BuyingPriceModifier: 1.0,
			RepRequired:         map[string]int{},
		},
	}
}

func intPtr(v int) *int { return &v }

// PricingInfo maps merchant ids to listings. Unknown merchants get the default listing.
type PricingInfo struct {
	def       Listing
	overrides map[string]Listing
}

// NewPricingInfo copies def and overrides into an immutable PricingInfo.
func NewPricingInfo(def Listing, overrides map[string]Listing) *PricingInfo {
	p := &PricingInfo{
		def:       def.Clone(),
		overrides: make(map[string]Listing, len(overrides)),
	}
	for id, l := range overrides {
		p.overrides[id] = l.Clone()
	}
	return p
}

// Default returns the item's baseline listing.
func (p *PricingInfo) Default() Listing {
	return p.def.Clone()
}

// ListingFor returns the merchant's listing, or the default when the merchant has no override.
func (p *PricingInfo) ListingFor(merchant string) Listing {
	if l, ok := p.overrides[merchant]; ok {
		return l.Clone()
	}
	return p.def.Clone()
}

// Override returns the merchant-specific listing only.
func (p *PricingInfo) Override(merchant string) (Listing, bool) {
	l, ok := p.overrides[merchant]
	if !ok {
		return Listing{}, false
	}
	return l.Clone(), true
}

// Merchants returns the merchants with their own listing, sorted.
func (p *PricingInfo) Merchants() []string {
	return slices.Sorted(maps.Keys(p.overrides))
}

// MarshalJSON writes the overrides plus the baseline under "default".
func (p *PricingInfo) MarshalJSON() ([]byte, error) {
	out := make(map[string]Listing, len(p.overrides)+1)
	for id, l := range p.overrides {
		out[id] = l
	}
	out[DefaultMerchant] = p.def
	return json.Marshal(out)
}
