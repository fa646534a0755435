package domain

// Item is a resolved, tradeable entity. It is built once per record and not mutated afterwards.
type Item struct {
	ID          string           `json:"id"`
	Tags        []string         `json:"tags"`
	Name        string           `json:"name"`
	Description string           `json:"desc"`
	Category    string           `json:"category"`
	Pricing     *PricingInfo     `json:"priceInfo,omitempty"` // nil: not tradeable
	Deconstruct *Deconstructable `json:"deconsTo,omitempty"`
	Recipes     []Recipe         `json:"recipes"`
	Icon        *Texture         `json:"icon,omitempty"`
	Sprite      Texture          `json:"sprite"`
}

// Tradeable reports whether the item has any pricing data.
func (i *Item) Tradeable() bool {
	return i.Pricing != nil
}

// IconTexture returns the inventory icon, falling back to the sprite.
func (i *Item) IconTexture() (Texture, bool) {
	if i.Icon != nil {
		return *i.Icon, true
	}
	return i.Sprite, false
}

// Rect is an x, y, width, height rectangle in source image pixels.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Colour is an RGB tint with components in [0,1].
type Colour struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// White is the neutral tint.
var White = Colour{R: 1, G: 1, B: 1}

// IsWhite reports whether applying the colour would leave a texture unchanged.
func (c Colour) IsWhite() bool {
	return c == White
}

// TextureKind distinguishes icons from sprites.
type TextureKind string

const (
	TextureKindIcon   TextureKind = "icon"
	TextureKindSprite TextureKind = "sprite"
)

// Texture locates an image region on a sprite sheet.
type Texture struct {
	Kind   TextureKind `json:"kind"`
	Path   string      `json:"path"` // relative to the game root
	Rect   Rect        `json:"rect"`
	Colour Colour      `json:"colour"`
}
