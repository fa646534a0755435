// Package texture locates icon and sprite regions on sprite sheets.
package texture

import (
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/osse101/BaroCatalog_Go/internal/domain"
	"github.com/osse101/BaroCatalog_Go/internal/node"
)

// Attribute names on InventoryIcon and Sprite nodes.
const (
	AttrTexture          = "texture"
	AttrSourceRect       = "sourcerect"
	AttrSheetElementSize = "sheetelementsize"
	AttrSheetIndex       = "sheetindex"
)

// ResolveIcon resolves an optional InventoryIcon node. A nil node yields nil.
func ResolveIcon(icon *node.Node, dir string, tint *domain.Colour) (*domain.Texture, error) {
	if icon == nil {
		return nil, nil
	}
	if icon.Tag != domain.TagInventoryIcon {
		return nil, fmt.Errorf("%w: expected <%s> but was <%s>", domain.ErrStructuralMismatch, domain.TagInventoryIcon, icon.Tag)
	}
	tex, err := resolve(icon, dir, tint, domain.TextureKindIcon)
	if err != nil {
		return nil, err
	}
	return &tex, nil
}

// ResolveSprite resolves the mandatory Sprite node.
func ResolveSprite(sprite *node.Node, dir string, tint *domain.Colour) (domain.Texture, error) {
	if sprite == nil {
		return domain.Texture{}, fmt.Errorf("%w: no <%s>", domain.ErrMissingRequiredAttribute, domain.TagSprite)
	}
	if !sprite.IsTag(domain.TagSprite) {
		return domain.Texture{}, fmt.Errorf("%w: expected <%s> but was <%s>", domain.ErrStructuralMismatch, domain.TagSprite, sprite.Tag)
	}
	return resolve(sprite, dir, tint, domain.TextureKindSprite)
}

func resolve(n *node.Node, dir string, tint *domain.Colour, kind domain.TextureKind) (domain.Texture, error) {
	tex, ok := n.Attr(AttrTexture)
	if !ok {
		return domain.Texture{}, fmt.Errorf("%w: texture on <%s>", domain.ErrMissingRequiredAttribute, n.Tag)
	}
	rect, err := ParseRect(n)
	if err != nil {
		return domain.Texture{}, err
	}
	colour := domain.White
	if tint != nil {
		colour = *tint
	}
	return domain.Texture{
		Kind:   kind,
		Path:   ResolvePath(tex, dir),
		Rect:   rect,
		Colour: colour,
	}, nil
}

// ResolvePath returns tex unchanged when it already points into the content root,
// otherwise joins it onto dir. Backslashes are normalised to forward slashes.
func ResolvePath(tex, dir string) string {
	tex = strings.ReplaceAll(strings.TrimSpace(tex), `\`, "/")
	if len(tex) >= len(domain.ContentRoot) && strings.EqualFold(tex[:len(domain.ContentRoot)], domain.ContentRoot) {
		return path.Clean(tex)
	}
	return path.Join(strings.ReplaceAll(dir, `\`, "/"), tex)
}

// ParseRect reads the explicit sourcerect, or derives the rectangle from the sheet
// element size and sheet index (rect = index * size).
func ParseRect(n *node.Node) (domain.Rect, error) {
	if s, ok := n.Attr(AttrSourceRect); ok {
		v, err := parseInts(s, 4)
		if err != nil {
			return domain.Rect{}, fmt.Errorf("%w: %s=%q: %v", domain.ErrInvalidAttribute, AttrSourceRect, s, err)
		}
		return domain.Rect{X: v[0], Y: v[1], W: v[2], H: v[3]}, nil
	}

	sizeStr, hasSize := n.Attr(AttrSheetElementSize)
	indexStr, hasIndex := n.Attr(AttrSheetIndex)
	if !hasSize || !hasIndex {
		return domain.Rect{}, fmt.Errorf("%w: no %s, or %s with %s on <%s>",
			domain.ErrMissingRequiredAttribute, AttrSourceRect, AttrSheetElementSize, AttrSheetIndex, n.Tag)
	}
	size, err := parseInts(sizeStr, 2)
	if err != nil {
		return domain.Rect{}, fmt.Errorf("%w: %s=%q: %v", domain.ErrInvalidAttribute, AttrSheetElementSize, sizeStr, err)
	}
	index, err := parseInts(indexStr, 2)
	if err != nil {
		return domain.Rect{}, fmt.Errorf("%w: %s=%q: %v", domain.ErrInvalidAttribute, AttrSheetIndex, indexStr, err)
	}
	return domain.Rect{X: index[0] * size[0], Y: index[1] * size[1], W: size[0], H: size[1]}, nil
}

// ParseColour reads "r,g,b" or "r,g,b,a". Components with a decimal point are taken as
// [0,1] floats, integer components are divided by 255. Alpha is ignored.
func ParseColour(s string) (domain.Colour, error) {
	parts := strings.SplitN(s, ",", 4)
	if len(parts) < 3 {
		return domain.Colour{}, fmt.Errorf("%w: colour %q needs 3 components", domain.ErrInvalidAttribute, s)
	}
	var c [3]float64
	for i := 0; i < 3; i++ {
		p := strings.TrimSpace(parts[i])
		if strings.Contains(p, ".") {
			f, err := strconv.ParseFloat(p, 64)
			if err != nil {
				return domain.Colour{}, fmt.Errorf("%w: colour %q: %v", domain.ErrInvalidAttribute, s, err)
			}
			c[i] = f
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return domain.Colour{}, fmt.Errorf("%w: colour %q: %v", domain.ErrInvalidAttribute, s, err)
		}
		c[i] = float64(v) / 255.0
	}
	return domain.Colour{R: c[0], G: c[1], B: c[2]}, nil
}

func parseInts(s string, n int) ([]int, error) {
	parts := strings.SplitN(s, ",", n)
	if len(parts) != n {
		return nil, fmt.Errorf("want %d components, got %d", n, len(parts))
	}
	out := make([]int, n)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
