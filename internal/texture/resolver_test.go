package texture

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BaroCatalog_Go/internal/domain"
	"github.com/osse101/BaroCatalog_Go/internal/node"
)

func decode(t *testing.T, s string) *node.Node {
	t.Helper()
	n, err := node.DecodeString(s)
	require.NoError(t, err)
	return n
}

func TestParseRect(t *testing.T) {
	tests := []struct {
		name    string
		xml     string
		want    domain.Rect
		wantErr error
	}{
		{"explicit", `<Sprite sourcerect="5,6,7,8"/>`, domain.Rect{X: 5, Y: 6, W: 7, H: 8}, nil},
		{"explicit wins over sheet", `<Sprite sourcerect="5,6,7,8" sheetelementsize="32,32" sheetindex="2,1"/>`, domain.Rect{X: 5, Y: 6, W: 7, H: 8}, nil},
		{"sheet grid", `<Sprite sheetelementsize="32,32" sheetindex="2,1"/>`, domain.Rect{X: 64, Y: 32, W: 32, H: 32}, nil},
		{"sheet grid spaced", `<Sprite SheetElementSize="64, 48" SheetIndex="0, 3"/>`, domain.Rect{X: 0, Y: 144, W: 64, H: 48}, nil},
		{"size without index", `<Sprite sheetelementsize="32,32"/>`, domain.Rect{}, domain.ErrMissingRequiredAttribute},
		{"neither", `<Sprite texture="a.png"/>`, domain.Rect{}, domain.ErrMissingRequiredAttribute},
		{"short rect", `<Sprite sourcerect="1,2,3"/>`, domain.Rect{}, domain.ErrInvalidAttribute},
		{"bad index", `<Sprite sheetelementsize="32,32" sheetindex="a,b"/>`, domain.Rect{}, domain.ErrInvalidAttribute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRect(decode(t, tt.xml))
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolvePath(t *testing.T) {
	tests := []struct {
		tex  string
		dir  string
		want string
	}{
		{"Content/Items/Tools/tools.png", "Content/Items/Weapons", "Content/Items/Tools/tools.png"},
		{"content/Items/tools.png", "Content/Items/Weapons", "content/Items/tools.png"},
		{"weapons.png", "Content/Items/Weapons", "Content/Items/Weapons/weapons.png"},
		{`..\Tools\tools.png`, `Content\Items\Weapons`, "Content/Items/Tools/tools.png"},
	}
	for _, tt := range tests {
		t.Run(tt.tex, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolvePath(tt.tex, tt.dir))
		})
	}
}

func TestParseColour(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.Colour
		wantErr bool
	}{
		{"255,0,51", domain.Colour{R: 1, G: 0, B: 0.2}, false},
		{"1.0,0.5,0.25", domain.Colour{R: 1, G: 0.5, B: 0.25}, false},
		{"255,0.5,0,255", domain.Colour{R: 1, G: 0.5, B: 0}, false},
		{"255,0", domain.Colour{}, true},
		{"red,green,blue", domain.Colour{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColour(tt.in)
			if tt.wantErr {
				assert.True(t, errors.Is(err, domain.ErrInvalidAttribute))
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want.R, got.R, 1e-9)
			assert.InDelta(t, tt.want.G, got.G, 1e-9)
			assert.InDelta(t, tt.want.B, got.B, 1e-9)
		})
	}
}

func TestResolveIcon(t *testing.T) {
	icon, err := ResolveIcon(nil, "Content/Items", nil)
	assert.NoError(t, err)
	assert.Nil(t, icon)

	tint := domain.Colour{R: 0.5, G: 0.5, B: 0.5}
	icon, err = ResolveIcon(decode(t, `<InventoryIcon texture="icons.png" sourcerect="0,64,64,64"/>`), "Content/Items", &tint)
	require.NoError(t, err)
	assert.Equal(t, &domain.Texture{
		Kind:   domain.TextureKindIcon,
		Path:   "Content/Items/icons.png",
		Rect:   domain.Rect{X: 0, Y: 64, W: 64, H: 64},
		Colour: tint,
	}, icon)

	_, err = ResolveIcon(decode(t, `<Sprite texture="a.png" sourcerect="0,0,1,1"/>`), "Content/Items", nil)
	assert.True(t, errors.Is(err, domain.ErrStructuralMismatch))

	_, err = ResolveIcon(decode(t, `<InventoryIcon sourcerect="0,0,1,1"/>`), "Content/Items", nil)
	assert.True(t, errors.Is(err, domain.ErrMissingRequiredAttribute))
}

func TestResolveSprite(t *testing.T) {
	sprite, err := ResolveSprite(decode(t, `<sprite texture="a.png" sheetelementsize="32,32" sheetindex="2,1"/>`), "Content/Items", nil)
	require.NoError(t, err)
	assert.Equal(t, domain.TextureKindSprite, sprite.Kind)
	assert.Equal(t, "Content/Items/a.png", sprite.Path)
	assert.Equal(t, domain.Rect{X: 64, Y: 32, W: 32, H: 32}, sprite.Rect)
	assert.Equal(t, domain.White, sprite.Colour)

	_, err = ResolveSprite(nil, "Content/Items", nil)
	assert.True(t, errors.Is(err, domain.ErrMissingRequiredAttribute))

	_, err = ResolveSprite(decode(t, `<InventoryIcon texture="a.png" sourcerect="0,0,1,1"/>`), "Content/Items", nil)
	assert.True(t, errors.Is(err, domain.ErrStructuralMismatch))
}
