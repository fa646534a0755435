package export

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BaroCatalog_Go/internal/domain"
	"github.com/osse101/BaroCatalog_Go/internal/locate"
)

func TestIconSizeFor(t *testing.T) {
	tests := []struct {
		name string
		rect domain.Rect
		want Size
	}{
		{"wide", domain.Rect{W: 128, H: 32}, Size{W: 64, H: 16}},
		{"tall", domain.Rect{W: 30, H: 90}, Size{W: 21, H: 64}},
		{"square", domain.Rect{W: 16, H: 16}, Size{W: 64, H: 64}},
		{"sliver", domain.Rect{W: 1000, H: 1}, Size{W: 64, H: 1}},
		{"empty", domain.Rect{}, Size{W: 64, H: 64}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IconSizeFor(tt.rect))
		})
	}
}

func TestJobs(t *testing.T) {
	withIcon := testItem("wrench")
	withIcon.Icon = &domain.Texture{
		Kind:   domain.TextureKindIcon,
		Path:   "Content/Items/Tools/icons.png",
		Rect:   domain.Rect{X: 64, Y: 0, W: 64, H: 32},
		Colour: domain.Colour{R: 1, G: 0.5, B: 0.5},
	}
	noIcon := testItem("crowbar")

	jobs := Jobs([]*domain.Item{withIcon, noIcon})

	require.Len(t, jobs, 4)

	icon := jobs[0]
	assert.Equal(t, "wrench", icon.ItemID)
	assert.Equal(t, domain.TextureKindIcon, icon.Kind)
	assert.Equal(t, "Content/Items/Tools/icons.png", icon.Sheet)
	assert.Equal(t, &Size{W: 64, H: 32}, icon.Size)
	assert.Equal(t, filepath.Join(IconsDir, "wrench.png"), icon.Target)
	assert.False(t, icon.FromSprite)

	spriteJob := jobs[1]
	assert.Equal(t, domain.TextureKindSprite, spriteJob.Kind)
	assert.Nil(t, spriteJob.Size)
	assert.Equal(t, filepath.Join(SpritesDir, "wrench.png"), spriteJob.Target)

	fallback := jobs[2]
	assert.Equal(t, "crowbar", fallback.ItemID)
	assert.Equal(t, domain.TextureKindIcon, fallback.Kind)
	assert.True(t, fallback.FromSprite)
	assert.Equal(t, noIcon.Sprite.Path, fallback.Sheet)
	assert.Equal(t, &Size{W: 64, H: 32}, fallback.Size)
}

func TestTextureWriter_Write(t *testing.T) {
	root := t.TempDir()
	sheetDir := filepath.Join(root, "Content", "Items", "Tools")
	require.NoError(t, os.MkdirAll(sheetDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sheetDir, "Tools.png"), []byte("x"), 0o644))

	out := t.TempDir()
	stale := filepath.Join(out, IconsDir, "old.png")
	require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0o755))
	require.NoError(t, os.WriteFile(stale, []byte("x"), 0o644))

	jobs := []Job{
		{ItemID: "wrench", Kind: domain.TextureKindSprite, Sheet: "Content/Items/Tools/tools.png", Target: filepath.Join(SpritesDir, "wrench.png")},
		{ItemID: "ghost", Kind: domain.TextureKindSprite, Sheet: "Content/Items/Missing/missing.png", Target: filepath.Join(SpritesDir, "ghost.png")},
	}

	cropper := new(MockCropper)
	cropper.On("Crop", mock.Anything, filepath.Join(sheetDir, "Tools.png"), jobs[0], filepath.Join(out, jobs[0].Target)).Return(nil)

	w := NewTextureWriter(out, locate.NewLocator(root, 16, locate.DefaultCacheTTL), cropper, 2)
	written, err := w.Write(context.Background(), jobs)

	require.Error(t, err)
	assert.ErrorIs(t, err, locate.ErrNotFound)
	assert.Equal(t, 1, written)
	assert.NoFileExists(t, stale)
	assert.DirExists(t, filepath.Join(out, SpritesDir))
	cropper.AssertExpectations(t)
}

func TestTextureWriter_CropperError(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "sheet.png"), []byte("x"), 0o644))
	cropErr := errors.New("decode failed")

	cropper := new(MockCropper)
	cropper.On("Crop", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(cropErr)

	w := NewTextureWriter(t.TempDir(), locate.NewLocator(root, 16, locate.DefaultCacheTTL), cropper, 1)
	written, err := w.Write(context.Background(), []Job{{ItemID: "a", Kind: domain.TextureKindIcon, Sheet: "sheet.png", Target: "icons/a.png"}})

	assert.ErrorIs(t, err, cropErr)
	assert.Equal(t, 0, written)
}

func writeSheet(t *testing.T, path string) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 8, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func readPNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	return img
}

func TestPNGCropper(t *testing.T) {
	dir := t.TempDir()
	sheet := filepath.Join(dir, "sheet.png")
	writeSheet(t, sheet)
	c, err := NewPNGCropper(0)
	require.NoError(t, err)

	t.Run("crops and tints", func(t *testing.T) {
		target := filepath.Join(dir, "out", "sprite.png")
		job := Job{Rect: domain.Rect{X: 2, Y: 1, W: 4, H: 2}, Colour: domain.Colour{R: 0.5, G: 1, B: 0}}

		require.NoError(t, c.Crop(context.Background(), sheet, job, target))

		img := readPNG(t, target)
		assert.Equal(t, image.Rect(0, 0, 4, 2), img.Bounds())
		px := color.NRGBAModel.Convert(img.At(0, 0)).(color.NRGBA)
		assert.Equal(t, color.NRGBA{R: 100, G: 100, B: 0, A: 255}, px)
	})

	t.Run("scales to size", func(t *testing.T) {
		target := filepath.Join(dir, "out", "icon.png")
		job := Job{Rect: domain.Rect{W: 8, H: 4}, Colour: domain.White, Size: &Size{W: 64, H: 32}}

		require.NoError(t, c.Crop(context.Background(), sheet, job, target))

		assert.Equal(t, image.Rect(0, 0, 64, 32), readPNG(t, target).Bounds())
	})

	t.Run("rect outside sheet", func(t *testing.T) {
		job := Job{Rect: domain.Rect{X: 6, Y: 0, W: 4, H: 4}, Colour: domain.White}

		err := c.Crop(context.Background(), sheet, job, filepath.Join(dir, "out", "bad.png"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "outside sheet")
	})

	t.Run("missing sheet", func(t *testing.T) {
		err := c.Crop(context.Background(), filepath.Join(dir, "nope.png"), Job{Rect: domain.Rect{W: 1, H: 1}}, filepath.Join(dir, "x.png"))

		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
