package export

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/draw"

	"github.com/osse101/BaroCatalog_Go/internal/domain"
)

// DefaultSheetCacheSize is the number of decoded sprite sheets PNGCropper keeps.
const DefaultSheetCacheSize = 64

// PNGCropper crops PNG sprite sheets, keeping recently used sheets decoded in memory.
type PNGCropper struct {
	sheets *lru.Cache[string, image.Image]
}

// NewPNGCropper creates a PNGCropper caching up to size sheets.
func NewPNGCropper(size int) (*PNGCropper, error) {
	if size <= 0 {
		size = DefaultSheetCacheSize
	}
	cache, err := lru.New[string, image.Image](size)
	if err != nil {
		return nil, err
	}
	return &PNGCropper{sheets: cache}, nil
}

// Crop cuts job.Rect out of the sheet, scales it to job.Size when set, applies the
// colour tint and writes the result as a PNG file.
func (c *PNGCropper) Crop(_ context.Context, sheet string, job Job, target string) error {
	src, err := c.sheet(sheet)
	if err != nil {
		return err
	}

	r := image.Rect(job.Rect.X, job.Rect.Y, job.Rect.X+job.Rect.W, job.Rect.Y+job.Rect.H)
	if r.Empty() || !r.In(src.Bounds()) {
		return fmt.Errorf(ErrMsgRectOutOfBounds, job.Rect, sheet, src.Bounds())
	}

	var dst *image.NRGBA
	if job.Size != nil {
		dst = image.NewNRGBA(image.Rect(0, 0, job.Size.W, job.Size.H))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, r, draw.Src, nil)
	} else {
		dst = image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
		draw.Draw(dst, dst.Bounds(), src, r.Min, draw.Src)
	}
	tint(dst, job.Colour)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return fmt.Errorf(ErrMsgEncodeImageFailed, target, err)
	}
	return writeFile(target, buf.Bytes())
}

func (c *PNGCropper) sheet(path string) (image.Image, error) {
	if img, ok := c.sheets.Get(path); ok {
		return img, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSheetNotFound, path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgDecodeSheetFailed, path, err)
	}
	c.sheets.Add(path, img)
	return img, nil
}

// tint multiplies the colour channels by c. Alpha is left alone.
func tint(img *image.NRGBA, c domain.Colour) {
	if c.IsWhite() {
		return
	}
	for i := 0; i+3 < len(img.Pix); i += 4 {
		img.Pix[i] = scale(img.Pix[i], c.R)
		img.Pix[i+1] = scale(img.Pix[i+1], c.G)
		img.Pix[i+2] = scale(img.Pix[i+2], c.B)
	}
}

func scale(v uint8, f float64) uint8 {
	x := float64(v)*f + 0.5
	switch {
	case x <= 0:
		return 0
	case x >= 255:
		return 255
	default:
		return uint8(x)
	}
}
