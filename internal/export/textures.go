package export

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/osse101/BaroCatalog_Go/internal/domain"
	"github.com/osse101/BaroCatalog_Go/internal/locate"
	"github.com/osse101/BaroCatalog_Go/internal/logger"
	"github.com/osse101/BaroCatalog_Go/internal/metrics"
	"github.com/osse101/BaroCatalog_Go/internal/worker"
)

// Size is an output image size in pixels.
type Size struct {
	W int
	H int
}

// IconSizeFor scales a source rectangle so its longest side is IconSize, keeping the
// aspect ratio.
func IconSizeFor(r domain.Rect) Size {
	if r.W <= 0 || r.H <= 0 {
		return Size{W: IconSize, H: IconSize}
	}
	if r.W > r.H {
		return Size{W: IconSize, H: scaled(r.H, r.W)}
	}
	return Size{W: scaled(r.W, r.H), H: IconSize}
}

func scaled(side, longest int) int {
	return max(1, int(math.Round(float64(IconSize*side)/float64(longest))))
}

// Job describes one image to cut out of a sprite sheet.
type Job struct {
	ItemID     string
	Kind       domain.TextureKind
	Sheet      string // game path of the sprite sheet
	Rect       domain.Rect
	Colour     domain.Colour
	Size       *Size  // nil keeps the source size
	Target     string // relative to the output directory
	FromSprite bool   // icon made from the item's sprite
}

// Jobs lists an icon and a sprite job per item. Icons are resized to IconSize and fall
// back to the sprite when the item has no inventory icon; sprites keep their size.
func Jobs(items []*domain.Item) []Job {
	jobs := make([]Job, 0, 2*len(items))
	for _, item := range items {
		icon, own := item.IconTexture()
		size := IconSizeFor(icon.Rect)
		jobs = append(jobs,
			Job{
				ItemID:     item.ID,
				Kind:       domain.TextureKindIcon,
				Sheet:      icon.Path,
				Rect:       icon.Rect,
				Colour:     icon.Colour,
				Size:       &size,
				Target:     filepath.Join(IconsDir, item.ID+".png"),
				FromSprite: !own,
			},
			Job{
				ItemID: item.ID,
				Kind:   domain.TextureKindSprite,
				Sheet:  item.Sprite.Path,
				Rect:   item.Sprite.Rect,
				Colour: item.Sprite.Colour,
				Target: filepath.Join(SpritesDir, item.ID+".png"),
			})
	}
	return jobs
}

// Cropper cuts a job's region out of a sprite sheet file and writes it to target.
type Cropper interface {
	Crop(ctx context.Context, sheet string, job Job, target string) error
}

// TextureWriter runs texture jobs against a game installation.
type TextureWriter struct {
	outDir  string
	locator *locate.Locator
	cropper Cropper
	workers int
}

// NewTextureWriter creates a TextureWriter running up to workers crops at once.
func NewTextureWriter(outDir string, loc *locate.Locator, c Cropper, workers int) *TextureWriter {
	return &TextureWriter{outDir: outDir, locator: loc, cropper: c, workers: workers}
}

// Prepare creates the icon and sprite directories and removes PNG files left by an
// earlier run.
func (w *TextureWriter) Prepare() error {
	for _, sub := range []string{IconsDir, SpritesDir} {
		dir := filepath.Join(w.outDir, sub)
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf(ErrMsgCreateDirFailed, dir, err)
		}
		stale, err := filepath.Glob(filepath.Join(dir, "*.png"))
		if err != nil {
			return fmt.Errorf(ErrMsgClearDirFailed, dir, err)
		}
		for _, f := range stale {
			if err := os.Remove(f); err != nil {
				return fmt.Errorf(ErrMsgClearDirFailed, dir, err)
			}
		}
	}
	return nil
}

// Write runs every job. A failed job is logged and counted; the others still run.
// It returns the number of textures written.
func (w *TextureWriter) Write(ctx context.Context, jobs []Job) (int, error) {
	log := logger.FromContext(ctx)
	if err := w.Prepare(); err != nil {
		return 0, err
	}

	pool := worker.NewPool(w.workers, len(jobs))
	pool.Start(ctx)
	for _, job := range jobs {
		pool.Enqueue(&textureTask{writer: w, job: job})
	}
	err := pool.Stop()

	failed := 0
	if err != nil {
		failed = len(unwrapJoined(err))
	}
	written := len(jobs) - failed
	log.Info(LogMsgTexturesWritten, "written", written, "failed", failed)
	if failed > 0 {
		return written, fmt.Errorf(ErrMsgTexturesFailed+": %w", failed, len(jobs), err)
	}
	return written, nil
}

type textureTask struct {
	writer *TextureWriter
	job    Job
}

func (t *textureTask) Process(ctx context.Context) error {
	w, job := t.writer, t.job
	metrics.TextureJobs.WithLabelValues(string(job.Kind)).Inc()

	err := w.crop(ctx, job)
	if err != nil {
		metrics.ExportFailures.WithLabelValues(StageTexture).Inc()
		logger.FromContext(ctx).Warn(LogMsgTextureFailed,
			"item", job.ItemID, "kind", job.Kind, "sheet", job.Sheet, "error", err)
	}
	return err
}

func (w *TextureWriter) crop(ctx context.Context, job Job) error {
	sheet, err := w.locator.Resolve(job.Sheet)
	if err != nil {
		return fmt.Errorf(ErrMsgSheetNotFound, job.Sheet, err)
	}
	return w.cropper.Crop(ctx, sheet, job, filepath.Join(w.outDir, job.Target))
}

func unwrapJoined(err error) []error {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}
