// Command catalog reads the item records of a Barotrauma installation and writes the
// resolved catalog as JSON documents and PNG textures.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/osse101/BaroCatalog_Go/internal/config"
	"github.com/osse101/BaroCatalog_Go/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	flag.StringVar(&cfg.GameRoot, "root", cfg.GameRoot, "Barotrauma installation directory")
	flag.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "Output directory")
	flag.StringVar(&cfg.Language, "lang", cfg.Language, "Text language")
	flag.StringVar(&cfg.PackageFile, "package", cfg.PackageFile, "Content package file, relative to the game root")
	textures := flag.Bool("textures", true, "Crop icons and sprites")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}

	initLogger(cfg)
	ctx := logger.WithRunID(context.Background(), logger.NewRunID())

	summary, err := run(ctx, cfg, *textures)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgRunFailed, "error", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Resolved %d items (%d skipped), exported %d to %s\n",
		summary.Resolved, summary.Skipped, summary.Exported, cfg.OutputDir)
	for reason, n := range summary.SkipCounts {
		fmt.Printf("  skipped %-14s %d\n", reason, n)
	}
	if *textures {
		fmt.Printf("✓ Wrote %d textures\n", summary.Textures)
	}
}
