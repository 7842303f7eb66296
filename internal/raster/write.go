// ABOUTME: Renders a full animation cycle to numbered PNG files concurrently
// ABOUTME: One errgroup goroutine per frame, bounded by a worker limit

package raster

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"runtime"

	svlog "github.com/mauromedda/spinveil/internal/log"
	"github.com/mauromedda/spinveil/pkg/overlay"
	"golang.org/x/sync/errgroup"
)

// WriteFrames renders count evenly spaced frames of side size into dir as
// frame-000.png, frame-001.png, ... and returns the written paths in order.
func WriteFrames(ctx context.Context, dir string, opts overlay.Options, count, size int) ([]string, error) {
	if count < 1 {
		return nil, fmt.Errorf("frame count must be positive, got %d", count)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}

	times := Times(count)
	paths := make([]string, count)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, t := range times {
		path := filepath.Join(dir, fmt.Sprintf("frame-%03d.png", i))
		paths[i] = path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img := Frame(opts, t, size)
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("creating %s: %w", path, err)
			}
			if err := png.Encode(f, img); err != nil {
				f.Close()
				return fmt.Errorf("encoding %s: %w", path, err)
			}
			svlog.Debug("frame %d at %v -> %s", i, t, path)
			return f.Close()
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
