package tocicon

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// DefaultOutputDir is where the tocicon command writes its batch,
// relative to the working directory.
const DefaultOutputDir = "icons"

// DefaultSizes lists the icon sizes of the default batch, in write order.
var DefaultSizes = []int{16, 32, 48, 128}

// FileName returns the file name of the icon of the given size.
func FileName(size int) string {
	return fmt.Sprintf("icon%d.png", size)
}

// Generator renders a batch of icon sizes and writes them as PNG files.
// A Generator is safe for concurrent use.
type Generator struct {
	opts generatorOptions
	mu   sync.Mutex // serializes progress reports
}

// NewGenerator creates a generator configured by opts.
func NewGenerator(opts ...GeneratorOption) *Generator {
	o := defaultGeneratorOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Generator{opts: o}
}

// Generate renders the default generator's batch: every size in sizes
// is written to dir/icon{size}.png. See Generator.Generate.
func Generate(sizes []int, dir string) (int, error) {
	return NewGenerator().Generate(context.Background(), sizes, dir)
}

// Generate creates dir if needed, then renders each size and writes it
// to dir, replacing existing files of the same name. It returns the number
// of files written. The first failure aborts the batch; files written
// before it stay on disk and are counted.
//
// Sizes are validated before anything touches the filesystem.
func (g *Generator) Generate(ctx context.Context, sizes []int, dir string) (int, error) {
	for _, size := range sizes {
		if size <= 0 {
			return 0, fmt.Errorf("%w: %d", ErrInvalidSize, size)
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:gosec // output directory is meant to be shared
		return 0, fmt.Errorf("tocicon: create output dir: %w", err)
	}

	var (
		n   int
		err error
	)
	if g.opts.concurrency > 1 {
		n, err = g.generateParallel(ctx, sizes, dir)
	} else {
		n, err = g.generateSequential(ctx, sizes, dir)
	}
	if err != nil {
		Logger().Warn("tocicon: batch aborted", "dir", dir, "written", n, "err", err)
	}
	return n, err
}

func (g *Generator) generateSequential(ctx context.Context, sizes []int, dir string) (int, error) {
	written := 0
	for _, size := range sizes {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		if err := g.writeIcon(size, dir); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

func (g *Generator) generateParallel(ctx context.Context, sizes []int, dir string) (int, error) {
	var written atomic.Int64

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.opts.concurrency)
	scheduled := 0
	for _, size := range sizes {
		if egCtx.Err() != nil {
			break
		}
		scheduled++
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			if err := g.writeIcon(size, dir); err != nil {
				return err
			}
			written.Add(1)
			return nil
		})
	}
	err := eg.Wait()
	if err == nil && scheduled < len(sizes) {
		// Scheduling stopped on a cancellation no worker observed.
		err = ctx.Err()
	}
	return int(written.Load()), err
}

// writeIcon renders one size, saves it and reports the path.
func (g *Generator) writeIcon(size int, dir string) error {
	c, err := Render(size, g.opts.render...)
	if err != nil {
		return err
	}

	path := filepath.Join(dir, FileName(size))
	if err := c.SavePNG(path); err != nil {
		return err
	}

	Logger().Info("tocicon: icon written", "path", path, "size", size)

	g.mu.Lock()
	defer g.mu.Unlock()
	_, _ = fmt.Fprintf(g.opts.progress, "Created %s\n", path)
	return nil
}
