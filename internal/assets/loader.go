// Package assets loads sprite images for the games. Every sprite is decoded
// on its own goroutine and the batch settles once each load has either
// succeeded or failed. A failed sprite is simply absent from the set, and
// games draw a primitive shape in its place.
package assets

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bdaygames/internal/core"
)

// Batch is an in-flight set of sprite loads.
type Batch struct {
	done    chan struct{}
	pending atomic.Int32
	total   int

	mu      sync.Mutex
	sprites core.SpriteSet
	failed  map[string]error
}

// Load starts loading <dir>/<name>.png for every name. It never blocks.
// Duplicate names are loaded once. An empty list yields a settled batch.
func Load(ctx context.Context, dir string, names []string, logger *log.Logger) *Batch {
	if logger == nil {
		logger = log.Default()
	}
	names = unique(names)

	b := &Batch{
		done:    make(chan struct{}),
		total:   len(names),
		sprites: make(core.SpriteSet, len(names)),
		failed:  make(map[string]error),
	}
	b.pending.Store(int32(len(names)))

	var wg sync.WaitGroup
	for _, name := range names {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			defer b.pending.Add(-1)

			sp, err := loadSprite(ctx, filepath.Join(dir, name+".png"), name)
			b.mu.Lock()
			defer b.mu.Unlock()
			if err != nil {
				b.failed[name] = err
				logger.Warn("sprite unavailable, drawing fallback", "sprite", name, "err", err)
				return
			}
			b.sprites[name] = sp
			logger.Debug("sprite loaded", "sprite", name, "glyph", string(sp.Glyph))
		}(name)
	}

	go func() {
		wg.Wait()
		close(b.done)
	}()
	return b
}

// Done is closed once every load has settled.
func (b *Batch) Done() <-chan struct{} {
	return b.done
}

// Settled reports whether Done is closed.
func (b *Batch) Settled() bool {
	select {
	case <-b.done:
		return true
	default:
		return false
	}
}

// Pending is the number of loads still running.
func (b *Batch) Pending() int {
	return int(b.pending.Load())
}

// Total is the number of distinct sprites requested.
func (b *Batch) Total() int {
	return b.total
}

// Sprites returns a copy of the sprites loaded so far.
func (b *Batch) Sprites() core.SpriteSet {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make(core.SpriteSet, len(b.sprites))
	for k, v := range b.sprites {
		out[k] = v
	}
	return out
}

// Failed returns the names that could not be loaded, sorted.
func (b *Batch) Failed() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, 0, len(b.failed))
	for name := range b.failed {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Wait blocks until the batch settles or ctx ends, then returns the sprites.
func (b *Batch) Wait(ctx context.Context) (core.SpriteSet, error) {
	select {
	case <-b.done:
		return b.Sprites(), nil
	case <-ctx.Done():
		return b.Sprites(), ctx.Err()
	}
}

func loadSprite(ctx context.Context, path, name string) (core.Sprite, error) {
	if err := ctx.Err(); err != nil {
		return core.Sprite{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return core.Sprite{}, fmt.Errorf("assets: open %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return core.Sprite{}, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	col, ok := averageColor(img)
	if !ok {
		return core.Sprite{}, fmt.Errorf("assets: %s has no opaque pixels", path)
	}
	return core.Sprite{Name: name, Glyph: glyphFor(name), Color: col}, nil
}

// averageColor quantizes the mean of the image's opaque pixels to the palette.
func averageColor(img image.Image) (core.Color, bool) {
	var r, g, b, n uint64
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pr, pg, pb, pa := img.At(x, y).RGBA()
			if pa < 0x8000 {
				continue
			}
			// un-premultiply down to 8 bits
			r += uint64(pr * 0xff / pa)
			g += uint64(pg * 0xff / pa)
			b += uint64(pb * 0xff / pa)
			n++
		}
	}
	if n == 0 {
		return core.ColorDefault, false
	}
	return core.NearestColor(int(r/n), int(g/n), int(b/n)), true
}

var glyphs = map[string]rune{
	"asteroid":  '▓',
	"star":      '★',
	"cherry":    '♥',
	"snowflake": '❄',
}

func glyphFor(name string) rune {
	if strings.HasSuffix(name, "_head") {
		return '☻'
	}
	if g, ok := glyphs[name]; ok {
		return g
	}
	return '█'
}

func unique(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
