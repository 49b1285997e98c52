package ebiten

import (
	"context"
	"fmt"
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"

	"escaperoom/pkg/logger"
)

// ImageFetcher downloads and decodes an asset
type ImageFetcher interface {
	FetchImage(ctx context.Context, assetPath string) (image.Image, error)
}

// ImageCache keeps room assets by path. Preload runs on loader goroutines and
// stores decoded images; GPU images are created lazily on the game thread.
type ImageCache struct {
	fetcher ImageFetcher

	mu      sync.RWMutex
	decoded map[string]image.Image
	images  map[string]*ebiten.Image
}

// NewImageCache creates an empty cache backed by fetcher
func NewImageCache(fetcher ImageFetcher) *ImageCache {
	return &ImageCache{
		fetcher: fetcher,
		decoded: make(map[string]image.Image),
		images:  make(map[string]*ebiten.Image),
	}
}

// Preload fetches every path not already cached. It fails if any asset fails.
func (c *ImageCache) Preload(ctx context.Context, paths ...string) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, p := range paths {
		if p == "" || c.has(p) {
			continue
		}
		g.Go(func() error {
			img, err := c.fetcher.FetchImage(ctx, p)
			if err != nil {
				return fmt.Errorf("preload %s: %w", p, err)
			}
			c.mu.Lock()
			c.decoded[p] = img
			c.mu.Unlock()
			logger.Log.WithField("asset", p).Debug("Asset cached")
			return nil
		})
	}
	return g.Wait()
}

// Image returns the GPU image for path, or nil if it has not been preloaded.
// Call from the game thread only.
func (c *ImageCache) Image(path string) *ebiten.Image {
	c.mu.RLock()
	img, ok := c.images[path]
	src := c.decoded[path]
	c.mu.RUnlock()
	if ok {
		return img
	}
	if src == nil {
		return nil
	}

	img = ebiten.NewImageFromImage(src)
	c.mu.Lock()
	c.images[path] = img
	delete(c.decoded, path)
	c.mu.Unlock()
	return img
}

func (c *ImageCache) has(path string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, decoded := c.decoded[path]
	_, uploaded := c.images[path]
	return decoded || uploaded
}
