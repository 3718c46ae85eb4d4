package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

const defaultMaxCacheSize = 64

// TextTexture is a rendered line of text and its size.
type TextTexture struct {
	Texture *sdl.Texture
	W, H    int32
}

// TextureCache keeps the most recently drawn text textures so unchanged
// screens do not re-rasterize every frame. Least recently used entries are
// destroyed first.
type TextureCache struct {
	textures map[string]TextTexture
	order    []string // tracks insertion order for LRU eviction
	maxSize  int
}

func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	return &TextureCache{
		textures: make(map[string]TextTexture),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

// Text returns the texture for text drawn with font in color, rendering and
// caching it on a miss.
func (c *TextureCache) Text(renderer *sdl.Renderer, font *ttf.Font, size int, text string, color sdl.Color) (TextTexture, error) {
	key := fmt.Sprintf("%d|%08x|%s", size, uint32(color.R)<<24|uint32(color.G)<<16|uint32(color.B)<<8|uint32(color.A), text)

	if cached, exists := c.textures[key]; exists {
		c.moveToEnd(key)
		return cached, nil
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return TextTexture{}, fmt.Errorf("render text: %w", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return TextTexture{}, fmt.Errorf("create texture: %w", err)
	}

	entry := TextTexture{Texture: texture, W: surface.W, H: surface.H}
	c.set(key, entry)
	return entry, nil
}

func (c *TextureCache) set(key string, entry TextTexture) {
	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = entry
	c.order = append(c.order, key)
}

func (c *TextureCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if entry, exists := c.textures[oldest]; exists {
		entry.Texture.Destroy()
		delete(c.textures, oldest)
	}
}

func (c *TextureCache) Destroy() {
	for _, entry := range c.textures {
		entry.Texture.Destroy()
	}
	c.textures = make(map[string]TextTexture)
	c.order = c.order[:0]
}
