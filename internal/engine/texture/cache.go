package texture

// LoadFunc loads one texture from a file path.
type LoadFunc func(path string) (Texture, error)

// Cache owns 2D textures keyed by path string. A path seen before returns
// the existing handle without decoding again.
type Cache struct {
	load  LoadFunc
	byKey map[string]Texture
	order []string
}

// NewCache creates a cache backed by Load2D.
func NewCache() *Cache {
	return NewCacheWith(Load2D)
}

// NewCacheWith creates a cache backed by a custom loader.
func NewCacheWith(load LoadFunc) *Cache {
	return &Cache{
		load:  load,
		byKey: make(map[string]Texture),
	}
}

// Load returns the GL handle for path, loading it on first use.
func (c *Cache) Load(path string) (uint32, error) {
	if t, ok := c.byKey[path]; ok {
		return t.ID, nil
	}
	t, err := c.load(path)
	if err != nil {
		return 0, err
	}
	c.byKey[path] = t
	c.order = append(c.order, path)
	return t.ID, nil
}

// Len returns the number of textures held.
func (c *Cache) Len() int {
	return len(c.order)
}

// Release deletes every texture in reverse load order.
func (c *Cache) Release() {
	for i := len(c.order) - 1; i >= 0; i-- {
		t := c.byKey[c.order[i]]
		t.Delete()
	}
	c.byKey = make(map[string]Texture)
	c.order = nil
}

// Close releases the cache. It implements io.Closer.
func (c *Cache) Close() error {
	c.Release()
	return nil
}
