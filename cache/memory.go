package cache

import (
	"container/list"
	"context"
	"log"
	"strings"
	"sync"
	"time"
)

// MemoryCache 进程内 LRU 缓存，按条目记录过期时间
type MemoryCache struct {
	mu      sync.Mutex
	prefix  string
	version string
	maxSize int
	items   map[string]*list.Element
	lru     *list.List
	now     func() time.Time
}

type memoryItem struct {
	key string
	raw []byte
}

// NewMemoryCache 创建进程内缓存
func NewMemoryCache(prefix, version string, maxSize int) *MemoryCache {
	if maxSize <= 0 {
		maxSize = 256
	}
	return &MemoryCache{
		prefix:  prefix,
		version: version,
		maxSize: maxSize,
		items:   make(map[string]*list.Element),
		lru:     list.New(),
		now:     time.Now,
	}
}

func (c *MemoryCache) Get(_ context.Context, key string, dest any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[c.prefix+key]
	if !ok {
		return false
	}
	if !decode(elem.Value.(*memoryItem).raw, c.version, c.now(), dest) {
		c.removeElement(elem)
		return false
	}
	c.lru.MoveToFront(elem)
	return true
}

func (c *MemoryCache) Set(_ context.Context, key string, value any, ttl time.Duration) {
	raw, err := encode(value, ttl, c.version, c.now())
	if err != nil {
		log.Printf("警告: 缓存写入失败 %s: %v", key, err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	full := c.prefix + key
	if elem, ok := c.items[full]; ok {
		elem.Value = &memoryItem{key: full, raw: raw}
		c.lru.MoveToFront(elem)
		return
	}
	c.items[full] = c.lru.PushFront(&memoryItem{key: full, raw: raw})

	if c.lru.Len() > c.maxSize {
		if oldest := c.lru.Back(); oldest != nil {
			c.removeElement(oldest)
		}
	}
}

func (c *MemoryCache) Clear(_ context.Context, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[c.prefix+key]; ok {
		c.removeElement(elem)
	}
}

func (c *MemoryCache) ClearAll(_ context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for full, elem := range c.items {
		if strings.HasPrefix(full, c.prefix) {
			c.removeElement(elem)
		}
	}
}

// Size 当前条目数
func (c *MemoryCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *MemoryCache) removeElement(elem *list.Element) {
	delete(c.items, elem.Value.(*memoryItem).key)
	c.lru.Remove(elem)
}
