// Package cache memoizes conversion results keyed by the content of the input
// document.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"sync/atomic"
)

// DefaultMaxSize is the default memory budget of a ResultCache (64 MB).
const DefaultMaxSize = 64 * 1024 * 1024

// bytesPerKB is the number of bytes in a kilobyte.
const bytesPerKB = 1024.0

// evictionSampleSize is the number of LRU candidates sampled per eviction.
const evictionSampleSize = 5

// Key identifies one conversion: the input document plus everything that
// changes the encoded output.
type Key [sha256.Size]byte

// NewKey hashes an input document together with a variant string describing
// the conversion and output options.
func NewKey(input []byte, variant string) Key {
	h := sha256.New()
	h.Write([]byte(variant))
	h.Write([]byte{0})
	h.Write(input)

	var k Key

	copy(k[:], h.Sum(nil))

	return k
}

// String returns the key in hex.
func (k Key) String() string {
	return hex.EncodeToString(k[:])
}

// Entry is a cached conversion result.
type Entry struct {
	Output []byte
	Nodes  int
}

func (e *Entry) clone() *Entry {
	return &Entry{Output: append([]byte(nil), e.Output...), Nodes: e.Nodes}
}

// ResultCache is a size-bounded LRU cache of conversion results. Eviction
// samples the least recently used entries and drops the one with the lowest
// hits per kilobyte. It is safe for concurrent use.
type ResultCache struct {
	mu          sync.Mutex
	entries     map[Key]*lruEntry
	head        *lruEntry // Most recently used.
	tail        *lruEntry // Least recently used.
	maxSize     int64
	currentSize int64

	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

type lruEntry struct {
	key         Key
	value       *Entry
	size        int64
	accessCount int64
	prev        *lruEntry
	next        *lruEntry
}

// evictionCost is higher for entries that are cheaper to keep.
func (e *lruEntry) evictionCost() float64 {
	sizeKB := float64(e.size) / bytesPerKB
	if sizeKB < 1 {
		sizeKB = 1
	}

	return float64(e.accessCount) / sizeKB
}

// New creates a cache holding at most maxSize bytes of output. A
// non-positive size selects DefaultMaxSize.
func New(maxSize int64) *ResultCache {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}

	return &ResultCache{
		entries: make(map[Key]*lruEntry),
		maxSize: maxSize,
	}
}

// Get returns a copy of the cached result, or nil on a miss.
func (c *ResultCache) Get(key Key) *Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		c.misses.Add(1)

		return nil
	}

	c.hits.Add(1)

	entry.accessCount++
	c.moveToFront(entry)

	return entry.value.clone()
}

// Put stores a result. Results larger than the whole cache are ignored.
func (c *ResultCache) Put(key Key, value *Entry) {
	if value == nil {
		return
	}

	size := int64(len(value.Output))
	if size > c.maxSize {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[key]; ok {
		entry.accessCount++
		c.moveToFront(entry)

		return
	}

	for c.currentSize+size > c.maxSize && c.tail != nil {
		c.evictLowestCost()
	}

	entry := &lruEntry{
		key:         key,
		value:       value.clone(),
		size:        size,
		accessCount: 1,
	}

	c.entries[key] = entry
	c.currentSize += size
	c.addToFront(entry)
}

// Stats holds cache counters.
type Stats struct {
	Hits        int64
	Misses      int64
	Evictions   int64
	Entries     int
	CurrentSize int64
	MaxSize     int64
}

// HitRate returns hits / lookups, or 0 before the first lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}

	return float64(s.Hits) / float64(total)
}

// Stats returns a snapshot of the counters.
func (c *ResultCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Hits:        c.hits.Load(),
		Misses:      c.misses.Load(),
		Evictions:   c.evictions.Load(),
		Entries:     len(c.entries),
		CurrentSize: c.currentSize,
		MaxSize:     c.maxSize,
	}
}

// Clear drops every entry. Counters are kept.
func (c *ResultCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[Key]*lruEntry)
	c.head = nil
	c.tail = nil
	c.currentSize = 0
}

func (c *ResultCache) moveToFront(entry *lruEntry) {
	if entry == c.head {
		return
	}

	c.removeFromList(entry)
	c.addToFront(entry)
}

func (c *ResultCache) addToFront(entry *lruEntry) {
	entry.prev = nil
	entry.next = c.head

	if c.head != nil {
		c.head.prev = entry
	}

	c.head = entry

	if c.tail == nil {
		c.tail = entry
	}
}

func (c *ResultCache) removeFromList(entry *lruEntry) {
	if entry.prev != nil {
		entry.prev.next = entry.next
	} else {
		c.head = entry.next
	}

	if entry.next != nil {
		entry.next.prev = entry.prev
	} else {
		c.tail = entry.prev
	}
}

func (c *ResultCache) evictLowestCost() {
	victim := c.tail
	lowest := victim.evictionCost()

	count := 1
	for e := victim.prev; e != nil && count < evictionSampleSize; e = e.prev {
		if cost := e.evictionCost(); cost < lowest {
			lowest = cost
			victim = e
		}

		count++
	}

	c.removeFromList(victim)
	delete(c.entries, victim.key)
	c.currentSize -= victim.size
	c.evictions.Add(1)
}
