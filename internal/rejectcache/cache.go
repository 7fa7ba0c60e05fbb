// Package rejectcache persists the URLs the classifier has already rejected,
// so the same irrelevant post is not re-submitted to the LLM on every run.
// The cache is a durable JSON file rewritten in full on each save; losing it
// only costs redundant reclassification work, so every file error degrades
// to an empty cache instead of failing the batch.
package rejectcache

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"
)

const (
	// DefaultMaxEntries caps the persisted map; at capacity the oldest half
	// is evicted in one batch before the next insert.
	DefaultMaxEntries = 1000

	// DefaultTTL is how long a rejection stays valid. Entries older than
	// this are purged on every load.
	DefaultTTL = 48 * time.Hour
)

// Entry records why and when a URL was rejected.
type Entry struct {
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

// fileFormat is the persisted shape: a top-level timestamp plus the URL map.
type fileFormat struct {
	UpdatedAt time.Time        `json:"updatedAt"`
	URLs      map[string]Entry `json:"urls"`
}

// Cache is the in-process view over the persisted file. The parsed form is
// memoized against the file's modification time, so repeated lookups within
// a run cost nothing and external writes are picked up on the next load.
type Cache struct {
	path       string
	maxEntries int
	ttl        time.Duration

	loaded     map[string]Entry
	loadedMtim time.Time

	now func() time.Time
}

type Option func(*Cache)

func WithMaxEntries(n int) Option {
	return func(c *Cache) { c.maxEntries = n }
}

func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) { c.ttl = ttl }
}

func New(path string, opts ...Option) *Cache {
	c := &Cache{
		path:       path,
		maxEntries: DefaultMaxEntries,
		ttl:        DefaultTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsRejected reports whether the URL has a live rejection on record.
func (c *Cache) IsRejected(url string) bool {
	urls := c.load()
	_, ok := urls[url]
	return ok
}

// Reason returns the recorded rejection reason, if any.
func (c *Cache) Reason(url string) (string, bool) {
	entry, ok := c.load()[url]
	return entry.Reason, ok
}

// Len returns the number of live entries.
func (c *Cache) Len() int {
	return len(c.load())
}

// AddRejected records a rejection. When the map is at capacity the oldest
// 50% of entries (by timestamp) are evicted first. The file is rewritten in
// full; a write failure is logged and the in-memory view keeps the entry so
// the current run still skips the URL.
func (c *Cache) AddRejected(url, reason string) error {
	urls := c.load()

	if len(urls) >= c.maxEntries {
		urls = evictOldestHalf(urls)
	}
	urls[url] = Entry{Reason: reason, Timestamp: c.now()}

	c.loaded = urls
	return c.save(urls)
}

// load returns the current URL map, reparsing the file only when its mtime
// moved since the cached parse. Expired entries are dropped and, when any
// were, the purge is persisted back.
func (c *Cache) load() map[string]Entry {
	info, err := os.Stat(c.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("rejected-url cache unreadable, starting empty", "path", c.path, "error", err)
		}
		if c.loaded == nil {
			c.loaded = make(map[string]Entry)
		}
		return c.loaded
	}

	if c.loaded != nil && info.ModTime().Equal(c.loadedMtim) {
		return c.loaded
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		slog.Warn("rejected-url cache unreadable, starting empty", "path", c.path, "error", err)
		c.loaded = make(map[string]Entry)
		return c.loaded
	}

	var file fileFormat
	if err := json.Unmarshal(data, &file); err != nil {
		slog.Warn("rejected-url cache corrupted, starting empty", "path", c.path, "error", err)
		c.loaded = make(map[string]Entry)
		return c.loaded
	}
	if file.URLs == nil {
		file.URLs = make(map[string]Entry)
	}

	purged := c.purgeExpired(file.URLs)

	c.loaded = file.URLs
	c.loadedMtim = info.ModTime()

	if purged > 0 {
		slog.Info("purged expired rejected-url entries", "path", c.path, "purged", purged)
		if err := c.save(file.URLs); err == nil {
			if info, err := os.Stat(c.path); err == nil {
				c.loadedMtim = info.ModTime()
			}
		}
	}

	return c.loaded
}

func (c *Cache) purgeExpired(urls map[string]Entry) int {
	cutoff := c.now().Add(-c.ttl)
	purged := 0
	for url, entry := range urls {
		if entry.Timestamp.Before(cutoff) {
			delete(urls, url)
			purged++
		}
	}
	return purged
}

// evictOldestHalf drops the oldest 50% of entries by timestamp.
func evictOldestHalf(urls map[string]Entry) map[string]Entry {
	type timestamped struct {
		url string
		at  time.Time
	}
	ordered := make([]timestamped, 0, len(urls))
	for url, entry := range urls {
		ordered = append(ordered, timestamped{url: url, at: entry.Timestamp})
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].at.Before(ordered[j].at)
	})

	for _, victim := range ordered[:len(ordered)/2] {
		delete(urls, victim.url)
	}
	return urls
}

func (c *Cache) save(urls map[string]Entry) error {
	file := fileFormat{
		UpdatedAt: c.now(),
		URLs:      urls,
	}
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal rejected-url cache: %w", err)
	}

	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		slog.Error("failed to persist rejected-url cache", "path", c.path, "error", err)
		return fmt.Errorf("write rejected-url cache: %w", err)
	}

	if info, err := os.Stat(c.path); err == nil {
		c.loadedMtim = info.ModTime()
	}
	return nil
}
