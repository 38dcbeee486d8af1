// Package cache memoizes serialized roster views with weak ETags. The roster
// never changes after load, so an entry is only ever built once per TTL;
// verdicts are computed per request and never go through it.
package cache

import (
	"crypto/md5"
	"fmt"
	"strings"
	"sync"
	"time"
)

const (
	TTLRoster = 24 * time.Hour // Player list, autofill, teams
	TTLPlayer = 1 * time.Hour  // Single player payloads
)

const sweepEvery = 5 * time.Minute

// View is one serialized response body and its ETag.
type View struct {
	Body []byte
	ETag string
}

type entry struct {
	View
	expires time.Time
}

// Stats is the snapshot reported by the cache health check.
type Stats struct {
	Enabled bool `json:"enabled"`
	Keys    int  `json:"keys"`
	Live    int  `json:"live"`
}

// Cache is safe for concurrent use. A disabled cache builds on every call.
type Cache struct {
	mu      sync.RWMutex
	views   map[string]entry
	enabled bool
	done    chan struct{}
	once    sync.Once
}

func New(enabled bool) *Cache {
	c := &Cache{views: make(map[string]entry), enabled: enabled, done: make(chan struct{})}
	if enabled {
		go c.sweep()
	}
	return c
}

// Close stops the background sweep. Safe to call more than once.
func (c *Cache) Close() {
	c.once.Do(func() { close(c.done) })
}

// Load returns the live view for key, or calls build, stores its output for
// ttl and returns it. hit reports whether build was skipped. Build errors are
// returned as-is and nothing is stored.
func (c *Cache) Load(key string, ttl time.Duration, build func() ([]byte, error)) (v View, hit bool, err error) {
	if c.enabled {
		c.mu.RLock()
		e, ok := c.views[key]
		c.mu.RUnlock()
		if ok && time.Now().Before(e.expires) {
			return e.View, true, nil
		}
	}

	body, err := build()
	if err != nil {
		return View{}, false, err
	}
	v = View{Body: body, ETag: ETag(body)}
	if c.enabled {
		c.mu.Lock()
		c.views[key] = entry{View: v, expires: time.Now().Add(ttl)}
		c.mu.Unlock()
	}
	return v, false, nil
}

func (c *Cache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s := Stats{Enabled: c.enabled, Keys: len(c.views)}
	now := time.Now()
	for _, e := range c.views {
		if now.Before(e.expires) {
			s.Live++
		}
	}
	return s
}

func (c *Cache) sweep() {
	t := time.NewTicker(sweepEvery)
	defer t.Stop()
	for {
		select {
		case <-c.done:
			return
		case now := <-t.C:
			c.mu.Lock()
			for k, e := range c.views {
				if now.After(e.expires) {
					delete(c.views, k)
				}
			}
			c.mu.Unlock()
		}
	}
}

// ETag is a weak validator over the first 8 bytes of the body's MD5.
func ETag(body []byte) string {
	sum := md5.Sum(body)
	return fmt.Sprintf(`W/"%x"`, sum[:8])
}

// Matches reports whether an If-None-Match header value (a comma list or
// "*") covers etag.
func Matches(ifNoneMatch, etag string) bool {
	for _, candidate := range strings.Split(ifNoneMatch, ",") {
		if c := strings.TrimSpace(candidate); c == "*" || (c != "" && c == etag) {
			return true
		}
	}
	return false
}
