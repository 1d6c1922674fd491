package simulation

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"growth-tracker/internal/model"

	"github.com/robfig/cron/v3"
)

const (
	DefaultCacheTTL = 15 * time.Minute
	// DefaultPruneSchedule is how often the janitor drops expired runs.
	DefaultPruneSchedule = "@every 1m"
)

type cacheEntry struct {
	result    *Result
	expiresAt time.Time
}

// RunCache keeps recent results in memory, keyed by RunKey, so a run can
// be re-fetched (ledger, report) without recomputing it. A nil *RunCache
// is a valid, always-empty cache.
type RunCache struct {
	mu    sync.RWMutex
	store map[string]*cacheEntry
	ttl   time.Duration
	now   func() time.Time
}

func NewRunCache(ttl time.Duration) *RunCache {
	return &RunCache{
		store: make(map[string]*cacheEntry),
		ttl:   ttl,
		now:   time.Now,
	}
}

// RunCacheFromEnv reads SIMULATION_CACHE_TTL (a Go duration). Unset means
// DefaultCacheTTL; "0" disables the cache and returns nil.
func RunCacheFromEnv() *RunCache {
	ttl := DefaultCacheTTL
	if v := strings.TrimSpace(os.Getenv("SIMULATION_CACHE_TTL")); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("RunCache: ignoring SIMULATION_CACHE_TTL=%q: %v", v, err)
		} else {
			ttl = parsed
		}
	}
	if ttl <= 0 {
		return nil
	}
	return NewRunCache(ttl)
}

// Get retrieves a cached result if available and not expired
func (c *RunCache) Get(key string) (*Result, bool) {
	if c == nil {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.store[key]
	if !ok || c.now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.result, true
}

// Set stores a result in the cache
func (c *RunCache) Set(key string, res *Result) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store[key] = &cacheEntry{
		result:    res,
		expiresAt: c.now().Add(c.ttl),
	}
}

func (c *RunCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

// Prune removes expired entries and returns how many were dropped.
func (c *RunCache) Prune() int {
	if c == nil {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	n := 0
	for key, entry := range c.store {
		if now.After(entry.expiresAt) {
			delete(c.store, key)
			n++
		}
	}
	return n
}

// Janitor returns a scheduler that prunes the cache on schedule (robfig/cron
// syntax, e.g. "@every 1m"). The caller starts and stops it.
func (c *RunCache) Janitor(schedule string) (*cron.Cron, error) {
	cr := cron.New()
	if _, err := cr.AddFunc(schedule, func() {
		if n := c.Prune(); n > 0 {
			log.Printf("RunCache: pruned %d expired runs", n)
		}
	}); err != nil {
		return nil, fmt.Errorf("register cache prune %q: %w", schedule, err)
	}
	return cr, nil
}

// RunKey identifies a run by its inputs. Only the start date matters to
// the calendar, so the time of day is not part of the key.
func RunKey(start time.Time, p model.SimulationParams) string {
	ff := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	keyStr := strings.Join([]string{
		start.Format(time.DateOnly),
		ff(p.StartingCapital),
		ff(p.DailyRate),
		ff(p.DailyTakeoutFraction),
		ff(p.WeeklyTakeoutFraction),
		strconv.Itoa(p.HorizonDays),
	}, ":")

	// Hash the key to keep it URL sized
	hash := sha256.Sum256([]byte(keyStr))
	return hex.EncodeToString(hash[:8])
}
