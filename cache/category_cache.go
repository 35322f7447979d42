package category_cache

import (
	"sync"
	"time"

	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
)

const TTL = 5 * time.Minute

// ── Category summaries cache ─────────────────────────────────────────────────
// Holds the categories with their product counts for GET /store/categories.

type summaryEntry struct {
	data      []models.CategorySummary
	fetchedAt time.Time
}

type Cache struct {
	mu    sync.RWMutex
	entry *summaryEntry
	ttl   time.Duration
	now   func() time.Time
}

func New(ttl time.Duration) *Cache {
	return &Cache{ttl: ttl, now: time.Now}
}

func (c *Cache) GetSummaries() ([]models.CategorySummary, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.entry != nil && c.now().Sub(c.entry.fetchedAt) < c.ttl {
		return append([]models.CategorySummary(nil), c.entry.data...), true
	}
	return nil, false
}

func (c *Cache) SetSummaries(data []models.CategorySummary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entry = &summaryEntry{
		data:      append([]models.CategorySummary(nil), data...),
		fetchedAt: c.now(),
	}
}

// Summaries returns the cached value, or calls load and caches its result.
func (c *Cache) Summaries(load func() []models.CategorySummary) []models.CategorySummary {
	if data, ok := c.GetSummaries(); ok {
		return data
	}
	data := load()
	c.SetSummaries(data)
	return data
}

// ── Receipt PDF cache ────────────────────────────────────────────────────────
// Rendered receipts keyed by the caller. A placed order never changes, so an
// entry is good until the TTL runs out. Expired entries are pruned on Set.

type receiptEntry struct {
	pdf       []byte
	fetchedAt time.Time
}

type Receipts struct {
	mu      sync.RWMutex
	entries map[string]receiptEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewReceipts(ttl time.Duration) *Receipts {
	return &Receipts{entries: make(map[string]receiptEntry), ttl: ttl, now: time.Now}
}

func (r *Receipts) Get(key string) ([]byte, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[key]
	if ok && r.now().Sub(e.fetchedAt) < r.ttl {
		return e.pdf, true
	}
	return nil, false
}

func (r *Receipts) Set(key string, pdf []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	for k, e := range r.entries {
		if now.Sub(e.fetchedAt) >= r.ttl {
			delete(r.entries, k)
		}
	}
	r.entries[key] = receiptEntry{pdf: pdf, fetchedAt: now}
}

// Render returns the cached PDF for key, or renders and caches it. Failed
// renders are not cached.
func (r *Receipts) Render(key string, render func() ([]byte, error)) ([]byte, error) {
	if pdf, ok := r.Get(key); ok {
		return pdf, nil
	}
	pdf, err := render()
	if err != nil {
		return nil, err
	}
	r.Set(key, pdf)
	return pdf, nil
}

func (r *Receipts) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// ── Invalidate (call if the catalog is ever reloaded) ────────────────────────

func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.entry = nil
	c.mu.Unlock()
}
