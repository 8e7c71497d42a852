package slotcache

import (
	"sync"
	"time"

	"github.com/somriures/SC-BookingConsole/internal/domain"
)

// Cache is the single in-memory source of truth for the currently-loaded
// slot set. It mediates between optimistic mutations and authoritative
// server responses: staged changes carry a revert closure so a failed
// remote call rolls the cache back instead of leaving a phantom state.
//
// A month, once merged, is marked loaded and not refetched unless
// explicitly invalidated.
type Cache struct {
	mu sync.RWMutex

	byID         map[int64]domain.Slot
	loadedMonths map[string]struct{}
	staleMonths  map[string]struct{}

	fetchedDays map[string]struct{}
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{
		byID:         make(map[int64]domain.Slot),
		loadedMonths: make(map[string]struct{}),
		staleMonths:  make(map[string]struct{}),
		fetchedDays:  make(map[string]struct{}),
	}
}

// Len returns the number of cached slots.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byID)
}

// MonthsLoaded returns the number of months marked as loaded.
func (c *Cache) MonthsLoaded() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.loadedMonths)
}

// Get returns a cached slot by id.
func (c *Cache) Get(id int64) (domain.Slot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.byID[id]
	return s, ok
}

// All returns every cached slot in display order.
func (c *Cache) All() []domain.Slot {
	c.mu.RLock()
	slots := make([]domain.Slot, 0, len(c.byID))
	for _, s := range c.byID {
		slots = append(slots, s)
	}
	c.mu.RUnlock()

	domain.SortSlots(slots)
	return slots
}

// ByDate returns the cached slots of one calendar day in display order.
func (c *Cache) ByDate(date time.Time) []domain.Slot {
	c.mu.RLock()
	slots := make([]domain.Slot, 0)
	for _, s := range c.byID {
		if domain.SameDay(s.Date, date) {
			slots = append(slots, s)
		}
	}
	c.mu.RUnlock()

	domain.SortSlots(slots)
	return slots
}

// ByMonth returns the cached slots of one month in display order.
func (c *Cache) ByMonth(year int, month time.Month) []domain.Slot {
	c.mu.RLock()
	slots := make([]domain.Slot, 0)
	for _, s := range c.byID {
		if s.Date.Year() == year && s.Date.Month() == month {
			slots = append(slots, s)
		}
	}
	c.mu.RUnlock()

	domain.SortSlots(slots)
	return slots
}

// ApplyCreate merges newly created slots into the cache. Bulk generation
// passes every returned slot in one call.
func (c *Cache) ApplyCreate(slots ...domain.Slot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, s := range slots {
		c.byID[s.ID] = s
	}
}

// MergeMonth adds the fetched slots of one month and marks the month as
// loaded. Ids already present keep their cached state so staged optimistic
// changes survive an overlapping fetch. An invalidated month is reconciled
// instead: fetched slots replace the cached ones and ids the store no
// longer returns are dropped. Returns the number of genuinely new slots.
func (c *Cache) MergeMonth(year int, month time.Month, fetched []domain.Slot) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := domain.MonthKey(year, month)
	if _, stale := c.staleMonths[key]; stale {
		fetchedIDs := make(map[int64]struct{}, len(fetched))
		for _, s := range fetched {
			fetchedIDs[s.ID] = struct{}{}
		}
		for id, s := range c.byID {
			if s.Date.Year() != year || s.Date.Month() != month {
				continue
			}
			if _, kept := fetchedIDs[id]; !kept {
				delete(c.byID, id)
			}
		}
		delete(c.staleMonths, key)
		added := 0
		for _, s := range fetched {
			if _, exists := c.byID[s.ID]; !exists {
				added++
			}
			c.byID[s.ID] = s
		}
		c.loadedMonths[key] = struct{}{}
		return added
	}

	added := 0
	for _, s := range fetched {
		if _, exists := c.byID[s.ID]; exists {
			continue
		}
		c.byID[s.ID] = s
		added++
	}

	c.loadedMonths[key] = struct{}{}
	return added
}

// MonthLoaded reports whether a month has already been merged.
func (c *Cache) MonthLoaded(year int, month time.Month) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.loadedMonths[domain.MonthKey(year, month)]
	return ok
}

// InvalidateMonth clears the loaded mark so the next request refetches the
// month. Cached slots stay in place until then, but the month is flagged
// stale: the refetch replaces them with the authoritative store state.
func (c *Cache) InvalidateMonth(year int, month time.Month) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := domain.MonthKey(year, month)
	delete(c.loadedMonths, key)
	c.staleMonths[key] = struct{}{}
}

// StageUpdate applies a patch to the cached slot immediately and returns
// a revert closure restoring the pre-patch state. The caller commits the
// authoritative server slot on success or reverts on failure.
// Returns false when the id is not cached.
func (c *Cache) StageUpdate(id int64, patch func(*domain.Slot)) (revert func(), ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	before, exists := c.byID[id]
	if !exists {
		return nil, false
	}

	updated := before
	patch(&updated)
	c.byID[id] = updated

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.byID[id] = before
	}, true
}

// Commit replaces the cached slot with the authoritative server state.
func (c *Cache) Commit(slot domain.Slot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byID[slot.ID] = slot
}

// StageDelete removes the slot immediately and returns a revert closure.
// Deleting an id that is not cached is a no-op: revert does nothing and
// existed is false, with no error surfaced.
func (c *Cache) StageDelete(id int64) (revert func(), existed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	before, exists := c.byID[id]
	if !exists {
		return func() {}, false
	}
	delete(c.byID, id)

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.byID[id] = before
	}, true
}

// Remove drops a slot without staging. Used to self-heal after the
// remote store reports the id gone.
func (c *Cache) Remove(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.byID, id)
}

// DayFetched reports whether a day already had its freshness fetch.
// The first selection of a day fetches it; later selections serve
// straight from the cache.
func (c *Cache) DayFetched(date time.Time) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.fetchedDays[domain.DayOf(date).Format(domain.DateFormat)]
	return ok
}

// MarkDayFetched records a completed freshness fetch for the day. Callers
// mark only after the fetch succeeds, so a failed one is retried on the
// next selection.
func (c *Cache) MarkDayFetched(date time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetchedDays[domain.DayOf(date).Format(domain.DateFormat)] = struct{}{}
}
