package slots

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/somriures/SC-BookingConsole/internal/domain"
	"github.com/somriures/SC-BookingConsole/internal/infra/slotcache"
	"github.com/somriures/SC-BookingConsole/internal/integrations/partyapi"
)

// Service owns the slot collection: it translates console operations into
// remote store calls and reconciles the in-memory cache with the results.
// UI-facing layers never mutate the cache directly.
type Service struct {
	api     PartyAPI
	cache   *slotcache.Cache
	metrics MetricsObserver
	logger  Logger

	windowBack    int // months
	windowForward int // months
}

// NewService creates the slots service. metrics may be nil.
func NewService(api PartyAPI, cache *slotcache.Cache, metrics MetricsObserver, logger Logger, windowBack, windowForward int) *Service {
	return &Service{
		api:           api,
		cache:         cache,
		metrics:       metrics,
		logger:        logger,
		windowBack:    windowBack,
		windowForward: windowForward,
	}
}

// LoadWindow fetches the bounded slot window around now and primes the
// cache. Every month inside the window is marked loaded, including empty
// ones, so month views do not refetch them.
func (s *Service) LoadWindow(ctx context.Context, now time.Time) error {
	// The window covers whole months: a month is only marked loaded when
	// every day of it fell inside the fetch range. Anchoring on the first
	// of the month also keeps AddDate from normalizing a day-29..31 cursor
	// past short months.
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	from := first.AddDate(0, -s.windowBack, 0)
	to := first.AddDate(0, s.windowForward+1, -1)

	fetched, err := s.api.ListSlots(ctx, from, to)
	if err != nil {
		s.logger.Error("LoadWindow: fetch failed: %v", err)
		return fmt.Errorf("%w: LoadWindow: %v", ErrUpstream, err)
	}

	byMonth := make(map[string][]domain.Slot)
	for _, slot := range fetched {
		byMonth[domain.MonthKey(slot.Date.Year(), slot.Date.Month())] = append(
			byMonth[domain.MonthKey(slot.Date.Year(), slot.Date.Month())], slot)
	}

	added := 0
	for cursor := from; !cursor.After(to); cursor = cursor.AddDate(0, 1, 0) {
		year, month := cursor.Year(), cursor.Month()
		added += s.cache.MergeMonth(year, month, byMonth[domain.MonthKey(year, month)])
	}

	s.observeCache()
	s.logger.Info("LoadWindow: primed cache with %d slots (%d fetched) for %s..%s",
		added, len(fetched), from.Format(domain.DateFormat), to.Format(domain.DateFormat))
	return nil
}

// MonthSlots returns the slots of one month, fetching it lazily the first
// time it is requested. Later calls serve from the cache.
func (s *Service) MonthSlots(ctx context.Context, year int, month time.Month) ([]domain.Slot, error) {
	if !s.cache.MonthLoaded(year, month) {
		fetched, err := s.api.ListSlotsByMonth(ctx, year, month)
		if err != nil {
			s.logger.Error("MonthSlots: fetch %s failed: %v", domain.MonthKey(year, month), err)
			return nil, fmt.Errorf("%w: MonthSlots: %v", ErrUpstream, err)
		}
		added := s.cache.MergeMonth(year, month, fetched)
		s.observeCache()
		s.logger.Info("MonthSlots: merged month %s, %d new of %d fetched",
			domain.MonthKey(year, month), added, len(fetched))
	}

	return s.cache.ByMonth(year, month), nil
}

// DaySlots returns the slots of one calendar day. The first selection of a
// day runs a freshness fetch; afterwards the filtered cache serves directly.
// A failed fetch leaves the day unmarked so the next selection retries.
func (s *Service) DaySlots(ctx context.Context, date time.Time) ([]domain.Slot, error) {
	if !s.cache.DayFetched(date) {
		if err := s.RefreshDay(ctx, date); err != nil {
			return nil, err
		}
	}
	return s.cache.ByDate(date), nil
}

// RefreshDay refetches one day and overwrites the cached state with the
// authoritative result. Used after bookings change a day's availability.
func (s *Service) RefreshDay(ctx context.Context, date time.Time) error {
	fetched, err := s.api.ListSlotsByDay(ctx, date)
	if err != nil {
		s.logger.Error("RefreshDay: fetch %s failed: %v", date.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: RefreshDay: %v", ErrUpstream, err)
	}

	s.cache.ApplyCreate(fetched...)
	s.cache.MarkDayFetched(date)
	s.observeCache()
	return nil
}

// AllSlots returns every cached slot in display order.
func (s *Service) AllSlots() []domain.Slot {
	return s.cache.All()
}

// GetSlot returns one cached slot.
func (s *Service) GetSlot(id int64) (domain.Slot, bool) {
	return s.cache.Get(id)
}

// Create validates and creates a single slot, then merges the created
// slot (with its store-assigned id) into the cache.
func (s *Service) Create(ctx context.Context, draft domain.Slot) (domain.Slot, error) {
	if draft.Status == "" {
		draft.Status = domain.StatusOpen
	}

	if err := draft.Validate(); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return domain.Slot{}, err
	}

	created, err := s.api.CreateSlot(ctx, partyapi.DraftFromSlot(draft))
	if err != nil {
		s.logger.Error("Create: remote create failed: %v", err)
		return domain.Slot{}, fmt.Errorf("%w: Create: %v", ErrUpstream, err)
	}

	s.cache.ApplyCreate(created)
	s.observeCache()
	s.logger.Info("Create: slot id=%d kind=%s date=%s", created.ID, created.Kind,
		created.Date.Format(domain.DateFormat))
	return created, nil
}

// Generate creates one recurring slot per requested day from a shared
// template and merges the created slots into the cache. The remote store
// assigns ids; the created slots come back with them.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) ([]domain.Slot, error) {
	created, err := s.api.GenerateSlots(ctx, req.toWire())
	if err != nil {
		s.logger.Error("Generate: remote generation failed: %v", err)
		return nil, fmt.Errorf("%w: Generate: %v", ErrUpstream, err)
	}

	s.cache.ApplyCreate(created...)
	s.observeCache()
	s.logger.Info("Generate: created %d slots", len(created))
	return created, nil
}

// Update applies a partial update. The cache is patched optimistically,
// replaced with the authoritative response on success, and rolled back on
// failure. A remote 404 drops the stale cache entry (self-heal).
func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (domain.Slot, error) {
	// Pre-network validation against the patched state, when we hold it.
	if cached, ok := s.cache.Get(id); ok {
		patched := cached
		req.applyTo(&patched)
		if err := patched.Validate(); err != nil {
			s.logger.Warn("Update: validation failed for slot id=%d: %v", id, err)
			return domain.Slot{}, err
		}
	}

	revert, staged := s.cache.StageUpdate(id, req.applyTo)

	authoritative, err := s.api.UpdateSlot(ctx, id, req.toWire())
	if err != nil {
		if staged {
			revert()
		}
		if errors.Is(err, partyapi.ErrSlotNotFound) {
			s.cache.Remove(id)
			s.observeCache()
			s.logger.Warn("Update: slot id=%d gone remotely, dropped from cache", id)
			return domain.Slot{}, ErrSlotNotFound
		}
		s.logger.Error("Update: remote update failed for slot id=%d: %v", id, err)
		return domain.Slot{}, fmt.Errorf("%w: Update: %v", ErrUpstream, err)
	}

	s.cache.Commit(authoritative)
	s.observeCache()
	s.logger.Info("Update: slot id=%d committed", id)
	return authoritative, nil
}

// Delete removes a slot. The cache entry is removed optimistically and
// restored if the remote call fails. A remote 404 still counts as success:
// the slot is gone either way.
func (s *Service) Delete(ctx context.Context, id int64) error {
	revert, _ := s.cache.StageDelete(id)

	if err := s.api.DeleteSlot(ctx, id); err != nil {
		if errors.Is(err, partyapi.ErrSlotNotFound) {
			s.observeCache()
			return nil
		}
		revert()
		s.logger.Error("Delete: remote delete failed for slot id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete: %v", ErrUpstream, err)
	}

	s.observeCache()
	s.logger.Info("Delete: slot id=%d deleted", id)
	return nil
}

// DeleteMany deletes the given slots concurrently. Each deletion is
// attempted independently; failures are collected, never swallowed. The
// cache ends up reflecting exactly the succeeded subset. Returns
// ErrPartialDelete alongside the result when any deletion failed.
func (s *Service) DeleteMany(ctx context.Context, ids []int64) (BulkDeleteResult, error) {
	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		result BulkDeleteResult
	)

	for _, id := range ids {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			err := s.Delete(ctx, id)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed = append(result.Failed, BulkDeleteFailure{ID: id, Err: err})
				return
			}
			result.Deleted = append(result.Deleted, id)
		}(id)
	}
	wg.Wait()

	sort.Slice(result.Deleted, func(i, j int) bool { return result.Deleted[i] < result.Deleted[j] })
	sort.Slice(result.Failed, func(i, j int) bool { return result.Failed[i].ID < result.Failed[j].ID })

	if len(result.Failed) > 0 {
		// The remote state of the failed ids is unknown; force a refetch of
		// their months so the next view reconciles with the store.
		for _, f := range result.Failed {
			if cached, ok := s.cache.Get(f.ID); ok {
				s.cache.InvalidateMonth(cached.Date.Year(), cached.Date.Month())
			}
		}
		s.logger.Warn("DeleteMany: %d of %d deletions failed", len(result.Failed), len(ids))
		return result, fmt.Errorf("%w: %d of %d failed", ErrPartialDelete, len(result.Failed), len(ids))
	}

	s.logger.Info("DeleteMany: deleted %d slots", len(result.Deleted))
	return result, nil
}

func (s *Service) observeCache() {
	if s.metrics != nil {
		s.metrics.SetCacheSize(s.cache.Len(), s.cache.MonthsLoaded())
	}
}
