package sites

import (
	"runtime"
	"strconv"
	"sync"
	"weak"

	"sitekit/internal/logging"
	"sitekit/internal/metrics"
	"sitekit/state"
)

// AttributeProvider derives extra attributes for a site from the state
// snapshot. Providers must be pure functions of (snap, siteID) with no side
// effects; a nil map means no extra attributes.
type AttributeProvider func(snap *state.Snapshot, siteID int64) map[string]any

// Materializer merges raw site records with derived attributes and memoizes
// the result per raw-record identity. Construct one with New at store
// initialization and call ClearCache whenever the raw-record store is
// replaced wholesale.
type Materializer struct {
	siteAttrs    AttributeProvider
	jetpackAttrs AttributeProvider

	mu    sync.Mutex
	cache map[weak.Pointer[state.Site]]*ComputedSite
}

// New creates a Materializer with the given attribute providers. Either
// provider may be nil, meaning that attribute set is empty.
func New(siteAttrs, jetpackAttrs AttributeProvider) *Materializer {
	return &Materializer{
		siteAttrs:    siteAttrs,
		jetpackAttrs: jetpackAttrs,
		cache:        make(map[weak.Pointer[state.Site]]*ComputedSite),
	}
}

// GetSite resolves idOrSlug against the snapshot and returns the computed
// site, or nil when nothing resolves. A numeric value is tried as a site ID
// first and falls back to a slug lookup, so "7" finds site 7 if it exists
// and otherwise a site whose slug is literally "7".
func (m *Materializer) GetSite(snap *state.Snapshot, idOrSlug string) *ComputedSite {
	raw := resolve(snap, idOrSlug)
	if raw == nil {
		return nil
	}
	return m.materialize(snap, raw)
}

// GetSiteByID returns the computed site for the given numeric ID, or nil
// when no record has that ID.
func (m *Materializer) GetSiteByID(snap *state.Snapshot, id int64) *ComputedSite {
	raw := snap.SiteByID(id)
	if raw == nil {
		return nil
	}
	return m.materialize(snap, raw)
}

// SelectedSite returns the computed site for the snapshot's selected site
// ID, or nil when no site is selected or the selection does not resolve.
func (m *Materializer) SelectedSite(snap *state.Snapshot) *ComputedSite {
	id, ok := snap.SelectedSiteID()
	if !ok {
		return nil
	}
	return m.GetSiteByID(snap, id)
}

// ClearCache discards the entire materialization cache. The state layer
// must call this when it replaces the raw-record store, so materializations
// tied to records from the old store are never returned for new records
// with recycled content.
func (m *Materializer) ClearCache() {
	m.mu.Lock()
	m.cache = make(map[weak.Pointer[state.Site]]*ComputedSite)
	m.mu.Unlock()

	metrics.MaterializerCacheClears.Inc()
	metrics.MaterializerCacheSize.Set(0)
	logging.Debug("Materializer: cache cleared")
}

// resolve locates the raw record for idOrSlug: by numeric ID first, then by
// slug. Returns nil when neither matches.
func resolve(snap *state.Snapshot, idOrSlug string) *state.Site {
	if id, err := strconv.ParseInt(idOrSlug, 10, 64); err == nil {
		if raw := snap.SiteByID(id); raw != nil {
			return raw
		}
	}
	return snap.SiteBySlug(idOrSlug)
}

// materialize returns the cached computed site for raw, computing and
// caching it on first sight of this record identity. The check-then-insert
// is guarded by the mutex so concurrent callers racing on the same record
// still observe exactly one reference-stable entry.
func (m *Materializer) materialize(snap *state.Snapshot, raw *state.Site) *ComputedSite {
	key := weak.Make(raw)

	m.mu.Lock()
	defer m.mu.Unlock()

	if cached, ok := m.cache[key]; ok {
		metrics.MaterializerCacheHits.Inc()
		return cached
	}
	metrics.MaterializerCacheMisses.Inc()

	computed := compute(snap, raw, m.siteAttrs, m.jetpackAttrs)
	m.cache[key] = computed
	metrics.MaterializerCacheSize.Set(float64(len(m.cache)))

	// The weak key does not keep raw alive; this cleanup removes the entry
	// once the record itself has been collected.
	runtime.AddCleanup(raw, m.evict, key)

	logging.Debug("Materializer: computed site %d (%s)", raw.ID, raw.Slug)
	return computed
}

// evict is the GC cleanup for a single cache entry. Deleting by weak key is
// a no-op when ClearCache has already replaced the map.
func (m *Materializer) evict(key weak.Pointer[state.Site]) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.cache[key]; !ok {
		return
	}
	delete(m.cache, key)
	metrics.MaterializerCacheSize.Set(float64(len(m.cache)))
	metrics.MaterializerCacheEvictions.Inc()
}

// cacheLen reports the current number of cache entries. Used by tests.
func (m *Materializer) cacheLen() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.cache)
}
