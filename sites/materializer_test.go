package sites

import (
	"runtime"
	"sync"
	"testing"
	"time"

	"sitekit/state"
)

// staticProvider returns the same attribute map on every call and counts
// how often it was invoked.
func staticProvider(attrs map[string]any, calls *int) AttributeProvider {
	return func(snap *state.Snapshot, siteID int64) map[string]any {
		if calls != nil {
			*calls++
		}
		return attrs
	}
}

func testSnapshot() *state.Snapshot {
	return state.NewSnapshot([]*state.Site{
		{ID: 7, Slug: "example", Attrs: map[string]any{"name": "Example"}},
		{ID: 12, Slug: "other", Attrs: map[string]any{"name": "Other", "visible": true}},
	}, 7)
}

func TestGetSiteReferenceStable(t *testing.T) {
	calls := 0
	m := New(staticProvider(map[string]any{"tier": "site"}, &calls), nil)
	snap := testSnapshot()

	first := m.GetSite(snap, "7")
	second := m.GetSite(snap, "7")

	if first == nil {
		t.Fatal("GetSite(7) returned nil for an existing site")
	}
	if first != second {
		t.Error("second lookup of the same record returned a different object")
	}
	if calls != 1 {
		t.Errorf("attribute provider called %d times, want 1 (no recomputation on cache hit)", calls)
	}
}

func TestGetSiteMergePrecedence(t *testing.T) {
	m := New(
		staticProvider(map[string]any{"name": "Example Computed", "tier": "site"}, nil),
		staticProvider(map[string]any{"tier": "jetpack"}, nil),
	)
	snap := testSnapshot()

	site := m.GetSite(snap, "12")
	if site == nil {
		t.Fatal("GetSite(12) returned nil for an existing site")
	}

	tests := []struct {
		name string
		key  string
		want any
	}{
		{
			name: "site-computed overrides raw",
			key:  "name",
			want: "Example Computed",
		},
		{
			name: "jetpack overrides site-computed",
			key:  "tier",
			want: "jetpack",
		},
		{
			name: "raw attribute survives merge",
			key:  "visible",
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := site.Attr(tt.key)
			if !ok {
				t.Fatalf("attribute %q missing from computed site", tt.key)
			}
			if got != tt.want {
				t.Errorf("Attr(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestGetSiteByIDAndSlugShareEntry(t *testing.T) {
	// State contains {ID: 7, slug: "example", name: "Example"};
	// site-computed(7) = {name: "Example Computed"}; jetpack-computed(7) = {}.
	m := New(
		staticProvider(map[string]any{"name": "Example Computed"}, nil),
		staticProvider(map[string]any{}, nil),
	)
	snap := testSnapshot()

	byID := m.GetSite(snap, "7")
	bySlug := m.GetSite(snap, "example")

	if byID == nil || bySlug == nil {
		t.Fatal("lookups for an existing site returned nil")
	}
	if byID != bySlug {
		t.Error("ID and slug lookups resolving to the same record returned different objects")
	}
	if byID.ID != 7 || byID.Slug != "example" {
		t.Errorf("computed site identity = (%d, %q), want (7, \"example\")", byID.ID, byID.Slug)
	}
	if got := byID.Name(); got != "Example Computed" {
		t.Errorf("Name() = %q, want %q", got, "Example Computed")
	}
	if m.cacheLen() != 1 {
		t.Errorf("cache has %d entries, want 1", m.cacheLen())
	}
}

func TestClearCacheForcesRecompute(t *testing.T) {
	version := "one"
	m := New(func(snap *state.Snapshot, siteID int64) map[string]any {
		return map[string]any{"version": version}
	}, nil)
	snap := testSnapshot()

	before := m.GetSite(snap, "example")
	if before == nil {
		t.Fatal("GetSite returned nil for an existing site")
	}
	if got, _ := before.Attr("version"); got != "one" {
		t.Fatalf("version = %v, want %q", got, "one")
	}

	m.ClearCache()
	version = "two"

	after := m.GetSite(snap, "example")
	if after == nil {
		t.Fatal("GetSite returned nil after cache clear")
	}
	if before == after {
		t.Error("lookup after ClearCache returned the stale cached object")
	}
	if got, _ := after.Attr("version"); got != "two" {
		t.Errorf("version after clear = %v, want %q", got, "two")
	}
}

func TestGetSiteUnresolvedReturnsNil(t *testing.T) {
	m := New(nil, nil)
	snap := testSnapshot()

	tests := []struct {
		name     string
		idOrSlug string
	}{
		{
			name:     "unknown numeric ID",
			idOrSlug: "999",
		},
		{
			name:     "unknown slug",
			idOrSlug: "no-such-site",
		},
		{
			name:     "empty string",
			idOrSlug: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if site := m.GetSite(snap, tt.idOrSlug); site != nil {
				t.Errorf("GetSite(%q) = %v, want nil", tt.idOrSlug, site)
			}
		})
	}

	if m.cacheLen() != 0 {
		t.Errorf("unresolved lookups mutated the cache: %d entries", m.cacheLen())
	}
}

func TestGetSiteNumericSlugFallback(t *testing.T) {
	m := New(nil, nil)
	snap := state.NewSnapshot([]*state.Site{
		{ID: 1, Slug: "42", Attrs: map[string]any{"name": "Numeric Slug"}},
	}, 0)

	site := m.GetSite(snap, "42")
	if site == nil {
		t.Fatal("GetSite(\"42\") did not fall back to the slug lookup")
	}
	if site.ID != 1 {
		t.Errorf("resolved site ID = %d, want 1", site.ID)
	}
}

func TestDistinctRecordIdentities(t *testing.T) {
	// Two snapshots with distinct record objects sharing site ID 7, as
	// during a state transition: each identity gets its own cache entry.
	m := New(nil, nil)
	oldSnap := state.NewSnapshot([]*state.Site{
		{ID: 7, Slug: "example", Attrs: map[string]any{"name": "Old"}},
	}, 0)
	newSnap := state.NewSnapshot([]*state.Site{
		{ID: 7, Slug: "example", Attrs: map[string]any{"name": "New"}},
	}, 0)

	oldSite := m.GetSiteByID(oldSnap, 7)
	newSite := m.GetSiteByID(newSnap, 7)

	if oldSite == nil || newSite == nil {
		t.Fatal("lookup returned nil for an existing site")
	}
	if oldSite == newSite {
		t.Error("distinct record objects with the same ID shared a materialization")
	}
	if m.cacheLen() != 2 {
		t.Errorf("cache has %d entries, want 2", m.cacheLen())
	}
	if oldSite.Name() != "Old" || newSite.Name() != "New" {
		t.Errorf("materializations crossed records: %q / %q", oldSite.Name(), newSite.Name())
	}
}

func TestSelectedSite(t *testing.T) {
	m := New(nil, nil)

	selected := m.SelectedSite(testSnapshot())
	if selected == nil {
		t.Fatal("SelectedSite returned nil with a selection present")
	}
	if selected.ID != 7 {
		t.Errorf("selected site ID = %d, want 7", selected.ID)
	}

	noSelection := state.NewSnapshot([]*state.Site{{ID: 7, Slug: "example"}}, 0)
	if site := m.SelectedSite(noSelection); site != nil {
		t.Errorf("SelectedSite with no selection = %v, want nil", site)
	}
}

func TestComputedSiteCopiesRawAttributes(t *testing.T) {
	m := New(nil, nil)
	raw := &state.Site{ID: 7, Slug: "example", Attrs: map[string]any{"name": "Example"}}
	snap := state.NewSnapshot([]*state.Site{raw}, 0)

	site := m.GetSiteByID(snap, 7)
	if site == nil {
		t.Fatal("GetSiteByID returned nil for an existing site")
	}

	site.Attrs["name"] = "mutated"
	if raw.Attrs["name"] != "Example" {
		t.Error("mutating the computed attributes leaked into the raw record")
	}
}

func TestConcurrentLookupsShareEntry(t *testing.T) {
	m := New(staticProvider(map[string]any{"tier": "site"}, nil), nil)
	snap := testSnapshot()

	const workers = 16
	results := make([]*ComputedSite, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = m.GetSiteByID(snap, 7)
		}(i)
	}
	wg.Wait()

	for i, site := range results {
		if site == nil {
			t.Fatalf("worker %d got nil", i)
		}
		if site != results[0] {
			t.Fatalf("worker %d got a different materialization", i)
		}
	}
	if m.cacheLen() != 1 {
		t.Errorf("cache has %d entries after concurrent lookups, want 1", m.cacheLen())
	}
}

func TestCacheReleasesCollectedRecords(t *testing.T) {
	m := New(nil, nil)

	// Materialize inside a helper so no local keeps the snapshot or its
	// record reachable afterwards.
	func() {
		snap := state.NewSnapshot([]*state.Site{
			{ID: 99, Slug: "ephemeral", Attrs: map[string]any{"name": "Ephemeral"}},
		}, 0)
		if site := m.GetSiteByID(snap, 99); site == nil {
			t.Fatal("GetSiteByID returned nil for an existing site")
		}
	}()

	deadline := time.Now().Add(5 * time.Second)
	for m.cacheLen() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("cache still holds %d entries after the raw record became unreachable", m.cacheLen())
		}
		runtime.GC()
		time.Sleep(10 * time.Millisecond)
	}
}
