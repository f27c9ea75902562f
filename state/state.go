package state

import (
	"sitekit/internal/logging"
)

// Site is a raw site record as stored directly in the application state.
// ID and Slug are the only fields this module interprets; everything else
// a site carries lives in Attrs and is opaque here.
type Site struct {
	ID    int64          `json:"id" yaml:"id"`
	Slug  string         `json:"slug,omitempty" yaml:"slug,omitempty"`
	Attrs map[string]any `json:"attrs,omitempty" yaml:"attrs,omitempty"`
}

// Snapshot is a read-only view of the sites slice of the application state
// tree. It indexes raw site records by ID and slug and records which site,
// if any, is currently selected.
type Snapshot struct {
	byID     map[int64]*Site
	bySlug   map[string]*Site
	order    []*Site
	selected int64
}

// NewSnapshot builds a Snapshot from a list of raw site records and the
// selected site ID (0 means no selection). Records with a duplicate ID or
// slug are dropped with a warning; the first occurrence wins. Nil entries
// are ignored.
func NewSnapshot(sites []*Site, selectedID int64) *Snapshot {
	snap := &Snapshot{
		byID:     make(map[int64]*Site, len(sites)),
		bySlug:   make(map[string]*Site, len(sites)),
		selected: selectedID,
	}

	for _, site := range sites {
		if site == nil {
			continue
		}
		if _, exists := snap.byID[site.ID]; exists {
			logging.Warn("Snapshot: duplicate site ID %d, keeping first record", site.ID)
			continue
		}
		snap.byID[site.ID] = site
		snap.order = append(snap.order, site)

		if site.Slug == "" {
			continue
		}
		if _, exists := snap.bySlug[site.Slug]; exists {
			logging.Warn("Snapshot: duplicate site slug %q, keeping first record", site.Slug)
			continue
		}
		snap.bySlug[site.Slug] = site
	}

	return snap
}

// SiteByID returns the raw site record with the given numeric ID, or nil
// if no such record exists.
func (s *Snapshot) SiteByID(id int64) *Site {
	if s == nil {
		return nil
	}
	return s.byID[id]
}

// SiteBySlug returns the raw site record with the given slug, or nil if no
// such record exists. The empty slug never matches.
func (s *Snapshot) SiteBySlug(slug string) *Site {
	if s == nil || slug == "" {
		return nil
	}
	return s.bySlug[slug]
}

// SelectedSiteID reports the currently selected site ID. The second return
// is false when no site is selected.
func (s *Snapshot) SelectedSiteID() (int64, bool) {
	if s == nil || s.selected == 0 {
		return 0, false
	}
	return s.selected, true
}

// Sites returns the raw site records in insertion order. The returned
// slice is a copy; the records themselves are shared.
func (s *Snapshot) Sites() []*Site {
	if s == nil {
		return nil
	}
	out := make([]*Site, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of raw site records in the snapshot.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}
