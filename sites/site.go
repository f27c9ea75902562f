package sites

import (
	"fmt"

	"sitekit/state"
)

// Attribute keys with dedicated accessors on ComputedSite.
const (
	AttrName  = "name"
	AttrURL   = "url"
	AttrTitle = "title"
)

// ComputedSite is a materialized site: the raw record's attributes overlaid
// with the site-computed and Jetpack-computed attribute sets. Attrs is owned
// by the materialization cache and must be treated as read-only.
type ComputedSite struct {
	ID    int64          `json:"id"`
	Slug  string         `json:"slug,omitempty"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

// Attr returns the named attribute and whether it is present.
func (s *ComputedSite) Attr(key string) (any, bool) {
	if s == nil {
		return nil, false
	}
	v, ok := s.Attrs[key]
	return v, ok
}

// StringAttr returns the named attribute as a string, or "" when the
// attribute is absent or not a string.
func (s *ComputedSite) StringAttr(key string) string {
	v, ok := s.Attr(key)
	if !ok {
		return ""
	}
	str, _ := v.(string)
	return str
}

// Name returns the site's display name, or "" when none is set.
func (s *ComputedSite) Name() string {
	return s.StringAttr(AttrName)
}

// URL returns the site's primary URL, or "" when none is set.
func (s *ComputedSite) URL() string {
	return s.StringAttr(AttrURL)
}

// Title returns the site's title, falling back to the name, then the slug.
func (s *ComputedSite) Title() string {
	if title := s.StringAttr(AttrTitle); title != "" {
		return title
	}
	if name := s.Name(); name != "" {
		return name
	}
	if s == nil {
		return ""
	}
	return s.Slug
}

func (s *ComputedSite) String() string {
	if s == nil {
		return "site <nil>"
	}
	return fmt.Sprintf("site %d (%s)", s.ID, s.Slug)
}

// compute performs the materialization merge: raw attributes first, then
// site-computed, then Jetpack-computed, rightmost wins. The raw record's
// attribute map is copied, never referenced, so a cached ComputedSite does
// not anchor its raw record.
func compute(snap *state.Snapshot, raw *state.Site, siteAttrs, jetpackAttrs AttributeProvider) *ComputedSite {
	attrs := make(map[string]any, len(raw.Attrs)+8)
	for k, v := range raw.Attrs {
		attrs[k] = v
	}
	if siteAttrs != nil {
		for k, v := range siteAttrs(snap, raw.ID) {
			attrs[k] = v
		}
	}
	if jetpackAttrs != nil {
		for k, v := range jetpackAttrs(snap, raw.ID) {
			attrs[k] = v
		}
	}

	return &ComputedSite{
		ID:    raw.ID,
		Slug:  raw.Slug,
		Attrs: attrs,
	}
}
