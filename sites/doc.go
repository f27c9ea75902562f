// Package sites materializes computed site objects from raw site records.
//
// A raw record carries only the fields stored directly in the application
// state. The externally visible "site" value is the raw record shallow-merged
// with two sets of derived attributes: site-computed attributes and
// Jetpack-computed attributes, in that order, with later sources overriding
// earlier ones on key collision.
//
// The Materializer memoizes that merge per raw-record identity: looking up
// the same underlying record twice returns the identical *ComputedSite, not
// merely an equal one. The cache is keyed by the record's pointer identity
// rather than by ID or slug, so two distinct record objects that happen to
// share an ID (as during a state transition) get distinct entries. Cache
// keys are weak pointers with a per-entry runtime cleanup, so the cache
// never keeps a record alive that nothing else references.
//
// ClearCache discards every entry at once and must be called by the state
// layer whenever it replaces the raw-record store wholesale. There is no
// per-entry eviction.
//
// Absence is a normal outcome everywhere in this package: an ID or slug
// that resolves to nothing yields a nil *ComputedSite, never an error.
package sites
