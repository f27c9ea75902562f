// Package state holds the application state snapshot consumed by the
// selector and materializer packages.
//
// A Snapshot is an immutable-after-construction view of one slice of the
// client application's state tree: the raw site records indexed by numeric
// ID and by slug, plus the currently selected site ID. Raw selectors on
// Snapshot are plain field reads with no derivation; absence is always
// reported as a nil record or a false second return, never an error.
//
// Snapshots can be built programmatically with NewSnapshot or decoded from
// JSON/YAML fixture files with Load, which exists for the siteinfo CLI and
// for tests. Fixture decoding is not a persistence layer: the real state
// store and its update mechanism live in the host application, which is
// expected to construct a fresh Snapshot whenever the store is replaced.
package state
