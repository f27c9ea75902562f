// Package metrics defines the Prometheus metrics exported by sitekit.
//
// Metrics are registered with the default registry via promauto at package
// init. Exposition is the host application's concern; this library only
// instruments its own operations:
//
//   - Materializer cache: hits, misses, evictions, clears, current size
//   - Media URL resolution, labeled by which source won the precedence
//   - Preview generation: outcome counts and duration
package metrics
