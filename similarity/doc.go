// Package similarity caches and computes similarity scores between
// hydraulic-cylinder items, and ranks candidate items against a search
// specification.
//
// Two bounded, expiring pools back the package: a high-cardinality score
// pool keyed by normalized item-code pairs, and a small result pool keyed
// by normalized specification maps. Key normalization makes lookups
// order-independent: Score(a, b) and Score(b, a) address the same entry,
// and two specification maps with equal contents produce the same search
// key regardless of insertion order.
//
// The Scorer is deterministic arithmetic over the specification maps the
// converter extracts; no embeddings or external calls are involved. The
// Service fronts the Scorer with both pools and records computation times
// on misses, so cache statistics report the observed cost of cold lookups.
package similarity
