// Package bomowl converts ERP Bill-of-Materials records into a semantic
// knowledge graph, classifies items into the hydraulic-cylinder taxonomy,
// shapes external reasoner output into structured reports, and caches
// similarity computations used for search.
//
// # Architecture
//
// The pipeline is built from small, mostly stateless packages over a shared
// in-memory graph:
//
//   - ontology: the typed node/edge graph and its triple export
//   - vocabulary: namespace IRIs, class names, property names, W3C terms
//   - schema: one-time construction of the class hierarchy, property
//     definitions and axioms, plus structural completeness checks
//   - convert: BOM record to graph individual conversion, including the
//     positional-code feature extraction, and the parallel batch runner
//   - classify: rule-table classification, specification validation and
//     component suggestion generation
//   - reasoning: the typed boundary for reasoner results and the NATS
//     request/reply gateway to the external reasoner
//   - similarity: pairwise similarity scoring and candidate search fronted
//     by two bounded, expiring cache pools
//
// Supporting packages carry the ambient concerns: errors (classified
// errors), metric (Prometheus registry and endpoint), config (YAML
// configuration), natsclient (managed NATS connection), and pkg/cache,
// pkg/worker, pkg/retry as generic building blocks.
//
// # Concurrency
//
// The schema is built exactly once behind a double-checked read/write lock
// and is immutable afterwards. The graph absorbs concurrent writes, so
// conversions run one record per worker with no external locking. The
// classification and extraction layers are pure over their inputs, and the
// caches are safe for concurrent use.
//
// The reasoner is the only external call: the gateway owns its timeout and
// maps any transport failure or deadline into an error report rather than
// letting a raw error cross the core boundary.
package bomowl
