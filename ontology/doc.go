// Package ontology provides the in-memory knowledge graph that BOM
// conversion populates and the reasoner boundary serializes.
//
// # Model
//
// A node is an identifier (namespace-qualified IRI), a set of type tags
// (class memberships in the material and hydraulic-cylinder vocabularies)
// and a map of property name to ordered value list. A value is either a
// literal with an XSD datatype hint or a reference to another node; edges
// between items are reference-valued properties like "hasComponent".
//
// # Concurrency
//
// Graph is the single synchronized owner of node state. All mutation goes
// through Graph methods under an internal RWMutex, so batch conversion can
// run one worker per BOM record with no external locking. Reads return
// deep-copied snapshots that never alias graph-internal state.
//
// # Idempotence
//
// The mutation API is shaped so that re-converting the same BOM record is an
// update, not a duplication: EnsureNode is a no-op for existing nodes,
// AddType ignores tags already present, SetProperty replaces, and AddRef
// deduplicates repeated references under the same property.
//
// # Export
//
// Triples serializes the graph deterministically for the reasoner request
// payload. Type tags qualify through vocabulary.ClassIRI and property names
// through vocabulary.PropertyIRI; IRIs never appear in internal code paths.
package ontology
