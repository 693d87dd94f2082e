// Package schema builds and publishes the BOM ontology schema: the generic
// material vocabulary plus the hydraulic-cylinder taxonomy.
//
// # Building
//
// Definitions are collected on a Builder and assembled in two passes: pass 1
// declares every class and property name, pass 2 links superclasses,
// equivalences, disjoints, cardinalities and inverses. Any reference to an
// undeclared name fails the build with a fatal classified error and nothing
// is published, so a schema in hand is always fully linked.
//
// Build is idempotent under concurrent access. The fast path takes a read
// lock; the one-time assembly takes the write lock and re-tests the built
// flag before running. Most callers want the default schema:
//
//	s, err := schema.Shared()
//	if err != nil {
//	    return err
//	}
//	if s.IsFunctional(vocabulary.PropHasBoreSize) {
//	    ...
//	}
//
// # Taxonomy
//
// The hydraulic-cylinder taxonomy hangs five classification dimensions off
// one base class (series, bore, stroke, rod end, installation; classes
// within a dimension are mutually disjoint) plus a component-category tree
// under ComponentItem. Value-driven dimensions carry equivalence axioms
// ("StandardCylinder ≡ HydraulicCylinder ∩ hasSeries=10") that let the
// reasoner infer memberships the classification engine also assigns
// directly; CheckStructure evaluates the component cardinality axioms
// (exactly one barrel, two end caps, ...) against converted BOM subtrees.
//
// # Export
//
// Schema.Triples serializes every axiom over the W3C OWL/RDFS vocabulary for
// the reasoner request payload. Anonymous intersection and restriction
// classes use deterministic blank node labels, so repeated exports are
// byte-identical.
package schema
