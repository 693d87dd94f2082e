// Package vocabulary provides namespace and vocabulary management for the
// BOM ontology. It defines the class and property names of the material and
// hydraulic-cylinder vocabularies and the IRI qualification used at export
// boundaries.
//
// # Architecture Philosophy: Pragmatic Semantic Web
//
// The vocabulary package follows a "pragmatic semantic web" approach:
//
// **Internal**: bare local names everywhere. Graph nodes carry type tags like
// "HydraulicCylinder" and property names like "hasBoreSize"; classification
// rules and schema definitions compare plain strings.
//
// **External**: IRI qualification at the reasoner boundary only. Triple
// export qualifies local names into the two ontology namespaces and uses the
// W3C standard IRIs (rdfs:subClassOf, owl:disjointWith, ...) for axioms.
//
// **No Leakage**: IRI syntax does not leak into internal code paths.
//
// # Namespaces
//
// Two namespaces partition the ontology:
//
//   - MaterialNamespace: generic material, item and BOM usage concepts
//     shared by every product family.
//   - CylinderNamespace: the hydraulic-cylinder taxonomy with its five
//     classification dimensions and component categories.
//
// Every node identifier is namespace-qualified; instance identifiers embed
// the sanitized ERP code ("item-40305-0110") so re-conversion is idempotent.
//
// # Identifier Sanitization
//
// ERP codes can carry spaces, slashes and other bytes that are not safe in
// an IRI fragment. SanitizeLocalName replaces everything outside
// [A-Za-z0-9_-.] with underscores. The raw code is preserved as the itemCode
// property value, so nothing is lost by the rewrite.
package vocabulary
