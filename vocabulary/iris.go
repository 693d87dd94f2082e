// Package vocabulary provides the namespace and vocabulary definitions for
// the BOM ontology.
package vocabulary

import (
	"fmt"
	"regexp"
	"strings"
)

// Base IRI constants for the BOM ontology vocabularies
const (
	OntologyBase = "http://www.bom-owl.org/ontology"

	// MaterialNamespace qualifies generic material, item and BOM nodes.
	MaterialNamespace = OntologyBase + "/material"

	// CylinderNamespace qualifies the hydraulic-cylinder taxonomy.
	CylinderNamespace = OntologyBase + "/hydraulic-cylinder"
)

// localNameSafe matches every byte that may appear verbatim in an IRI
// fragment. ERP codes regularly carry spaces, slashes and asterisks; anything
// outside this set is replaced before qualification.
var localNameSafe = regexp.MustCompile(`[^A-Za-z0-9_\-.]`)

// SanitizeLocalName rewrites an ERP identifier so it is safe to embed in an
// IRI fragment. Characters outside [A-Za-z0-9_-.] become underscores; the
// original code is kept verbatim as a property value, so the mapping does not
// need to be reversible.
//
// Examples:
//   - "3 0210/105*" -> "3_0210_105_"
//   - "40305-0110"  -> "40305-0110" (unchanged)
//
// Returns empty string for empty or all-whitespace input.
func SanitizeLocalName(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	return localNameSafe.ReplaceAllString(code, "_")
}

// MaterialIRI qualifies a local name into the material namespace.
//
// Example: MaterialIRI("MasterItem") -> "http://www.bom-owl.org/ontology/material#MasterItem"
func MaterialIRI(local string) string {
	if local == "" {
		return ""
	}
	return fmt.Sprintf("%s#%s", MaterialNamespace, local)
}

// CylinderIRI qualifies a local name into the hydraulic-cylinder namespace.
//
// Example: CylinderIRI("HydraulicCylinder") -> "http://www.bom-owl.org/ontology/hydraulic-cylinder#HydraulicCylinder"
func CylinderIRI(local string) string {
	if local == "" {
		return ""
	}
	return fmt.Sprintf("%s#%s", CylinderNamespace, local)
}

// ItemIRI generates the node identifier for a material item. The ERP code is
// sanitized first; the "item-" prefix keeps instance identifiers out of the
// class and property name space.
//
// Example: ItemIRI("40305-0110") -> "http://www.bom-owl.org/ontology/material#item-40305-0110"
//
// Returns empty string for empty input.
func ItemIRI(code string) string {
	local := SanitizeLocalName(code)
	if local == "" {
		return ""
	}
	return fmt.Sprintf("%s#item-%s", MaterialNamespace, local)
}

// BomIRI generates the node identifier for a BOM usage relation between a
// master item and one of its components. The identifier is deterministic so
// re-converting the same record updates the existing node.
//
// Example: BomIRI("3020500100", "40305-0110", 10) ->
// "http://www.bom-owl.org/ontology/material#bom-3020500100-40305-0110-010"
//
// Returns empty string if either code is empty.
func BomIRI(masterCode, componentCode string, sequence int) string {
	master := SanitizeLocalName(masterCode)
	component := SanitizeLocalName(componentCode)
	if master == "" || component == "" {
		return ""
	}
	return fmt.Sprintf("%s#bom-%s-%s-%03d", MaterialNamespace, master, component, sequence)
}

// PropertyIRI qualifies a property name into the material namespace for
// export. Internal code uses bare property names; IRIs appear only in triple
// export at the reasoner boundary.
func PropertyIRI(name string) string {
	if name == "" {
		return ""
	}
	return fmt.Sprintf("%s#%s", MaterialNamespace, name)
}
