package schema

import (
	"fmt"

	"github.com/JuntinLin/bom-owl-sub002/errors"
	"github.com/JuntinLin/bom-owl-sub002/ontology"
)

// StructuralIssue is one failed cardinality expectation found by
// CheckStructure.
type StructuralIssue struct {
	NodeID   string          `json:"node_id"`
	Class    string          `json:"class"`
	Property string          `json:"property"`
	Filler   string          `json:"filler"`
	Kind     CardinalityKind `json:"kind"`
	Expected int             `json:"expected"`
	Actual   int             `json:"actual"`
}

func (i StructuralIssue) String() string {
	comparison := "exactly"
	if i.Kind == CardinalityMin {
		comparison = "at least"
	}
	return fmt.Sprintf("%s: expected %s %d %s via %s, found %d",
		i.NodeID, comparison, i.Expected, i.Filler, i.Property, i.Actual)
}

// CheckStructure evaluates the cardinality axioms applicable to a node
// against its actual property values. Axioms apply through the node's type
// tags and their superclass closure: a StandardCylinder is checked against
// the HydraulicCylinder component axioms. A target counts toward a filler
// when any of its type tags is the filler class or a subclass of it.
//
// The returned slice lists every unmet expectation; an empty slice means the
// structure is complete. The only error condition is a missing node.
func (s *Schema) CheckStructure(g *ontology.Graph, nodeID string) ([]StructuralIssue, error) {
	node, ok := g.Node(nodeID)
	if !ok {
		return nil, errors.WrapInvalid(errors.ErrNodeNotFound, "schema", "CheckStructure",
			fmt.Sprintf("loading node %q", nodeID))
	}

	issues := []StructuralIssue{}
	checked := make(map[string]bool)

	for _, tag := range node.Types {
		for _, class := range append([]string{tag}, s.ancestors[tag]...) {
			if checked[class] {
				continue
			}
			checked[class] = true

			def, ok := s.classes[class]
			if !ok {
				continue
			}

			for _, card := range def.Cardinalities {
				actual := s.countFillers(g, node, card)
				satisfied := actual == card.Count
				if card.Kind == CardinalityMin {
					satisfied = actual >= card.Count
				}
				if !satisfied {
					issues = append(issues, StructuralIssue{
						NodeID:   nodeID,
						Class:    class,
						Property: card.Property,
						Filler:   card.Filler,
						Kind:     card.Kind,
						Expected: card.Count,
						Actual:   actual,
					})
				}
			}
		}
	}

	return issues, nil
}

// countFillers counts the node's references under the restricted property
// whose targets carry the filler class or a subclass of it.
func (s *Schema) countFillers(g *ontology.Graph, node ontology.Node, card CardinalityRestriction) int {
	count := 0
	for _, targetID := range node.RefProperty(card.Property) {
		target, ok := g.Node(targetID)
		if !ok {
			continue
		}
		for _, tag := range target.Types {
			if s.IsSubClassOf(tag, card.Filler) {
				count++
				break
			}
		}
	}
	return count
}
