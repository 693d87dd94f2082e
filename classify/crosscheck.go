package classify

import "sort"

// Disagreement records a class that the rule engine and the reasoner do not
// agree on: present on one side but absent from the other.
type Disagreement struct {
	Class    string `json:"class"`
	Direct   bool   `json:"direct"`
	Inferred bool   `json:"inferred"`
}

// CrossCheck compares the engine's directly assigned tags with the class
// memberships a reasoner inferred for the same individual. The equivalence
// axioms in the schema mean both routes should arrive at the same set; any
// difference points at either a rule drift or a schema axiom out of step
// with the rule tables. The result is deduplicated and sorted by class name.
func CrossCheck(direct, inferred []string) []Disagreement {
	directSet := make(map[string]bool, len(direct))
	for _, class := range direct {
		directSet[class] = true
	}
	inferredSet := make(map[string]bool, len(inferred))
	for _, class := range inferred {
		inferredSet[class] = true
	}

	disagreements := []Disagreement{}
	seen := make(map[string]bool)
	for class := range directSet {
		if !inferredSet[class] && !seen[class] {
			seen[class] = true
			disagreements = append(disagreements, Disagreement{Class: class, Direct: true})
		}
	}
	for class := range inferredSet {
		if !directSet[class] && !seen[class] {
			seen[class] = true
			disagreements = append(disagreements, Disagreement{Class: class, Inferred: true})
		}
	}

	sort.Slice(disagreements, func(i, j int) bool {
		return disagreements[i].Class < disagreements[j].Class
	})
	return disagreements
}
