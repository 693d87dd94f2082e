package reasoning

import (
	"time"

	"github.com/JuntinLin/bom-owl-sub002/pkg/timestamp"
)

// Extract converts a raw reasoner result into a Report. The mapping is
// total: an error indicator short-circuits to an invalid report, a missing
// validity flag defaults to valid, absent lists become empty lists, and the
// loose completion stamp normalizes to Unix milliseconds. Extract never
// fails.
func Extract(raw RawResult, masterCode, reasonerType string, elapsed time.Duration) Report {
	report := Report{
		MasterCode:         masterCode,
		ReasonerType:       reasonerType,
		Elapsed:            elapsed,
		Issues:             []ValidationIssue{},
		InferredTriples:    []InferredTriple{},
		InferredSubclasses: []SubclassPair{},
		ReasonedAt:         timestamp.Parse(raw.Timestamp),
		ReceivedAt:         timestamp.Now(),
	}

	if raw.Error != "" {
		report.Valid = false
		report.ErrorMessage = raw.Error
		return report
	}

	report.Valid = true
	if raw.Valid != nil {
		report.Valid = *raw.Valid
	}

	for _, issue := range raw.Issues {
		report.Issues = append(report.Issues, ValidationIssue{
			Type:        issue.Type,
			Description: issue.Description,
		})
	}
	for _, triple := range raw.Triples {
		report.InferredTriples = append(report.InferredTriples, InferredTriple{
			Subject:   triple.Subject,
			Predicate: triple.Predicate,
			Object:    triple.Object,
		})
	}
	for _, pair := range raw.Subclasses {
		report.InferredSubclasses = append(report.InferredSubclasses, SubclassPair{
			Subclass:   pair.Subclass,
			Superclass: pair.Superclass,
		})
	}

	if raw.Hierarchy != nil {
		report.Hierarchy = extractHierarchy(raw.Hierarchy)
	}

	return report
}

func extractHierarchy(raw *RawHierarchy) *BomHierarchy {
	hierarchy := &BomHierarchy{
		Code:               raw.Code,
		URI:                raw.URI,
		InferredProperties: copyProperties(raw.InferredProperties),
		Components:         make([]HierarchyComponent, 0, len(raw.Components)),
	}

	for _, component := range raw.Components {
		hierarchy.Components = append(hierarchy.Components, HierarchyComponent{
			Code:               component.Code,
			URI:                component.URI,
			Name:               component.Name,
			Spec:               component.Spec,
			Quantity:           component.Quantity,
			EffectiveDate:      component.EffectiveDate,
			ExpiryDate:         component.ExpiryDate,
			InferredProperties: copyProperties(component.InferredProperties),
		})
	}

	return hierarchy
}

// copyProperties clones a property map; nil input yields an empty map so
// report consumers never see nil.
func copyProperties(props map[string]string) map[string]string {
	out := make(map[string]string, len(props))
	for k, v := range props {
		out[k] = v
	}
	return out
}
