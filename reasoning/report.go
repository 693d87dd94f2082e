// Package reasoning turns the external reasoner's loosely-typed results
// into strongly-typed reports and carries the NATS gateway that talks to
// the reasoner. Loose maps stop at the extraction boundary; everything the
// rest of the system sees is a Report.
package reasoning

import (
	"time"

	"github.com/JuntinLin/bom-owl-sub002/pkg/timestamp"
	"github.com/JuntinLin/bom-owl-sub002/vocabulary"
)

// ValidationIssue is one problem the reasoner found with a BOM structure.
type ValidationIssue struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// InferredTriple is a statement the reasoner derived beyond the asserted
// graph.
type InferredTriple struct {
	Subject   string `json:"subject"`
	Predicate string `json:"predicate"`
	Object    string `json:"object"`
}

// SubclassPair is one inferred subclass relationship.
type SubclassPair struct {
	Subclass   string `json:"subclass"`
	Superclass string `json:"superclass"`
}

// HierarchyComponent is one component in an inferred BOM hierarchy. Name,
// spec, quantity and dates are optional on the wire; absent values stay
// zero. Dates keep their ISO-8601 yyyy-MM-dd form.
type HierarchyComponent struct {
	Code               string            `json:"code"`
	URI                string            `json:"uri"`
	Name               string            `json:"name,omitempty"`
	Spec               string            `json:"spec,omitempty"`
	Quantity           float64           `json:"quantity,omitempty"`
	EffectiveDate      string            `json:"effective_date,omitempty"`
	ExpiryDate         string            `json:"expiry_date,omitempty"`
	InferredProperties map[string]string `json:"inferred_properties"`
}

// BomHierarchy is the reasoner's view of a master item and its components
// with inferred properties attached at every level.
type BomHierarchy struct {
	Code               string               `json:"code"`
	URI                string               `json:"uri"`
	InferredProperties map[string]string    `json:"inferred_properties"`
	Components         []HierarchyComponent `json:"components"`
}

// Report is the strongly-typed outcome of one reasoner call. The list
// fields are never nil; Hierarchy is nil unless the reasoner returned one.
// A failed call is still a Report: Valid false and ErrorMessage set.
// ReasonedAt and ReceivedAt are Unix milliseconds; ReasonedAt is 0 when
// the reply carried no timestamp.
type Report struct {
	MasterCode         string            `json:"master_code"`
	ReasonerType       string            `json:"reasoner_type"`
	RequestID          string            `json:"request_id,omitempty"`
	Valid              bool              `json:"valid"`
	Issues             []ValidationIssue `json:"issues"`
	InferredTriples    []InferredTriple  `json:"inferred_triples"`
	InferredSubclasses []SubclassPair    `json:"inferred_subclasses"`
	Hierarchy          *BomHierarchy     `json:"bom_hierarchy,omitempty"`
	ErrorMessage       string            `json:"error_message,omitempty"`
	Elapsed            time.Duration     `json:"elapsed"`
	ReasonedAt         int64             `json:"reasoned_at,omitempty"`
	ReceivedAt         int64             `json:"received_at,omitempty"`
}

// ReasonerLag returns the time between the reasoner stamping the result
// and this process extracting it. Zero when the reply carried no stamp.
func (r Report) ReasonerLag() time.Duration {
	return timestamp.Between(r.ReasonedAt, r.ReceivedAt)
}

// InferredClasses returns the class names this report asserts for the
// given individual, for cross-checking against the rule engine's direct
// tags. Both full rdf:type IRIs and the bare predicate name are accepted.
func (r Report) InferredClasses(subjectURI string) []string {
	classes := []string{}
	for _, triple := range r.InferredTriples {
		if triple.Subject != subjectURI {
			continue
		}
		if triple.Predicate == vocabulary.RdfType || triple.Predicate == "rdf:type" {
			classes = append(classes, triple.Object)
		}
	}
	return classes
}
