package reasoning

import (
	"encoding/json"

	"github.com/JuntinLin/bom-owl-sub002/errors"
)

// RawResult is the reasoner's wire form. Every field is optional: a result
// carrying only an error string is as legal as a full success payload, and
// unknown keys are ignored. Nothing outside this package should consume a
// RawResult directly; Extract converts it into a Report.
type RawResult struct {
	Error      string        `json:"error,omitempty"`
	Valid      *bool         `json:"valid,omitempty"`
	Issues     []RawIssue    `json:"validationIssues,omitempty"`
	Triples    []RawTriple   `json:"inferredTriples,omitempty"`
	Subclasses []RawSubclass `json:"inferredSubclasses,omitempty"`
	Hierarchy  *RawHierarchy `json:"bomHierarchy,omitempty"`

	// Rulesets disagree on the shape of the completion stamp: some emit
	// RFC3339 strings, others epoch seconds or milliseconds. Kept loose
	// here; Extract normalizes it.
	Timestamp any `json:"timestamp,omitempty"`
}

// RawIssue is one validation finding as the reasoner reports it.
type RawIssue struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// RawTriple is one inferred statement as the reasoner reports it.
type RawTriple struct {
	Subject   string `json:"subject"`
	Predicate string `json:"predicate"`
	Object    string `json:"object"`
}

// RawSubclass is one inferred subclass pair as the reasoner reports it.
type RawSubclass struct {
	Subclass   string `json:"subclass"`
	Superclass string `json:"superclass"`
}

// RawHierarchy is the reasoner's nested BOM hierarchy section.
type RawHierarchy struct {
	Code               string                  `json:"code"`
	URI                string                  `json:"uri"`
	InferredProperties map[string]string       `json:"inferredProperties,omitempty"`
	Components         []RawHierarchyComponent `json:"components,omitempty"`
}

// RawHierarchyComponent is one component entry in the hierarchy section.
// Name, spec, quantity and the dates are optional.
type RawHierarchyComponent struct {
	Code               string            `json:"code"`
	URI                string            `json:"uri"`
	Name               string            `json:"name,omitempty"`
	Spec               string            `json:"spec,omitempty"`
	Quantity           float64           `json:"quantity,omitempty"`
	EffectiveDate      string            `json:"effectiveDate,omitempty"`
	ExpiryDate         string            `json:"expiryDate,omitempty"`
	InferredProperties map[string]string `json:"inferredProperties,omitempty"`
}

// DecodeResult parses a reasoner reply. Missing keys are fine; only
// malformed JSON is an error.
func DecodeResult(data []byte) (RawResult, error) {
	var raw RawResult
	if err := json.Unmarshal(data, &raw); err != nil {
		return RawResult{}, errors.WrapInvalid(err, "reasoning", "DecodeResult", "parse reasoner reply")
	}
	return raw, nil
}
