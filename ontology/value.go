// Package ontology provides the in-memory knowledge graph for converted BOM
// data.
package ontology

import (
	"fmt"
	"strconv"
	"time"

	"github.com/JuntinLin/bom-owl-sub002/vocabulary"
)

// ValueKind discriminates literal values from node references.
type ValueKind string

const (
	// KindLiteral marks a value carrying a lexical form and datatype hint
	KindLiteral ValueKind = "literal"
	// KindRef marks a value referencing another graph node by identifier
	KindRef ValueKind = "ref"
)

// Value is one element of a property's ordered value list. A value is either
// a literal (lexical form plus optional XSD datatype hint) or a reference to
// another node. Values are comparable; two values are the same when all
// fields match.
type Value struct {
	Kind     ValueKind `json:"kind"`
	Literal  string    `json:"literal,omitempty"`
	Datatype string    `json:"datatype,omitempty"`
	Ref      string    `json:"ref,omitempty"`
}

// StringValue returns a plain string literal.
func StringValue(s string) Value {
	return Value{Kind: KindLiteral, Literal: s, Datatype: vocabulary.XsdString}
}

// IntValue returns an integer literal.
func IntValue(i int) Value {
	return Value{Kind: KindLiteral, Literal: strconv.Itoa(i), Datatype: vocabulary.XsdInteger}
}

// FloatValue returns a double literal. The lexical form uses the shortest
// representation that round-trips.
func FloatValue(f float64) Value {
	return Value{
		Kind:     KindLiteral,
		Literal:  strconv.FormatFloat(f, 'g', -1, 64),
		Datatype: vocabulary.XsdDouble,
	}
}

// BoolValue returns a boolean literal.
func BoolValue(b bool) Value {
	return Value{Kind: KindLiteral, Literal: strconv.FormatBool(b), Datatype: vocabulary.XsdBoolean}
}

// DateValue returns an ISO-8601 date literal (yyyy-MM-dd). Time of day and
// zone are dropped; BOM effectivity is date-granular.
func DateValue(t time.Time) Value {
	return Value{Kind: KindLiteral, Literal: t.Format("2006-01-02"), Datatype: vocabulary.XsdDate}
}

// RefValue returns a reference to the node with the given identifier.
func RefValue(id string) Value {
	return Value{Kind: KindRef, Ref: id}
}

// IsRef reports whether the value references another node.
func (v Value) IsRef() bool {
	return v.Kind == KindRef
}

// IsLiteral reports whether the value is a literal.
func (v Value) IsLiteral() bool {
	return v.Kind == KindLiteral
}

// Int parses the literal as an integer. Returns false for references and
// non-numeric lexical forms.
func (v Value) Int() (int, bool) {
	if v.Kind != KindLiteral {
		return 0, false
	}
	i, err := strconv.Atoi(v.Literal)
	if err != nil {
		return 0, false
	}
	return i, true
}

// Float parses the literal as a float64. Returns false for references and
// non-numeric lexical forms.
func (v Value) Float() (float64, bool) {
	if v.Kind != KindLiteral {
		return 0, false
	}
	f, err := strconv.ParseFloat(v.Literal, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Date parses an ISO-8601 date literal. Returns false for references and
// malformed dates.
func (v Value) Date() (time.Time, bool) {
	if v.Kind != KindLiteral {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", v.Literal)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// String renders the value for logs and error messages.
func (v Value) String() string {
	if v.IsRef() {
		return fmt.Sprintf("<%s>", v.Ref)
	}
	return fmt.Sprintf("%q", v.Literal)
}
