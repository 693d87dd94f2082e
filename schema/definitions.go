package schema

// PropertyKind discriminates object properties (node references) from
// datatype properties (literals).
type PropertyKind string

const (
	// ObjectProperty values are references to other nodes
	ObjectProperty PropertyKind = "object"
	// DatatypeProperty values are literals with an XSD datatype
	DatatypeProperty PropertyKind = "datatype"
)

// ValueRestriction describes "property has value v". Values with more than
// one element form a one-of set: the restriction is satisfied by any listed
// value. ThreadedRodEndCylinder uses this for rod end codes I and E.
type ValueRestriction struct {
	Property string   `json:"property"`
	Values   []string `json:"values"`
}

// Matches reports whether a lexical form satisfies the restriction.
func (r ValueRestriction) Matches(lexical string) bool {
	for _, v := range r.Values {
		if v == lexical {
			return true
		}
	}
	return false
}

// Equivalence expresses "class ≡ Base ∩ Restriction": membership in the base
// class together with the restricted property value defines the class. The
// reasoner uses these axioms to infer memberships; CrossCheck compares them
// against the classification engine's direct tags.
type Equivalence struct {
	Base        string           `json:"base"`
	Restriction ValueRestriction `json:"restriction"`
}

// CardinalityKind selects the comparison a cardinality restriction applies.
type CardinalityKind string

const (
	// CardinalityExact requires exactly Count fillers
	CardinalityExact CardinalityKind = "exact"
	// CardinalityMin requires at least Count fillers
	CardinalityMin CardinalityKind = "min"
)

// CardinalityRestriction constrains how many values of a property, typed by
// the filler class, a member of the owning class carries. A complete
// hydraulic cylinder has exactly one Barrel and exactly two EndCaps over
// hasComponent.
type CardinalityRestriction struct {
	Property string          `json:"property"`
	Kind     CardinalityKind `json:"kind"`
	Count    int             `json:"count"`
	Filler   string          `json:"filler"`
}

// ClassDefinition declares one class and its axioms. Names are bare local
// names; builder pass 2 resolves every reference against the declared set
// and fails fast on anything unknown.
type ClassDefinition struct {
	Name          string                   `json:"name"`
	Label         string                   `json:"label,omitempty"`
	SuperClasses  []string                 `json:"super_classes,omitempty"`
	Equivalences  []Equivalence            `json:"equivalences,omitempty"`
	DisjointWith  []string                 `json:"disjoint_with,omitempty"`
	Cardinalities []CardinalityRestriction `json:"cardinalities,omitempty"`
}

// PropertyDefinition declares one property. Range is a class local name for
// object properties and an XSD datatype IRI for datatype properties. Inverse
// names the declared inverse object property, when one exists.
type PropertyDefinition struct {
	Name              string       `json:"name"`
	Kind              PropertyKind `json:"kind"`
	Domain            string       `json:"domain,omitempty"`
	Range             string       `json:"range,omitempty"`
	Functional        bool         `json:"functional,omitempty"`
	InverseFunctional bool         `json:"inverse_functional,omitempty"`
	Transitive        bool         `json:"transitive,omitempty"`
	Symmetric         bool         `json:"symmetric,omitempty"`
	Asymmetric        bool         `json:"asymmetric,omitempty"`
	Reflexive         bool         `json:"reflexive,omitempty"`
	Irreflexive       bool         `json:"irreflexive,omitempty"`
	Inverse           string       `json:"inverse,omitempty"`
}
