package schema

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/JuntinLin/bom-owl-sub002/errors"
	"github.com/JuntinLin/bom-owl-sub002/ontology"
	"github.com/JuntinLin/bom-owl-sub002/vocabulary"
)

// Schema is the immutable, fully linked ontology schema. All lookups are
// safe for concurrent use; nothing mutates a Schema after Build publishes it.
type Schema struct {
	classes       map[string]ClassDefinition
	properties    map[string]PropertyDefinition
	classNames    []string
	propertyNames []string
	ancestors     map[string][]string
}

func newSchema(classes map[string]ClassDefinition, properties map[string]PropertyDefinition, ancestors map[string][]string) *Schema {
	classNames := make([]string, 0, len(classes))
	for name := range classes {
		classNames = append(classNames, name)
	}
	slices.Sort(classNames)

	propertyNames := make([]string, 0, len(properties))
	for name := range properties {
		propertyNames = append(propertyNames, name)
	}
	slices.Sort(propertyNames)

	return &Schema{
		classes:       classes,
		properties:    properties,
		classNames:    classNames,
		propertyNames: propertyNames,
		ancestors:     ancestors,
	}
}

// Class returns a copy of the named class definition.
func (s *Schema) Class(name string) (ClassDefinition, bool) {
	def, ok := s.classes[name]
	if !ok {
		return ClassDefinition{}, false
	}
	return copyClassDefinition(def), true
}

// Property returns the named property definition.
func (s *Schema) Property(name string) (PropertyDefinition, bool) {
	def, ok := s.properties[name]
	return def, ok
}

// HasClass reports whether the class name is declared.
func (s *Schema) HasClass(name string) bool {
	_, ok := s.classes[name]
	return ok
}

// ClassNames returns all declared class names, sorted.
func (s *Schema) ClassNames() []string {
	return slices.Clone(s.classNames)
}

// PropertyNames returns all declared property names, sorted.
func (s *Schema) PropertyNames() []string {
	return slices.Clone(s.propertyNames)
}

// Ancestors returns the proper superclass closure of a class, nearest first.
func (s *Schema) Ancestors(name string) []string {
	return slices.Clone(s.ancestors[name])
}

// IsSubClassOf reports whether name is ancestor or equal to it. The check is
// reflexive: every class is a subclass of itself.
func (s *Schema) IsSubClassOf(name, ancestor string) bool {
	if name == ancestor {
		_, ok := s.classes[name]
		return ok
	}
	return slices.Contains(s.ancestors[name], ancestor)
}

// AreDisjoint reports whether two classes can never share an instance. The
// declared disjoints are checked across both superclass closures, so
// subclasses of disjoint classes are disjoint too.
func (s *Schema) AreDisjoint(a, b string) bool {
	aSet := append([]string{a}, s.ancestors[a]...)
	bSet := append([]string{b}, s.ancestors[b]...)

	for _, x := range aSet {
		xDef, ok := s.classes[x]
		if !ok {
			continue
		}
		for _, y := range bSet {
			if slices.Contains(xDef.DisjointWith, y) {
				return true
			}
			yDef, ok := s.classes[y]
			if ok && slices.Contains(yDef.DisjointWith, x) {
				return true
			}
		}
	}
	return false
}

// IsFunctional reports whether the property is declared functional.
func (s *Schema) IsFunctional(property string) bool {
	def, ok := s.properties[property]
	return ok && def.Functional
}

// Cardinalities returns the cardinality restrictions that apply to members
// of the class, including those inherited from superclasses.
func (s *Schema) Cardinalities(class string) []CardinalityRestriction {
	var out []CardinalityRestriction
	for _, name := range append([]string{class}, s.ancestors[class]...) {
		def, ok := s.classes[name]
		if !ok {
			continue
		}
		out = append(out, def.Cardinalities...)
	}
	return out
}

// Equivalences returns the equivalence axioms declared for a class.
func (s *Schema) Equivalences(class string) []Equivalence {
	def, ok := s.classes[class]
	if !ok {
		return nil
	}
	out := make([]Equivalence, len(def.Equivalences))
	for i, eq := range def.Equivalences {
		out[i] = Equivalence{
			Base: eq.Base,
			Restriction: ValueRestriction{
				Property: eq.Restriction.Property,
				Values:   slices.Clone(eq.Restriction.Values),
			},
		}
	}
	return out
}

// SetChecked writes a property value through the schema's semantics:
// functional properties replace any existing value, everything else appends.
// Unknown properties are rejected.
func (s *Schema) SetChecked(g *ontology.Graph, nodeID, property string, v ontology.Value) error {
	def, ok := s.properties[property]
	if !ok {
		return errors.WrapInvalid(errors.ErrUnknownProperty, "schema", "SetChecked",
			fmt.Sprintf("writing property %q", property))
	}
	if def.Functional {
		return g.SetProperty(nodeID, property, v)
	}
	return g.AppendProperty(nodeID, property, v)
}

// Triples serializes the schema as OWL axioms over W3C vocabulary for the
// reasoner payload. Anonymous restriction classes use deterministic blank
// node labels so the export is stable across calls. Disjoint pairs are
// emitted once (lexically smaller subject).
func (s *Schema) Triples() []ontology.Triple {
	var ts []ontology.Triple

	for _, name := range s.classNames {
		def := s.classes[name]
		iri := vocabulary.ClassIRI(name)

		ts = append(ts, ontology.RefTriple(iri, vocabulary.RdfType, vocabulary.OwlClass))
		if def.Label != "" {
			ts = append(ts, ontology.LiteralTriple(iri, vocabulary.RdfsLabel, def.Label, vocabulary.XsdString))
		}
		for _, super := range def.SuperClasses {
			ts = append(ts, ontology.RefTriple(iri, vocabulary.RdfsSubClassOf, vocabulary.ClassIRI(super)))
		}
		for _, other := range def.DisjointWith {
			if name < other {
				ts = append(ts, ontology.RefTriple(iri, vocabulary.OwlDisjointWith, vocabulary.ClassIRI(other)))
			}
		}
		for i, eq := range def.Equivalences {
			ts = append(ts, s.equivalenceTriples(name, i, eq)...)
		}
		for i, card := range def.Cardinalities {
			ts = append(ts, cardinalityTriples(name, i, card)...)
		}
	}

	for _, name := range s.propertyNames {
		ts = append(ts, propertyTriples(s.properties[name])...)
	}

	return ts
}

// equivalenceTriples expands "class ≡ Base ∩ restriction" into an anonymous
// intersection class with an RDF list of two conjuncts. Single values use
// owl:hasValue; value sets use owl:someValuesFrom over a one-of datatype
// (equivalent for functional properties).
func (s *Schema) equivalenceTriples(className string, idx int, eq Equivalence) []ontology.Triple {
	classIRI := vocabulary.ClassIRI(className)
	eqNode := fmt.Sprintf("_:eq-%s-%d", className, idx)
	cell0 := eqNode + "-l0"
	cell1 := eqNode + "-l1"
	restriction := eqNode + "-r"

	datatype := s.properties[eq.Restriction.Property].Range

	ts := []ontology.Triple{
		ontology.RefTriple(classIRI, vocabulary.OwlEquivalentClass, eqNode),
		ontology.RefTriple(eqNode, vocabulary.RdfType, vocabulary.OwlClass),
		ontology.RefTriple(eqNode, vocabulary.OwlIntersectionOf, cell0),
		ontology.RefTriple(cell0, vocabulary.RdfFirst, vocabulary.ClassIRI(eq.Base)),
		ontology.RefTriple(cell0, vocabulary.RdfRest, cell1),
		ontology.RefTriple(cell1, vocabulary.RdfFirst, restriction),
		ontology.RefTriple(cell1, vocabulary.RdfRest, vocabulary.RdfNil),
		ontology.RefTriple(restriction, vocabulary.RdfType, vocabulary.OwlRestriction),
		ontology.RefTriple(restriction, vocabulary.OwlOnProperty, vocabulary.PropertyIRI(eq.Restriction.Property)),
	}

	if len(eq.Restriction.Values) == 1 {
		return append(ts, ontology.LiteralTriple(restriction, vocabulary.OwlHasValue, eq.Restriction.Values[0], datatype))
	}

	oneOf := eqNode + "-d"
	ts = append(ts,
		ontology.RefTriple(restriction, vocabulary.OwlSomeValuesFrom, oneOf),
		ontology.RefTriple(oneOf, vocabulary.RdfType, vocabulary.RdfsDatatype),
		ontology.RefTriple(oneOf, vocabulary.OwlOneOf, fmt.Sprintf("%s-l0", oneOf)),
	)
	for i, v := range eq.Restriction.Values {
		cell := fmt.Sprintf("%s-l%d", oneOf, i)
		ts = append(ts, ontology.LiteralTriple(cell, vocabulary.RdfFirst, v, datatype))
		rest := vocabulary.RdfNil
		if i < len(eq.Restriction.Values)-1 {
			rest = fmt.Sprintf("%s-l%d", oneOf, i+1)
		}
		ts = append(ts, ontology.RefTriple(cell, vocabulary.RdfRest, rest))
	}
	return ts
}

// cardinalityTriples expands a qualified cardinality axiom into an anonymous
// restriction attached to the class via rdfs:subClassOf.
func cardinalityTriples(className string, idx int, card CardinalityRestriction) []ontology.Triple {
	classIRI := vocabulary.ClassIRI(className)
	node := fmt.Sprintf("_:card-%s-%d", className, idx)

	predicate := vocabulary.OwlQualifiedCardinality
	if card.Kind == CardinalityMin {
		predicate = vocabulary.OwlMinQualifiedCardinality
	}

	return []ontology.Triple{
		ontology.RefTriple(classIRI, vocabulary.RdfsSubClassOf, node),
		ontology.RefTriple(node, vocabulary.RdfType, vocabulary.OwlRestriction),
		ontology.RefTriple(node, vocabulary.OwlOnProperty, vocabulary.PropertyIRI(card.Property)),
		ontology.LiteralTriple(node, predicate, strconv.Itoa(card.Count), vocabulary.XsdNonNegativeInteger),
		ontology.RefTriple(node, vocabulary.OwlOnClass, vocabulary.ClassIRI(card.Filler)),
	}
}

// propertyTriples serializes one property declaration with its
// characteristics, domain, range and inverse.
func propertyTriples(def PropertyDefinition) []ontology.Triple {
	iri := vocabulary.PropertyIRI(def.Name)

	kind := vocabulary.OwlObjectProperty
	if def.Kind == DatatypeProperty {
		kind = vocabulary.OwlDatatypeProperty
	}
	ts := []ontology.Triple{ontology.RefTriple(iri, vocabulary.RdfType, kind)}

	characteristics := []struct {
		set bool
		iri string
	}{
		{def.Functional, vocabulary.OwlFunctionalProperty},
		{def.InverseFunctional, vocabulary.OwlInverseFunctionalProperty},
		{def.Transitive, vocabulary.OwlTransitiveProperty},
		{def.Symmetric, vocabulary.OwlSymmetricProperty},
		{def.Asymmetric, vocabulary.OwlAsymmetricProperty},
		{def.Reflexive, vocabulary.OwlReflexiveProperty},
		{def.Irreflexive, vocabulary.OwlIrreflexiveProperty},
	}
	for _, c := range characteristics {
		if c.set {
			ts = append(ts, ontology.RefTriple(iri, vocabulary.RdfType, c.iri))
		}
	}

	if def.Domain != "" {
		ts = append(ts, ontology.RefTriple(iri, vocabulary.RdfsDomain, vocabulary.ClassIRI(def.Domain)))
	}
	if def.Range != "" {
		rangeIRI := def.Range
		if def.Kind == ObjectProperty {
			rangeIRI = vocabulary.ClassIRI(def.Range)
		}
		ts = append(ts, ontology.RefTriple(iri, vocabulary.RdfsRange, rangeIRI))
	}
	if def.Inverse != "" {
		ts = append(ts, ontology.RefTriple(iri, vocabulary.OwlInverseOf, vocabulary.PropertyIRI(def.Inverse)))
	}

	return ts
}

func copyClassDefinition(def ClassDefinition) ClassDefinition {
	out := def
	out.SuperClasses = slices.Clone(def.SuperClasses)
	out.DisjointWith = slices.Clone(def.DisjointWith)
	out.Cardinalities = slices.Clone(def.Cardinalities)
	out.Equivalences = make([]Equivalence, len(def.Equivalences))
	for i, eq := range def.Equivalences {
		out.Equivalences[i] = Equivalence{
			Base: eq.Base,
			Restriction: ValueRestriction{
				Property: eq.Restriction.Property,
				Values:   slices.Clone(eq.Restriction.Values),
			},
		}
	}
	return out
}
