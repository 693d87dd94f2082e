package vocabulary

// Standard Vocabulary IRIs
//
// These constants provide the W3C standard IRIs used when serializing the
// schema and graph as triples for the reasoner.
//
// NOTE: internal code uses bare local names (class constants, property
// constants). These IRIs appear only in export and interoperability paths.
//
// References:
// - RDF: https://www.w3.org/TR/rdf11-concepts/
// - RDFS: https://www.w3.org/TR/rdf-schema/
// - OWL: https://www.w3.org/TR/owl2-overview/
// - XSD: https://www.w3.org/TR/xmlschema11-2/

// RDF and RDFS Standard IRIs
const (
	// RdfType asserts class membership of a node
	RdfType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"

	// RdfsSubClassOf links a class to its superclass
	RdfsSubClassOf = "http://www.w3.org/2000/01/rdf-schema#subClassOf"

	// RdfsSubPropertyOf links a property to its superproperty
	RdfsSubPropertyOf = "http://www.w3.org/2000/01/rdf-schema#subPropertyOf"

	// RdfsDomain states the class a property's subject belongs to
	RdfsDomain = "http://www.w3.org/2000/01/rdf-schema#domain"

	// RdfsRange states the class or datatype of a property's object
	RdfsRange = "http://www.w3.org/2000/01/rdf-schema#range"

	// RdfsLabel is the human-readable name of a resource
	RdfsLabel = "http://www.w3.org/2000/01/rdf-schema#label"

	// RdfsDatatype types a custom datatype, e.g. a one-of literal set
	RdfsDatatype = "http://www.w3.org/2000/01/rdf-schema#Datatype"
)

// OWL (Web Ontology Language) Standard IRIs
const (
	// OwlClass types a resource as an OWL class
	OwlClass = "http://www.w3.org/2002/07/owl#Class"

	// OwlObjectProperty types a property whose values are node references
	OwlObjectProperty = "http://www.w3.org/2002/07/owl#ObjectProperty"

	// OwlDatatypeProperty types a property whose values are literals
	OwlDatatypeProperty = "http://www.w3.org/2002/07/owl#DatatypeProperty"

	// OwlFunctionalProperty marks a property as single-valued per subject
	OwlFunctionalProperty = "http://www.w3.org/2002/07/owl#FunctionalProperty"

	// OwlInverseFunctionalProperty marks a property whose value identifies its subject
	OwlInverseFunctionalProperty = "http://www.w3.org/2002/07/owl#InverseFunctionalProperty"

	// OwlTransitiveProperty marks a transitive object property
	OwlTransitiveProperty = "http://www.w3.org/2002/07/owl#TransitiveProperty"

	// OwlSymmetricProperty marks a symmetric object property
	OwlSymmetricProperty = "http://www.w3.org/2002/07/owl#SymmetricProperty"

	// OwlAsymmetricProperty marks an asymmetric object property
	OwlAsymmetricProperty = "http://www.w3.org/2002/07/owl#AsymmetricProperty"

	// OwlReflexiveProperty marks a reflexive object property
	OwlReflexiveProperty = "http://www.w3.org/2002/07/owl#ReflexiveProperty"

	// OwlIrreflexiveProperty marks an irreflexive object property
	OwlIrreflexiveProperty = "http://www.w3.org/2002/07/owl#IrreflexiveProperty"

	// OwlEquivalentClass indicates equivalent classes
	OwlEquivalentClass = "http://www.w3.org/2002/07/owl#equivalentClass"

	// OwlDisjointWith indicates that two classes share no instances
	OwlDisjointWith = "http://www.w3.org/2002/07/owl#disjointWith"

	// OwlInverseOf links an object property to its inverse
	OwlInverseOf = "http://www.w3.org/2002/07/owl#inverseOf"

	// OwlThing is the universal class
	OwlThing = "http://www.w3.org/2002/07/owl#Thing"
)

// OWL restriction vocabulary. Equivalence axioms over property values and
// qualified cardinality axioms serialize as anonymous restriction classes
// built from these IRIs plus RDF list structure.
const (
	// OwlRestriction types an anonymous property restriction class
	OwlRestriction = "http://www.w3.org/2002/07/owl#Restriction"

	// OwlOnProperty names the property a restriction constrains
	OwlOnProperty = "http://www.w3.org/2002/07/owl#onProperty"

	// OwlHasValue restricts a property to one specific value
	OwlHasValue = "http://www.w3.org/2002/07/owl#hasValue"

	// OwlSomeValuesFrom restricts a property to values from a class or datatype
	OwlSomeValuesFrom = "http://www.w3.org/2002/07/owl#someValuesFrom"

	// OwlIntersectionOf links a class to the RDF list of its conjuncts
	OwlIntersectionOf = "http://www.w3.org/2002/07/owl#intersectionOf"

	// OwlOneOf links a datatype or class to the RDF list of its members
	OwlOneOf = "http://www.w3.org/2002/07/owl#oneOf"

	// OwlQualifiedCardinality restricts a property to exactly n fillers of a class
	OwlQualifiedCardinality = "http://www.w3.org/2002/07/owl#qualifiedCardinality"

	// OwlMinQualifiedCardinality restricts a property to at least n fillers of a class
	OwlMinQualifiedCardinality = "http://www.w3.org/2002/07/owl#minQualifiedCardinality"

	// OwlOnClass names the filler class of a qualified cardinality restriction
	OwlOnClass = "http://www.w3.org/2002/07/owl#onClass"
)

// RDF collection vocabulary used when serializing intersection and one-of
// lists
const (
	// RdfFirst is the head of an RDF list cell
	RdfFirst = "http://www.w3.org/1999/02/22-rdf-syntax-ns#first"

	// RdfRest is the tail of an RDF list cell
	RdfRest = "http://www.w3.org/1999/02/22-rdf-syntax-ns#rest"

	// RdfNil terminates an RDF list
	RdfNil = "http://www.w3.org/1999/02/22-rdf-syntax-ns#nil"
)

// XSD datatype IRIs used as literal datatype hints
const (
	// XsdString is a plain string literal
	XsdString = "http://www.w3.org/2001/XMLSchema#string"

	// XsdInteger is an arbitrary-precision integer literal
	XsdInteger = "http://www.w3.org/2001/XMLSchema#integer"

	// XsdDouble is a 64-bit floating point literal
	XsdDouble = "http://www.w3.org/2001/XMLSchema#double"

	// XsdBoolean is a true/false literal
	XsdBoolean = "http://www.w3.org/2001/XMLSchema#boolean"

	// XsdDate is an ISO-8601 date literal (yyyy-MM-dd)
	XsdDate = "http://www.w3.org/2001/XMLSchema#date"

	// XsdNonNegativeInteger is the datatype of cardinality counts
	XsdNonNegativeInteger = "http://www.w3.org/2001/XMLSchema#nonNegativeInteger"
)
