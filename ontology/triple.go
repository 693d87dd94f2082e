package ontology

import "fmt"

// Triple is one subject-predicate-object statement in the export form the
// reasoner consumes. Subjects and predicates are always IRIs; the object is
// either an IRI (Literal false) or a lexical form with an optional datatype
// hint (Literal true).
type Triple struct {
	Subject   string `json:"subject"`
	Predicate string `json:"predicate"`
	Object    string `json:"object"`
	Literal   bool   `json:"literal"`
	Datatype  string `json:"datatype,omitempty"`
}

// RefTriple builds a triple whose object is a node or class IRI.
func RefTriple(subject, predicate, object string) Triple {
	return Triple{Subject: subject, Predicate: predicate, Object: object}
}

// LiteralTriple builds a triple whose object is a literal lexical form.
func LiteralTriple(subject, predicate, lexical, datatype string) Triple {
	return Triple{
		Subject:   subject,
		Predicate: predicate,
		Object:    lexical,
		Literal:   true,
		Datatype:  datatype,
	}
}

// String renders the triple in an N-Triples-like debug form.
func (t Triple) String() string {
	if t.Literal {
		if t.Datatype != "" {
			return fmt.Sprintf("<%s> <%s> %q^^<%s>", t.Subject, t.Predicate, t.Object, t.Datatype)
		}
		return fmt.Sprintf("<%s> <%s> %q", t.Subject, t.Predicate, t.Object)
	}
	return fmt.Sprintf("<%s> <%s> <%s>", t.Subject, t.Predicate, t.Object)
}
