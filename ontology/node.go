package ontology

import (
	"slices"
)

// Node is a read-only snapshot of a graph node. Snapshots are deep copies:
// mutating a returned Node never affects the graph, and graph updates never
// show through a previously returned snapshot.
type Node struct {
	ID         string             `json:"id"`
	Types      []string           `json:"types"` // sorted
	Properties map[string][]Value `json:"properties"`
	Version    uint64             `json:"version"` // increments on every mutation
	UpdatedAt  int64              `json:"updated_at"`
}

// HasType reports whether the node carries the given type tag.
func (n Node) HasType(typeName string) bool {
	return slices.Contains(n.Types, typeName)
}

// Property returns the ordered value list for a property name.
func (n Node) Property(name string) []Value {
	return n.Properties[name]
}

// StringProperty returns the first literal value of the property as a string.
func (n Node) StringProperty(name string) (string, bool) {
	for _, v := range n.Properties[name] {
		if v.IsLiteral() {
			return v.Literal, true
		}
	}
	return "", false
}

// IntProperty returns the first value of the property parsed as an integer.
func (n Node) IntProperty(name string) (int, bool) {
	for _, v := range n.Properties[name] {
		if i, ok := v.Int(); ok {
			return i, true
		}
	}
	return 0, false
}

// FloatProperty returns the first value of the property parsed as a float64.
func (n Node) FloatProperty(name string) (float64, bool) {
	for _, v := range n.Properties[name] {
		if f, ok := v.Float(); ok {
			return f, true
		}
	}
	return 0, false
}

// RefProperty returns the identifiers of all reference values for a property.
func (n Node) RefProperty(name string) []string {
	var refs []string
	for _, v := range n.Properties[name] {
		if v.IsRef() {
			refs = append(refs, v.Ref)
		}
	}
	return refs
}

// node is the graph-internal mutable representation. All access goes through
// Graph methods under the graph lock.
type node struct {
	id        string
	types     map[string]struct{}
	props     map[string][]Value
	version   uint64
	updatedAt int64
}

// snapshot copies the node into its exported read-only form.
func (n *node) snapshot() Node {
	types := make([]string, 0, len(n.types))
	for t := range n.types {
		types = append(types, t)
	}
	slices.Sort(types)

	props := make(map[string][]Value, len(n.props))
	for name, values := range n.props {
		props[name] = slices.Clone(values)
	}

	return Node{
		ID:         n.id,
		Types:      types,
		Properties: props,
		Version:    n.version,
		UpdatedAt:  n.updatedAt,
	}
}
