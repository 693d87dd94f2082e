package ontology

import (
	"slices"
	"sync"

	"github.com/JuntinLin/bom-owl-sub002/errors"
	"github.com/JuntinLin/bom-owl-sub002/pkg/timestamp"
	"github.com/JuntinLin/bom-owl-sub002/vocabulary"
)

// Graph is a thread-safe in-memory knowledge graph. Nodes are identified by
// namespace-qualified IRIs; all mutation goes through Graph methods so
// conversions can run one worker per BOM record without external locking.
//
// Reads return deep-copied snapshots. The zero value is not usable; create
// with NewGraph.
type Graph struct {
	mu    sync.RWMutex
	nodes map[string]*node
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{nodes: make(map[string]*node)}
}

// EnsureNode creates the node if it does not exist yet. It reports whether a
// new node was created. The identifier must be non-empty.
func (g *Graph) EnsureNode(id string) (bool, error) {
	if id == "" {
		return false, errors.WrapInvalid(errors.ErrEmptyIdentifier, "Graph", "EnsureNode", "node identifier")
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[id]; ok {
		return false, nil
	}
	g.nodes[id] = &node{
		id:        id,
		types:     make(map[string]struct{}),
		props:     make(map[string][]Value),
		version:   1,
		updatedAt: timestamp.Now(),
	}
	return true, nil
}

// Contains reports whether a node with the given identifier exists.
func (g *Graph) Contains(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]
	return ok
}

// AddType attaches type tags to an existing node. Adding a tag the node
// already carries is a no-op.
func (g *Graph) AddType(id string, types ...string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return errors.WrapInvalid(errors.ErrNodeNotFound, "Graph", "AddType", "node lookup")
	}

	changed := false
	for _, t := range types {
		if t == "" {
			continue
		}
		if _, exists := n.types[t]; !exists {
			n.types[t] = struct{}{}
			changed = true
		}
	}
	if changed {
		n.touch()
	}
	return nil
}

// HasType reports whether the node exists and carries the given type tag.
func (g *Graph) HasType(id, typeName string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return false
	}
	_, has := n.types[typeName]
	return has
}

// SetProperty replaces the node's value list for a property. Functional
// properties and re-converted feature values go through here so the latest
// conversion wins without duplication.
func (g *Graph) SetProperty(id, name string, values ...Value) error {
	if name == "" {
		return errors.WrapInvalid(errors.ErrEmptyIdentifier, "Graph", "SetProperty", "property name")
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return errors.WrapInvalid(errors.ErrNodeNotFound, "Graph", "SetProperty", "node lookup")
	}
	n.props[name] = slices.Clone(values)
	n.touch()
	return nil
}

// AppendProperty appends a value to the node's list for a property,
// preserving duplicates and order.
func (g *Graph) AppendProperty(id, name string, v Value) error {
	if name == "" {
		return errors.WrapInvalid(errors.ErrEmptyIdentifier, "Graph", "AppendProperty", "property name")
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return errors.WrapInvalid(errors.ErrNodeNotFound, "Graph", "AppendProperty", "node lookup")
	}
	n.props[name] = append(n.props[name], v)
	n.touch()
	return nil
}

// AddRef appends a reference value to the property unless the same target is
// already referenced under that property. Both endpoints must exist. The
// dedup rule is what keeps component edges idempotent across re-conversions.
func (g *Graph) AddRef(id, name, target string) error {
	if name == "" {
		return errors.WrapInvalid(errors.ErrEmptyIdentifier, "Graph", "AddRef", "property name")
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return errors.WrapInvalid(errors.ErrNodeNotFound, "Graph", "AddRef", "subject lookup")
	}
	if _, ok := g.nodes[target]; !ok {
		return errors.WrapInvalid(errors.ErrNodeNotFound, "Graph", "AddRef", "target lookup")
	}

	for _, v := range n.props[name] {
		if v.IsRef() && v.Ref == target {
			return nil
		}
	}
	n.props[name] = append(n.props[name], RefValue(target))
	n.touch()
	return nil
}

// Node returns a deep-copied snapshot of the node.
func (g *Graph) Node(id string) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return Node{}, false
	}
	return n.snapshot(), true
}

// Property returns a copy of the node's value list for a property.
func (g *Graph) Property(id, name string) ([]Value, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return nil, false
	}
	values, ok := n.props[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(values), true
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// NodeIDs returns all node identifiers in sorted order.
func (g *Graph) NodeIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// NodesByType returns snapshots of every node carrying the given type tag,
// sorted by identifier.
func (g *Graph) NodesByType(typeName string) []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Node
	for _, n := range g.nodes {
		if _, ok := n.types[typeName]; ok {
			out = append(out, n.snapshot())
		}
	}
	slices.SortFunc(out, func(a, b Node) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		default:
			return 0
		}
	})
	return out
}

// Triples serializes the whole graph into export triples for the reasoner.
// Output is deterministic: nodes sorted by identifier, type assertions
// first (sorted), then properties sorted by name with values in list order.
func (g *Graph) Triples() []Triple {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	var triples []Triple
	for _, id := range ids {
		n := g.nodes[id]

		types := make([]string, 0, len(n.types))
		for t := range n.types {
			types = append(types, t)
		}
		slices.Sort(types)
		for _, t := range types {
			triples = append(triples, RefTriple(id, vocabulary.RdfType, vocabulary.ClassIRI(t)))
		}

		names := make([]string, 0, len(n.props))
		for name := range n.props {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			predicate := vocabulary.PropertyIRI(name)
			for _, v := range n.props[name] {
				if v.IsRef() {
					triples = append(triples, RefTriple(id, predicate, v.Ref))
				} else {
					triples = append(triples, LiteralTriple(id, predicate, v.Literal, v.Datatype))
				}
			}
		}
	}
	return triples
}

// touch bumps the version and update stamp. Callers hold the write lock.
func (n *node) touch() {
	n.version++
	n.updatedAt = timestamp.Now()
}
