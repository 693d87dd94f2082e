package convert

import "sync"

// NodeRef identifies a converted graph node by its IRI.
type NodeRef string

// NodeIndex maps item codes to node refs so re-conversion finds the existing
// node instead of materializing a second one. The caller owns one index per
// conversion run and passes it to every ConvertBomStructure call; concurrent
// workers share it safely.
type NodeIndex struct {
	mu   sync.RWMutex
	refs map[string]NodeRef
}

// NewNodeIndex creates an empty index.
func NewNodeIndex() *NodeIndex {
	return &NodeIndex{refs: make(map[string]NodeRef)}
}

// Lookup returns the ref registered for an item code.
func (ix *NodeIndex) Lookup(code string) (NodeRef, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	ref, ok := ix.refs[code]
	return ref, ok
}

// Register records the ref for an item code. Registering the same code twice
// keeps the first ref; conversion is deterministic, so both refs are equal
// anyway.
func (ix *NodeIndex) Register(code string, ref NodeRef) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if _, ok := ix.refs[code]; !ok {
		ix.refs[code] = ref
	}
}

// Len returns the number of registered codes.
func (ix *NodeIndex) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.refs)
}
