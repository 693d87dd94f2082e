package schema

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/JuntinLin/bom-owl-sub002/errors"
)

// Builder collects class and property definitions and assembles them into an
// immutable Schema. Build is idempotent: the first successful call publishes
// the schema and every later call returns the same pointer. On failure
// nothing is published and Build can be retried after fixing the definitions.
type Builder struct {
	mu         sync.RWMutex
	built      *Schema
	classes    []ClassDefinition
	properties []PropertyDefinition
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Default returns a Builder preloaded with the material vocabulary and the
// hydraulic-cylinder taxonomy.
func Default() *Builder {
	b := NewBuilder()
	for _, def := range materialClasses() {
		mustAdd(b.AddClass(def))
	}
	for _, def := range materialProperties() {
		mustAdd(b.AddProperty(def))
	}
	for _, def := range cylinderClasses() {
		mustAdd(b.AddClass(def))
	}
	for _, def := range cylinderProperties() {
		mustAdd(b.AddProperty(def))
	}
	return b
}

// mustAdd panics on definition errors from the built-in vocabularies. The
// built-in definitions are code, not input; a duplicate there is a bug.
func mustAdd(err error) {
	if err != nil {
		panic(err)
	}
}

var shared = Default()

// Shared builds the default schema on first call and returns the same
// immutable *Schema to every caller thereafter.
func Shared() (*Schema, error) {
	return shared.Build(context.Background())
}

// AddClass registers a class definition. Fails on an empty or duplicate name
// or after the schema has been built.
func (b *Builder) AddClass(def ClassDefinition) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.built != nil {
		return errors.WrapInvalid(errors.ErrInvalidData, "schema", "AddClass", "schema already built")
	}
	if def.Name == "" {
		return errors.WrapInvalid(errors.ErrEmptyIdentifier, "schema", "AddClass", "class name")
	}
	for _, existing := range b.classes {
		if existing.Name == def.Name {
			return errors.WrapFatal(errors.ErrDuplicateDefinition, "schema", "AddClass",
				fmt.Sprintf("declaring class %q", def.Name))
		}
	}
	b.classes = append(b.classes, def)
	return nil
}

// AddProperty registers a property definition. Fails on an empty or
// duplicate name, an unknown kind, or after the schema has been built.
func (b *Builder) AddProperty(def PropertyDefinition) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.built != nil {
		return errors.WrapInvalid(errors.ErrInvalidData, "schema", "AddProperty", "schema already built")
	}
	if def.Name == "" {
		return errors.WrapInvalid(errors.ErrEmptyIdentifier, "schema", "AddProperty", "property name")
	}
	if def.Kind != ObjectProperty && def.Kind != DatatypeProperty {
		return errors.WrapInvalid(errors.ErrInvalidData, "schema", "AddProperty",
			fmt.Sprintf("unknown property kind %q for %q", def.Kind, def.Name))
	}
	for _, existing := range b.properties {
		if existing.Name == def.Name {
			return errors.WrapFatal(errors.ErrDuplicateDefinition, "schema", "AddProperty",
				fmt.Sprintf("declaring property %q", def.Name))
		}
	}
	b.properties = append(b.properties, def)
	return nil
}

// Build assembles the schema. The fast path takes a read lock and returns
// the published schema; the one-time build takes the write lock, re-tests
// the built flag, and only publishes after both passes succeed. A broken
// reference between definitions is a fatal error and leaves nothing
// published.
func (b *Builder) Build(ctx context.Context) (*Schema, error) {
	b.mu.RLock()
	if b.built != nil {
		s := b.built
		b.mu.RUnlock()
		return s, nil
	}
	b.mu.RUnlock()

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.built != nil {
		return b.built, nil
	}

	s, err := b.assemble(ctx)
	if err != nil {
		return nil, err
	}
	b.built = s
	return s, nil
}

// assemble runs the two build passes. Pass 1 declares every name; pass 2
// links references and fails fast on anything undeclared. Caller holds the
// write lock.
func (b *Builder) assemble(ctx context.Context) (*Schema, error) {
	// Pass 1: declare names
	classes := make(map[string]ClassDefinition, len(b.classes))
	for _, def := range b.classes {
		classes[def.Name] = def
	}
	properties := make(map[string]PropertyDefinition, len(b.properties))
	for _, def := range b.properties {
		properties[def.Name] = def
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.WrapTransient(err, "schema", "Build", "pass 1")
	}

	// Pass 2: link references
	for _, def := range b.classes {
		if err := linkClass(def, classes, properties); err != nil {
			return nil, err
		}
	}
	for _, def := range b.properties {
		if err := linkProperty(def, classes, properties); err != nil {
			return nil, err
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.WrapTransient(err, "schema", "Build", "pass 2")
	}

	ancestors, err := computeAncestors(classes)
	if err != nil {
		return nil, err
	}

	return newSchema(classes, properties, ancestors), nil
}

// linkClass verifies every reference a class definition makes.
func linkClass(def ClassDefinition, classes map[string]ClassDefinition, properties map[string]PropertyDefinition) error {
	fail := func(err error, action string) error {
		return errors.WrapFatal(err, "schema", "Build", action)
	}

	for _, super := range def.SuperClasses {
		if _, ok := classes[super]; !ok {
			return fail(errors.ErrUnknownClass,
				fmt.Sprintf("linking superclass %q of %q", super, def.Name))
		}
	}

	for _, eq := range def.Equivalences {
		if _, ok := classes[eq.Base]; !ok {
			return fail(errors.ErrUnknownClass,
				fmt.Sprintf("linking equivalence base %q of %q", eq.Base, def.Name))
		}
		if _, ok := properties[eq.Restriction.Property]; !ok {
			return fail(errors.ErrUnknownProperty,
				fmt.Sprintf("linking equivalence property %q of %q", eq.Restriction.Property, def.Name))
		}
		if len(eq.Restriction.Values) == 0 {
			return fail(errors.ErrInvalidData,
				fmt.Sprintf("linking equivalence of %q: empty value set", def.Name))
		}
	}

	for _, other := range def.DisjointWith {
		if other == def.Name {
			return fail(errors.ErrInvalidData,
				fmt.Sprintf("linking disjoints of %q: class disjoint with itself", def.Name))
		}
		if _, ok := classes[other]; !ok {
			return fail(errors.ErrUnknownClass,
				fmt.Sprintf("linking disjoint class %q of %q", other, def.Name))
		}
	}

	for _, card := range def.Cardinalities {
		prop, ok := properties[card.Property]
		if !ok {
			return fail(errors.ErrUnknownProperty,
				fmt.Sprintf("linking cardinality property %q of %q", card.Property, def.Name))
		}
		if prop.Kind != ObjectProperty {
			return fail(errors.ErrInvalidData,
				fmt.Sprintf("linking cardinality of %q: property %q is not an object property", def.Name, card.Property))
		}
		if _, ok := classes[card.Filler]; !ok {
			return fail(errors.ErrUnknownClass,
				fmt.Sprintf("linking cardinality filler %q of %q", card.Filler, def.Name))
		}
		switch card.Kind {
		case CardinalityExact, CardinalityMin:
		default:
			return fail(errors.ErrInvalidData,
				fmt.Sprintf("linking cardinality of %q: unknown kind %q", def.Name, card.Kind))
		}
		if card.Count < 0 || (card.Kind == CardinalityMin && card.Count < 1) {
			return fail(errors.ErrInvalidData,
				fmt.Sprintf("linking cardinality of %q: count %d out of range", def.Name, card.Count))
		}
	}

	return nil
}

// linkProperty verifies every reference a property definition makes.
func linkProperty(def PropertyDefinition, classes map[string]ClassDefinition, properties map[string]PropertyDefinition) error {
	fail := func(err error, action string) error {
		return errors.WrapFatal(err, "schema", "Build", action)
	}

	if def.Domain != "" {
		if _, ok := classes[def.Domain]; !ok {
			return fail(errors.ErrUnknownClass,
				fmt.Sprintf("linking domain %q of %q", def.Domain, def.Name))
		}
	}

	switch def.Kind {
	case ObjectProperty:
		if def.Range != "" {
			if _, ok := classes[def.Range]; !ok {
				return fail(errors.ErrUnknownClass,
					fmt.Sprintf("linking range %q of %q", def.Range, def.Name))
			}
		}
	case DatatypeProperty:
		if def.Range != "" && !strings.HasPrefix(def.Range, "http://www.w3.org/2001/XMLSchema#") {
			return fail(errors.ErrInvalidData,
				fmt.Sprintf("linking range of %q: %q is not an XSD datatype", def.Name, def.Range))
		}
		if def.Inverse != "" || def.Transitive || def.Symmetric || def.Asymmetric || def.Reflexive || def.Irreflexive {
			return fail(errors.ErrInvalidData,
				fmt.Sprintf("linking %q: object-property characteristics on a datatype property", def.Name))
		}
	}

	if def.Inverse != "" {
		inv, ok := properties[def.Inverse]
		if !ok {
			return fail(errors.ErrUnknownProperty,
				fmt.Sprintf("linking inverse %q of %q", def.Inverse, def.Name))
		}
		if inv.Kind != ObjectProperty {
			return fail(errors.ErrInvalidData,
				fmt.Sprintf("linking inverse of %q: %q is not an object property", def.Name, def.Inverse))
		}
	}

	return nil
}

// computeAncestors returns the proper superclass closure of every class,
// nearest first, and fails on subclass cycles.
func computeAncestors(classes map[string]ClassDefinition) (map[string][]string, error) {
	memo := make(map[string][]string, len(classes))

	var visit func(name string, stack map[string]bool) ([]string, error)
	visit = func(name string, stack map[string]bool) ([]string, error) {
		if anc, ok := memo[name]; ok {
			return anc, nil
		}
		if stack[name] {
			return nil, errors.WrapFatal(errors.ErrInvalidData, "schema", "Build",
				fmt.Sprintf("linking superclasses: cycle through %q", name))
		}
		stack[name] = true
		defer delete(stack, name)

		seen := make(map[string]struct{})
		out := []string{}
		add := func(n string) {
			if _, dup := seen[n]; !dup {
				seen[n] = struct{}{}
				out = append(out, n)
			}
		}

		for _, super := range classes[name].SuperClasses {
			add(super)
			supAnc, err := visit(super, stack)
			if err != nil {
				return nil, err
			}
			for _, a := range supAnc {
				add(a)
			}
		}

		memo[name] = out
		return out, nil
	}

	names := make([]string, 0, len(classes))
	for name := range classes {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if _, err := visit(name, map[string]bool{}); err != nil {
			return nil, err
		}
	}
	return memo, nil
}
