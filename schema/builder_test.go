package schema

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JuntinLin/bom-owl-sub002/errors"
	"github.com/JuntinLin/bom-owl-sub002/vocabulary"
)

func TestBuilder_BuildIdempotent(t *testing.T) {
	b := Default()

	first, err := b.Build(context.Background())
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := b.Build(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, second, "repeated builds must return the same schema")
}

func TestBuilder_ConcurrentFirstBuild(t *testing.T) {
	b := Default()

	const callers = 16
	results := make([]*Schema, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = b.Build(context.Background())
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Same(t, results[0], results[i], "caller %d got a different schema", i)
	}
}

func TestShared(t *testing.T) {
	first, err := Shared()
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := Shared()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestBuilder_DuplicateClass(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.AddClass(ClassDefinition{Name: "Widget"}))

	err := b.AddClass(ClassDefinition{Name: "Widget"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrDuplicateDefinition)
	assert.True(t, errors.IsFatal(err))
}

func TestBuilder_DuplicateProperty(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.AddProperty(PropertyDefinition{Name: "hasWidget", Kind: ObjectProperty}))

	err := b.AddProperty(PropertyDefinition{Name: "hasWidget", Kind: DatatypeProperty})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrDuplicateDefinition)
}

func TestBuilder_UnknownPropertyKind(t *testing.T) {
	b := NewBuilder()
	err := b.AddProperty(PropertyDefinition{Name: "hasWidget", Kind: "annotation"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidData)
}

func TestBuilder_BrokenReferences(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(b *Builder) error
		sentinel error
	}{
		{
			name: "unknown superclass",
			setup: func(b *Builder) error {
				return b.AddClass(ClassDefinition{
					Name:         "Sub",
					SuperClasses: []string{"Missing"},
				})
			},
			sentinel: errors.ErrUnknownClass,
		},
		{
			name: "unknown equivalence base",
			setup: func(b *Builder) error {
				if err := b.AddProperty(PropertyDefinition{
					Name: "hasCode", Kind: DatatypeProperty, Range: vocabulary.XsdString,
				}); err != nil {
					return err
				}
				return b.AddClass(ClassDefinition{
					Name: "Coded",
					Equivalences: []Equivalence{{
						Base:        "Missing",
						Restriction: ValueRestriction{Property: "hasCode", Values: []string{"X"}},
					}},
				})
			},
			sentinel: errors.ErrUnknownClass,
		},
		{
			name: "unknown equivalence property",
			setup: func(b *Builder) error {
				if err := b.AddClass(ClassDefinition{Name: "Base"}); err != nil {
					return err
				}
				return b.AddClass(ClassDefinition{
					Name: "Coded",
					Equivalences: []Equivalence{{
						Base:        "Base",
						Restriction: ValueRestriction{Property: "missingProp", Values: []string{"X"}},
					}},
				})
			},
			sentinel: errors.ErrUnknownProperty,
		},
		{
			name: "empty equivalence value set",
			setup: func(b *Builder) error {
				if err := b.AddClass(ClassDefinition{Name: "Base"}); err != nil {
					return err
				}
				if err := b.AddProperty(PropertyDefinition{
					Name: "hasCode", Kind: DatatypeProperty, Range: vocabulary.XsdString,
				}); err != nil {
					return err
				}
				return b.AddClass(ClassDefinition{
					Name: "Coded",
					Equivalences: []Equivalence{{
						Base:        "Base",
						Restriction: ValueRestriction{Property: "hasCode"},
					}},
				})
			},
			sentinel: errors.ErrInvalidData,
		},
		{
			name: "unknown disjoint class",
			setup: func(b *Builder) error {
				return b.AddClass(ClassDefinition{
					Name:         "Lonely",
					DisjointWith: []string{"Missing"},
				})
			},
			sentinel: errors.ErrUnknownClass,
		},
		{
			name: "unknown cardinality filler",
			setup: func(b *Builder) error {
				if err := b.AddProperty(PropertyDefinition{
					Name: "hasPart", Kind: ObjectProperty,
				}); err != nil {
					return err
				}
				return b.AddClass(ClassDefinition{
					Name: "Whole",
					Cardinalities: []CardinalityRestriction{{
						Property: "hasPart", Kind: CardinalityExact, Count: 1, Filler: "Missing",
					}},
				})
			},
			sentinel: errors.ErrUnknownClass,
		},
		{
			name: "cardinality over datatype property",
			setup: func(b *Builder) error {
				if err := b.AddClass(ClassDefinition{Name: "Part"}); err != nil {
					return err
				}
				if err := b.AddProperty(PropertyDefinition{
					Name: "hasCode", Kind: DatatypeProperty, Range: vocabulary.XsdString,
				}); err != nil {
					return err
				}
				return b.AddClass(ClassDefinition{
					Name: "Whole",
					Cardinalities: []CardinalityRestriction{{
						Property: "hasCode", Kind: CardinalityExact, Count: 1, Filler: "Part",
					}},
				})
			},
			sentinel: errors.ErrInvalidData,
		},
		{
			name: "unknown property domain",
			setup: func(b *Builder) error {
				return b.AddProperty(PropertyDefinition{
					Name: "hasPart", Kind: ObjectProperty, Domain: "Missing",
				})
			},
			sentinel: errors.ErrUnknownClass,
		},
		{
			name: "unknown inverse property",
			setup: func(b *Builder) error {
				return b.AddProperty(PropertyDefinition{
					Name: "hasPart", Kind: ObjectProperty, Inverse: "missingInverse",
				})
			},
			sentinel: errors.ErrUnknownProperty,
		},
		{
			name: "datatype property with object characteristics",
			setup: func(b *Builder) error {
				return b.AddProperty(PropertyDefinition{
					Name: "hasCode", Kind: DatatypeProperty, Range: vocabulary.XsdString, Transitive: true,
				})
			},
			sentinel: errors.ErrInvalidData,
		},
		{
			name: "datatype range outside XSD",
			setup: func(b *Builder) error {
				return b.AddProperty(PropertyDefinition{
					Name: "hasCode", Kind: DatatypeProperty, Range: "http://example.com/not-xsd",
				})
			},
			sentinel: errors.ErrInvalidData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder()
			require.NoError(t, tt.setup(b))

			_, err := b.Build(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.True(t, errors.IsFatal(err), "broken references must be fatal, got %v", err)
		})
	}
}

func TestBuilder_SuperclassCycle(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.AddClass(ClassDefinition{Name: "A", SuperClasses: []string{"B"}}))
	require.NoError(t, b.AddClass(ClassDefinition{Name: "B", SuperClasses: []string{"A"}}))

	_, err := b.Build(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsFatal(err))
	assert.Contains(t, err.Error(), "cycle")
}

func TestBuilder_NoPartialPublish(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.AddClass(ClassDefinition{Name: "Sub", SuperClasses: []string{"Base"}}))

	_, err := b.Build(context.Background())
	require.Error(t, err)

	// Nothing was published, so the missing class can still be added
	require.NoError(t, b.AddClass(ClassDefinition{Name: "Base"}))

	s, err := b.Build(context.Background())
	require.NoError(t, err)
	assert.True(t, s.IsSubClassOf("Sub", "Base"))
}

func TestBuilder_AddAfterBuild(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.AddClass(ClassDefinition{Name: "Solo"}))

	_, err := b.Build(context.Background())
	require.NoError(t, err)

	err = b.AddClass(ClassDefinition{Name: "Late"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already built")

	err = b.AddProperty(PropertyDefinition{Name: "lateProp", Kind: ObjectProperty})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already built")
}

func TestBuilder_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := Default()
	_, err := b.Build(ctx)
	require.Error(t, err)
	assert.True(t, errors.IsTransient(err))
}
