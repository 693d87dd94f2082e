package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JuntinLin/bom-owl-sub002/errors"
	"github.com/JuntinLin/bom-owl-sub002/ontology"
	"github.com/JuntinLin/bom-owl-sub002/vocabulary"
)

func newCylinderMaster(t *testing.T, g *ontology.Graph, code string, tags ...string) string {
	t.Helper()
	id := vocabulary.ItemIRI(code)
	_, err := g.EnsureNode(id)
	require.NoError(t, err)
	types := append([]string{vocabulary.ClassMasterItem}, tags...)
	require.NoError(t, g.AddType(id, types...))
	return id
}

func addCylinderPart(t *testing.T, g *ontology.Graph, masterID, code, category string) string {
	t.Helper()
	id := vocabulary.ItemIRI(code)
	_, err := g.EnsureNode(id)
	require.NoError(t, err)
	require.NoError(t, g.AddType(id, vocabulary.ClassComponentItem, category))
	require.NoError(t, g.AddRef(masterID, vocabulary.PropHasComponent, id))
	return id
}

func issueFor(issues []StructuralIssue, filler string) (StructuralIssue, bool) {
	for _, issue := range issues {
		if issue.Filler == filler {
			return issue, true
		}
	}
	return StructuralIssue{}, false
}

func TestCheckStructure_CompleteCylinder(t *testing.T) {
	s := testSchema(t)
	g := ontology.NewGraph()

	master := newCylinderMaster(t, g, "3GC2008001000YB", vocabulary.ClassHydraulicCylinder)
	addCylinderPart(t, g, master, "20BRL100200-STD", vocabulary.ClassBarrel)
	addCylinderPart(t, g, master, "20PST100200-STD", vocabulary.ClassPiston)
	addCylinderPart(t, g, master, "20ROD100200-STD", vocabulary.ClassPistonRod)
	addCylinderPart(t, g, master, "20SEL100200-RSS", vocabulary.ClassRodSeal)
	addCylinderPart(t, g, master, "20CAP100200-HED", vocabulary.ClassHeadEndCap)
	addCylinderPart(t, g, master, "20CAP100200-RDE", vocabulary.ClassRodEndCap)

	issues, err := s.CheckStructure(g, master)
	require.NoError(t, err)
	assert.NotNil(t, issues, "complete structure returns an empty slice, not nil")
	assert.Empty(t, issues)
}

func TestCheckStructure_FillerMatchesThroughSubclass(t *testing.T) {
	s := testSchema(t)
	g := ontology.NewGraph()

	// Both end caps and the seal count through their leaf categories; the
	// axioms name EndCap and SealingComponent.
	master := newCylinderMaster(t, g, "3GC2008001000YB", vocabulary.ClassHydraulicCylinder)
	addCylinderPart(t, g, master, "BRL-1", vocabulary.ClassBarrel)
	addCylinderPart(t, g, master, "PST-1", vocabulary.ClassPiston)
	addCylinderPart(t, g, master, "ROD-1", vocabulary.ClassPistonRod)
	addCylinderPart(t, g, master, "SEL-1", vocabulary.ClassBufferSeal)
	addCylinderPart(t, g, master, "SEL-2", vocabulary.ClassWiperSeal)
	addCylinderPart(t, g, master, "CAP-1", vocabulary.ClassHeadEndCap)
	addCylinderPart(t, g, master, "CAP-2", vocabulary.ClassRodEndCap)

	issues, err := s.CheckStructure(g, master)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestCheckStructure_MissingPiston(t *testing.T) {
	s := testSchema(t)
	g := ontology.NewGraph()

	master := newCylinderMaster(t, g, "3GC2008001000YB", vocabulary.ClassHydraulicCylinder)
	addCylinderPart(t, g, master, "BRL-1", vocabulary.ClassBarrel)
	addCylinderPart(t, g, master, "ROD-1", vocabulary.ClassPistonRod)
	addCylinderPart(t, g, master, "SEL-1", vocabulary.ClassRodSeal)
	addCylinderPart(t, g, master, "CAP-1", vocabulary.ClassHeadEndCap)
	addCylinderPart(t, g, master, "CAP-2", vocabulary.ClassRodEndCap)

	issues, err := s.CheckStructure(g, master)
	require.NoError(t, err)
	require.Len(t, issues, 1)

	issue := issues[0]
	assert.Equal(t, master, issue.NodeID)
	assert.Equal(t, vocabulary.ClassHydraulicCylinder, issue.Class)
	assert.Equal(t, vocabulary.PropHasComponent, issue.Property)
	assert.Equal(t, vocabulary.ClassPiston, issue.Filler)
	assert.Equal(t, CardinalityExact, issue.Kind)
	assert.Equal(t, 1, issue.Expected)
	assert.Equal(t, 0, issue.Actual)
	assert.Contains(t, issue.String(), "expected exactly 1 Piston")
}

func TestCheckStructure_WrongEndCapCount(t *testing.T) {
	s := testSchema(t)
	g := ontology.NewGraph()

	master := newCylinderMaster(t, g, "3GC2008001000YB", vocabulary.ClassHydraulicCylinder)
	addCylinderPart(t, g, master, "BRL-1", vocabulary.ClassBarrel)
	addCylinderPart(t, g, master, "PST-1", vocabulary.ClassPiston)
	addCylinderPart(t, g, master, "ROD-1", vocabulary.ClassPistonRod)
	addCylinderPart(t, g, master, "SEL-1", vocabulary.ClassRodSeal)
	addCylinderPart(t, g, master, "CAP-1", vocabulary.ClassHeadEndCap)

	issues, err := s.CheckStructure(g, master)
	require.NoError(t, err)

	issue, found := issueFor(issues, vocabulary.ClassEndCap)
	require.True(t, found)
	assert.Equal(t, 2, issue.Expected)
	assert.Equal(t, 1, issue.Actual)
}

func TestCheckStructure_TooManyBarrels(t *testing.T) {
	s := testSchema(t)
	g := ontology.NewGraph()

	master := newCylinderMaster(t, g, "3GC2008001000YB", vocabulary.ClassHydraulicCylinder)
	addCylinderPart(t, g, master, "BRL-1", vocabulary.ClassBarrel)
	addCylinderPart(t, g, master, "BRL-2", vocabulary.ClassBarrel)
	addCylinderPart(t, g, master, "PST-1", vocabulary.ClassPiston)
	addCylinderPart(t, g, master, "ROD-1", vocabulary.ClassPistonRod)
	addCylinderPart(t, g, master, "SEL-1", vocabulary.ClassRodSeal)
	addCylinderPart(t, g, master, "CAP-1", vocabulary.ClassHeadEndCap)
	addCylinderPart(t, g, master, "CAP-2", vocabulary.ClassRodEndCap)

	issues, err := s.CheckStructure(g, master)
	require.NoError(t, err)

	issue, found := issueFor(issues, vocabulary.ClassBarrel)
	require.True(t, found, "exact cardinality must flag surplus fillers")
	assert.Equal(t, 1, issue.Expected)
	assert.Equal(t, 2, issue.Actual)
}

func TestCheckStructure_MinCardinalityAllowsMore(t *testing.T) {
	s := testSchema(t)
	g := ontology.NewGraph()

	master := newCylinderMaster(t, g, "3GC2008001000YB", vocabulary.ClassHydraulicCylinder)
	addCylinderPart(t, g, master, "BRL-1", vocabulary.ClassBarrel)
	addCylinderPart(t, g, master, "PST-1", vocabulary.ClassPiston)
	addCylinderPart(t, g, master, "ROD-1", vocabulary.ClassPistonRod)
	addCylinderPart(t, g, master, "SEL-1", vocabulary.ClassPistonSeal)
	addCylinderPart(t, g, master, "SEL-2", vocabulary.ClassRodSeal)
	addCylinderPart(t, g, master, "SEL-3", vocabulary.ClassWiperSeal)
	addCylinderPart(t, g, master, "SEL-4", vocabulary.ClassBufferSeal)
	addCylinderPart(t, g, master, "CAP-1", vocabulary.ClassHeadEndCap)
	addCylinderPart(t, g, master, "CAP-2", vocabulary.ClassRodEndCap)

	issues, err := s.CheckStructure(g, master)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestCheckStructure_AxiomsInheritedBySubclass(t *testing.T) {
	s := testSchema(t)
	g := ontology.NewGraph()

	// Tagged with a series subclass only; the component axioms still apply
	// through the superclass closure.
	master := newCylinderMaster(t, g, "3GC2008001000YB", vocabulary.ClassStandardCylinder)

	issues, err := s.CheckStructure(g, master)
	require.NoError(t, err)
	assert.Len(t, issues, 5, "every component axiom is unmet on a bare master")

	seal, found := issueFor(issues, vocabulary.ClassSealingComponent)
	require.True(t, found)
	assert.Equal(t, CardinalityMin, seal.Kind)
	assert.Contains(t, seal.String(), "at least 1")
}

func TestCheckStructure_NoAxiomsForPlainMaster(t *testing.T) {
	s := testSchema(t)
	g := ontology.NewGraph()

	master := newCylinderMaster(t, g, "5XY0000000000ZZ")

	issues, err := s.CheckStructure(g, master)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestCheckStructure_MissingNode(t *testing.T) {
	s := testSchema(t)
	g := ontology.NewGraph()

	_, err := s.CheckStructure(g, vocabulary.ItemIRI("absent"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNodeNotFound)
	assert.True(t, errors.IsInvalid(err))
}

func TestCheckStructure_UntypedTargetsDoNotCount(t *testing.T) {
	s := testSchema(t)
	g := ontology.NewGraph()

	master := newCylinderMaster(t, g, "3GC2008001000YB", vocabulary.ClassHydraulicCylinder)

	// A referenced item with no category tag satisfies nothing
	plain := vocabulary.ItemIRI("PLAIN-1")
	_, err := g.EnsureNode(plain)
	require.NoError(t, err)
	require.NoError(t, g.AddRef(master, vocabulary.PropHasComponent, plain))

	issues, err := s.CheckStructure(g, master)
	require.NoError(t, err)
	assert.Len(t, issues, 5)
}
