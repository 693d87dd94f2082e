package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JuntinLin/bom-owl-sub002/vocabulary"
)

func TestCrossCheck_Agreement(t *testing.T) {
	tags := []string{
		vocabulary.ClassMediumBoreCylinder,
		vocabulary.ClassHeavyDutyCylinder,
	}

	assert.Empty(t, CrossCheck(tags, tags))
}

func TestCrossCheck_OrderIndependent(t *testing.T) {
	direct := []string{vocabulary.ClassMediumBoreCylinder, vocabulary.ClassHeavyDutyCylinder}
	inferred := []string{vocabulary.ClassHeavyDutyCylinder, vocabulary.ClassMediumBoreCylinder}

	assert.Empty(t, CrossCheck(direct, inferred))
}

func TestCrossCheck_ReportsBothDirections(t *testing.T) {
	direct := []string{
		vocabulary.ClassMediumBoreCylinder,
		vocabulary.ClassYokeRodEndCylinder,
	}
	inferred := []string{
		vocabulary.ClassMediumBoreCylinder,
		vocabulary.ClassHeavyDutyCylinder,
	}

	disagreements := CrossCheck(direct, inferred)

	assert.Equal(t, []Disagreement{
		{Class: vocabulary.ClassHeavyDutyCylinder, Inferred: true},
		{Class: vocabulary.ClassYokeRodEndCylinder, Direct: true},
	}, disagreements)
}

func TestCrossCheck_SortedByClass(t *testing.T) {
	disagreements := CrossCheck(
		[]string{"Zeta", "Alpha", "Mid"},
		[]string{"Beta"},
	)

	classes := make([]string, len(disagreements))
	for i, d := range disagreements {
		classes[i] = d.Class
	}
	assert.Equal(t, []string{"Alpha", "Beta", "Mid", "Zeta"}, classes)
}

func TestCrossCheck_Duplicates(t *testing.T) {
	disagreements := CrossCheck(
		[]string{"Alpha", "Alpha"},
		nil,
	)

	assert.Equal(t, []Disagreement{{Class: "Alpha", Direct: true}}, disagreements)
}

func TestCrossCheck_EmptyInputs(t *testing.T) {
	assert.Empty(t, CrossCheck(nil, nil))
	assert.Empty(t, CrossCheck([]string{}, []string{}))
}
