// Package classify assigns hydraulic-cylinder taxonomy tags to items from
// their specification maps, validates specifications, and derives candidate
// component suggestions. All operations are pure over their inputs;
// malformed numeric fields skip their dimension with a warning instead of
// failing the record.
package classify

import "github.com/JuntinLin/bom-owl-sub002/vocabulary"

// Specification map keys. The converter writes the same feature names as
// graph properties; callers building maps by hand use these constants.
const (
	SpecBore         = "bore"
	SpecStroke       = "stroke"
	SpecSeries       = "series"
	SpecRodEndType   = "rodEndType"
	SpecInstallation = "installationType"
)

// rangeRule maps an inclusive numeric ceiling to a tag. Rules within a table
// are ordered ascending; the first rule whose ceiling holds wins, and a
// negative ceiling never rejects.
type rangeRule struct {
	max int
	tag string
}

// valueRule maps one enumeration value to a tag.
type valueRule struct {
	value string
	tag   string
}

// The threshold and enumeration tables below are business constants from
// the ERP coding standard. Changing them changes what existing item codes
// mean; they are fixed across releases.
var (
	boreRules = []rangeRule{
		{max: 50, tag: vocabulary.ClassSmallBoreCylinder},
		{max: 100, tag: vocabulary.ClassMediumBoreCylinder},
		{max: -1, tag: vocabulary.ClassLargeBoreCylinder},
	}

	strokeRules = []rangeRule{
		{max: 100, tag: vocabulary.ClassShortStrokeCylinder},
		{max: 300, tag: vocabulary.ClassMediumStrokeCylinder},
		{max: -1, tag: vocabulary.ClassLongStrokeCylinder},
	}

	seriesRules = []valueRule{
		{value: "10", tag: vocabulary.ClassStandardCylinder},
		{value: "11", tag: vocabulary.ClassHeavyDutyCylinder},
		{value: "12", tag: vocabulary.ClassCompactCylinder},
		{value: "13", tag: vocabulary.ClassLightDutyCylinder},
	}

	rodEndRules = []valueRule{
		{value: "Y", tag: vocabulary.ClassYokeRodEndCylinder},
		{value: "I", tag: vocabulary.ClassThreadedRodEndCylinder},
		{value: "E", tag: vocabulary.ClassThreadedRodEndCylinder},
		{value: "P", tag: vocabulary.ClassPinRodEndCylinder},
	}

	installationRules = []valueRule{
		{value: "FA", tag: vocabulary.ClassFrontAttachmentCylinder},
		{value: "RA", tag: vocabulary.ClassRearAttachmentCylinder},
		{value: "TM", tag: vocabulary.ClassTrunnionMountedCylinder},
	}
)

// classifyRange returns the tag of the first rule whose ceiling covers the
// value. Tables end with an unbounded rule, so a match always exists.
func classifyRange(rules []rangeRule, value int) string {
	for _, r := range rules {
		if r.max < 0 || value <= r.max {
			return r.tag
		}
	}
	return ""
}

// classifyValue returns the tag for an enumeration value; unknown values
// yield no tag.
func classifyValue(rules []valueRule, value string) (string, bool) {
	for _, r := range rules {
		if r.value == value {
			return r.tag, true
		}
	}
	return "", false
}
