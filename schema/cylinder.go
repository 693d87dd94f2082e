package schema

import (
	"github.com/JuntinLin/bom-owl-sub002/vocabulary"
)

// The hydraulic-cylinder taxonomy: one base class under Material, five
// classification dimensions over it, and a component-category tree under
// ComponentItem. Classes within a dimension are mutually disjoint; classes
// across dimensions combine freely on the same item.

// seriesEquivalence builds the "HydraulicCylinder with this property value"
// equivalence the value-driven dimensions share.
func seriesEquivalence(property string, values ...string) []Equivalence {
	return []Equivalence{{
		Base:        vocabulary.ClassHydraulicCylinder,
		Restriction: ValueRestriction{Property: property, Values: values},
	}}
}

// disjointSiblings marks every class in a dimension disjoint with the other
// members of the same dimension.
func disjointSiblings(defs []ClassDefinition) []ClassDefinition {
	names := make([]string, len(defs))
	for i, d := range defs {
		names[i] = d.Name
	}
	for i := range defs {
		others := make([]string, 0, len(names)-1)
		for _, n := range names {
			if n != defs[i].Name {
				others = append(others, n)
			}
		}
		defs[i].DisjointWith = others
	}
	return defs
}

func subCylinder(name, label string) ClassDefinition {
	return ClassDefinition{
		Name:         name,
		Label:        label,
		SuperClasses: []string{vocabulary.ClassHydraulicCylinder},
	}
}

func component(name, label string, super string) ClassDefinition {
	return ClassDefinition{
		Name:         name,
		Label:        label,
		SuperClasses: []string{super},
	}
}

func cylinderClasses() []ClassDefinition {
	var defs []ClassDefinition

	// Base class with the structural-completeness axioms. A complete
	// cylinder carries exactly one barrel, piston and piston rod, at
	// least one sealing component, and exactly two end caps.
	defs = append(defs, ClassDefinition{
		Name:         vocabulary.ClassHydraulicCylinder,
		Label:        "Hydraulic Cylinder",
		SuperClasses: []string{vocabulary.ClassMaterial},
		Cardinalities: []CardinalityRestriction{
			{Property: vocabulary.PropHasComponent, Kind: CardinalityExact, Count: 1, Filler: vocabulary.ClassBarrel},
			{Property: vocabulary.PropHasComponent, Kind: CardinalityExact, Count: 1, Filler: vocabulary.ClassPiston},
			{Property: vocabulary.PropHasComponent, Kind: CardinalityExact, Count: 1, Filler: vocabulary.ClassPistonRod},
			{Property: vocabulary.PropHasComponent, Kind: CardinalityMin, Count: 1, Filler: vocabulary.ClassSealingComponent},
			{Property: vocabulary.PropHasComponent, Kind: CardinalityExact, Count: 2, Filler: vocabulary.ClassEndCap},
		},
	})

	// Series dimension, driven by positions [2,4) of the master code.
	series := []ClassDefinition{
		subCylinder(vocabulary.ClassStandardCylinder, "Standard Cylinder"),
		subCylinder(vocabulary.ClassHeavyDutyCylinder, "Heavy Duty Cylinder"),
		subCylinder(vocabulary.ClassCompactCylinder, "Compact Cylinder"),
		subCylinder(vocabulary.ClassLightDutyCylinder, "Light Duty Cylinder"),
	}
	series[0].Equivalences = seriesEquivalence(vocabulary.PropHasSeries, "10")
	series[1].Equivalences = seriesEquivalence(vocabulary.PropHasSeries, "11")
	series[2].Equivalences = seriesEquivalence(vocabulary.PropHasSeries, "12")
	series[3].Equivalences = seriesEquivalence(vocabulary.PropHasSeries, "13")
	defs = append(defs, disjointSiblings(series)...)

	// Bore dimension. Threshold-driven (no value equivalence): the
	// classification engine assigns these from numeric bore size.
	bore := []ClassDefinition{
		subCylinder(vocabulary.ClassSmallBoreCylinder, "Small Bore Cylinder"),
		subCylinder(vocabulary.ClassMediumBoreCylinder, "Medium Bore Cylinder"),
		subCylinder(vocabulary.ClassLargeBoreCylinder, "Large Bore Cylinder"),
	}
	defs = append(defs, disjointSiblings(bore)...)

	// Stroke dimension, also threshold-driven.
	stroke := []ClassDefinition{
		subCylinder(vocabulary.ClassShortStrokeCylinder, "Short Stroke Cylinder"),
		subCylinder(vocabulary.ClassMediumStrokeCylinder, "Medium Stroke Cylinder"),
		subCylinder(vocabulary.ClassLongStrokeCylinder, "Long Stroke Cylinder"),
	}
	defs = append(defs, disjointSiblings(stroke)...)

	// Rod-end dimension. Threaded covers both the internal (I) and
	// external (E) thread codes, expressed as a one-of value set.
	rodEnd := []ClassDefinition{
		subCylinder(vocabulary.ClassYokeRodEndCylinder, "Yoke Rod End Cylinder"),
		subCylinder(vocabulary.ClassThreadedRodEndCylinder, "Threaded Rod End Cylinder"),
		subCylinder(vocabulary.ClassPinRodEndCylinder, "Pin Rod End Cylinder"),
	}
	rodEnd[0].Equivalences = seriesEquivalence(vocabulary.PropHasRodEndType, "Y")
	rodEnd[1].Equivalences = seriesEquivalence(vocabulary.PropHasRodEndType, "I", "E")
	rodEnd[2].Equivalences = seriesEquivalence(vocabulary.PropHasRodEndType, "P")
	defs = append(defs, disjointSiblings(rodEnd)...)

	// Installation dimension, derived from component characteristic codes.
	installation := []ClassDefinition{
		subCylinder(vocabulary.ClassFrontAttachmentCylinder, "Front Attachment Cylinder"),
		subCylinder(vocabulary.ClassRearAttachmentCylinder, "Rear Attachment Cylinder"),
		subCylinder(vocabulary.ClassTrunnionMountedCylinder, "Trunnion Mounted Cylinder"),
	}
	installation[0].Equivalences = seriesEquivalence(vocabulary.PropHasInstallationType, "FA")
	installation[1].Equivalences = seriesEquivalence(vocabulary.PropHasInstallationType, "RA")
	installation[2].Equivalences = seriesEquivalence(vocabulary.PropHasInstallationType, "TM")
	defs = append(defs, disjointSiblings(installation)...)

	// Component categories. Top-level categories are mutually disjoint,
	// as are the leaves within each category.
	defs = append(defs, component(vocabulary.ClassCylinderComponent, "Cylinder Component", vocabulary.ClassComponentItem))

	categories := []ClassDefinition{
		component(vocabulary.ClassBarrel, "Barrel", vocabulary.ClassCylinderComponent),
		component(vocabulary.ClassPiston, "Piston", vocabulary.ClassCylinderComponent),
		component(vocabulary.ClassPistonRod, "Piston Rod", vocabulary.ClassCylinderComponent),
		component(vocabulary.ClassSealingComponent, "Sealing Component", vocabulary.ClassCylinderComponent),
		component(vocabulary.ClassEndCap, "End Cap", vocabulary.ClassCylinderComponent),
		component(vocabulary.ClassBushing, "Bushing", vocabulary.ClassCylinderComponent),
		component(vocabulary.ClassFastener, "Fastener", vocabulary.ClassCylinderComponent),
	}
	defs = append(defs, disjointSiblings(categories)...)

	seals := []ClassDefinition{
		component(vocabulary.ClassPistonSeal, "Piston Seal", vocabulary.ClassSealingComponent),
		component(vocabulary.ClassRodSeal, "Rod Seal", vocabulary.ClassSealingComponent),
		component(vocabulary.ClassWiperSeal, "Wiper Seal", vocabulary.ClassSealingComponent),
		component(vocabulary.ClassBufferSeal, "Buffer Seal", vocabulary.ClassSealingComponent),
	}
	defs = append(defs, disjointSiblings(seals)...)

	caps := []ClassDefinition{
		component(vocabulary.ClassHeadEndCap, "Head End Cap", vocabulary.ClassEndCap),
		component(vocabulary.ClassRodEndCap, "Rod End Cap", vocabulary.ClassEndCap),
	}
	defs = append(defs, disjointSiblings(caps)...)

	bushings := []ClassDefinition{
		component(vocabulary.ClassRodBushing, "Rod Bushing", vocabulary.ClassBushing),
		component(vocabulary.ClassGuideBushing, "Guide Bushing", vocabulary.ClassBushing),
	}
	defs = append(defs, disjointSiblings(bushings)...)

	fasteners := []ClassDefinition{
		component(vocabulary.ClassTieRod, "Tie Rod", vocabulary.ClassFastener),
		component(vocabulary.ClassEndCapBolt, "End Cap Bolt", vocabulary.ClassFastener),
	}
	defs = append(defs, disjointSiblings(fasteners)...)

	return defs
}

// cylinderProperties declares the feature properties extracted from master
// item codes. The four code-positional features are functional: a cylinder
// carries at most one bore size, stroke length, series and rod end type.
func cylinderProperties() []PropertyDefinition {
	return []PropertyDefinition{
		{
			Name:       vocabulary.PropHasBoreSize,
			Kind:       DatatypeProperty,
			Domain:     vocabulary.ClassHydraulicCylinder,
			Range:      vocabulary.XsdInteger,
			Functional: true,
		},
		{
			Name:       vocabulary.PropHasStrokeLength,
			Kind:       DatatypeProperty,
			Domain:     vocabulary.ClassHydraulicCylinder,
			Range:      vocabulary.XsdInteger,
			Functional: true,
		},
		{
			Name:       vocabulary.PropHasRodEndType,
			Kind:       DatatypeProperty,
			Domain:     vocabulary.ClassHydraulicCylinder,
			Range:      vocabulary.XsdString,
			Functional: true,
		},
		{
			Name:       vocabulary.PropHasSeries,
			Kind:       DatatypeProperty,
			Domain:     vocabulary.ClassHydraulicCylinder,
			Range:      vocabulary.XsdString,
			Functional: true,
		},
		{
			Name:   vocabulary.PropHasType,
			Kind:   DatatypeProperty,
			Domain: vocabulary.ClassHydraulicCylinder,
			Range:  vocabulary.XsdString,
		},
		{
			Name:   vocabulary.PropHasInstallationType,
			Kind:   DatatypeProperty,
			Domain: vocabulary.ClassHydraulicCylinder,
			Range:  vocabulary.XsdString,
		},
		{
			Name:   vocabulary.PropHasShaftEndJoin,
			Kind:   DatatypeProperty,
			Domain: vocabulary.ClassHydraulicCylinder,
			Range:  vocabulary.XsdString,
		},
	}
}
