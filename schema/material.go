package schema

import (
	"github.com/JuntinLin/bom-owl-sub002/vocabulary"
)

// materialClasses declares the generic material vocabulary: items, the
// master/component roles, and the reified BOM usage relation.
//
// MasterItem and ComponentItem are deliberately not disjoint: an item is
// regularly the master of its own BOM and a component in another.
func materialClasses() []ClassDefinition {
	return []ClassDefinition{
		{
			Name:  vocabulary.ClassMaterial,
			Label: "Material",
		},
		{
			Name:         vocabulary.ClassMasterItem,
			Label:        "Master Item",
			SuperClasses: []string{vocabulary.ClassMaterial},
		},
		{
			Name:         vocabulary.ClassComponentItem,
			Label:        "Component Item",
			SuperClasses: []string{vocabulary.ClassMaterial},
		},
		{
			Name:  vocabulary.ClassBom,
			Label: "BOM Usage",
		},
	}
}

// materialProperties declares the item identity properties, the BOM linkage
// object properties, and the usage attributes carried by Bom nodes.
func materialProperties() []PropertyDefinition {
	return []PropertyDefinition{
		// Linkage
		{
			Name:    vocabulary.PropHasComponent,
			Kind:    ObjectProperty,
			Domain:  vocabulary.ClassMasterItem,
			Range:   vocabulary.ClassComponentItem,
			Inverse: vocabulary.PropIsUsedIn,
		},
		{
			Name:    vocabulary.PropIsUsedIn,
			Kind:    ObjectProperty,
			Domain:  vocabulary.ClassComponentItem,
			Range:   vocabulary.ClassMasterItem,
			Inverse: vocabulary.PropHasComponent,
		},
		{
			Name:   vocabulary.PropHasBom,
			Kind:   ObjectProperty,
			Domain: vocabulary.ClassMasterItem,
			Range:  vocabulary.ClassBom,
		},
		{
			Name:       vocabulary.PropHasMasterItem,
			Kind:       ObjectProperty,
			Domain:     vocabulary.ClassBom,
			Range:      vocabulary.ClassMasterItem,
			Functional: true,
		},
		{
			Name:       vocabulary.PropHasComponentItem,
			Kind:       ObjectProperty,
			Domain:     vocabulary.ClassBom,
			Range:      vocabulary.ClassComponentItem,
			Functional: true,
		},

		// Item identity
		{
			Name:       vocabulary.PropItemCode,
			Kind:       DatatypeProperty,
			Domain:     vocabulary.ClassMaterial,
			Range:      vocabulary.XsdString,
			Functional: true,
		},
		{
			Name:       vocabulary.PropItemName,
			Kind:       DatatypeProperty,
			Domain:     vocabulary.ClassMaterial,
			Range:      vocabulary.XsdString,
			Functional: true,
		},
		{
			Name:       vocabulary.PropSpecification,
			Kind:       DatatypeProperty,
			Domain:     vocabulary.ClassMaterial,
			Range:      vocabulary.XsdString,
			Functional: true,
		},
		{
			Name:       vocabulary.PropCharacteristicCode,
			Kind:       DatatypeProperty,
			Domain:     vocabulary.ClassMaterial,
			Range:      vocabulary.XsdString,
			Functional: true,
		},

		// BOM usage attributes
		{
			Name:       vocabulary.PropHasEffectiveDate,
			Kind:       DatatypeProperty,
			Domain:     vocabulary.ClassBom,
			Range:      vocabulary.XsdDate,
			Functional: true,
		},
		{
			Name:       vocabulary.PropHasExpiryDate,
			Kind:       DatatypeProperty,
			Domain:     vocabulary.ClassBom,
			Range:      vocabulary.XsdDate,
			Functional: true,
		},
		{
			Name:       vocabulary.PropHasQuantity,
			Kind:       DatatypeProperty,
			Domain:     vocabulary.ClassBom,
			Range:      vocabulary.XsdDouble,
			Functional: true,
		},
		{
			Name:       vocabulary.PropHasSequence,
			Kind:       DatatypeProperty,
			Domain:     vocabulary.ClassBom,
			Range:      vocabulary.XsdInteger,
			Functional: true,
		},
	}
}
