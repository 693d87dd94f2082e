package vocabulary

// Class names for the generic material vocabulary. These are local names;
// qualify with MaterialIRI for export.
const (
	// ClassMaterial is the root class of every ERP item
	ClassMaterial = "Material"
	// ClassMasterItem marks an item that owns a BOM
	ClassMasterItem = "MasterItem"
	// ClassComponentItem marks an item used inside a BOM
	ClassComponentItem = "ComponentItem"
	// ClassBom is the reified usage relation between a master and a component
	ClassBom = "Bom"
)

// Class names for the hydraulic-cylinder taxonomy. These are local names;
// qualify with CylinderIRI for export.
//
// The taxonomy has five classification dimensions over the base class plus a
// component-category tree. Classes within one dimension are mutually
// disjoint; classes across dimensions combine freely on the same node.
const (
	// ClassHydraulicCylinder is the taxonomy root, subclass of Material
	ClassHydraulicCylinder = "HydraulicCylinder"
)

// Series dimension (ERP series code, positions [2,4) of the master code)
const (
	// ClassStandardCylinder is series "10"
	ClassStandardCylinder = "StandardCylinder"
	// ClassHeavyDutyCylinder is series "11"
	ClassHeavyDutyCylinder = "HeavyDutyCylinder"
	// ClassCompactCylinder is series "12"
	ClassCompactCylinder = "CompactCylinder"
	// ClassLightDutyCylinder is series "13"
	ClassLightDutyCylinder = "LightDutyCylinder"
)

// Bore dimension (bore diameter in mm)
const (
	// ClassSmallBoreCylinder covers bores up to 50mm
	ClassSmallBoreCylinder = "SmallBoreCylinder"
	// ClassMediumBoreCylinder covers bores over 50mm up to 100mm
	ClassMediumBoreCylinder = "MediumBoreCylinder"
	// ClassLargeBoreCylinder covers bores over 100mm
	ClassLargeBoreCylinder = "LargeBoreCylinder"
)

// Stroke dimension (stroke length in mm)
const (
	// ClassShortStrokeCylinder covers strokes up to 100mm
	ClassShortStrokeCylinder = "ShortStrokeCylinder"
	// ClassMediumStrokeCylinder covers strokes over 100mm up to 300mm
	ClassMediumStrokeCylinder = "MediumStrokeCylinder"
	// ClassLongStrokeCylinder covers strokes over 300mm
	ClassLongStrokeCylinder = "LongStrokeCylinder"
)

// Rod-end dimension (rod end type code, position [14,15) of the master code)
const (
	// ClassYokeRodEndCylinder is rod end type "Y"
	ClassYokeRodEndCylinder = "YokeRodEndCylinder"
	// ClassThreadedRodEndCylinder is rod end type "I" or "E"
	ClassThreadedRodEndCylinder = "ThreadedRodEndCylinder"
	// ClassPinRodEndCylinder is rod end type "P"
	ClassPinRodEndCylinder = "PinRodEndCylinder"
)

// Installation dimension (installation type derived from component codes)
const (
	// ClassFrontAttachmentCylinder is installation type "FA"
	ClassFrontAttachmentCylinder = "FrontAttachmentCylinder"
	// ClassRearAttachmentCylinder is installation type "RA"
	ClassRearAttachmentCylinder = "RearAttachmentCylinder"
	// ClassTrunnionMountedCylinder is installation type "TM"
	ClassTrunnionMountedCylinder = "TrunnionMountedCylinder"
)

// Component categories, all under CylinderComponent which is a subclass of
// ComponentItem.
const (
	ClassCylinderComponent = "CylinderComponent"

	ClassBarrel    = "Barrel"
	ClassPiston    = "Piston"
	ClassPistonRod = "PistonRod"

	ClassSealingComponent = "SealingComponent"
	ClassPistonSeal       = "PistonSeal"
	ClassRodSeal          = "RodSeal"
	ClassWiperSeal        = "WiperSeal"
	ClassBufferSeal       = "BufferSeal"

	ClassEndCap     = "EndCap"
	ClassHeadEndCap = "HeadEndCap"
	ClassRodEndCap  = "RodEndCap"

	ClassBushing      = "Bushing"
	ClassRodBushing   = "RodBushing"
	ClassGuideBushing = "GuideBushing"

	ClassFastener   = "Fastener"
	ClassTieRod     = "TieRod"
	ClassEndCapBolt = "EndCapBolt"
)

// ClassIRI qualifies a class local name into its owning namespace. The four
// generic material classes live in the material namespace; every other class
// name belongs to the hydraulic-cylinder taxonomy.
func ClassIRI(name string) string {
	switch name {
	case ClassMaterial, ClassMasterItem, ClassComponentItem, ClassBom:
		return MaterialIRI(name)
	default:
		return CylinderIRI(name)
	}
}
