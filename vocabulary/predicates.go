package vocabulary

// Property vocabulary for the BOM ontology.
//
// Design principles:
//   - Internal code uses the bare camelCase property name everywhere
//     (graph nodes, schema definitions, classification rules).
//   - IRIs appear only in triple export at the reasoner boundary, via
//     PropertyIRI.
//   - Object properties reference other nodes; datatype properties carry
//     literals with an XSD datatype hint.
//
// The per-constant comments state the value type a well-formed graph carries
// for the property.

// Object properties linking items and BOM relations
const (
	// PropHasComponent is a node reference from a master item to a component item
	PropHasComponent = "hasComponent"
	// PropIsUsedIn is the inverse of hasComponent
	PropIsUsedIn = "isUsedIn"
	// PropHasBom links a master item to one of its reified BOM usage nodes
	PropHasBom = "hasBom"
	// PropHasMasterItem links a BOM usage node to its master item
	PropHasMasterItem = "hasMasterItem"
	// PropHasComponentItem links a BOM usage node to its component item
	PropHasComponentItem = "hasComponentItem"
)

// Item identity and description properties
const (
	// PropItemCode is string, the raw ERP item code (unsanitized)
	PropItemCode = "itemCode"
	// PropItemName is string, the item display name
	PropItemName = "itemName"
	// PropSpecification is string, the free-text specification
	PropSpecification = "specification"
	// PropCharacteristicCode is string, the ERP characteristic code
	PropCharacteristicCode = "characteristicCode"
)

// Hydraulic-cylinder feature properties extracted from the master item code.
// hasBoreSize, hasStrokeLength, hasSeries and hasRodEndType are functional:
// a cylinder carries at most one value for each.
const (
	// PropHasBoreSize is int, bore diameter in mm
	PropHasBoreSize = "hasBoreSize"
	// PropHasStrokeLength is int, stroke length in mm
	PropHasStrokeLength = "hasStrokeLength"
	// PropHasRodEndType is string, one of "Y", "I", "E", "P"
	PropHasRodEndType = "hasRodEndType"
	// PropHasSeries is string, two-digit series code
	PropHasSeries = "hasSeries"
	// PropHasType is string, single-character cylinder type code
	PropHasType = "hasType"
	// PropHasInstallationType is string, e.g. "CA", "FA", "TC"
	PropHasInstallationType = "hasInstallationType"
	// PropHasShaftEndJoin is string, e.g. "Y", "I", "Pin"
	PropHasShaftEndJoin = "hasShaftEndJoin"
)

// BOM usage properties attached to reified Bom nodes
const (
	// PropHasEffectiveDate is an ISO-8601 date literal (yyyy-MM-dd)
	PropHasEffectiveDate = "hasEffectiveDate"
	// PropHasExpiryDate is an ISO-8601 date literal (yyyy-MM-dd)
	PropHasExpiryDate = "hasExpiryDate"
	// PropHasQuantity is float64, the usage quantity
	PropHasQuantity = "hasQuantity"
	// PropHasSequence is int, the BOM line sequence
	PropHasSequence = "hasSequence"
)
