package convert

import "time"

// MaterialRecord is one standalone item row from the ERP item master.
type MaterialRecord struct {
	// Code is the ERP item code; it becomes the node identifier after
	// sanitization and is stored verbatim as the itemCode property.
	Code string `json:"code"`
	// Name is the display name, optional.
	Name string `json:"name,omitempty"`
	// Spec is the free-text specification column, optional.
	Spec string `json:"spec,omitempty"`
}

// MasterRecord is the BOM owner row.
type MasterRecord struct {
	Code               string `json:"code"`
	CharacteristicCode string `json:"characteristic_code,omitempty"`
}

// ComponentRecord is one BOM line under a master item. Dates are
// date-granular; zero times mean the bound is open.
type ComponentRecord struct {
	Code               string    `json:"code"`
	Sequence           int       `json:"sequence"`
	EffectiveDate      time.Time `json:"effective_date"`
	ExpiryDate         time.Time `json:"expiry_date"`
	Quantity           float64   `json:"quantity"`
	CharacteristicCode string    `json:"characteristic_code,omitempty"`
}

// BomRecord bundles a master with its component list; one BomRecord is one
// unit of batch conversion work.
type BomRecord struct {
	Master     MasterRecord      `json:"master"`
	Components []ComponentRecord `json:"components"`
}
