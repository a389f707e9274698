package catalog

// PracticalDTO is one row of the practical selector.
type PracticalDTO struct {
	PracNumber int64  `json:"prac_number"`
	PracName   string `json:"prac_name"`
}

// PracticalComponentDTO is a required component line for a practical,
// including its alternative when one is configured.
type PracticalComponentDTO struct {
	ComponentID      int64   `json:"component_id"`
	ComponentName    string  `json:"component_name"`
	Quantity         int     `json:"quantity"`
	AltComponentID   *int64  `json:"alt_component_id"`
	AltComponentName *string `json:"alt_component_name"`
}

// SupplierOfferDTO is one supplier's price and availability for a component.
type SupplierOfferDTO struct {
	SupplierID       int64   `json:"supplier_id"`
	SupplierName     string  `json:"supplier_name"`
	SupplierLocation *string `json:"supplier_location"`
	QuantityInStock  int     `json:"quantity_in_stock"`
	Price            float64 `json:"price"`
	ComponentName    string  `json:"component_name"`
	StockStatus      string  `json:"stock_status"`
	StockLevel       string  `json:"stock_level"`
}

// SupplierDTO is one row of the supplier directory.
type SupplierDTO struct {
	SupplierID       int64   `json:"supplier_id"`
	SupplierName     string  `json:"supplier_name"`
	SupplierLocation *string `json:"supplier_location"`
}

// Diagnostics summarizes the datasource for the connectivity check page.
type Diagnostics struct {
	Status          string         `json:"status"`
	Tables          []string       `json:"tables"`
	PracticalsCount int            `json:"practicals_count"`
	ComponentsCount int            `json:"components_count"`
	SuppliersCount  int            `json:"suppliers_count"`
	Practicals      []PracticalDTO `json:"practicals"`
	Suppliers       []SupplierDTO  `json:"suppliers"`
}
