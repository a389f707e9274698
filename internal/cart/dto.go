package cart

import "github.com/shopspring/decimal"

// Item is one reserved component line kept in the session cart. Prices arrive
// from the browser as JSON numbers and are held as decimals.
type Item struct {
	ComponentID *int64          `json:"component_id,omitempty"`
	Name        string          `json:"name"`
	Store       string          `json:"store"`
	Price       decimal.Decimal `json:"price"`
}
