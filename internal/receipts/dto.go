package receipts

import "github.com/shopspring/decimal"

// StudentInfo identifies the student the receipt is issued to.
type StudentInfo struct {
	FullName string
	Email    string
}

// Line is one reserved component on the receipt.
type Line struct {
	Name  string          `json:"name"`
	Store string          `json:"store"`
	Price decimal.Decimal `json:"price"`
}

// Document is the fully resolved receipt handed to a renderer.
type Document struct {
	StudentName        string
	StudentEmail       string
	ReservationDate    string
	CollectionDeadline string
	Lines              []Line
	Total              decimal.Decimal
}

// ExportResult reports the file written for a reservation export.
type ExportResult struct {
	Filename string `json:"filename"`
	Format   string `json:"format"`
}
