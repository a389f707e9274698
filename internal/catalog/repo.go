package catalog

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ers220/component-compass/pkg/db/models"
)

// Repository exposes read-only catalog queries.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a catalog repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type supplierOfferRow struct {
	SupplierID       int64           `gorm:"column:supplier_id"`
	SupplierName     string          `gorm:"column:supplier_name"`
	SupplierLocation *string         `gorm:"column:supplier_location"`
	QuantityInStock  int             `gorm:"column:quantity_in_stock"`
	Price            decimal.Decimal `gorm:"column:price"`
	ComponentName    string          `gorm:"column:component_name"`
}

// ListPracticals returns every practical ordered by number.
func (r *Repository) ListPracticals(ctx context.Context) ([]models.Practical, error) {
	var rows []models.Practical
	if err := r.db.WithContext(ctx).Order("prac_number").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListPracticalComponents returns the component lines (with alternatives) for
// one practical, ordered by component name.
func (r *Repository) ListPracticalComponents(ctx context.Context, pracNumber int64) ([]PracticalComponentDTO, error) {
	var rows []PracticalComponentDTO
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			pc.quantity,
			c.component_id,
			c.component_name,
			pc.alt_component_id,
			ac.alt_component_name
		FROM practical_components pc
		JOIN components c ON pc.component_id = c.component_id
		LEFT JOIN alt_components ac ON pc.alt_component_id = ac.alt_component_id
		WHERE pc.prac_number = ?
		ORDER BY c.component_name`, pracNumber).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListComponentSuppliers returns supplier offers for a component ordered by price ascending.
func (r *Repository) ListComponentSuppliers(ctx context.Context, componentID int64) ([]supplierOfferRow, error) {
	var rows []supplierOfferRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			s.supplier_id,
			s.supplier_name,
			s.supplier_location,
			sc.quantity_in_stock,
			sc.price_component_per_supplier AS price,
			c.component_name
		FROM supplier_components sc
		JOIN suppliers s ON sc.supplier_id = s.supplier_id
		JOIN components c ON sc.component_id = c.component_id
		WHERE sc.component_id = ?
		ORDER BY sc.price_component_per_supplier`, componentID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListAltComponentSuppliers returns supplier offers for an alternative component
// ordered by price ascending.
func (r *Repository) ListAltComponentSuppliers(ctx context.Context, altComponentID int64) ([]supplierOfferRow, error) {
	var rows []supplierOfferRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			s.supplier_id,
			s.supplier_name,
			s.supplier_location,
			sac.alt_quantity_in_stock AS quantity_in_stock,
			sac.alt_price_component_per_supplier AS price,
			ac.alt_component_name AS component_name
		FROM supplier_alt_components sac
		JOIN suppliers s ON sac.supplier_id = s.supplier_id
		JOIN alt_components ac ON sac.alt_component_id = ac.alt_component_id
		WHERE sac.alt_component_id = ?
		ORDER BY sac.alt_price_component_per_supplier`, altComponentID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListSuppliers returns the supplier directory ordered by name.
func (r *Repository) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	var rows []models.Supplier
	if err := r.db.WithContext(ctx).Order("supplier_name").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// CountComponents returns the size of the component catalog.
func (r *Repository) CountComponents(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Component{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// TableNames lists the tables visible to the connection.
func (r *Repository) TableNames(ctx context.Context) ([]string, error) {
	return r.db.WithContext(ctx).Migrator().GetTables()
}
