package catalog

import (
	"context"
	"fmt"

	pkgerrors "github.com/ers220/component-compass/pkg/errors"
)

const stockHighWatermark = 10

// Service answers the catalog queries behind the browsing API.
type Service interface {
	Practicals(ctx context.Context) ([]PracticalDTO, error)
	PracticalComponents(ctx context.Context, pracNumber int64) ([]PracticalComponentDTO, error)
	ComponentSuppliers(ctx context.Context, componentID int64) ([]SupplierOfferDTO, error)
	AltComponentSuppliers(ctx context.Context, altComponentID int64) ([]SupplierOfferDTO, error)
	Suppliers(ctx context.Context) ([]SupplierDTO, error)
	Diagnose(ctx context.Context) (*Diagnostics, error)
}

type service struct {
	repo *Repository
}

// ServiceParams bundles the dependencies required to build a catalog service.
type ServiceParams struct {
	Repo *Repository
}

// NewService constructs a catalog service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("catalog repository is required")
	}
	return &service{repo: params.Repo}, nil
}

func (s *service) Practicals(ctx context.Context) ([]PracticalDTO, error) {
	rows, err := s.repo.ListPracticals(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list practicals")
	}
	out := make([]PracticalDTO, 0, len(rows))
	for _, p := range rows {
		out = append(out, PracticalDTO{PracNumber: p.PracNumber, PracName: p.PracName})
	}
	return out, nil
}

func (s *service) PracticalComponents(ctx context.Context, pracNumber int64) ([]PracticalComponentDTO, error) {
	rows, err := s.repo.ListPracticalComponents(ctx, pracNumber)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list practical components")
	}
	if rows == nil {
		rows = []PracticalComponentDTO{}
	}
	return rows, nil
}

func (s *service) ComponentSuppliers(ctx context.Context, componentID int64) ([]SupplierOfferDTO, error) {
	rows, err := s.repo.ListComponentSuppliers(ctx, componentID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list component suppliers")
	}
	return offersFromRows(rows), nil
}

func (s *service) AltComponentSuppliers(ctx context.Context, altComponentID int64) ([]SupplierOfferDTO, error) {
	rows, err := s.repo.ListAltComponentSuppliers(ctx, altComponentID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list alt component suppliers")
	}
	return offersFromRows(rows), nil
}

func (s *service) Suppliers(ctx context.Context) ([]SupplierDTO, error) {
	rows, err := s.repo.ListSuppliers(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list suppliers")
	}
	out := make([]SupplierDTO, 0, len(rows))
	for _, sup := range rows {
		out = append(out, SupplierDTO{
			SupplierID:       sup.ID,
			SupplierName:     sup.Name,
			SupplierLocation: sup.Location,
		})
	}
	return out, nil
}

func (s *service) Diagnose(ctx context.Context) (*Diagnostics, error) {
	tables, err := s.repo.TableNames(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list tables")
	}

	practicals, err := s.Practicals(ctx)
	if err != nil {
		return nil, err
	}
	suppliers, err := s.Suppliers(ctx)
	if err != nil {
		return nil, err
	}
	componentCount, err := s.repo.CountComponents(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count components")
	}

	return &Diagnostics{
		Status:          "success",
		Tables:          tables,
		PracticalsCount: len(practicals),
		ComponentsCount: int(componentCount),
		SuppliersCount:  len(suppliers),
		Practicals:      practicals,
		Suppliers:       suppliers,
	}, nil
}

func offersFromRows(rows []supplierOfferRow) []SupplierOfferDTO {
	out := make([]SupplierOfferDTO, 0, len(rows))
	for _, row := range rows {
		status, level := stockLabels(row.QuantityInStock)
		out = append(out, SupplierOfferDTO{
			SupplierID:       row.SupplierID,
			SupplierName:     row.SupplierName,
			SupplierLocation: row.SupplierLocation,
			QuantityInStock:  row.QuantityInStock,
			Price:            row.Price.InexactFloat64(),
			ComponentName:    row.ComponentName,
			StockStatus:      status,
			StockLevel:       level,
		})
	}
	return out
}

func stockLabels(quantity int) (status string, level string) {
	switch {
	case quantity > stockHighWatermark:
		return "In Stock", "high"
	case quantity > 0:
		return fmt.Sprintf("%d left", quantity), "low"
	default:
		return "Out of Stock", "out"
	}
}
