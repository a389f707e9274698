package catalog

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ers220/component-compass/pkg/db/models"
)

func newTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, conn.AutoMigrate(
		&models.Practical{},
		&models.Component{},
		&models.AltComponent{},
		&models.Supplier{},
		&models.SupplierComponent{},
		&models.SupplierAltComponent{},
		&models.PracticalComponent{},
	))

	svc, err := NewService(ServiceParams{Repo: NewRepository(conn)})
	require.NoError(t, err)
	return svc, conn
}

func seedCatalog(t *testing.T, conn *gorm.DB) {
	t.Helper()

	pretoria := "Pretoria"
	midrand := "Midrand"

	require.NoError(t, conn.Create(&models.Practical{PracNumber: 1, PracName: "Practical 1"}).Error)
	require.NoError(t, conn.Create(&models.Practical{PracNumber: 2, PracName: "Practical 2"}).Error)

	require.NoError(t, conn.Create(&models.Component{ID: 1, Name: "Resistor 10k"}).Error)
	require.NoError(t, conn.Create(&models.Component{ID: 2, Name: "Capacitor 100nF"}).Error)
	require.NoError(t, conn.Create(&models.AltComponent{ID: 1, Name: "Resistor 12k"}).Error)

	require.NoError(t, conn.Create(&models.Supplier{ID: 1, Name: "Communica", Location: &pretoria}).Error)
	require.NoError(t, conn.Create(&models.Supplier{ID: 2, Name: "RS Components", Location: &midrand}).Error)

	require.NoError(t, conn.Create(&models.SupplierComponent{
		ComponentID: 1, SupplierID: 1, QuantityInStock: 120, Price: decimal.NewFromFloat(0.45),
	}).Error)
	require.NoError(t, conn.Create(&models.SupplierComponent{
		ComponentID: 1, SupplierID: 2, QuantityInStock: 4, Price: decimal.NewFromFloat(0.40),
	}).Error)
	require.NoError(t, conn.Create(&models.SupplierAltComponent{
		AltComponentID: 1, SupplierID: 2, QuantityInStock: 0, Price: decimal.NewFromFloat(0.52),
	}).Error)

	altID := int64(1)
	require.NoError(t, conn.Create(&models.PracticalComponent{
		ComponentID: 1, PracNumber: 1, Quantity: 4, AltComponentID: &altID,
	}).Error)
	require.NoError(t, conn.Create(&models.PracticalComponent{
		ComponentID: 2, PracNumber: 1, Quantity: 2,
	}).Error)
}

func TestPracticalsOrderedByNumber(t *testing.T) {
	svc, conn := newTestService(t)
	seedCatalog(t, conn)

	practicals, err := svc.Practicals(context.Background())
	require.NoError(t, err)
	require.Len(t, practicals, 2)
	require.Equal(t, int64(1), practicals[0].PracNumber)
	require.Equal(t, "Practical 1", practicals[0].PracName)
}

func TestPracticalComponentsIncludeAlternatives(t *testing.T) {
	svc, conn := newTestService(t)
	seedCatalog(t, conn)

	components, err := svc.PracticalComponents(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, components, 2)

	// ordered by component name: Capacitor before Resistor
	require.Equal(t, "Capacitor 100nF", components[0].ComponentName)
	require.Nil(t, components[0].AltComponentID)

	require.Equal(t, "Resistor 10k", components[1].ComponentName)
	require.Equal(t, 4, components[1].Quantity)
	require.NotNil(t, components[1].AltComponentID)
	require.NotNil(t, components[1].AltComponentName)
	require.Equal(t, "Resistor 12k", *components[1].AltComponentName)
}

func TestPracticalComponentsEmptyPractical(t *testing.T) {
	svc, conn := newTestService(t)
	seedCatalog(t, conn)

	components, err := svc.PracticalComponents(context.Background(), 2)
	require.NoError(t, err)
	require.NotNil(t, components)
	require.Empty(t, components)
}

func TestComponentSuppliersSortedByPriceWithStockLabels(t *testing.T) {
	svc, conn := newTestService(t)
	seedCatalog(t, conn)

	offers, err := svc.ComponentSuppliers(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, offers, 2)

	// cheapest first
	require.Equal(t, "RS Components", offers[0].SupplierName)
	require.InDelta(t, 0.40, offers[0].Price, 0.0001)
	require.Equal(t, "4 left", offers[0].StockStatus)
	require.Equal(t, "low", offers[0].StockLevel)

	require.Equal(t, "Communica", offers[1].SupplierName)
	require.Equal(t, "In Stock", offers[1].StockStatus)
	require.Equal(t, "high", offers[1].StockLevel)
	require.Equal(t, "Resistor 10k", offers[1].ComponentName)
}

func TestAltComponentSuppliersOutOfStock(t *testing.T) {
	svc, conn := newTestService(t)
	seedCatalog(t, conn)

	offers, err := svc.AltComponentSuppliers(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, offers, 1)
	require.Equal(t, "Out of Stock", offers[0].StockStatus)
	require.Equal(t, "out", offers[0].StockLevel)
	require.Equal(t, "Resistor 12k", offers[0].ComponentName)
}

func TestSuppliersOrderedByName(t *testing.T) {
	svc, conn := newTestService(t)
	seedCatalog(t, conn)

	suppliers, err := svc.Suppliers(context.Background())
	require.NoError(t, err)
	require.Len(t, suppliers, 2)
	require.Equal(t, "Communica", suppliers[0].SupplierName)
	require.Equal(t, "RS Components", suppliers[1].SupplierName)
}

func TestDiagnose(t *testing.T) {
	svc, conn := newTestService(t)
	seedCatalog(t, conn)

	diag, err := svc.Diagnose(context.Background())
	require.NoError(t, err)
	require.Equal(t, "success", diag.Status)
	require.NotEmpty(t, diag.Tables)
	require.Equal(t, 2, diag.PracticalsCount)
	require.Equal(t, 2, diag.ComponentsCount)
	require.Equal(t, 2, diag.SuppliersCount)
}

func TestStockLabels(t *testing.T) {
	cases := []struct {
		quantity int
		status   string
		level    string
	}{
		{120, "In Stock", "high"},
		{11, "In Stock", "high"},
		{10, "10 left", "low"},
		{1, "1 left", "low"},
		{0, "Out of Stock", "out"},
	}
	for _, tc := range cases {
		status, level := stockLabels(tc.quantity)
		if status != tc.status || level != tc.level {
			t.Errorf("quantity %d: got (%q,%q), want (%q,%q)", tc.quantity, status, level, tc.status, tc.level)
		}
	}
}
