package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ers220/component-compass/pkg/migrate"
)

func TestValidateMigrationsDir(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("validate migrations dir: %v", err)
	}
}

func TestSupplierLinkMigrationContainsConstraints(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_supplier_links.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no supplier links migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	checks := []string{
		"CREATE TABLE IF NOT EXISTS supplier_components",
		"FOREIGN KEY (component_id) REFERENCES components(component_id) ON DELETE CASCADE",
		"FOREIGN KEY (supplier_id) REFERENCES suppliers(supplier_id) ON DELETE CASCADE",
		"CHECK (quantity_in_stock >= 0)",
		"DROP TABLE IF EXISTS supplier_alt_components",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestPracticalComponentsMigrationReferencesAlternatives(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_practical_components.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no practical components migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}

	if !strings.Contains(string(data), "FOREIGN KEY (alt_component_id) REFERENCES alt_components(alt_component_id) ON DELETE SET NULL") {
		t.Errorf("alternative reference should null out when the alternative is removed")
	}
}
