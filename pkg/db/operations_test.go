package db

import (
	"testing"

	"github.com/dtnitsch/romaneio/models"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

func TestLoadManifests_Uninitialized(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	manifests, err := db.LoadManifests()
	if err != nil {
		t.Fatalf("LoadManifests() failed: %v", err)
	}
	if len(manifests) != 0 {
		t.Errorf("expected empty collection, got %d manifests", len(manifests))
	}
}

func TestLoadSettings_DefaultsWhenUnset(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	settings, err := db.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}
	if settings.DefaultFreightRate != 2 {
		t.Errorf("DefaultFreightRate = %v, want 2", settings.DefaultFreightRate)
	}
}

func TestSaveManifests_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	manifests := []models.Manifest{
		{
			ID:          "m-1",
			Date:        "2024-01-20",
			FreightRate: 2.5,
			CreatedAt:   1705708800000,
			Invoices: []models.Invoice{
				{ID: "i-1", Number: "100", CompanyName: "Acme", Value: 1000, Freight: 25},
				{ID: "i-2", Number: "101", CompanyName: "Globex", Value: 500, Freight: 12.5},
			},
		},
		{
			ID:          "m-2",
			Date:        "2024-01-05",
			FreightRate: 2,
			Invoices:    []models.Invoice{},
		},
	}

	if err := db.SaveManifests(manifests); err != nil {
		t.Fatalf("SaveManifests() failed: %v", err)
	}

	got, err := db.LoadManifests()
	if err != nil {
		t.Fatalf("LoadManifests() failed: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("got %d manifests, want 2", len(got))
	}
	if got[0].ID != "m-1" || got[1].ID != "m-2" {
		t.Errorf("order not preserved: got %s, %s", got[0].ID, got[1].ID)
	}
	if len(got[0].Invoices) != 2 {
		t.Fatalf("got %d invoices, want 2", len(got[0].Invoices))
	}
	inv := got[0].Invoices[0]
	if inv.Number != "100" || inv.CompanyName != "Acme" || inv.Value != 1000 || inv.Freight != 25 {
		t.Errorf("invoice fields not preserved: %+v", inv)
	}
	if got[0].CreatedAt != 1705708800000 {
		t.Errorf("CreatedAt = %d, want 1705708800000", got[0].CreatedAt)
	}
}

func TestSaveManifests_FullReplace(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	first := []models.Manifest{{ID: "m-1", Date: "2024-01-10"}}
	second := []models.Manifest{{ID: "m-2", Date: "2024-02-01"}}

	if err := db.SaveManifests(first); err != nil {
		t.Fatalf("SaveManifests() failed: %v", err)
	}
	if err := db.SaveManifests(second); err != nil {
		t.Fatalf("SaveManifests() failed: %v", err)
	}

	got, err := db.LoadManifests()
	if err != nil {
		t.Fatalf("LoadManifests() failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "m-2" {
		t.Errorf("expected only m-2 after replace, got %+v", got)
	}
}

func TestLoadManifests_IgnoresUnknownFields(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	// A future schema may add fields; reads must stay tolerant.
	blob := `[{"id":"m-1","date":"2024-03-01","freightRate":3,"invoices":[],"createdAt":0,"notes":"extra"}]`
	if err := db.setBlob(manifestsKey, []byte(blob)); err != nil {
		t.Fatalf("setBlob() failed: %v", err)
	}

	got, err := db.LoadManifests()
	if err != nil {
		t.Fatalf("LoadManifests() failed: %v", err)
	}
	if len(got) != 1 || got[0].FreightRate != 3 {
		t.Errorf("unexpected result: %+v", got)
	}
}

func TestSaveSettings_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := db.SaveSettings(models.AppSettings{DefaultFreightRate: 4.5}); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}

	got, err := db.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}
	if got.DefaultFreightRate != 4.5 {
		t.Errorf("DefaultFreightRate = %v, want 4.5", got.DefaultFreightRate)
	}
}
