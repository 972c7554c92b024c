package pricing

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFilesMissingFilesFallsBack(t *testing.T) {
	tbl, err := LoadFromFiles("/nowhere/Rates.csv", "/nowhere/Fees.xlsx")
	if err != nil {
		t.Fatalf("missing config files should not error: %v", err)
	}
	if tbl.RatePerLoad(WashAndDry) != Defaults().RatePerLoad(WashAndDry) {
		t.Error("expected default rates when no files load")
	}
}

func TestLoadRatesCSVOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Rates.csv")
	csv := "service_type,rate_per_load\nwash_only,1800\nwash_and_dry,3000\nnot_a_service,999\ndry_only,-5\n"
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}

	tbl, err := LoadFromFiles(path, "")
	if err != nil {
		t.Fatalf("LoadFromFiles: %v", err)
	}
	if got := tbl.RatePerLoad(WashOnly); got != 1800 {
		t.Errorf("wash_only rate = %.0f, want 1800", got)
	}
	if got := tbl.RatePerLoad(WashAndDry); got != 3000 {
		t.Errorf("wash_and_dry rate = %.0f, want 3000", got)
	}
	// Invalid rows are skipped; dry_only keeps its default.
	if got := tbl.RatePerLoad(DryOnly); got != Defaults().RatePerLoad(DryOnly) {
		t.Errorf("dry_only rate = %.0f, want default %.0f", got, Defaults().RatePerLoad(DryOnly))
	}
}

func TestLoadRatesCSVHeaderAliases(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Rates.csv")
	csv := "Service,Price Per Load\nwash_only,2000\n"
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}
	tbl, err := LoadFromFiles(path, "")
	if err != nil {
		t.Fatalf("LoadFromFiles: %v", err)
	}
	if got := tbl.RatePerLoad(WashOnly); got != 2000 {
		t.Errorf("wash_only rate = %.0f, want 2000", got)
	}
}
