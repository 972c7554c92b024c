package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"washline/entities"
)

func sampleOrders() []entities.Order {
	w, l, p := 8.5, 1, 1500.0
	return []entities.Order{
		{
			Code: "WL-4921", OrderType: "online", Status: "ready",
			CustomerName: "Ada", CustomerPhone: "08015550199",
			Hall: "Kuti Hall", Room: "B12", ServiceType: "wash_only",
			Weight: &w, Loads: &l, TotalPrice: &p,
			PaymentStatus: "pending",
			CreatedAt:     time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
		},
		{
			Code: "WL-1002", OrderType: "walkin", Status: "pending_dropoff",
			CustomerPhone: "08012340000", ServiceType: "dry_only",
			PaymentStatus: "pending",
			CreatedAt:     time.Date(2026, 8, 31, 9, 30, 0, 0, time.UTC),
		},
	}
}

func TestCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := CSV(&buf, sampleOrders()); err != nil {
		t.Fatalf("CSV: %v", err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d rows, want header + 2", len(records))
	}
	if records[0][0] != "code" || records[0][len(records[0])-1] != "created_at" {
		t.Errorf("header = %v", records[0])
	}
	if records[1][0] != "WL-4921" || records[1][9] != "1" || records[1][10] != "1500.00" {
		t.Errorf("priced row = %v", records[1])
	}
	// Unpriced fields export as empty, not zero.
	if records[2][8] != "" || records[2][9] != "" || records[2][10] != "" {
		t.Errorf("unpriced row = %v", records[2])
	}
}

func TestXLSX(t *testing.T) {
	x, err := XLSX(sampleOrders())
	if err != nil {
		t.Fatalf("XLSX: %v", err)
	}
	sheet := x.GetSheetName(0)
	got, err := x.GetCellValue(sheet, "A2")
	if err != nil {
		t.Fatal(err)
	}
	if got != "WL-4921" {
		t.Errorf("A2 = %q, want WL-4921", got)
	}
	rows, err := x.GetRows(sheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Errorf("got %d rows, want header + 2", len(rows))
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	if got := Filename("active", "csv", now); got != "washline-orders-active-2026-08-31.csv" {
		t.Errorf("Filename = %q", got)
	}
	if got := Filename("", "xlsx", now); !strings.HasPrefix(got, "washline-orders-all-") {
		t.Errorf("empty view Filename = %q", got)
	}
}
