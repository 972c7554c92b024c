package pricing

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ServiceType selects which per-load rate applies.
type ServiceType string

const (
	WashOnly   ServiceType = "wash_only"
	WashAndDry ServiceType = "wash_and_dry"
	DryOnly    ServiceType = "dry_only"
)

func (s ServiceType) Valid() bool {
	switch s {
	case WashOnly, WashAndDry, DryOnly:
		return true
	}
	return false
}

// RateTable holds every pricing constant. One table serves both the
// check-in quick price and online estimates, so the load threshold is
// the same everywhere: KgPerLoad + OverflowAllowance.
type RateTable struct {
	KgPerLoad         float64
	OverflowAllowance float64
	Rates             map[ServiceType]float64 // per load
	TaxRate           float64
	ServiceFee        float64
	DeliveryFee       float64
}

// Defaults is the compiled-in table used when no config files are present.
func Defaults() *RateTable {
	return &RateTable{
		KgPerLoad:         8,
		OverflowAllowance: 2,
		Rates: map[ServiceType]float64{
			WashOnly:   1500,
			WashAndDry: 2500,
			DryOnly:    1200,
		},
		TaxRate:     0.075,
		ServiceFee:  100,
		DeliveryFee: 500,
	}
}

// LoadFromFiles overlays Defaults with a rates CSV and a fees XLSX.
// Either path may be empty or missing; whatever loads wins.
func LoadFromFiles(ratesCSV, feesXLSX string) (*RateTable, error) {
	t := Defaults()
	if ratesCSV != "" {
		if err := t.loadRatesCSV(ratesCSV); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}
	if feesXLSX != "" {
		if err := t.loadFeesXLSX(feesXLSX); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}
	if len(t.Rates) == 0 {
		return nil, errors.New("no service rates loaded")
	}
	return t, nil
}

// loadRatesCSV expects a header with service_type and rate_per_load
// columns, tolerating a few aliases and a BOM.
func (t *RateTable) loadRatesCSV(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	head, err := cr.Read()
	if err != nil {
		return err
	}

	norm := func(s string) string {
		s = strings.TrimSpace(s)
		s = strings.TrimPrefix(s, "\ufeff")
		s = strings.ToLower(s)
		s = strings.ReplaceAll(s, " ", "")
		s = strings.ReplaceAll(s, "-", "")
		s = strings.ReplaceAll(s, "_", "")
		return s
	}
	hmap := map[string]int{}
	for i, h := range head {
		hmap[norm(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok {
				return idx
			}
		}
		return -1
	}

	cSvc := findAny("service_type", "service", "type")
	cRate := findAny("rate_per_load", "rate", "price_per_load", "price")
	if cSvc == -1 || cRate == -1 {
		return errors.New("Rates.csv needs service_type and rate_per_load columns")
	}

	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if cSvc >= len(rec) || cRate >= len(rec) {
			continue
		}
		st := ServiceType(strings.TrimSpace(rec[cSvc]))
		rate, _ := strconv.ParseFloat(strings.TrimSpace(rec[cRate]), 64)
		if !st.Valid() || rate <= 0 {
			continue
		}
		t.Rates[st] = rate
	}
	return nil
}

// loadFeesXLSX reads name/value pairs from the first sheet: tax_rate,
// service_fee, delivery_fee, kg_per_load, overflow_allowance.
func (t *RateTable) loadFeesXLSX(path string) error {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return err
	}
	defer x.Close()

	rows, err := x.GetRows(x.GetSheetName(0))
	if err != nil {
		return err
	}
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil || v < 0 {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(row[0])) {
		case "tax_rate":
			t.TaxRate = v
		case "service_fee":
			t.ServiceFee = v
		case "delivery_fee":
			t.DeliveryFee = v
		case "kg_per_load":
			if v > 0 {
				t.KgPerLoad = v
			}
		case "overflow_allowance":
			t.OverflowAllowance = v
		}
	}
	return nil
}

// RatePerLoad returns 0 for unknown service types.
func (t *RateTable) RatePerLoad(st ServiceType) float64 { return t.Rates[st] }
