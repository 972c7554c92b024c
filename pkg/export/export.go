// Package export renders filtered order lists for download. Pure
// projection: nothing here touches order state.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"washline/entities"
)

var columns = []string{
	"code", "type", "status", "customer", "phone", "hall", "room",
	"service", "weight_kg", "loads", "total_price", "payment", "created_at",
}

func row(o *entities.Order) []string {
	num := func(p *float64) string {
		if p == nil {
			return ""
		}
		return strconv.FormatFloat(*p, 'f', 2, 64)
	}
	loads := ""
	if o.Loads != nil {
		loads = strconv.Itoa(*o.Loads)
	}
	return []string{
		o.Code, o.OrderType, o.Status, o.CustomerName, o.CustomerPhone,
		o.Hall, o.Room, o.ServiceType, num(o.Weight), loads,
		num(o.TotalPrice), o.PaymentStatus, o.CreatedAt.Format(time.RFC3339),
	}
}

func CSV(w io.Writer, orders []entities.Order) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return err
	}
	for i := range orders {
		if err := cw.Write(row(&orders[i])); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func XLSX(orders []entities.Order) (*excelize.File, error) {
	x := excelize.NewFile()
	sheet := x.GetSheetName(0)
	for c, name := range columns {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		if err := x.SetCellValue(sheet, cell, name); err != nil {
			return nil, err
		}
	}
	for i := range orders {
		for c, v := range row(&orders[i]) {
			cell, _ := excelize.CoordinatesToCellName(c+1, i+2)
			if err := x.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}
	return x, nil
}

// Filename stamps downloads like washline-orders-active-2026-08-31.csv.
func Filename(view, format string, now time.Time) string {
	if view == "" {
		view = "all"
	}
	return fmt.Sprintf("washline-orders-%s-%s.%s", view, now.Format("2006-01-02"), format)
}
