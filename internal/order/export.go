package order

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"
)

// csvHeader fixes the export column order. Every order field is present so
// the export is a lossless view of the store.
var csvHeader = []string{"id", "name", "phone", "product_id", "product", "price", "qty", "note", "time", "lang"}

// ExportCSV renders the full order history as CSV, one row per order plus a
// header row.
func ExportCSV(orders []Order) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("order export: header: %w", err)
	}
	for _, o := range orders {
		row := []string{
			o.ID,
			o.Name,
			o.Phone,
			o.ProductID,
			o.ProductName,
			formatNumber(o.Price),
			formatNumber(o.Qty),
			o.Note,
			o.CreatedAt.Format(time.RFC3339),
			o.Lang,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("order export: row %s: %w", o.ID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("order export: flush: %w", err)
	}
	return buf.Bytes(), nil
}

// Report is an aggregate over the order history.
type Report struct {
	Count        int     `json:"count"`
	TotalQty     float64 `json:"total_qty"`
	TotalRevenue float64 `json:"total_revenue"`
}

// BuildReport folds the history into totals. Revenue uses the prices copied
// into each order, not current catalog prices.
func BuildReport(orders []Order) Report {
	var r Report
	for _, o := range orders {
		r.Count++
		r.TotalQty += o.Qty
		r.TotalRevenue += o.Total()
	}
	return r
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
