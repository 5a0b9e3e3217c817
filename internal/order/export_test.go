package order

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExportCSVIsLossless(t *testing.T) {
	created := time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC)
	orders := []Order{
		{
			ID: "o1", ProductID: "p1", ProductName: "Пельмени", Price: 45000, Qty: 2,
			Name: "Ольга", Phone: "+998901112233", Note: "ул. Навои, 5", Lang: "ru",
			CreatedAt: created,
		},
		{
			ID: "o2", ProductID: "p2", ProductName: "Manti", Price: 55000, Qty: 1.5,
			Name: "Aziz", Phone: "@aziz", Lang: "uz",
			CreatedAt: created.Add(time.Hour),
		},
	}

	data, err := ExportCSV(orders)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + 2 orders

	require.Equal(t, []string{"id", "name", "phone", "product_id", "product", "price", "qty", "note", "time", "lang"}, rows[0])
	require.Equal(t, []string{"o1", "Ольга", "+998901112233", "p1", "Пельмени", "45000", "2", "ул. Навои, 5", "2026-02-01T09:30:00Z", "ru"}, rows[1])
	require.Equal(t, []string{"o2", "Aziz", "@aziz", "p2", "Manti", "55000", "1.5", "", "2026-02-01T10:30:00Z", "uz"}, rows[2])
}

func TestExportCSVEmptyHistory(t *testing.T) {
	data, err := ExportCSV(nil)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestBuildReport(t *testing.T) {
	orders := []Order{
		{Price: 45000, Qty: 2},
		{Price: 55000, Qty: 1.5},
	}

	r := BuildReport(orders)
	require.Equal(t, 2, r.Count)
	require.Equal(t, 3.5, r.TotalQty)
	require.Equal(t, float64(45000*2)+55000*1.5, r.TotalRevenue)
}

func TestBuildReportEmpty(t *testing.T) {
	require.Equal(t, Report{}, BuildReport(nil))
}

func TestOrderTotal(t *testing.T) {
	require.Equal(t, float64(90000), Order{Price: 45000, Qty: 2}.Total())
}
