// Package export flattens the order aggregates into CSV files and
// bundles them into a single ZIP archive for download.
package export

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/mercura/storefront-analytics/internal/analytics"
)

// Filename returns the archive name for a download started at t.
func Filename(t time.Time) string {
	return fmt.Sprintf("orders-analytics-%s.zip", t.Format("2006-01-02"))
}

// OrdersArchive renders the report's series and breakdowns as four CSV
// files inside one ZIP: sales-over-time, order-counts, regions and
// statuses.
func OrdersArchive(report analytics.OrderAnalytics) ([]byte, error) {
	var buf bytes.Buffer
	archive := zip.NewWriter(&buf)

	files := []struct {
		name string
		rows [][]string
	}{
		{"sales-over-time.csv", salesRows(report.OrderSales)},
		{"order-counts.csv", countRows(report.OrderCount)},
		{"regions.csv", regionRows(report.Regions)},
		{"statuses.csv", statusRows(report.Statuses)},
	}
	for _, file := range files {
		entry, err := archive.Create(file.name)
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", file.name, err)
		}
		writer := csv.NewWriter(entry)
		if err := writer.WriteAll(file.rows); err != nil {
			return nil, fmt.Errorf("writing %s: %w", file.name, err)
		}
	}

	if err := archive.Close(); err != nil {
		return nil, fmt.Errorf("closing archive: %w", err)
	}
	return buf.Bytes(), nil
}

func salesRows(points []analytics.SeriesPoint) [][]string {
	rows := [][]string{{"bucket", "sales"}}
	for _, point := range points {
		rows = append(rows, []string{point.Key, formatAmount(point.Value)})
	}
	return rows
}

func countRows(points []analytics.CountPoint) [][]string {
	rows := [][]string{{"bucket", "orders"}}
	for _, point := range points {
		rows = append(rows, []string{point.Key, strconv.Itoa(point.Value)})
	}
	return rows
}

func regionRows(regions []analytics.RegionSales) [][]string {
	rows := [][]string{{"region", "sales"}}
	for _, region := range regions {
		rows = append(rows, []string{region.Name, formatAmount(region.Sales)})
	}
	return rows
}

func statusRows(statuses []analytics.StatusCount) [][]string {
	rows := [][]string{{"status", "orders"}}
	for _, status := range statuses {
		rows = append(rows, []string{status.Name, strconv.Itoa(status.Count)})
	}
	return rows
}

func formatAmount(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}
