package analytics

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mercura/storefront-analytics/internal/analytics/bucket"
	"github.com/mercura/storefront-analytics/internal/analytics/daterange"
	"github.com/mercura/storefront-analytics/internal/analytics/money"
	"github.com/mercura/storefront-analytics/pkg/errors"
)

const topRegions = 5

var hundred = decimal.NewFromInt(100)

// AggregateOrders turns the window's orders into the dashboard payload:
// dense sales and count series over every bucket of the range, the top
// regions by sales, status counts, and the deltas against the previous
// window. Series and totals stay in minor units of the reporting
// currency; region sales are emitted in major units.
func AggregateOrders(orders, prevOrders []Order, rng daterange.Range, g bucket.Granularity, conv *money.Converter) (OrderAnalytics, error) {
	keys := bucket.Keys(g, rng.Start, rng.End)

	salesByKey := make(map[string]decimal.Decimal, len(keys))
	countByKey := make(map[string]int, len(keys))
	regionTotals := make(map[string]decimal.Decimal)
	statusCounts := make(map[string]int)
	var regionOrder, statusOrder []string

	for _, order := range orders {
		if order.CreatedAt.IsZero() {
			return OrderAnalytics{}, errors.New(errors.CodeInternal, fmt.Sprintf("order %s has no creation time", order.ID))
		}
		amount := conv.NormalizeMinorUnits(order.TotalCents, order.CurrencyCode)
		key := bucket.Key(order.CreatedAt, g, rng.Start, rng.End)
		salesByKey[key] = salesByKey[key].Add(amount)
		countByKey[key]++

		if order.RegionName != "" {
			if _, seen := regionTotals[order.RegionName]; !seen {
				regionOrder = append(regionOrder, order.RegionName)
			}
			regionTotals[order.RegionName] = regionTotals[order.RegionName].Add(amount)
		}

		status := order.Status.String()
		if _, seen := statusCounts[status]; !seen {
			statusOrder = append(statusOrder, status)
		}
		statusCounts[status]++
	}

	sales := make([]SeriesPoint, 0, len(keys))
	counts := make([]CountPoint, 0, len(keys))
	totalSales := 0.0
	for _, key := range keys {
		value := round2(salesByKey[key])
		sales = append(sales, SeriesPoint{Key: key, Value: value})
		counts = append(counts, CountPoint{Key: key, Value: countByKey[key]})
		totalSales += value
	}
	totalSales = round2f(totalSales)

	regions := make([]RegionSales, 0, len(regionOrder))
	for _, name := range regionOrder {
		regions = append(regions, RegionSales{
			Name:  name,
			Sales: round2(regionTotals[name].Div(hundred)),
		})
	}
	sort.SliceStable(regions, func(i, j int) bool { return regions[i].Sales > regions[j].Sales })
	if len(regions) > topRegions {
		regions = regions[:topRegions]
	}

	statuses := make([]StatusCount, 0, len(statusOrder))
	for _, name := range statusOrder {
		statuses = append(statuses, StatusCount{Name: name, Count: statusCounts[name]})
	}

	prevTotalSales, err := sumSales(prevOrders, conv)
	if err != nil {
		return OrderAnalytics{}, err
	}

	return OrderAnalytics{
		TotalOrders:       len(orders),
		PrevOrdersPercent: percentChange(float64(len(orders)), float64(len(prevOrders))),
		Regions:           regions,
		TotalSales:        totalSales,
		PrevSalesPercent:  percentChange(totalSales, prevTotalSales),
		Statuses:          statuses,
		OrderSales:        sales,
		OrderCount:        counts,
		CurrencyCode:      conv.ReportingCurrency(),
	}, nil
}

func sumSales(orders []Order, conv *money.Converter) (float64, error) {
	total := decimal.Zero
	for _, order := range orders {
		if order.CreatedAt.IsZero() {
			return 0, errors.New(errors.CodeInternal, fmt.Sprintf("order %s has no creation time", order.ID))
		}
		total = total.Add(conv.NormalizeMinorUnits(order.TotalCents, order.CurrencyCode))
	}
	return round2(total), nil
}

// percentChange reports the relative change from prev to curr. A zero
// previous period yields 0 when nothing changed and 100 otherwise.
func percentChange(curr, prev float64) float64 {
	if prev == 0 {
		if curr == 0 {
			return 0
		}
		return 100
	}
	return round2f((curr - prev) / prev * 100)
}

func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func round2f(v float64) float64 {
	return round2(decimal.NewFromFloat(v))
}
