package analytics

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mercura/storefront-analytics/internal/analytics/money"
)

// AggregateCustomers partitions the window's customers into new and
// returning and sums their normalized sales. firstOrderAt carries each
// customer's earliest-ever order time: a customer whose whole history
// starts inside the window is new, anyone with an older order is
// returning even when they also bought inside the window. customers
// supplies names and group memberships; a customer missing from it
// still counts, with the id standing in for the name.
func AggregateCustomers(orders []Order, customers map[uuid.UUID]Customer, firstOrderAt map[uuid.UUID]time.Time, windowStart time.Time, conv *money.Converter) CustomerAnalytics {
	salesByCustomer := make(map[uuid.UUID]decimal.Decimal)
	groupTotals := make(map[string]decimal.Decimal)
	var customerOrder []uuid.UUID
	var groupOrder []string

	for _, order := range orders {
		if order.CustomerID == nil {
			continue
		}
		id := *order.CustomerID
		amount := conv.NormalizeMinorUnits(order.TotalCents, order.CurrencyCode)
		if _, seen := salesByCustomer[id]; !seen {
			customerOrder = append(customerOrder, id)
		}
		salesByCustomer[id] = salesByCustomer[id].Add(amount)

		// a customer in several groups contributes the full amount to each
		for _, group := range customers[id].Groups {
			if _, seen := groupTotals[group]; !seen {
				groupOrder = append(groupOrder, group)
			}
			groupTotals[group] = groupTotals[group].Add(amount)
		}
	}

	newCount := 0
	for _, id := range customerOrder {
		first, ok := firstOrderAt[id]
		if !ok || !first.Before(windowStart) {
			newCount++
		}
	}

	sales := make([]CustomerSales, 0, len(customerOrder))
	for _, id := range customerOrder {
		sales = append(sales, CustomerSales{
			CustomerID: id.String(),
			Name:       displayName(customers[id], id),
			Sales:      round2(salesByCustomer[id]),
		})
	}

	groups := make([]GroupSales, 0, len(groupOrder))
	for _, name := range groupOrder {
		groups = append(groups, GroupSales{Name: name, Sales: round2(groupTotals[name])})
	}

	total := len(customerOrder)
	return CustomerAnalytics{
		TotalCustomers:     total,
		NewCustomers:       newCount,
		ReturningCustomers: total - newCount,
		CustomerCount:      total,
		CustomerGroups:     groups,
		CustomerSales:      sales,
		CurrencyCode:       conv.ReportingCurrency(),
	}
}

func displayName(c Customer, id uuid.UUID) string {
	switch {
	case c.FirstName != "" && c.LastName != "":
		return c.FirstName + " " + c.LastName
	case c.FirstName != "":
		return c.FirstName
	case c.Email != "":
		return c.Email
	default:
		return id.String()
	}
}
