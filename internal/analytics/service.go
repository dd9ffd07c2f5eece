package analytics

import (
	"context"
	stdErrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mercura/storefront-analytics/internal/analytics/daterange"
	"github.com/mercura/storefront-analytics/internal/analytics/money"
	"github.com/mercura/storefront-analytics/pkg/enums"
	"github.com/mercura/storefront-analytics/pkg/errors"
	"github.com/mercura/storefront-analytics/pkg/logger"
)

// test seam
var timeNowUTC = func() time.Time { return time.Now().UTC() }

// OrderStore lists orders for aggregation.
type OrderStore interface {
	ListOrdersInRange(ctx context.Context, start, end time.Time, excludedStatuses []enums.OrderStatus) ([]Order, error)
	ListOrdersByCustomer(ctx context.Context, customerIDs []uuid.UUID) ([]Order, error)
}

// ProductStore lists inventory and catalog records for the product rollup.
type ProductStore interface {
	ListLowStockLevels(ctx context.Context, maxStocked int) ([]InventoryLevel, error)
	ListInventoryItems(ctx context.Context, ids []uuid.UUID) ([]InventoryItem, error)
	ListVariantsBySKU(ctx context.Context, skus []string) ([]ProductVariant, error)
}

// CustomerStore resolves customer identities and group memberships.
type CustomerStore interface {
	ListCustomers(ctx context.Context, ids []uuid.UUID) ([]Customer, error)
}

// RateSource supplies the exchange-rate table for a base currency.
type RateSource interface {
	Rates(ctx context.Context, baseCurrency string) (money.RateTable, error)
}

// Settings is the plugin configuration the aggregators depend on.
type Settings struct {
	ReportingCurrency string
	LowStockThreshold int
}

// Per-endpoint status filters differ on purpose: the orders report
// drops canceled orders, the customer and product reports keep them.
var (
	orderReportExcluded    = []enums.OrderStatus{enums.OrderStatusDraft, enums.OrderStatusCanceled}
	customerReportExcluded = []enums.OrderStatus{enums.OrderStatusDraft}
)

// Service wires the aggregators to the data layer and the rate source.
type Service struct {
	orders    OrderStore
	products  ProductStore
	customers CustomerStore
	rates     RateSource
	settings  Settings
	logg      *logger.Logger
}

func NewService(orders OrderStore, products ProductStore, customers CustomerStore, rates RateSource, settings Settings, logg *logger.Logger) *Service {
	return &Service{
		orders:    orders,
		products:  products,
		customers: customers,
		rates:     rates,
		settings:  settings,
		logg:      logg,
	}
}

// OrdersReport resolves the requested range and aggregates the current
// and previous windows into the orders payload.
func (s *Service) OrdersReport(ctx context.Context, req daterange.Request) (OrderAnalytics, error) {
	res, err := s.resolveRange(req)
	if err != nil {
		return OrderAnalytics{}, err
	}

	current, err := s.listWindow(ctx, res.Current, orderReportExcluded)
	if err != nil {
		return OrderAnalytics{}, err
	}
	previous, err := s.listWindow(ctx, res.Previous, orderReportExcluded)
	if err != nil {
		return OrderAnalytics{}, err
	}

	conv, err := s.converter(ctx)
	if err != nil {
		return OrderAnalytics{}, err
	}
	return AggregateOrders(current, previous, res.Current, res.Granularity, conv)
}

// ProductsReport aggregates quantity sold and low-stock variants for
// the requested range.
func (s *Service) ProductsReport(ctx context.Context, req daterange.Request) (ProductAnalytics, error) {
	res, err := s.resolveRange(req)
	if err != nil {
		return ProductAnalytics{}, err
	}

	orders, err := s.listWindow(ctx, res.Current, customerReportExcluded)
	if err != nil {
		return ProductAnalytics{}, err
	}

	levels, err := s.products.ListLowStockLevels(ctx, s.settings.LowStockThreshold)
	if err != nil {
		return ProductAnalytics{}, errors.Wrap(errors.CodeDependency, err, "listing inventory levels")
	}

	itemIDs := make([]uuid.UUID, 0, len(levels))
	for _, level := range levels {
		itemIDs = append(itemIDs, level.InventoryItemID)
	}
	items, err := s.products.ListInventoryItems(ctx, itemIDs)
	if err != nil {
		return ProductAnalytics{}, errors.Wrap(errors.CodeDependency, err, "listing inventory items")
	}

	skus := make([]string, 0, len(items))
	for _, item := range items {
		skus = append(skus, item.SKU)
	}
	variants, err := s.products.ListVariantsBySKU(ctx, skus)
	if err != nil {
		return ProductAnalytics{}, errors.Wrap(errors.CodeDependency, err, "listing product variants")
	}

	return AggregateProducts(orders, levels, items, variants, s.settings.LowStockThreshold), nil
}

// CustomersReport classifies the window's customers as new or returning
// against their full order history and sums their normalized sales.
func (s *Service) CustomersReport(ctx context.Context, req daterange.Request) (CustomerAnalytics, error) {
	res, err := s.resolveRange(req)
	if err != nil {
		return CustomerAnalytics{}, err
	}

	orders, err := s.listWindow(ctx, res.Current, customerReportExcluded)
	if err != nil {
		return CustomerAnalytics{}, err
	}

	ids := distinctCustomerIDs(orders)
	history, err := s.orders.ListOrdersByCustomer(ctx, ids)
	if err != nil {
		return CustomerAnalytics{}, errors.Wrap(errors.CodeDependency, err, "listing customer order history")
	}
	firstOrderAt := make(map[uuid.UUID]time.Time, len(ids))
	for _, order := range history {
		if order.CustomerID == nil {
			continue
		}
		id := *order.CustomerID
		if first, ok := firstOrderAt[id]; !ok || order.CreatedAt.Before(first) {
			firstOrderAt[id] = order.CreatedAt
		}
	}

	customerList, err := s.customers.ListCustomers(ctx, ids)
	if err != nil {
		return CustomerAnalytics{}, errors.Wrap(errors.CodeDependency, err, "listing customers")
	}
	customers := make(map[uuid.UUID]Customer, len(customerList))
	for _, c := range customerList {
		customers[c.ID] = c
	}

	conv, err := s.converter(ctx)
	if err != nil {
		return CustomerAnalytics{}, err
	}
	return AggregateCustomers(orders, customers, firstOrderAt, res.Current.Start, conv), nil
}

func (s *Service) resolveRange(req daterange.Request) (daterange.Resolution, error) {
	res, err := daterange.Resolve(req, timeNowUTC())
	switch {
	case err == nil:
		return res, nil
	case stdErrors.Is(err, daterange.ErrInvalidPreset), stdErrors.Is(err, daterange.ErrMissingBound):
		return daterange.Resolution{}, errors.Wrap(errors.CodeValidation, err, err.Error())
	case stdErrors.Is(err, daterange.ErrInvalidDate):
		// unparseable dates surface as server errors, matching the
		// dashboard's historical behavior
		return daterange.Resolution{}, errors.Wrap(errors.CodeInternal, err, err.Error())
	default:
		return daterange.Resolution{}, errors.Wrap(errors.CodeInternal, err, "resolving date range")
	}
}

func (s *Service) listWindow(ctx context.Context, rng daterange.Range, excluded []enums.OrderStatus) ([]Order, error) {
	// windows are inclusive calendar dates; the query upper bound is the
	// start of the following day
	end := rng.End.AddDate(0, 0, 1)
	orders, err := s.orders.ListOrdersInRange(ctx, rng.Start, end, excluded)
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "listing orders")
	}
	return orders, nil
}

func (s *Service) converter(ctx context.Context) (*money.Converter, error) {
	table, err := s.rates.Rates(ctx, s.settings.ReportingCurrency)
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "fetching exchange rates")
	}
	conv := money.NewConverter(s.settings.ReportingCurrency, table)
	conv.OnMissingRate = func(code string) {
		if s.logg != nil {
			s.logg.Warn(ctx, fmt.Sprintf("no exchange rate for %s, amount left unconverted", code))
		}
	}
	return conv, nil
}

func distinctCustomerIDs(orders []Order) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{})
	ids := make([]uuid.UUID, 0)
	for _, order := range orders {
		if order.CustomerID == nil {
			continue
		}
		if _, ok := seen[*order.CustomerID]; ok {
			continue
		}
		seen[*order.CustomerID] = struct{}{}
		ids = append(ids, *order.CustomerID)
	}
	return ids
}
