package analytics

import (
	"context"

	"github.com/mercura/storefront-analytics/internal/analytics"
	"github.com/mercura/storefront-analytics/internal/analytics/daterange"
)

type stubService struct {
	ordersResult    analytics.OrderAnalytics
	productsResult  analytics.ProductAnalytics
	customersResult analytics.CustomerAnalytics
	err             error

	calls   int
	lastReq daterange.Request
}

func (s *stubService) OrdersReport(ctx context.Context, req daterange.Request) (analytics.OrderAnalytics, error) {
	s.calls++
	s.lastReq = req
	return s.ordersResult, s.err
}

func (s *stubService) ProductsReport(ctx context.Context, req daterange.Request) (analytics.ProductAnalytics, error) {
	s.calls++
	s.lastReq = req
	return s.productsResult, s.err
}

func (s *stubService) CustomersReport(ctx context.Context, req daterange.Request) (analytics.CustomerAnalytics, error) {
	s.calls++
	s.lastReq = req
	return s.customersResult, s.err
}

func (s *stubService) called() bool {
	return s.calls > 0
}
