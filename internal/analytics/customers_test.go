package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func customerOrder(customerID uuid.UUID, totalCents int64, createdAt string) Order {
	return Order{
		ID:           uuid.New(),
		CurrencyCode: "EUR",
		TotalCents:   totalCents,
		CustomerID:   &customerID,
		CreatedAt:    date(createdAt),
	}
}

func TestAggregateCustomersNewVsReturning(t *testing.T) {
	windowStart := date("2024-06-01")
	fresh := uuid.New()
	repeat := uuid.New()

	orders := []Order{
		customerOrder(fresh, 1000, "2024-06-02"),
		customerOrder(repeat, 2000, "2024-06-03"),
	}
	firstOrderAt := map[uuid.UUID]time.Time{
		fresh:  date("2024-06-02"),
		repeat: date("2024-05-10"),
	}

	got := AggregateCustomers(orders, nil, firstOrderAt, windowStart, eurConverter())
	if got.TotalCustomers != 2 || got.CustomerCount != 2 {
		t.Fatalf("expected 2 customers, got %+v", got)
	}
	if got.NewCustomers != 1 || got.ReturningCustomers != 1 {
		t.Fatalf("expected 1 new / 1 returning, got %d / %d", got.NewCustomers, got.ReturningCustomers)
	}
}

func TestAggregateCustomersRepeatBuyerBeforeWindowIsReturning(t *testing.T) {
	windowStart := date("2024-06-01")
	buyer := uuid.New()

	orders := []Order{customerOrder(buyer, 1200, "2024-06-05")}
	firstOrderAt := map[uuid.UUID]time.Time{buyer: date("2024-04-01")}

	got := AggregateCustomers(orders, nil, firstOrderAt, windowStart, eurConverter())
	if got.NewCustomers != 0 || got.ReturningCustomers != 1 {
		t.Fatalf("buyer with pre-window history must be returning, got %+v", got)
	}
}

func TestAggregateCustomersSalesAreAdditive(t *testing.T) {
	windowStart := date("2024-06-01")
	buyer := uuid.New()

	orders := []Order{
		customerOrder(buyer, 1200, "2024-06-02"),
		customerOrder(buyer, 1200, "2024-06-04"),
	}
	firstOrderAt := map[uuid.UUID]time.Time{buyer: date("2024-06-02")}

	got := AggregateCustomers(orders, nil, firstOrderAt, windowStart, eurConverter())
	if len(got.CustomerSales) != 1 {
		t.Fatalf("expected one customer_sales entry, got %+v", got.CustomerSales)
	}
	if got.CustomerSales[0].Sales != 2400 {
		t.Fatalf("expected additive sales 2400, got %v", got.CustomerSales[0].Sales)
	}
}

func TestAggregateCustomersSalesKeepFirstAppearanceOrder(t *testing.T) {
	windowStart := date("2024-06-01")
	first := uuid.New()
	second := uuid.New()

	// the later customer has the larger total; order must still follow
	// first appearance, not sales value
	orders := []Order{
		customerOrder(first, 100, "2024-06-02"),
		customerOrder(second, 9000, "2024-06-03"),
		customerOrder(first, 100, "2024-06-04"),
	}
	firstOrderAt := map[uuid.UUID]time.Time{
		first:  date("2024-06-02"),
		second: date("2024-06-03"),
	}

	got := AggregateCustomers(orders, nil, firstOrderAt, windowStart, eurConverter())
	if len(got.CustomerSales) != 2 {
		t.Fatalf("expected two entries, got %+v", got.CustomerSales)
	}
	if got.CustomerSales[0].CustomerID != first.String() {
		t.Fatalf("expected first-appearance ordering, got %+v", got.CustomerSales)
	}
}

func TestAggregateCustomersGroupSales(t *testing.T) {
	windowStart := date("2024-06-01")
	member := uuid.New()
	loner := uuid.New()
	customers := map[uuid.UUID]Customer{
		member: {ID: member, FirstName: "Ada", LastName: "Lovelace", Groups: []string{"vip", "wholesale"}},
		loner:  {ID: loner, Email: "b@example.com"},
	}

	orders := []Order{
		customerOrder(member, 1000, "2024-06-02"),
		customerOrder(loner, 500, "2024-06-03"),
	}
	firstOrderAt := map[uuid.UUID]time.Time{
		member: date("2024-06-02"),
		loner:  date("2024-06-03"),
	}

	got := AggregateCustomers(orders, customers, firstOrderAt, windowStart, eurConverter())
	if len(got.CustomerGroups) != 2 {
		t.Fatalf("expected two groups, got %+v", got.CustomerGroups)
	}
	// full amount counted in every group the customer belongs to
	for _, group := range got.CustomerGroups {
		if group.Sales != 1000 {
			t.Fatalf("expected 1000 in group %s, got %v", group.Name, group.Sales)
		}
	}
	if got.CustomerSales[0].Name != "Ada Lovelace" {
		t.Fatalf("expected full name, got %q", got.CustomerSales[0].Name)
	}
	if got.CustomerSales[1].Name != "b@example.com" {
		t.Fatalf("expected email fallback, got %q", got.CustomerSales[1].Name)
	}
}

func TestAggregateCustomersSkipsAnonymousOrders(t *testing.T) {
	orders := []Order{{ID: uuid.New(), CurrencyCode: "EUR", TotalCents: 700, CreatedAt: date("2024-06-02")}}

	got := AggregateCustomers(orders, nil, nil, date("2024-06-01"), eurConverter())
	if got.TotalCustomers != 0 || len(got.CustomerSales) != 0 {
		t.Fatalf("anonymous orders must not produce customers, got %+v", got)
	}
	if got.CustomerSales == nil || got.CustomerGroups == nil {
		t.Fatal("expected empty slices, not nil")
	}
}
