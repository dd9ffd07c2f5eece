package analytics

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
)

func orderWithItems(items ...LineItem) Order {
	return Order{
		ID:        uuid.New(),
		CreatedAt: date("2024-06-05"),
		Items:     items,
	}
}

func TestAggregateProductsQuantitySold(t *testing.T) {
	shirt := uuid.New()
	mug := uuid.New()
	orders := []Order{
		orderWithItems(
			LineItem{VariantID: shirt, ProductTitle: "Shirt", VariantTitle: "M", Quantity: 2},
			LineItem{VariantID: mug, ProductTitle: "Mug", VariantTitle: "Black", Quantity: 1},
		),
		orderWithItems(
			LineItem{VariantID: mug, ProductTitle: "Mug", VariantTitle: "Black", Quantity: 5},
		),
	}

	got := AggregateProducts(orders, nil, nil, nil, 5)
	if len(got.VariantQuantitySold) != 2 {
		t.Fatalf("expected 2 variants, got %d", len(got.VariantQuantitySold))
	}
	top := got.VariantQuantitySold[0]
	if top.VariantID != mug.String() || top.Quantity != 6 || top.Name != "Mug Black" {
		t.Fatalf("expected Mug Black with 6 sold on top, got %+v", top)
	}
	if got.VariantQuantitySold[1].Quantity != 2 {
		t.Fatalf("expected Shirt M with 2 sold, got %+v", got.VariantQuantitySold[1])
	}
}

func TestAggregateProductsTruncatesToTopTen(t *testing.T) {
	var items []LineItem
	for i := 0; i < 12; i++ {
		items = append(items, LineItem{
			VariantID:    uuid.New(),
			ProductTitle: "Poster",
			VariantTitle: fmt.Sprintf("v%d", i),
			Quantity:     i + 1,
		})
	}

	got := AggregateProducts([]Order{orderWithItems(items...)}, nil, nil, nil, 5)
	if len(got.VariantQuantitySold) != 10 {
		t.Fatalf("expected top 10, got %d", len(got.VariantQuantitySold))
	}
	if got.VariantQuantitySold[0].Quantity != 12 {
		t.Fatalf("expected highest quantity first, got %+v", got.VariantQuantitySold[0])
	}
}

func TestAggregateProductsLowStockJoin(t *testing.T) {
	itemLow := uuid.New()
	itemHigh := uuid.New()
	itemOrphan := uuid.New()
	variant := ProductVariant{ID: uuid.New(), ProductID: uuid.New(), SKU: "SHIRT-M", Title: "Shirt M"}

	levels := []InventoryLevel{
		{InventoryItemID: itemLow, StockedQuantity: 3},
		{InventoryItemID: itemHigh, StockedQuantity: 40},
		{InventoryItemID: itemOrphan, StockedQuantity: 1},
	}
	items := []InventoryItem{
		{ID: itemLow, SKU: "SHIRT-M"},
		{ID: itemHigh, SKU: "SHIRT-L"},
		{ID: itemOrphan, SKU: "GONE-SKU"},
	}

	got := AggregateProducts(nil, levels, items, []ProductVariant{variant}, 5)
	if len(got.LowStockVariants) != 1 {
		t.Fatalf("expected one low-stock variant, got %+v", got.LowStockVariants)
	}
	low := got.LowStockVariants[0]
	if low.SKU != "SHIRT-M" || low.VariantID != variant.ID.String() || low.ProductID != variant.ProductID.String() {
		t.Fatalf("join resolved wrong variant: %+v", low)
	}
	if low.InventoryQuantity != 3 || low.VariantName != "Shirt M" {
		t.Fatalf("unexpected low-stock fields: %+v", low)
	}
}

func TestAggregateProductsThresholdIsInclusive(t *testing.T) {
	item := uuid.New()
	variant := ProductVariant{ID: uuid.New(), ProductID: uuid.New(), SKU: "MUG-B", Title: "Mug Black"}

	got := AggregateProducts(nil,
		[]InventoryLevel{{InventoryItemID: item, StockedQuantity: 5}},
		[]InventoryItem{{ID: item, SKU: "MUG-B"}},
		[]ProductVariant{variant}, 5)
	if len(got.LowStockVariants) != 1 {
		t.Fatalf("expected stock equal to threshold to qualify, got %+v", got.LowStockVariants)
	}
}

func TestAggregateProductsEmptyInputs(t *testing.T) {
	got := AggregateProducts(nil, nil, nil, nil, 5)
	if got.LowStockVariants == nil || got.VariantQuantitySold == nil {
		t.Fatal("expected empty slices, not nil")
	}
	if len(got.LowStockVariants) != 0 || len(got.VariantQuantitySold) != 0 {
		t.Fatalf("expected empty outputs, got %+v", got)
	}
}
