package analytics

import (
	"sort"

	"github.com/google/uuid"
)

const topVariants = 10

// AggregateProducts ranks variants by quantity sold across the window's
// orders and joins low inventory levels through their SKU to the
// variant catalog. Levels whose SKU cannot be resolved are dropped.
func AggregateProducts(orders []Order, levels []InventoryLevel, items []InventoryItem, variants []ProductVariant, threshold int) ProductAnalytics {
	quantities := make(map[uuid.UUID]int)
	labels := make(map[uuid.UUID]string)
	var variantOrder []uuid.UUID

	for _, order := range orders {
		for _, item := range order.Items {
			if _, seen := quantities[item.VariantID]; !seen {
				variantOrder = append(variantOrder, item.VariantID)
				labels[item.VariantID] = item.ProductTitle + " " + item.VariantTitle
			}
			quantities[item.VariantID] += item.Quantity
		}
	}

	sold := make([]VariantQuantity, 0, len(variantOrder))
	for _, id := range variantOrder {
		sold = append(sold, VariantQuantity{
			VariantID: id.String(),
			Name:      labels[id],
			Quantity:  quantities[id],
		})
	}
	sort.SliceStable(sold, func(i, j int) bool { return sold[i].Quantity > sold[j].Quantity })
	if len(sold) > topVariants {
		sold = sold[:topVariants]
	}

	skuByItem := make(map[uuid.UUID]string, len(items))
	for _, item := range items {
		skuByItem[item.ID] = item.SKU
	}
	variantBySKU := make(map[string]ProductVariant, len(variants))
	for _, v := range variants {
		variantBySKU[v.SKU] = v
	}

	lowStock := make([]LowStockVariant, 0)
	for _, level := range levels {
		if level.StockedQuantity > threshold {
			continue
		}
		sku, ok := skuByItem[level.InventoryItemID]
		if !ok {
			continue
		}
		variant, ok := variantBySKU[sku]
		if !ok {
			continue
		}
		lowStock = append(lowStock, LowStockVariant{
			SKU:               sku,
			VariantName:       variant.Title,
			VariantID:         variant.ID.String(),
			ProductID:         variant.ProductID.String(),
			InventoryQuantity: level.StockedQuantity,
		})
	}

	return ProductAnalytics{
		LowStockVariants:    lowStock,
		VariantQuantitySold: sold,
	}
}
