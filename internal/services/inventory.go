package services

import "storefront-api/internal/domain"

// AdjustInventory applies one order line to a product's stock fields.
// Stock never goes negative. When the product tracks colour variants the
// aggregate stock is recomputed as the sum of variant stocks; it is never
// set independently. The derived availability status is refreshed last.
func AdjustInventory(p *domain.Product, item domain.OrderItem) {
	if item.Color != "" && len(p.Colors) > 0 {
		for i := range p.Colors {
			if p.Colors[i].Color == item.Color {
				p.Colors[i].Stock = clampStock(p.Colors[i].Stock - item.Quantity)
				break
			}
		}
		var sum int64
		for _, c := range p.Colors {
			sum += c.Stock
		}
		p.Stock = sum
	} else {
		p.Stock = clampStock(p.Stock - item.Quantity)
	}

	if p.Stock > 0 {
		p.Status = domain.ProductInStock
	} else {
		p.Status = domain.ProductOutOfStock
	}
}

func clampStock(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}
