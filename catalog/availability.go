package catalog

import "github.com/kacper-olenkiewicz/SneakerHub/cart"

// Available computes how many units of a product remain purchasable once
// the cart's reservations are subtracted from its declared stock. The
// second return is false when the record declares no stock at all, in
// which case the product is unconstrained. Callers recompute on every
// catalog refresh and cart change notification.
func Available(p cart.Product, reservations map[string]int) (int, bool) {
	declared := cart.StockCeiling(p)
	if declared == nil {
		return 0, false
	}
	reserved := reservations[cart.ProductStockKey(p)]
	available := int(*declared) - reserved
	if available < 0 {
		available = 0
	}
	return available, true
}

// Purchasable reports whether at least one more unit can be added to the
// cart. Products without declared stock are always purchasable client-side;
// the order endpoint stays the final authority.
func Purchasable(p cart.Product, reservations map[string]int) bool {
	available, declared := Available(p, reservations)
	if !declared {
		return true
	}
	return available > 0
}
