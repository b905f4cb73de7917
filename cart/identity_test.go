package cart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartKey_Priority(t *testing.T) {
	tests := []struct {
		name    string
		product Product
		want    string
	}{
		{"explicit cart id wins", Product{"cartId": "c-1", "id": 7, "name": "Air Max"}, "c-1"},
		{"numeric id over slug", Product{"id": 101.0, "slug": "air-max"}, "101"},
		{"slug over sku", Product{"slug": "air-max", "sku": "AM-1"}, "air-max"},
		{"sku over name", Product{"sku": "AM-1", "name": "Air Max"}, "AM-1"},
		{"name as last field", Product{"name": "Air Max"}, "Air Max"},
		{"empty values skipped", Product{"cartId": "", "id": nil, "name": "Air Max"}, "Air Max"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CartKey(tt.product))
		})
	}
}

func TestCartKey_SyntheticFallback(t *testing.T) {
	a := CartKey(Product{})
	b := CartKey(Product{})
	require.True(t, strings.HasPrefix(a, "cart-item-"))
	require.True(t, strings.HasPrefix(b, "cart-item-"))
	// Two identity-less records never share a key, so they never merge.
	assert.NotEqual(t, a, b)

	assert.True(t, strings.HasPrefix(CartKey(nil), "cart-item-"))
}

func TestProductID(t *testing.T) {
	seven := 7.0

	tests := []struct {
		name    string
		product Product
		want    *float64
	}{
		{"productId", Product{"productId": 7.0}, &seven},
		{"string number coerced", Product{"productId": "7"}, &seven},
		{"databaseId fallback", Product{"databaseId": 7}, &seven},
		{"dbId fallback", Product{"dbId": 7.0}, &seven},
		{"id field is not a product id", Product{"id": 7}, nil},
		{"non-numeric yields none", Product{"productId": "abc"}, nil},
		{"empty string yields none", Product{"productId": ""}, nil},
		{"nil product", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProductID(tt.product)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestStockKey_Priority(t *testing.T) {
	tests := []struct {
		name     string
		product  Product
		explicit string
		fallback string
		want     string
	}{
		{"explicit stockKey wins", Product{"stockKey": "sk-1", "id": 7}, "9", "fb", "sk-1"},
		{"explicit product id next", Product{"id": 7}, "9", "fb", "9"},
		{"productId before id", Product{"productId": 7, "id": 8}, "", "fb", "7"},
		{"sku before slug", Product{"sku": "AM-1", "slug": "air"}, "", "fb", "AM-1"},
		{"name before fallback", Product{"name": "Air Max"}, "", "fb", "Air Max"},
		{"fallback when bare", Product{}, "", "fb", "fb"},
		{"whitespace candidates skipped", Product{"stockKey": "   "}, "", "fb", "fb"},
		{"nil product uses fallback", nil, "", "fb", "fb"},
		{"nothing at all", nil, "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StockKey(tt.product, tt.explicit, tt.fallback))
		})
	}
}

func TestStockCeiling(t *testing.T) {
	ceiling := func(p Product) *float64 { return StockCeiling(p) }

	require.Nil(t, ceiling(Product{"name": "no stock"}))
	require.Nil(t, ceiling(nil))

	got := ceiling(Product{"stock": 24.0})
	require.NotNil(t, got)
	assert.Equal(t, 24.0, *got)

	got = ceiling(Product{"stock": "24"})
	require.NotNil(t, got)
	assert.Equal(t, 24.0, *got)

	// Negative declared stock clamps to zero rather than going unbounded.
	got = ceiling(Product{"stock": -5})
	require.NotNil(t, got)
	assert.Equal(t, 0.0, *got)

	// An empty field value is not "stock zero"; later spellings still count.
	got = ceiling(Product{"stock": "", "inventory": 3})
	require.NotNil(t, got)
	assert.Equal(t, 3.0, *got)

	got = ceiling(Product{"availableStock": 12})
	require.NotNil(t, got)
	assert.Equal(t, 12.0, *got)

	got = ceiling(Product{"quantityAvailable": 2})
	require.NotNil(t, got)
	assert.Equal(t, 2.0, *got)
}

func TestProductStockKey_DegradesToCartKey(t *testing.T) {
	// A purely manual line has no catalog identity but still needs a
	// stable key to aggregate against itself.
	key := ProductStockKey(Product{"name": "Hand-entered shoe"})
	assert.Equal(t, "Hand-entered shoe", key)

	key = ProductStockKey(Product{"productId": 7, "name": "Air Max"})
	assert.Equal(t, "7", key)
}
