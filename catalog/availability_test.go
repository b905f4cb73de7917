package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kacper-olenkiewicz/SneakerHub/cart"
)

func TestAvailable(t *testing.T) {
	p := cart.Product{"id": 7, "name": "Air Max Pulse", "stock": 5}

	available, declared := Available(p, map[string]int{"7": 3})
	require.True(t, declared)
	assert.Equal(t, 2, available)

	// Over-reservation floors at zero rather than going negative.
	available, _ = Available(p, map[string]int{"7": 9})
	assert.Equal(t, 0, available)

	available, _ = Available(p, nil)
	assert.Equal(t, 5, available)
}

func TestAvailable_Undeclared(t *testing.T) {
	p := cart.Product{"name": "Hand-entered"}
	_, declared := Available(p, nil)
	assert.False(t, declared)
	assert.True(t, Purchasable(p, map[string]int{"Hand-entered": 100}))
}

func TestPurchasable(t *testing.T) {
	p := cart.Product{"id": 7, "stock": 2}
	assert.True(t, Purchasable(p, map[string]int{"7": 1}))
	assert.False(t, Purchasable(p, map[string]int{"7": 2}))
}

func TestAvailability_AgreesWithCartReservations(t *testing.T) {
	store := cart.NewStore(cart.NewMemoryStorage(), cart.SessionFunc(func() *cart.SessionUser {
		return &cart.SessionUser{ID: 1}
	}))

	p := cart.Product{"id": 7, "name": "Air Max Pulse", "stock": 2}
	require.True(t, store.AddProduct(p).Success)
	require.True(t, store.AddProduct(p).Success)

	// The catalog view and the cart agree: everything is reserved.
	available, declared := Available(p, store.Reservations())
	require.True(t, declared)
	assert.Equal(t, 0, available)
	assert.False(t, Purchasable(p, store.Reservations()))
}
