package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kacper-olenkiewicz/SneakerHub/cart"
)

func TestFeed_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"name":"DB Shoe","price":99.5,"stock":4},{"id":101,"name":"Air Max Pulse","price":149.99,"stock":24}]`))
	}))
	defer server.Close()

	result := NewFeed(server.URL).Fetch(context.Background())
	assert.False(t, result.Fallback)
	require.Len(t, result.Products, 2)
	assert.Equal(t, "DB Shoe", result.Products[0]["name"])
}

func TestFeed_FallbackOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	result := NewFeed(server.URL).Fetch(context.Background())
	assert.True(t, result.Fallback)
	assert.Len(t, result.Products, 8)
}

func TestFeed_FallbackOnTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listening anymore

	result := NewFeed(server.URL).Fetch(context.Background())
	assert.True(t, result.Fallback)
	assert.Len(t, result.Products, 8)
}

func TestFeed_FallbackOnBadBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"a list"}`))
	}))
	defer server.Close()

	result := NewFeed(server.URL).Fetch(context.Background())
	assert.True(t, result.Fallback)
}

func TestOrderClient_SubmitOrder(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/orders", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":12}`))
	}))
	defer server.Close()

	client := &OrderClient{BaseURL: server.URL, Token: "tok-1"}
	body, err := client.SubmitOrder(context.Background(), cart.CheckoutRequest{UserID: 4})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":12}`, string(body))
	assert.Equal(t, "Bearer tok-1", gotAuth)
}

func TestOrderClient_SubmitOrder_Failure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"User not found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	client := &OrderClient{BaseURL: server.URL}
	_, err := client.SubmitOrder(context.Background(), cart.CheckoutRequest{UserID: 99})
	assert.Error(t, err)
}
