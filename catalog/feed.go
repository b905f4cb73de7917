package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kacper-olenkiewicz/SneakerHub/cart"
)

// Feed fetches the authoritative product list from the storefront API.
// Any failure (transport, non-2xx, undecodable body) degrades to the
// static fallback list so browsing keeps working offline.
type Feed struct {
	BaseURL string
	Client  *http.Client
}

type FeedResult struct {
	Products []cart.Product
	Fallback bool
}

func NewFeed(baseURL string) *Feed {
	return &Feed{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (f *Feed) Fetch(ctx context.Context) FeedResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.BaseURL+"/api/products", nil)
	if err != nil {
		return FeedResult{Products: DefaultProducts(), Fallback: true}
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return FeedResult{Products: DefaultProducts(), Fallback: true}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return FeedResult{Products: DefaultProducts(), Fallback: true}
	}

	var products []cart.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil || products == nil {
		return FeedResult{Products: DefaultProducts(), Fallback: true}
	}
	return FeedResult{Products: products}
}

// OrderClient posts checkout payloads to the order endpoint. It satisfies
// cart.OrderSubmitter; Token, when set, is sent as the bearer credential.
type OrderClient struct {
	BaseURL string
	Token   string
	Client  *http.Client
}

func (o *OrderClient) SubmitOrder(ctx context.Context, checkout cart.CheckoutRequest) ([]byte, error) {
	payload, err := json.Marshal(checkout)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.BaseURL+"/api/orders", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if o.Token != "" {
		req.Header.Set("Authorization", "Bearer "+o.Token)
	}

	client := o.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("catalog: order submission failed with status %d", resp.StatusCode)
	}
	return body, nil
}
