package cart

import (
	"context"
	"errors"
)

var (
	ErrNotAuthenticated = errors.New("cart: no authenticated user")
	ErrEmptyCart        = errors.New("cart: nothing to check out")
)

// CheckoutItem is one line of the order submission payload. ProductID is
// omitted for ad hoc lines with no catalog backing; the order endpoint
// stores those as free-text history rows.
type CheckoutItem struct {
	ProductID *float64 `json:"productId,omitempty"`
	Name      string   `json:"name"`
	Price     float64  `json:"price"`
	Quantity  int      `json:"quantity"`
	Image     *string  `json:"image,omitempty"`
}

type CheckoutRequest struct {
	UserID uint           `json:"userId"`
	Items  []CheckoutItem `json:"items"`
}

// OrderSubmitter posts a checkout payload to the order endpoint and
// returns the created order body.
type OrderSubmitter interface {
	SubmitOrder(ctx context.Context, req CheckoutRequest) ([]byte, error)
}

// Checkout submits the current cart as an order for the signed-in user.
// The cart is cleared only after the submitter confirms success; any
// failure leaves the persisted snapshot untouched so the user can retry.
func (s *Store) Checkout(ctx context.Context, submitter OrderSubmitter) ([]byte, error) {
	if s.session == nil {
		return nil, ErrNotAuthenticated
	}
	user := s.session.CurrentUser()
	if user == nil {
		return nil, ErrNotAuthenticated
	}

	items := s.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	req := CheckoutRequest{UserID: user.ID, Items: make([]CheckoutItem, 0, len(items))}
	for _, line := range items {
		qty := line.Quantity
		if qty < 1 {
			qty = 1
		}
		req.Items = append(req.Items, CheckoutItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Quantity:  qty,
			Image:     line.Image,
		})
	}

	body, err := submitter.SubmitOrder(ctx, req)
	if err != nil {
		return nil, err
	}

	s.Clear()
	return body, nil
}
