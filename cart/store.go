// Package cart is the client-local shopping cart core: an ordered list of
// lines persisted through an injectable key-value port, with merge-by-key
// adds, advisory stock ceilings, reservation aggregation and change
// notification. Stock ceilings are client-local and optimistic; the order
// endpoint remains the write-time authority.
package cart

import (
	"encoding/json"
	"math"
	"sync"
)

const storageKey = "cart"

// Storage is the persistence substrate: string key-value storage scoped to
// one browser profile (or one process, for the in-memory port). The cart
// assumes nothing beyond single-document get/set/remove.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Remove(key string)
}

// SessionUser is the "current user" exposed by the session collaborator.
type SessionUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// SessionProvider reports the current user, or nil when nobody is signed
// in. Cart mutation treats absence as a hard precondition failure.
type SessionProvider interface {
	CurrentUser() *SessionUser
}

// SessionFunc adapts a plain function to SessionProvider.
type SessionFunc func() *SessionUser

func (f SessionFunc) CurrentUser() *SessionUser { return f() }

// Line is one persisted cart row. Field names match the stored snapshot of
// the storefront frontend, so snapshots round-trip losslessly.
type Line struct {
	ID          string   `json:"id"`
	ProductID   *float64 `json:"productId"`
	StockKey    string   `json:"stockKey"`
	Stock       *float64 `json:"stock"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Image       *string  `json:"image"`
	Description string   `json:"description"`
	Category    *string  `json:"category"`
	Quantity    int      `json:"quantity"`
}

// Reason is the closed set of add failures. Adds never panic and never
// return transport errors; everything is one of these codes.
type Reason string

const (
	ReasonNone             Reason = ""
	ReasonNotReady         Reason = "NOT_READY"
	ReasonNotAuthenticated Reason = "NOT_AUTHENTICATED"
	ReasonInvalidProduct   Reason = "INVALID_PRODUCT"
	ReasonOutOfStock       Reason = "OUT_OF_STOCK"
)

type AddResult struct {
	Success bool   `json:"success"`
	Reason  Reason `json:"reason,omitempty"`
	Cart    []Line `json:"cart,omitempty"`
}

// Store owns the cart list. Every mutation is a single
// read-modify-persist-notify sequence under one mutex, so two adds from
// the same process cannot interleave; other contexts converge through
// ExternalChange.
type Store struct {
	mu      sync.Mutex
	storage Storage
	session SessionProvider

	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int
}

func NewStore(storage Storage, session SessionProvider) *Store {
	return &Store{
		storage: storage,
		session: session,
		subs:    make(map[int]func()),
	}
}

// Subscribe registers a change listener and returns its unsubscribe
// function. Listeners fire after every successful mutation and on
// ExternalChange.
func (s *Store) Subscribe(fn func()) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()
	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// ExternalChange is the cross-context port: call it when the shared
// persistence layer signals that another browsing context touched the
// snapshot, so local listeners re-read.
func (s *Store) ExternalChange() { s.notify() }

func (s *Store) notify() {
	s.subMu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// Items returns the persisted lines in insertion order. Missing or
// corrupt snapshots yield an empty list, never an error: a broken local
// state must not block checkout recovery.
func (s *Store) Items() []Line {
	if s.storage == nil {
		return []Line{}
	}
	raw, ok := s.storage.Get(storageKey)
	if !ok || raw == "" {
		return []Line{}
	}
	var items []Line
	if err := json.Unmarshal([]byte(raw), &items); err != nil || items == nil {
		return []Line{}
	}
	return items
}

func (s *Store) persist(items []Line) {
	data, err := json.Marshal(items)
	if err != nil {
		return
	}
	s.storage.Set(storageKey, string(data))
}

// AddProduct validates preconditions in order, resolves the product's
// identities, then merges into an existing line or inserts a fresh one
// with quantity 1. A known ceiling already met by the existing quantity
// fails with OUT_OF_STOCK; this also rejects fresh inserts of products
// whose declared stock is zero.
func (s *Store) AddProduct(p Product) AddResult {
	if s.storage == nil {
		return AddResult{Reason: ReasonNotReady}
	}
	if s.session == nil || s.session.CurrentUser() == nil {
		return AddResult{Reason: ReasonNotAuthenticated}
	}
	if p == nil {
		return AddResult{Reason: ReasonInvalidProduct}
	}

	s.mu.Lock()

	line := normalize(p)
	items := s.Items()

	existing := -1
	for i := range items {
		if items[i].ID == line.ID {
			existing = i
			break
		}
	}

	existingQty := 0
	if existing >= 0 {
		existingQty = items[existing].Quantity
		if existingQty < 0 {
			existingQty = 0
		}
	}

	// The effective ceiling: the incoming record's declared stock wins;
	// otherwise a merge reuses the line's remembered ceiling.
	limit := line.Stock
	if limit == nil && existing >= 0 {
		limit = items[existing].Stock
	}

	if limit != nil && *limit <= float64(existingQty) {
		s.mu.Unlock()
		return AddResult{Reason: ReasonOutOfStock}
	}

	if existing >= 0 {
		if limit != nil {
			items[existing].Stock = limit
		}
		if items[existing].StockKey == "" {
			items[existing].StockKey = line.StockKey
		}
		items[existing].Quantity = existingQty + 1
	} else {
		line.Quantity = 1
		items = append(items, line)
	}

	s.persist(items)
	s.mu.Unlock()
	s.notify()
	return AddResult{Success: true, Cart: items}
}

// RemoveItemByIndex drops the line at the given position. Out-of-range
// indexes are a silent no-op, not an error.
func (s *Store) RemoveItemByIndex(index int) []Line {
	if s.storage == nil {
		return []Line{}
	}
	s.mu.Lock()
	items := s.Items()
	if index < 0 || index >= len(items) {
		s.mu.Unlock()
		return items
	}
	updated := append(items[:index:index], items[index+1:]...)
	s.persist(updated)
	s.mu.Unlock()
	s.notify()
	return updated
}

// UpdateItemQuantity sets the line's quantity, clamped to at least 1 and,
// when a ceiling is remembered, to at most that ceiling. Absent indexes
// no-op.
func (s *Store) UpdateItemQuantity(index, quantity int) []Line {
	if s.storage == nil {
		return []Line{}
	}
	s.mu.Lock()
	items := s.Items()
	if index < 0 || index >= len(items) {
		s.mu.Unlock()
		return items
	}
	next := quantity
	if next < 1 {
		next = 1
	}
	if limit := items[index].Stock; limit != nil && float64(next) > *limit {
		next = int(*limit)
	}
	items[index].Quantity = next
	s.persist(items)
	s.mu.Unlock()
	s.notify()
	return items
}

// Clear removes the whole snapshot, e.g. on logout or after a confirmed
// checkout.
func (s *Store) Clear() {
	if s.storage == nil {
		return
	}
	s.mu.Lock()
	s.storage.Remove(storageKey)
	s.mu.Unlock()
	s.notify()
}

// Total sums price×quantity over the current lines, rounded to 2 decimal
// places.
func (s *Store) Total() float64 { return Total(s.Items()) }

// Total is the order-independent sum over any line slice. Unparsable
// prices count as 0 and missing quantities as 1, mirroring the line
// defaults.
func Total(items []Line) float64 {
	var sum float64
	for _, item := range items {
		price := item.Price
		if price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
			price = 0
		}
		qty := item.Quantity
		if qty == 0 {
			qty = 1
		}
		sum += price * float64(qty)
	}
	return math.Round(sum*100) / 100
}

// Reservations aggregates quantity per stock key across the current
// lines. Catalog views subtract these from declared stock to show what is
// still purchasable.
func (s *Store) Reservations() map[string]int {
	reservations := make(map[string]int)
	for _, item := range s.Items() {
		key := item.StockKey
		if key == "" {
			explicit := ""
			if item.ProductID != nil {
				explicit = stringifyKey(*item.ProductID)
			}
			key = StockKey(nil, explicit, item.ID)
		}
		if key == "" {
			continue
		}
		qty := item.Quantity
		if qty < 0 {
			qty = 0
		}
		reservations[key] += qty
	}
	return reservations
}

// ProductStockKey resolves the reservation key for a raw product record,
// for views that pre-index availability before anything is in the cart.
func ProductStockKey(p Product) string {
	explicit := ""
	if id := ProductID(p); id != nil {
		explicit = stringifyKey(*id)
	}
	return StockKey(p, explicit, CartKey(p))
}

// normalize projects a loose product record onto a Line (quantity left to
// the caller). Price is parse-or-0 and never negative.
func normalize(p Product) Line {
	cartKey := CartKey(p)
	productID := ProductID(p)
	stock := StockCeiling(p)

	explicit := ""
	if productID != nil {
		explicit = stringifyKey(*productID)
	}
	stockKey := StockKey(p, explicit, cartKey)
	if stockKey == "" {
		stockKey = cartKey
	}

	name, ok := stringField(p, "name")
	if !ok {
		name = "Unknown product"
	}

	price := 0.0
	if n, ok := numeric(p["price"]); ok && n > 0 {
		price = n
	}

	var image *string
	if img, ok := stringField(p, "image", "imageUrl"); ok {
		image = &img
	}

	description, _ := stringField(p, "description")

	var category *string
	if cat, ok := stringField(p, "category"); ok {
		category = &cat
	}

	return Line{
		ID:          cartKey,
		ProductID:   productID,
		StockKey:    stockKey,
		Stock:       stock,
		Name:        name,
		Price:       price,
		Image:       image,
		Description: description,
		Category:    category,
	}
}
