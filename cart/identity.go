package cart

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Product is a loosely-shaped record as it arrives from the catalog feed,
// the static fallback list, or an ad hoc admin entry. The three identities
// below (cart key, product id, stock key) are resolved independently
// because those sources do not share a common id space.
type Product map[string]any

// cartKeyFields is the merge identity priority: an explicit cart id wins,
// then catalog ids, then structural fallbacks.
var cartKeyFields = []string{"cartId", "id", "slug", "sku", "name"}

// productIDFields resolve the numeric reference to the backing catalog
// record. Absence is allowed: an ad hoc line has no catalog linkage.
var productIDFields = []string{"productId", "databaseId", "dbId"}

var stockValueFields = []string{"stock", "availableStock", "inventory", "quantityAvailable"}

// CartKey derives the identity used to merge duplicate adds. It never
// fails: when no identity field is usable a unique synthetic token is
// generated, so two distinct ad hoc items never collapse into one line.
func CartKey(p Product) string {
	if p == nil {
		return syntheticKey()
	}
	for _, field := range cartKeyFields {
		if v, ok := p[field]; ok {
			if s := stringifyKey(v); s != "" {
				return s
			}
		}
	}
	return syntheticKey()
}

// ProductID returns the numeric catalog reference, or nil when the record
// carries none.
func ProductID(p Product) *float64 {
	if p == nil {
		return nil
	}
	for _, field := range productIDFields {
		if v, ok := p[field]; ok {
			if n, ok := numeric(v); ok {
				return &n
			}
		}
	}
	return nil
}

// StockKey derives the identity reservations aggregate under. Priority:
// explicit stock key, the caller-resolved product id, then the same
// structural fields the catalog exposes, then the caller's fallback. The
// fallback is normally the cart key, so purely-manual lines still
// aggregate consistently with themselves.
func StockKey(p Product, explicitProductID, fallback string) string {
	candidates := make([]string, 0, len(productIDFields)+7)
	if p != nil {
		candidates = append(candidates, stringifyKey(p["stockKey"]))
	} else {
		candidates = append(candidates, "")
	}
	candidates = append(candidates, explicitProductID)
	if p != nil {
		for _, field := range []string{"productId", "id", "databaseId", "dbId", "sku", "slug", "name"} {
			candidates = append(candidates, stringifyKey(p[field]))
		}
	}
	candidates = append(candidates, fallback)

	for _, c := range candidates {
		if v := strings.TrimSpace(c); v != "" {
			return v
		}
	}
	return ""
}

// StockCeiling reads the declared stock off a product record, trying the
// field spellings the two catalog shapes use. Negative values clamp to
// zero; nil means the record declares no stock at all.
func StockCeiling(p Product) *float64 {
	if p == nil {
		return nil
	}
	for _, field := range stockValueFields {
		if v, ok := p[field]; ok {
			if n, ok := numeric(v); ok {
				n = math.Max(0, n)
				return &n
			}
		}
	}
	return nil
}

func syntheticKey() string {
	return fmt.Sprintf("cart-item-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// stringifyKey renders an identity candidate as a key string. Numbers keep
// their canonical form ("101", not "101.000000") so a key resolved from a
// feed record matches the same key resolved from a persisted line.
func stringifyKey(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return ""
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return stringifyKey(float64(x))
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	default:
		return ""
	}
}

// numeric coerces a field value to a finite float64. Empty and
// non-numeric strings are rejected rather than coerced to zero.
func numeric(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, false
		}
		return x, true
	case float32:
		return numeric(float64(x))
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint64:
		return float64(x), true
	case json.Number:
		n, err := x.Float64()
		if err != nil {
			return 0, false
		}
		return numeric(n)
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, false
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return numeric(n)
	default:
		return 0, false
	}
}

func stringField(p Product, keys ...string) (string, bool) {
	for _, k := range keys {
		if v, ok := p[k]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s, true
			}
		}
	}
	return "", false
}
