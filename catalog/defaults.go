// Package catalog feeds product records to storefront views: the
// authoritative list from the API when reachable, a static fallback when
// not, plus the availability math that subtracts cart reservations from
// declared stock.
package catalog

import "github.com/kacper-olenkiewicz/SneakerHub/cart"

// DefaultProducts returns the static fallback catalog shown when the
// product feed is unreachable. Ids live in a different space than the
// database rows; stock-key resolution bridges the two shapes.
func DefaultProducts() []cart.Product {
	return []cart.Product{
		{
			"id": 101, "name": "Air Max Pulse", "price": 149.99,
			"category": "sneakers", "image": "/sneakers/1.jpg",
			"description": "Iconic style meets modern comfort.", "stock": 24,
		},
		{
			"id": 102, "name": "Jordan Retro High", "price": 199.99,
			"category": "sneakers", "image": "/sneakers/2.jpg",
			"description": "Legendary courtside energy for every outfit.", "stock": 18,
		},
		{
			"id": 103, "name": "Dunk Low Retro", "price": 119.99,
			"category": "sneakers", "image": "/sneakers/3.jpg",
			"description": "Classic hoops DNA with modern comfort.", "stock": 32,
		},
		{
			"id": 104, "name": "Urban Street", "price": 129.99,
			"category": "sneakers", "image": "/sneakers/4.jpg",
			"description": "Everyday essential built for city miles.", "stock": 15,
		},
		{
			"id": 201, "name": "Winter Trekker X", "price": 189.99,
			"category": "winter", "image": "/winter/1.jpg",
			"description": "Waterproof insulation for deep snow days.", "stock": 20,
		},
		{
			"id": 202, "name": "Arctic Boot Pro", "price": 229.99,
			"category": "winter", "image": "/winter/2.jpg",
			"description": "Rugged traction with alpine warmth.", "stock": 12,
		},
		{
			"id": 203, "name": "Snow Runner 2025", "price": 159.99,
			"category": "winter", "image": "/winter/3.jpg",
			"description": "Lightweight runner engineered for icy pavement.", "stock": 28,
		},
		{
			"id": 204, "name": "Glacier Hike", "price": 209.99,
			"category": "winter", "image": "/winter/4.jpg",
			"description": "Summit-ready support with low-bulk insulation.", "stock": 10,
		},
	}
}
