package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

type Order struct {
	ID        uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint        `gorm:"not null;index" json:"userId"`
	User      User        `gorm:"foreignKey:UserID" json:"user"`
	Total     float64     `json:"total"`
	Status    OrderStatus `gorm:"type:VARCHAR(20);default:'PENDING'" json:"status"`
	Items     []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"orderItems"`
	CreatedAt time.Time   `json:"createdAt"`
}

// OrderItem snapshots name, image and price at purchase time so order
// history survives product deletion. ProductID stays nil for ad hoc lines
// that never existed in the catalog.
type OrderItem struct {
	ID              uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID         uint    `gorm:"index" json:"orderId"`
	ProductID       *uint   `json:"productId"`
	ProductName     string  `gorm:"not null" json:"productName"`
	ProductImage    *string `json:"productImage"`
	PriceAtPurchase float64 `json:"priceAtPurchase"`
	Quantity        int     `json:"quantity"`
}
