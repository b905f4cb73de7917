package models

import "time"

type Role string

const (
	RoleUser   Role = "USER"
	RoleWorker Role = "WORKER"
)

type User struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string  `gorm:"not null" json:"name"`
	Email        string  `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string  `gorm:"not null" json:"-"`
	Role         Role    `gorm:"type:VARCHAR(16);default:'USER'" json:"role"`
	Orders       []Order `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"orders,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
