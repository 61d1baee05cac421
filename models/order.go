package models

import (
	"time"

	"gorm.io/gorm"
)

// Order rows mirror the venue ordering system (owned elsewhere); the engine
// only reads completed orders to answer "did this user eat recently" and to
// auto-log drinks at order completion.
type Order struct {
	gorm.Model
	CustomerID  uint        `gorm:"index;not null" json:"customer_id"`
	Status      string      `gorm:"size:20" json:"status"` // "pending" | "completed" | "cancelled"
	CompletedAt time.Time   `gorm:"index" json:"completed_at"`
	Items       []OrderItem `json:"items"`
}

type OrderItem struct {
	gorm.Model
	OrderID     uint   `gorm:"index;not null" json:"order_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `gorm:"size:20" json:"category"` // "food" | "drink" | ...
	Quantity    int    `json:"quantity"`
}
