package models

import "time"

// TableStatus represents the floor state of a physical table
type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
	TableReserved  TableStatus = "reserved"
	TableCleaning  TableStatus = "cleaning"
)

type Table struct {
	ID             uint        `json:"id" gorm:"primaryKey"`
	RestaurantID   uint        `json:"restaurant_id" gorm:"not null"`
	Number         int         `json:"number" gorm:"not null"`
	Name           string      `json:"name"`
	Capacity       int         `json:"capacity" gorm:"default:2"`
	Status         TableStatus `json:"status" gorm:"not null;default:'available'"`
	CurrentOrderID *uint       `json:"current_order_id,omitempty"`
	Section        string      `json:"section"`
	IsActive       bool        `json:"is_active" gorm:"default:true"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// TableSession groups the orders placed during one seating.
// TotalSpent is computed from the session's orders when it closes.
type TableSession struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Ref          string     `json:"ref" gorm:"uniqueIndex;not null"`
	TableID      uint       `json:"table_id" gorm:"not null"`
	RestaurantID uint       `json:"restaurant_id" gorm:"not null"`
	Orders       []Order    `json:"orders,omitempty" gorm:"foreignKey:SessionID"`
	TotalSpent   float64    `json:"total_spent"`
	StartedAt    time.Time  `json:"started_at"`
	EndedAt      *time.Time `json:"ended_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
