package models

import (
	"time"

	"gorm.io/gorm"
)

type Restaurant struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"not null"`
	Slug    string `json:"slug" gorm:"uniqueIndex;not null"`
	Address string `json:"address"`
	// TaxRate is a percentage; snapshotted onto each order at creation
	TaxRate float64 `json:"tax_rate" gorm:"default:5"`
	// ServiceCharge is a flat amount added on top of subtotal+tax
	ServiceCharge float64   `json:"service_charge" gorm:"default:0"`
	Currency      string    `json:"currency" gorm:"default:'USD'"`
	IsOpen        bool      `json:"is_open" gorm:"default:true"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Category struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	RestaurantID uint           `json:"restaurant_id" gorm:"not null"`
	Name         string         `json:"name" gorm:"not null"`
	Description  string         `json:"description"`
	SortOrder    int            `json:"sort_order" gorm:"default:0"`
	IsActive     bool           `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// Variant is a size/style choice that shifts the unit price
type Variant struct {
	Name          string  `json:"name"`
	PriceModifier float64 `json:"price_modifier"`
}

// Addon is an optional extra priced per unit ordered
type Addon struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type MenuItem struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	RestaurantID uint           `json:"restaurant_id" gorm:"not null"`
	CategoryID   uint           `json:"category_id" gorm:"not null"`
	Category     Category       `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Name         string         `json:"name" gorm:"not null"`
	Description  string         `json:"description"`
	Price        float64        `json:"price" gorm:"not null"`
	ImageURL     string         `json:"image_url"`
	IsAvailable  bool           `json:"is_available" gorm:"default:true"`
	IsVeg        bool           `json:"is_veg" gorm:"default:false"`
	Variants     []Variant      `json:"variants" gorm:"serializer:json"`
	Addons       []Addon        `json:"addons" gorm:"serializer:json"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}
