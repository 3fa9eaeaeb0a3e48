package models

import "time"

// OrderStatus represents the dine-in order lifecycle
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusServed    OrderStatus = "served"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// PaymentStatus tracks payment independently of the order lifecycle
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentVerified PaymentStatus = "verified"
	PaymentRefunded PaymentStatus = "refunded"
)

// ItemStatus is the kitchen-side state of a single line item,
// independent of the order-level status
type ItemStatus string

const (
	ItemPending   ItemStatus = "pending"
	ItemPreparing ItemStatus = "preparing"
	ItemReady     ItemStatus = "ready"
)

type Order struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	RestaurantID uint       `json:"restaurant_id" gorm:"not null"`
	Restaurant   Restaurant `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	TableNumber  int        `json:"table_number" gorm:"not null"`
	TableID      *uint      `json:"table_id,omitempty"`
	SessionID    *uint      `json:"session_id,omitempty"`

	Items []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`

	// Derived pricing fields; never mutated independently.
	// Total = Subtotal + Tax + ServiceCharge - Discount.
	Subtotal float64 `json:"subtotal"`
	// TaxRate is the percentage applied at creation; kept on the order so
	// later recomputation never has to back-derive it from tax/subtotal
	TaxRate       float64 `json:"tax_rate"`
	Tax           float64 `json:"tax"`
	ServiceCharge float64 `json:"service_charge"`
	Discount      float64 `json:"discount"`
	Total         float64 `json:"total"`

	Status        OrderStatus   `json:"status" gorm:"not null;default:'pending'"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"not null;default:'pending'"`

	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	Notes         string `json:"notes"`
	KitchenNotes  string `json:"kitchen_notes"`

	// Each transition timestamp is set at most once, when the
	// corresponding transition happens
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	PreparedAt  *time.Time `json:"prepared_at,omitempty"`
	ReadyAt     *time.Time `json:"ready_at,omitempty"`
	ServedAt    *time.Time `json:"served_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	StatusHistory []OrderStatusHistory `json:"status_history,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

type OrderItem struct {
	ID         uint `json:"id" gorm:"primaryKey"`
	OrderID    uint `json:"order_id" gorm:"not null"`
	MenuItemID uint `json:"menu_item_id" gorm:"not null"`

	// Snapshots taken at order time so later menu edits don't rewrite history
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price" gorm:"not null"`
	Quantity  int     `json:"quantity" gorm:"not null"`

	VariantName     string  `json:"variant_name"`
	VariantModifier float64 `json:"variant_modifier"`
	// AddonsPrice is the per-unit sum of selected addon prices
	AddonsPrice float64 `json:"addons_price"`
	LineTotal   float64 `json:"line_total"`

	Notes    string     `json:"notes"`
	ImageURL string     `json:"image_url"`
	Status   ItemStatus `json:"status" gorm:"not null;default:'pending'"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderStatusHistory tracks every status change for auditing
type OrderStatusHistory struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	OrderID    uint        `json:"order_id" gorm:"not null"`
	FromStatus OrderStatus `json:"from_status"`
	ToStatus   OrderStatus `json:"to_status" gorm:"not null"`
	ChangedBy  uint        `json:"changed_by"`
	Note       string      `json:"note"`
	CreatedAt  time.Time   `json:"created_at"`
}
