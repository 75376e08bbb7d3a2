package models

import "github.com/google/uuid"

// Order is created once at checkout and mutated only through status
// transitions afterwards; line items are immutable and orders are never
// deleted.
type Order struct {
	BaseModel
	OrderID              string      `gorm:"uniqueIndex" json:"order_id"`
	CustomerName         string      `json:"customer_name"`
	CustomerPhone        string      `gorm:"index" json:"customer_phone"`
	CustomerEmail        string      `json:"customer_email,omitempty"`
	DeliveryAddress      string      `json:"delivery_address"`
	AlternatePhone       string      `json:"alternate_phone,omitempty"`
	DeliveryInstructions string      `json:"delivery_instructions,omitempty"`
	TotalAmount          float64     `json:"total_amount"`
	PaymentMethod        string      `json:"payment_method"`
	PaymentStatus        string      `json:"payment_status"`
	OrderStatus          string      `json:"order_status"`
	Items                []OrderItem `json:"items,omitempty"`
	Refund               *Refund     `json:"refund,omitempty"`
}

// OrderItem snapshots the product name and price at purchase time so later
// catalog edits never rewrite order history.
type OrderItem struct {
	BaseModel
	OrderID      uuid.UUID  `gorm:"type:uuid;index" json:"-"`
	ProductID    *uuid.UUID `gorm:"type:uuid" json:"product_id,omitempty"`
	ProductName  string     `json:"product_name"`
	ProductPrice float64    `json:"product_price"`
	Quantity     int        `json:"quantity"`
	Subtotal     float64    `json:"subtotal"`
}
