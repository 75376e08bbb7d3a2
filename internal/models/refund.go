package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RefundPending   = "Pending"
	RefundProcessed = "Processed"
)

// Refund is created when an administrator moves an order into the refund
// branch. An order owns at most one refund.
type Refund struct {
	BaseModel
	OrderID     uuid.UUID  `gorm:"type:uuid;uniqueIndex" json:"order_id"`
	Order       *Order     `json:"order,omitempty"`
	Amount      float64    `json:"amount"`
	Reason      string     `json:"reason,omitempty"`
	Status      string     `json:"status"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
}
