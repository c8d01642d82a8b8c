package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderPending   = "pending"
	OrderPaid      = "paid"
	OrderFailed    = "failed"
	OrderCancelled = "cancelled"
	OrderShipped   = "shipped"
	OrderDelivered = "delivered"
)

var orderStatuses = map[string]bool{
	OrderPending: true, OrderPaid: true, OrderFailed: true,
	OrderCancelled: true, OrderShipped: true, OrderDelivered: true,
}

func ValidOrderStatus(s string) bool { return orderStatuses[s] }

// Order is a snapshot of line items taken at creation time. Later cart
// changes never touch it.
type Order struct {
	ID              string          `gorm:"primaryKey;type:text" json:"id"`
	UserID          string          `gorm:"type:text;not null;index" json:"userId"`
	User            *User           `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Items           LineItems       `gorm:"not null" json:"items"`
	Amount          decimal.Decimal `gorm:"type:numeric;not null" json:"amount"`
	Status          string          `gorm:"not null;default:pending" json:"status"`
	PaymentIntentID *string         `json:"paymentIntentId"`
	CreatedAt       time.Time       `gorm:"not null;index" json:"createdAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.Status == "" {
		o.Status = OrderPending
	}
	return nil
}
