package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/youssofmousssa/luxestorebackeend/entity"
	"github.com/youssofmousssa/luxestorebackeend/pkg/apperr"
	"github.com/youssofmousssa/luxestorebackeend/repository"
)

const msgForbidden = "Forbidden"

type OrderService struct {
	Repo     *repository.OrderRepository
	Payments PaymentGateway
	Notifier OrderNotifier
}

func NewOrderService(repo *repository.OrderRepository, payments PaymentGateway, notifier OrderNotifier) *OrderService {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &OrderService{Repo: repo, Payments: payments, Notifier: notifier}
}

// ----- DTOs from controller -----

type CheckoutInput struct {
	Amount   *decimal.Decimal `json:"amount" binding:"required"`
	Currency string           `json:"currency"`
	Metadata map[string]any   `json:"metadata"`
}

type CreateOrderInput struct {
	Items           *entity.LineItems `json:"items" binding:"required"`
	Amount          *decimal.Decimal  `json:"amount" binding:"required"`
	Status          string            `json:"status"`
	PaymentIntentID *string           `json:"paymentIntentId"`
}

var hundred = decimal.NewFromInt(100)

// MinorUnits converts a major-unit amount to cents, rounding half up.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Round(0).IntPart()
}

// ----- Checkout -----

// CreateCheckoutIntent asks the gateway for a payment intent and returns its
// client secret. Nothing is stored locally.
func (s *OrderService) CreateCheckoutIntent(ctx context.Context, in CheckoutInput) (string, error) {
	if in.Amount == nil || !in.Amount.IsPositive() {
		return "", apperr.Validation("Invalid amount")
	}
	minor := MinorUnits(*in.Amount)
	if minor <= 0 {
		return "", apperr.Validation("Invalid amount")
	}

	currency := strings.ToLower(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = "usd"
	}
	metadata, err := stringMetadata(in.Metadata)
	if err != nil {
		return "", err
	}

	return s.Payments.CreatePaymentIntent(ctx, PaymentIntentRequest{
		AmountMinor: minor,
		Currency:    currency,
		Metadata:    metadata,
	})
}

// stringMetadata flattens scalar metadata values to strings. Null values are
// dropped; nested objects and arrays are rejected.
func stringMetadata(in map[string]any) (map[string]string, error) {
	out := make(map[string]string, len(in))
	for k, v := range in {
		switch val := v.(type) {
		case nil:
		case string:
			out[k] = val
		case float64, bool, json.Number:
			out[k] = fmt.Sprint(val)
		default:
			return nil, apperr.Validation("Invalid metadata")
		}
	}
	return out, nil
}

// ----- Orders -----

// Create persists an order for userID. Items are not checked against the
// cart or the catalog and stock is left untouched.
func (s *OrderService) Create(ctx context.Context, userID string, in CreateOrderInput) (*entity.Order, error) {
	if in.Items == nil || in.Amount == nil {
		return nil, apperr.Validation("Invalid order data")
	}
	status := in.Status
	if status == "" {
		status = entity.OrderPending
	}
	if !entity.ValidOrderStatus(status) {
		return nil, apperr.Validation("Invalid order status")
	}

	items := *in.Items
	if items == nil {
		items = entity.LineItems{}
	}
	o := &entity.Order{
		UserID: userID,
		Items:  items,
		Amount: *in.Amount,
		Status: status,
	}
	if in.PaymentIntentID != nil && *in.PaymentIntentID != "" {
		o.PaymentIntentID = in.PaymentIntentID
	}

	if err := s.Repo.Create(ctx, o); err != nil {
		return nil, err
	}
	s.Notifier.OrderCreated(*o)
	return o, nil
}

func (s *OrderService) Get(ctx context.Context, id string, requester entity.User) (*entity.Order, error) {
	o, err := s.Repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Order not found")
	}
	if err != nil {
		return nil, err
	}
	if !requester.CanAccess(o.UserID) {
		return nil, apperr.Forbidden(msgForbidden)
	}
	return o, nil
}

func (s *OrderService) ListForUser(ctx context.Context, userID string, requester entity.User) ([]entity.Order, error) {
	if !requester.CanAccess(userID) {
		return nil, apperr.Forbidden(msgForbidden)
	}
	return s.Repo.ListForUser(ctx, userID)
}

func (s *OrderService) ListAll(ctx context.Context, requester entity.User) ([]entity.Order, error) {
	if !requester.IsAdmin() {
		return nil, apperr.Forbidden(msgForbidden)
	}
	return s.Repo.ListAll(ctx)
}
