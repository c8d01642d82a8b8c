package services

import (
	"context"

	"github.com/youssofmousssa/luxestorebackeend/entity"
)

// PaymentIntentRequest is what the order engine asks the payment gateway for.
// AmountMinor is in the currency's smallest unit (cents for usd).
type PaymentIntentRequest struct {
	AmountMinor int64
	Currency    string
	Metadata    map[string]string
}

// PaymentGateway creates payment intents and returns their client secret.
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, req PaymentIntentRequest) (string, error)
}

// ImageHost stores a base64 image and returns its public URL.
type ImageHost interface {
	Upload(ctx context.Context, base64Image string) (string, error)
}

// OrderNotifier is told about every persisted order. Implementations must not block.
type OrderNotifier interface {
	OrderCreated(order entity.Order)
}

type noopNotifier struct{}

func (noopNotifier) OrderCreated(entity.Order) {}
