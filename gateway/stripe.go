package gateway

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/youssofmousssa/luxestorebackeend/pkg/apperr"
	"github.com/youssofmousssa/luxestorebackeend/services"
)

type paymentIntentCreator interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

// Stripe creates payment intents with automatic payment methods enabled.
type Stripe struct {
	intents paymentIntentCreator
}

func NewStripe(secretKey string, timeout time.Duration) *Stripe {
	backends := stripe.NewBackends(&http.Client{Timeout: timeout})
	sc := client.New(secretKey, backends)
	return &Stripe{intents: sc.PaymentIntents}
}

func (s *Stripe) CreatePaymentIntent(ctx context.Context, req services.PaymentIntentRequest) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.AmountMinor),
		Currency: stripe.String(req.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := s.intents.New(params)
	if err != nil {
		var se *stripe.Error
		if errors.As(err, &se) && se.Msg != "" {
			return "", apperr.Upstream(se.Msg, err)
		}
		return "", apperr.Upstream("Payment provider unavailable", err)
	}
	return pi.ClientSecret, nil
}
