package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/stripe/stripe-go/v76"

	"github.com/youssofmousssa/luxestorebackeend/pkg/apperr"
	"github.com/youssofmousssa/luxestorebackeend/services"
)

type fakeIntents struct {
	got *stripe.PaymentIntentParams
	err error
}

func (f *fakeIntents) New(p *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	f.got = p
	if f.err != nil {
		return nil, f.err
	}
	return &stripe.PaymentIntent{ID: "pi_1", ClientSecret: "pi_1_secret_abc"}, nil
}

func TestStripeCreatePaymentIntent(t *testing.T) {
	fi := &fakeIntents{}
	s := &Stripe{intents: fi}

	secret, err := s.CreatePaymentIntent(context.Background(), services.PaymentIntentRequest{
		AmountMinor: 2000,
		Currency:    "usd",
		Metadata:    map[string]string{"cart": "c1"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if secret != "pi_1_secret_abc" {
		t.Fatalf("secret = %q", secret)
	}
	if *fi.got.Amount != 2000 || *fi.got.Currency != "usd" {
		t.Fatalf("params = %d %s", *fi.got.Amount, *fi.got.Currency)
	}
	if !*fi.got.AutomaticPaymentMethods.Enabled {
		t.Fatal("automatic payment methods not enabled")
	}
	if fi.got.Metadata["cart"] != "c1" {
		t.Fatalf("metadata = %v", fi.got.Metadata)
	}
}

func TestStripeErrorIsUpstream(t *testing.T) {
	s := &Stripe{intents: &fakeIntents{err: &stripe.Error{Msg: "Invalid API Key provided"}}}

	_, err := s.CreatePaymentIntent(context.Background(), services.PaymentIntentRequest{AmountMinor: 100, Currency: "usd"})
	if !errors.Is(err, apperr.ErrUpstream) {
		t.Fatalf("err = %v, want upstream", err)
	}
	if apperr.Message(err) != "Invalid API Key provided" {
		t.Fatalf("message = %q", apperr.Message(err))
	}
}
