// Package payment opens external checkout sessions for the credits a booking is short of.
package payment

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"

	"uchoose-client/internal/uchooseerrors"
)

// CreditCheckout describes the credits to buy before a reservation can be made
type CreditCheckout struct {
	Quantity     int64
	ServiceID    int
	StartingDate string
	EndDate      string
}

// Checkout creates a hosted payment session and returns its redirect URL
type Checkout interface {
	CreateCreditSession(ctx context.Context, req CreditCheckout) (string, error)
}

// CreditQuantity rounds a shortfall up to whole credits. A non-positive shortfall buys nothing.
func CreditQuantity(shortfall decimal.Decimal) int64 {
	if !shortfall.IsPositive() {
		return 0
	}
	return shortfall.Ceil().IntPart()
}

// StripeConfig configures StripeCheckout
type StripeConfig struct {
	SecretKey     string
	CreditPriceID string
	FrontendURL   string
}

// StripeCheckout sells credits through a Stripe Checkout session in payment mode
type StripeCheckout struct {
	priceID     string
	frontendURL string
	create      func(*stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

var _ Checkout = (*StripeCheckout)(nil)

// NewStripeCheckout returns a Checkout backed by Stripe, or Disabled when no key or price is configured
func NewStripeCheckout(cfg StripeConfig) Checkout {
	key := strings.TrimSpace(cfg.SecretKey)
	price := strings.TrimSpace(cfg.CreditPriceID)
	if key == "" || price == "" {
		return Disabled{}
	}
	// a per-instance client keeps the key out of the stripe package globals
	sc := client.New(key, nil)
	return &StripeCheckout{
		priceID:     price,
		frontendURL: strings.TrimRight(strings.TrimSpace(cfg.FrontendURL), "/"),
		create:      sc.CheckoutSessions.New,
	}
}

// CreateCreditSession opens a one-line-item session for req.Quantity credits
func (s *StripeCheckout) CreateCreditSession(ctx context.Context, req CreditCheckout) (string, error) {
	if req.Quantity <= 0 {
		return "", fmt.Errorf("credit quantity %d: %w", req.Quantity, uchooseerrors.ErrInvalidCheckout)
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(s.successURL(req)),
		CancelURL:  stripe.String(fmt.Sprintf("%s/client/services/%d", s.frontendURL, req.ServiceID)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(s.priceID),
				Quantity: stripe.Int64(req.Quantity),
			},
		},
	}
	params.Context = ctx
	params.AddMetadata("service_id", fmt.Sprint(req.ServiceID))
	params.AddMetadata("starting_date", req.StartingDate)
	params.AddMetadata("end_date", req.EndDate)

	sess, err := s.create(params)
	if err != nil {
		return "", fmt.Errorf("create checkout session: %v: %w", err, uchooseerrors.ErrCheckoutUnavailable)
	}
	if sess == nil || sess.URL == "" {
		return "", fmt.Errorf("checkout session without url: %w", uchooseerrors.ErrCheckoutUnavailable)
	}
	return sess.URL, nil
}

func (s *StripeCheckout) successURL(req CreditCheckout) string {
	q := url.Values{}
	q.Set("serviceId", fmt.Sprint(req.ServiceID))
	q.Set("starting_date", req.StartingDate)
	q.Set("end_date", req.EndDate)
	return s.frontendURL + "/client/success?" + q.Encode()
}

// Disabled is used when no payment provider is configured
type Disabled struct{}

// CreateCreditSession always fails with ErrCheckoutUnavailable
func (Disabled) CreateCreditSession(context.Context, CreditCheckout) (string, error) {
	return "", fmt.Errorf("no payment provider configured: %w", uchooseerrors.ErrCheckoutUnavailable)
}
