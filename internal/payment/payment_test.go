package payment

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v79"

	"uchoose-client/internal/uchooseerrors"
)

func TestCreditQuantity(t *testing.T) {
	tests := []struct {
		shortfall string
		want      int64
	}{
		{"0", 0},
		{"-3", 0},
		{"0.01", 1},
		{"7.5", 8},
		{"12", 12},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, CreditQuantity(decimal.RequireFromString(tc.shortfall)), tc.shortfall)
	}
}

func TestNewStripeCheckout_DisabledWithoutConfig(t *testing.T) {
	require.IsType(t, Disabled{}, NewStripeCheckout(StripeConfig{}))
	require.IsType(t, Disabled{}, NewStripeCheckout(StripeConfig{SecretKey: "sk_test"}))
	require.IsType(t, &StripeCheckout{}, NewStripeCheckout(StripeConfig{SecretKey: "sk_test", CreditPriceID: "price_1"}))

	live := NewStripeCheckout(StripeConfig{SecretKey: "sk_test", CreditPriceID: "price_1"}).(*StripeCheckout)
	require.NotNil(t, live.create)
	require.Empty(t, stripe.Key)

	_, err := Disabled{}.CreateCreditSession(context.Background(), CreditCheckout{Quantity: 1})
	require.ErrorIs(t, err, uchooseerrors.ErrCheckoutUnavailable)
}

func newTestCheckout(create func(*stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)) *StripeCheckout {
	c := NewStripeCheckout(StripeConfig{SecretKey: "sk_test", CreditPriceID: "price_credit", FrontendURL: "https://uchoose.example/"}).(*StripeCheckout)
	c.create = create
	return c
}

// Test the session carries one line item and the success/cancel redirects
func TestStripeCheckout_CreateCreditSession(t *testing.T) {
	var got *stripe.CheckoutSessionParams
	c := newTestCheckout(func(p *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
		got = p
		return &stripe.CheckoutSession{URL: "https://checkout.stripe.test/s/1"}, nil
	})

	ctx := context.Background()
	redirect, err := c.CreateCreditSession(ctx, CreditCheckout{
		Quantity:     8,
		ServiceID:    3,
		StartingDate: "2025-06-14T09:00:00",
		EndDate:      "2025-06-14T10:00:00",
	})
	require.NoError(t, err)
	require.Equal(t, "https://checkout.stripe.test/s/1", redirect)

	require.NotNil(t, got)
	require.Equal(t, string(stripe.CheckoutSessionModePayment), *got.Mode)
	require.Len(t, got.LineItems, 1)
	require.Equal(t, "price_credit", *got.LineItems[0].Price)
	require.Equal(t, int64(8), *got.LineItems[0].Quantity)
	require.Equal(t, "https://uchoose.example/client/services/3", *got.CancelURL)
	require.Equal(t, ctx, got.Context)

	success, err := url.Parse(*got.SuccessURL)
	require.NoError(t, err)
	require.Equal(t, "/client/success", success.Path)
	require.Equal(t, "3", success.Query().Get("serviceId"))
	require.Equal(t, "2025-06-14T09:00:00", success.Query().Get("starting_date"))
	require.Equal(t, "2025-06-14T10:00:00", success.Query().Get("end_date"))

	require.Equal(t, "3", got.Metadata["service_id"])
}

func TestStripeCheckout_Errors(t *testing.T) {
	t.Run("provider error", func(t *testing.T) {
		c := newTestCheckout(func(*stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
			return nil, errors.New("card_declined")
		})
		_, err := c.CreateCreditSession(context.Background(), CreditCheckout{Quantity: 1, ServiceID: 3})
		require.ErrorIs(t, err, uchooseerrors.ErrCheckoutUnavailable)
	})

	t.Run("session without url", func(t *testing.T) {
		c := newTestCheckout(func(*stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
			return &stripe.CheckoutSession{}, nil
		})
		_, err := c.CreateCreditSession(context.Background(), CreditCheckout{Quantity: 1, ServiceID: 3})
		require.ErrorIs(t, err, uchooseerrors.ErrCheckoutUnavailable)
	})

	t.Run("nothing to buy", func(t *testing.T) {
		called := false
		c := newTestCheckout(func(*stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
			called = true
			return &stripe.CheckoutSession{URL: "x"}, nil
		})
		_, err := c.CreateCreditSession(context.Background(), CreditCheckout{Quantity: 0, ServiceID: 3})
		require.ErrorIs(t, err, uchooseerrors.ErrInvalidCheckout)
		require.NotErrorIs(t, err, uchooseerrors.ErrInvalidTransition)
		require.False(t, called)
	})
}
