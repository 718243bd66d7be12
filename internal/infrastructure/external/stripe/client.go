package stripe

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	stripego "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/johnquangdev/transcrypt/internal/domain/entities"
	"github.com/johnquangdev/transcrypt/internal/usecase/payment"
)

// intentAPI is the part of the Stripe SDK the client uses
type intentAPI interface {
	New(params *stripego.PaymentIntentParams) (*stripego.PaymentIntent, error)
}

// Client creates payment intents through the Stripe API
type Client struct {
	intents intentAPI
}

// NewClient creates a Stripe client authenticated with secretKey
func NewClient(secretKey string) *Client {
	sc := &client.API{}
	sc.Init(secretKey, nil)
	return &Client{intents: sc.PaymentIntents}
}

// CreatePaymentIntent creates an intent with automatic payment methods
func (c *Client) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (*entities.PaymentIntent, error) {
	params := &stripego.PaymentIntentParams{
		Amount:   stripego.Int64(amount),
		Currency: stripego.String(currency),
		AutomaticPaymentMethods: &stripego.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripego.Bool(true),
		},
	}
	params.Context = ctx

	pi, err := c.intents.New(params)
	if err != nil {
		return nil, mapError(err)
	}

	return &entities.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
		Status:       string(pi.Status),
	}, nil
}

// mapError keeps the status Stripe answered with so the handler can forward it
func mapError(err error) error {
	var stripeErr *stripego.Error
	if errors.As(err, &stripeErr) {
		status := stripeErr.HTTPStatusCode
		if status == 0 {
			status = http.StatusInternalServerError
		}
		return &payment.ProcessorError{
			StatusCode: status,
			Message:    stripeErr.Msg,
			Err:        err,
		}
	}
	return fmt.Errorf("failed to create payment intent: %w", err)
}
