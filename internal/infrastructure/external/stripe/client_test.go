package stripe

import (
	"context"
	"errors"
	"net/http"
	"testing"

	stripego "github.com/stripe/stripe-go/v76"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/transcrypt/internal/usecase/payment"
)

type fakeIntents struct {
	params *stripego.PaymentIntentParams
	err    error
}

func (f *fakeIntents) New(params *stripego.PaymentIntentParams) (*stripego.PaymentIntent, error) {
	f.params = params
	if f.err != nil {
		return nil, f.err
	}
	return &stripego.PaymentIntent{
		ID:           "pi_1",
		ClientSecret: "pi_1_secret_x",
		Amount:       *params.Amount,
		Currency:     stripego.Currency(*params.Currency),
		Status:       stripego.PaymentIntentStatusRequiresPaymentMethod,
	}, nil
}

func TestClient_CreatePaymentIntent(t *testing.T) {
	fake := &fakeIntents{}
	c := &Client{intents: fake}
	ctx := context.Background()

	intent, err := c.CreatePaymentIntent(ctx, 500, "aud")
	require.NoError(t, err)

	assert.Equal(t, "pi_1", intent.ID)
	assert.Equal(t, "pi_1_secret_x", intent.ClientSecret)
	assert.Equal(t, int64(500), intent.Amount)
	assert.Equal(t, "aud", intent.Currency)
	assert.Equal(t, "requires_payment_method", intent.Status)
	assert.True(t, *fake.params.AutomaticPaymentMethods.Enabled)
	assert.Equal(t, ctx, fake.params.Context)
}

func TestClient_StripeErrorKeepsStatus(t *testing.T) {
	fake := &fakeIntents{err: &stripego.Error{HTTPStatusCode: http.StatusPaymentRequired, Msg: "Your card was declined."}}
	c := &Client{intents: fake}

	_, err := c.CreatePaymentIntent(context.Background(), 500, "aud")

	var procErr *payment.ProcessorError
	require.True(t, errors.As(err, &procErr))
	assert.Equal(t, http.StatusPaymentRequired, procErr.StatusCode)
	assert.Equal(t, "Your card was declined.", procErr.Message)
}

func TestClient_OtherError(t *testing.T) {
	c := &Client{intents: &fakeIntents{err: errors.New("dial tcp: timeout")}}

	_, err := c.CreatePaymentIntent(context.Background(), 500, "aud")

	var procErr *payment.ProcessorError
	assert.False(t, errors.As(err, &procErr))
	assert.ErrorContains(t, err, "dial tcp")
}
