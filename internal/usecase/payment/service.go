package payment

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/johnquangdev/transcrypt/internal/domain/entities"
	ucErrors "github.com/johnquangdev/transcrypt/internal/usecase/errors"
)

const DefaultCurrency = "aud"

// Creator creates payment intents at the payment processor
type Creator interface {
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (*entities.PaymentIntent, error)
}

// ProcessorError is an error reported by the payment processor, carrying the
// HTTP status the processor answered with so it can be forwarded.
type ProcessorError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *ProcessorError) Error() string {
	return fmt.Sprintf("payment processor error (%d): %s", e.StatusCode, e.Message)
}

func (e *ProcessorError) Unwrap() error {
	return e.Err
}

// PaymentService proxies donation payment intents
type PaymentService struct {
	creator  Creator
	currency string
	options  []entities.DonationOption
	logger   *zap.Logger
}

// Option configures a PaymentService
type Option func(*PaymentService)

// WithCurrency sets the currency used when a request does not name one
func WithCurrency(currency string) Option {
	return func(s *PaymentService) {
		if currency != "" {
			s.currency = strings.ToLower(currency)
		}
	}
}

// WithDonationOptions replaces the default donation options
func WithDonationOptions(options []entities.DonationOption) Option {
	return func(s *PaymentService) {
		s.options = options
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *PaymentService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewPaymentService creates a payment service. A nil creator disables payments.
func NewPaymentService(creator Creator, opts ...Option) *PaymentService {
	s := &PaymentService{
		creator:  creator,
		currency: DefaultCurrency,
		options:  entities.DefaultDonationOptions,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Options returns the donation options offered to the user
func (s *PaymentService) Options() []entities.DonationOption {
	out := make([]entities.DonationOption, len(s.options))
	copy(out, s.options)
	return out
}

// Currency returns the default currency
func (s *PaymentService) Currency() string {
	return s.currency
}

// CreateIntent creates a payment intent for amount minor units
func (s *PaymentService) CreateIntent(ctx context.Context, amount int64, currency string) (*entities.PaymentIntent, error) {
	if s.creator == nil {
		return nil, ucErrors.ErrPaymentDisabled
	}
	if amount <= 0 {
		return nil, ucErrors.ErrInvalidAmount
	}
	currency = strings.ToLower(strings.TrimSpace(currency))
	if currency == "" {
		currency = s.currency
	}

	intent, err := s.creator.CreatePaymentIntent(ctx, amount, currency)
	if err != nil {
		s.logger.Error("payment.intent.failed",
			zap.Int64("amount", amount),
			zap.String("currency", currency),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("payment.intent.created",
		zap.String("intent_id", intent.ID),
		zap.Int64("amount", intent.Amount),
		zap.String("currency", intent.Currency),
	)
	return intent, nil
}
