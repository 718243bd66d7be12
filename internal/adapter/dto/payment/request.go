package payment

// CreateIntentRequest represents POST /payments/intents
type CreateIntentRequest struct {
	Amount   int64  `json:"amount" validate:"required,gt=0"`
	Currency string `json:"currency" validate:"omitempty,len=3,alpha"`
}
