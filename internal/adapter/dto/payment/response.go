package payment

// DonationOptionResponse is one amount offered on the donate form
type DonationOptionResponse struct {
	Amount       int64  `json:"amount"`
	Name         string `json:"name"`
	AmountPretty string `json:"amount_pretty"`
}

// DonationOptionsResponse lists the donation options and their currency
type DonationOptionsResponse struct {
	Currency string                   `json:"currency"`
	Options  []DonationOptionResponse `json:"options"`
}

// PaymentIntentResponse is returned to the browser to confirm the payment
type PaymentIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}
