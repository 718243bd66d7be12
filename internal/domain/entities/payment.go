package entities

// DonationOption is one of the fixed amounts offered on the donate form
type DonationOption struct {
	Amount       int64  `json:"amount"`
	Name         string `json:"name"`
	AmountPretty string `json:"amount_pretty"`
}

// DefaultDonationOptions mirrors the donate form: amounts in minor units
var DefaultDonationOptions = []DonationOption{
	{Amount: 250, Name: "Standard Donation", AmountPretty: "$2.50"},
	{Amount: 500, Name: "Medium Donation", AmountPretty: "$5.00"},
	{Amount: 1000, Name: "Large Donation", AmountPretty: "$10.00"},
}

// PaymentIntent is the subset of the processor's intent returned to the browser
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}
