package presenter

import (
	paymentDTO "github.com/johnquangdev/transcrypt/internal/adapter/dto/payment"
	"github.com/johnquangdev/transcrypt/internal/domain/entities"
)

// ToDonationOptionsResponse converts the donation options to their response DTO
func ToDonationOptionsResponse(currency string, options []entities.DonationOption) *paymentDTO.DonationOptionsResponse {
	response := &paymentDTO.DonationOptionsResponse{
		Currency: currency,
		Options:  make([]paymentDTO.DonationOptionResponse, 0, len(options)),
	}
	for _, o := range options {
		response.Options = append(response.Options, paymentDTO.DonationOptionResponse{
			Amount:       o.Amount,
			Name:         o.Name,
			AmountPretty: o.AmountPretty,
		})
	}
	return response
}

// ToPaymentIntentResponse converts a PaymentIntent entity to its response DTO
func ToPaymentIntentResponse(pi *entities.PaymentIntent) *paymentDTO.PaymentIntentResponse {
	if pi == nil {
		return nil
	}
	return &paymentDTO.PaymentIntentResponse{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     pi.Currency,
		Status:       pi.Status,
	}
}
