package response

import (
	"time"

	"travel-booking/internal/data/entity"
)

type InquiryResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone"`
	Destination *string   `json:"destination"`
	Guests      *string   `json:"guests"`
	TravelDates *string   `json:"travel_dates"`
	Message     *string   `json:"message"`
	ReceivedAt  time.Time `json:"received_at"`
	IsCompleted bool      `json:"is_completed"`
}

func InquiryToResponse(inquiry *entity.Inquiry) InquiryResponse {
	return InquiryResponse{
		ID:          inquiry.ID,
		Name:        inquiry.Name,
		Email:       inquiry.Email,
		Phone:       inquiry.Phone,
		Destination: inquiry.Destination,
		Guests:      inquiry.Guests,
		TravelDates: inquiry.TravelDates,
		Message:     inquiry.Message,
		ReceivedAt:  inquiry.ReceivedAt,
		IsCompleted: inquiry.IsCompleted,
	}
}
