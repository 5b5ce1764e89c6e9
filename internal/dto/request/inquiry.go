package request

// InquiryRequest is shared by POST /api/inquiries and the legacy
// POST /api/send-email alias. Name and email are required; destination and
// message are both optional, but at least one must be present.
type InquiryRequest struct {
	Name        string  `json:"name" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	Phone       *string `json:"phone"`
	Destination *string `json:"destination"`
	Guests      Text    `json:"guests"`
	TravelDates Text    `json:"travelDates"`
	Message     *string `json:"message"`
}

// InquiryStatusRequest uses a pointer so a missing or non-boolean
// is_completed is rejected instead of defaulting to false.
type InquiryStatusRequest struct {
	IsCompleted *bool `json:"is_completed" validate:"required"`
}
