package request

import "encoding/json"

// TripRequest covers both create and full-replace update; trips have no
// partial-patch path, so every field is always written.
type TripRequest struct {
	LocationName  string          `json:"location_name" validate:"required"`
	Distance      *string         `json:"distance"`
	CardImg       *string         `json:"card_img"`
	InfoImg       *string         `json:"info_img"`
	Title         string          `json:"title" validate:"required"`
	CardSubtitle  *string         `json:"card_subtitle"`
	Subtitle      *string         `json:"subtitle"`
	OriginalCost  Decimal         `json:"original_cost"`
	Cost          Decimal         `json:"cost"`
	Duration      *string         `json:"duration"`
	IsUpcoming    Flag            `json:"is_upcoming"`
	Description   *string         `json:"description"`
	Rating        Decimal         `json:"rating"`
	ReviewsCount  Count           `json:"reviews_count"`
	Features      json.RawMessage `json:"features"`
	StartDate     *string         `json:"start_date"`
	TotalSeats    Count           `json:"total_seats"`
	BookedSeats   Count           `json:"booked_seats"`
	Badge         *string         `json:"badge"`
	MapsIframe    *string         `json:"maps_iframe"`
	ItineraryData json.RawMessage `json:"itinerary_data" validate:"required"`
	PDFURL        *string         `json:"pdfUrl"`
}
