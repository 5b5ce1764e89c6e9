package response

import (
	"encoding/json"

	"travel-booking/internal/data/entity"
)

// TripResponse is the annotated read shape: every stored column plus the
// derived remaining_seats, with the itinerary already decoded for the client.
type TripResponse struct {
	ID             int64           `json:"id"`
	LocationName   string          `json:"location_name"`
	Distance       *string         `json:"distance"`
	CardImg        *string         `json:"card_img"`
	InfoImg        *string         `json:"info_img"`
	Title          string          `json:"title"`
	CardSubtitle   *string         `json:"card_subtitle"`
	Subtitle       *string         `json:"subtitle"`
	OriginalCost   *float64        `json:"original_cost"`
	Cost           *float64        `json:"cost"`
	Duration       *string         `json:"duration"`
	IsUpcoming     bool            `json:"is_upcoming"`
	Description    *string         `json:"description"`
	Rating         *float64        `json:"rating"`
	ReviewsCount   int             `json:"reviews_count"`
	Features       json.RawMessage `json:"features"`
	StartDate      *string         `json:"start_date"`
	TotalSeats     *int            `json:"total_seats"`
	BookedSeats    int             `json:"booked_seats"`
	RemainingSeats *int            `json:"remaining_seats"`
	Badge          *string         `json:"badge"`
	MapsIframe     *string         `json:"maps_iframe"`
	ItineraryData  []entity.Day    `json:"itinerary_data"`
	PDFURL         *string         `json:"pdfUrl"`
}

// TripToResponse annotates a row for the read path. The caller supplies the
// already-decoded itinerary so the codec's failure policy stays in one place.
func TripToResponse(trip *entity.Trip, itinerary []entity.Day) TripResponse {
	var startDate *string
	if trip.StartDate != nil {
		s := trip.StartDate.Format("2006-01-02")
		startDate = &s
	}

	return TripResponse{
		ID:             trip.ID,
		LocationName:   trip.LocationName,
		Distance:       trip.Distance,
		CardImg:        trip.CardImg,
		InfoImg:        trip.InfoImg,
		Title:          trip.Title,
		CardSubtitle:   trip.CardSubtitle,
		Subtitle:       trip.Subtitle,
		OriginalCost:   trip.OriginalCost,
		Cost:           trip.Cost,
		Duration:       trip.Duration,
		IsUpcoming:     trip.IsUpcoming,
		Description:    trip.Description,
		Rating:         trip.Rating,
		ReviewsCount:   trip.ReviewsCount,
		Features:       entity.SafeArray(trip.Features),
		StartDate:      startDate,
		TotalSeats:     trip.TotalSeats,
		BookedSeats:    trip.BookedSeats,
		RemainingSeats: trip.RemainingSeats(),
		Badge:          trip.Badge,
		MapsIframe:     trip.MapsIframe,
		ItineraryData:  itinerary,
		PDFURL:         trip.PDFURL,
	}
}
