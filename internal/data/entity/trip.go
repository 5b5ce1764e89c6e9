package entity

import (
	"encoding/json"
	"time"
)

// Trip is one bookable travel package. The itinerary and feature list live in
// JSONB columns and only pass through the codec in itinerary.go.
type Trip struct {
	ID            int64           `db:"id"`
	LocationName  string          `db:"location_name"`
	Distance      *string         `db:"distance"`
	CardImg       *string         `db:"card_img"`
	InfoImg       *string         `db:"info_img"`
	Title         string          `db:"title"`
	CardSubtitle  *string         `db:"card_subtitle"`
	Subtitle      *string         `db:"subtitle"`
	OriginalCost  *float64        `db:"original_cost"`
	Cost          *float64        `db:"cost"`
	Duration      *string         `db:"duration"`
	IsUpcoming    bool            `db:"is_upcoming"`
	Description   *string         `db:"description"`
	Rating        *float64        `db:"rating"`
	ReviewsCount  int             `db:"reviews_count"`
	Features      json.RawMessage `db:"features"`
	StartDate     *time.Time      `db:"start_date"`
	TotalSeats    *int            `db:"total_seats"`
	BookedSeats   int             `db:"booked_seats"`
	Badge         *string         `db:"badge"`
	MapsIframe    *string         `db:"maps_iframe"`
	ItineraryData json.RawMessage `db:"itinerary_data"`
	PDFURL        *string         `db:"pdf_url"`
}

// RemainingSeats is derived on every read, never stored. Nil when total_seats
// is unknown.
func (t *Trip) RemainingSeats() *int {
	if t.TotalSeats == nil {
		return nil
	}
	remaining := *t.TotalSeats - t.BookedSeats
	return &remaining
}
