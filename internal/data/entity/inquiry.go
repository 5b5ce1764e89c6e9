package entity

import (
	"time"
)

// Inquiry is one prospective-customer contact submission. Rows are append
// only: nothing besides the completion flag ever changes, and there is no
// delete path.
type Inquiry struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Email       string    `db:"email"`
	Phone       *string   `db:"phone"`
	Destination *string   `db:"destination"`
	Guests      *string   `db:"guests"`
	TravelDates *string   `db:"travel_dates"`
	Message     *string   `db:"message"`
	ReceivedAt  time.Time `db:"received_at"`
	IsCompleted bool      `db:"is_completed"`
}
