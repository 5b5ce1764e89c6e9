package repository

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"travel-booking/internal/data/entity"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"go.uber.org/zap"
)

func tripMockRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "location_name", "distance", "card_img", "info_img", "title",
		"card_subtitle", "subtitle", "original_cost", "cost", "duration",
		"is_upcoming", "description", "rating", "reviews_count", "features",
		"start_date", "total_seats", "booked_seats", "badge", "maps_iframe",
		"itinerary_data", "pdf_url",
	})
}

func addTripRow(rows *pgxmock.Rows, id int64, title string) *pgxmock.Rows {
	seats := 30
	return rows.AddRow(
		id, "Goa", nil, nil, nil, title,
		nil, nil, nil, nil, nil,
		false, nil, nil, 0, json.RawMessage(`[]`),
		nil, &seats, 5, nil, nil,
		json.RawMessage(`[{"day":1,"title":"Arrive","activities":[]}]`), nil,
	)
}

func newMockedTripRepo(t *testing.T) (TripRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	t.Cleanup(mock.Close)
	return NewTripRepository(mock, zap.NewNop()), mock
}

func TestTripFindAll(t *testing.T) {
	repo, mock := newMockedTripRepo(t)

	rows := addTripRow(addTripRow(tripMockRows(), 2, "Second"), 1, "First")
	mock.ExpectQuery(`FROM trips ORDER BY id DESC`).WillReturnRows(rows)

	trips, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(trips) != 2 || trips[0].Title != "Second" || trips[1].Title != "First" {
		t.Fatalf("unexpected trips: %#v", trips)
	}
	if trips[0].TotalSeats == nil || *trips[0].TotalSeats != 30 || trips[0].BookedSeats != 5 {
		t.Fatalf("seat columns lost: %#v", trips[0])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestTripFindByIDMissing(t *testing.T) {
	repo, mock := newMockedTripRepo(t)

	mock.ExpectQuery(`FROM trips WHERE id = \$1`).
		WithArgs(int64(7)).
		WillReturnError(pgx.ErrNoRows)

	trip, err := repo.FindByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("missing row must not be an error: %v", err)
	}
	if trip != nil {
		t.Fatalf("expected nil trip, got %#v", trip)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestTripCreateReturnsID(t *testing.T) {
	repo, mock := newMockedTripRepo(t)

	args := make([]any, 22)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	mock.ExpectQuery(`INSERT INTO trips`).
		WithArgs(args...).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(11)))

	trip := &entity.Trip{
		LocationName:  "Goa",
		Title:         "Goa Getaway",
		Features:      json.RawMessage(`[]`),
		ItineraryData: json.RawMessage(`[{"day":1,"title":"Arrive","activities":[]}]`),
	}
	id, err := repo.Create(context.Background(), trip)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id != 11 {
		t.Fatalf("id: got %d, want 11", id)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestTripReplaceMissing(t *testing.T) {
	repo, mock := newMockedTripRepo(t)

	args := make([]any, 23)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	mock.ExpectExec(`UPDATE trips`).
		WithArgs(args...).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	trip := &entity.Trip{ID: 99, LocationName: "Goa", Title: "Gone"}
	err := repo.Replace(context.Background(), trip)
	if err == nil || !strings.Contains(err.Error(), "trip not found") {
		t.Fatalf("expected trip not found, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestTripDelete(t *testing.T) {
	repo, mock := newMockedTripRepo(t)

	mock.ExpectExec(`DELETE FROM trips WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	if err := repo.Delete(context.Background(), 3); err != nil {
		t.Fatalf("delete: %v", err)
	}

	mock.ExpectExec(`DELETE FROM trips WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), 3)
	if err == nil || !strings.Contains(err.Error(), "trip not found") {
		t.Fatalf("expected trip not found, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}
