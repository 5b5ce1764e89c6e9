package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"travel-booking/internal/dto/request"
	"travel-booking/internal/dto/response"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type stubTripService struct {
	trips    []response.TripResponse
	createID int64
	err      error
}

func (s *stubTripService) GetTrips(ctx context.Context) ([]response.TripResponse, error) {
	return s.trips, s.err
}

func (s *stubTripService) GetTripByID(ctx context.Context, tripID int64) (*response.TripResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &s.trips[0], nil
}

func (s *stubTripService) CreateTrip(ctx context.Context, req *request.TripRequest) (int64, error) {
	return s.createID, s.err
}

func (s *stubTripService) ReplaceTrip(ctx context.Context, tripID int64, req *request.TripRequest) error {
	return s.err
}

func (s *stubTripService) DeleteTrip(ctx context.Context, tripID int64) error {
	return s.err
}

func tripTestRouter(service *stubTripService) *chi.Mux {
	handler := NewTripHandler(service, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/api/trips", handler.GetTrips)
	r.Get("/api/trips/{id}", handler.GetTripByID)
	r.Post("/api/trips", handler.CreateTrip)
	r.Delete("/api/trips/{id}", handler.DeleteTrip)
	return r
}

func TestGetTripsReturnsBareArray(t *testing.T) {
	service := &stubTripService{trips: []response.TripResponse{
		{ID: 2, LocationName: "Goa", Title: "Second"},
		{ID: 1, LocationName: "Goa", Title: "First"},
	}}

	rec := httptest.NewRecorder()
	tripTestRouter(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/trips", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	body := strings.TrimSpace(rec.Body.String())
	if !strings.HasPrefix(body, "[") {
		t.Fatalf("list must be a bare JSON array, got %s", body)
	}

	var trips []response.TripResponse
	if err := json.Unmarshal([]byte(body), &trips); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(trips) != 2 || trips[0].ID != 2 {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestGetTripByIDNotFound(t *testing.T) {
	service := &stubTripService{err: fmt.Errorf("trip not found")}

	rec := httptest.NewRecorder()
	tripTestRouter(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/trips/99", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want 404", rec.Code)
	}
	var body map[string]string
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body["message"] != "Trip not found" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestGetTripByIDInvalidID(t *testing.T) {
	rec := httptest.NewRecorder()
	tripTestRouter(&stubTripService{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/trips/abc", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
	var body map[string]string
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body["message"] != "Invalid trip ID" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestCreateTripResponses(t *testing.T) {
	service := &stubTripService{createID: 7}
	router := tripTestRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/api/trips", strings.NewReader(`{"location_name":"Goa","title":"Trip"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want 201", rec.Code)
	}
	var created struct {
		Message string `json:"message"`
		ID      int64  `json:"id"`
	}
	json.Unmarshal(rec.Body.Bytes(), &created)
	if created.ID != 7 || created.Message == "" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}

	// Malformed body never reaches the service.
	req = httptest.NewRequest(http.MethodPost, "/api/trips", strings.NewReader(`{not json`))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("malformed body status: got %d, want 400", rec.Code)
	}

	// Validation errors surface with their message.
	service.err = fmt.Errorf("validation failed: location_name is required")
	req = httptest.NewRequest(http.MethodPost, "/api/trips", strings.NewReader(`{}`))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("validation status: got %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "validation failed") {
		t.Fatalf("validation message lost: %s", rec.Body.String())
	}
}

func TestDeleteTripErrorMapping(t *testing.T) {
	service := &stubTripService{err: fmt.Errorf("failed to delete trip: connection refused")}

	rec := httptest.NewRecorder()
	tripTestRouter(service).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/trips/3", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d, want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "connection refused") {
		t.Fatalf("store message must pass through: %s", rec.Body.String())
	}
}
