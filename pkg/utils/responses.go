package utils

import (
	"encoding/json"
	"net/http"
)

// MessageResponse is the body shape shared by errors and simple confirmations.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedResponse carries the store-assigned identifier back to the client.
type CreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// ResponseJSON writes any payload with a custom status code. Lists are
// returned as bare arrays, matching what the frontend consumes.
func ResponseJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, payload any) {
	ResponseJSON(w, http.StatusOK, payload)
}

// returns 200 OK with a {message} body
func ResponseMessage(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusOK, MessageResponse{Message: message})
}

// returns 201 Created with a {message, id} body
func ResponseCreated(w http.ResponseWriter, message string, id int64) {
	ResponseJSON(w, http.StatusCreated, CreatedResponse{Message: message, ID: id})
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusBadRequest, MessageResponse{Message: message})
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusUnauthorized, MessageResponse{Message: message})
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusNotFound, MessageResponse{Message: message})
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusInternalServerError, MessageResponse{Message: message})
}
