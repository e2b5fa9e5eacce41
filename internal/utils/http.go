package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// fallbackBody is written when data cannot be marshaled.
const fallbackBody = `{"error":"Internal server error"}`

// WriteJSON serializes data to JSON and writes it with statusCode and a
// "Content-Type: application/json" header.
//
// If marshaling fails, it responds with 500 and a generic JSON error body
// and returns a wrapped error. It returns the number of body bytes written.
//
//	WriteJSON(w, models.ErrorResponse{Error: "User not found"}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(fallbackBody))
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
