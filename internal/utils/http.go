// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// marshalFailureBody is written when the response value cannot be encoded.
const marshalFailureBody = `{"error":"Internal server error"}`

// WriteJSON serializes data to JSON and writes it to the HTTP response with
// the given status code and a "Content-Type: application/json" header.
//
// If marshaling fails, a generic JSON error body is sent with
// 500 Internal Server Error and a wrapped error is returned, so the client
// still receives a structured response.
//
// Example usage:
//
//	WriteJSON(w, models.MessageResponse{Message: "OK"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(marshalFailureBody))
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
