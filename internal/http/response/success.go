package response

import (
	"encoding/json"
	"net/http"
)

// writeJSON is the single serialization point for both the success and
// error helpers, so every response carries the same content type.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// OK sends a 200 OK response with a JSON body.
func OK(w http.ResponseWriter, body any) {
	writeJSON(w, http.StatusOK, body)
}

// Created sends a 201 Created response with a JSON body.
func Created(w http.ResponseWriter, body any) {
	writeJSON(w, http.StatusCreated, body)
}

// NoContent sends a 204 No Content response.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
