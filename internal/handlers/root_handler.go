package handlers

import (
	"log/slog"
	"net/http"
)

// Greeting is served at the root path
const Greeting = "Hello Catalog!"

// RootHandler answers GET /
func RootHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]string{"title": Greeting}, logger)
	}
}
