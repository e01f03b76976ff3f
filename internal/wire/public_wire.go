package wire

import (
	"car-rental/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePublic(r chi.Router, handler *adaptor.Handler) {
	// every method reaches the handler, which answers 405 for anything but GET
	r.HandleFunc("/api/test", handler.Health.Test)

	r.Get("/api/cars/search", handler.Catalog.Search)
	r.Get("/api/cars/lookup", handler.Catalog.Lookup)

	r.Post("/api/assistant", handler.Assistant.Ask)
}
