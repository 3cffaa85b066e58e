package wire

import (
	"elaundry/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireGeocode stays public: registration needs address lookup before any
// session exists.
func wireGeocode(r chi.Router, geocodeHandler *adaptor.GeocodeHandler) {
	r.Get("/api/geocode/reverse", geocodeHandler.Reverse)
	r.Get("/api/geocode/search", geocodeHandler.Search)
}
