package adaptor

import (
	"net/http"
	"strconv"

	"elaundry/internal/clients/geocode"
	"elaundry/pkg/utils"

	"go.uber.org/zap"
)

type GeocodeHandler struct {
	client *geocode.Client
	log    *zap.Logger
}

func NewGeocodeHandler(client *geocode.Client, log *zap.Logger) *GeocodeHandler {
	return &GeocodeHandler{
		client: client,
		log:    log,
	}
}

// Reverse handles GET /api/geocode/reverse?lat=&lon=
func (h *GeocodeHandler) Reverse(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	lat, err := strconv.ParseFloat(query.Get("lat"), 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid latitude", nil)
		return
	}
	lon, err := strconv.ParseFloat(query.Get("lon"), 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid longitude", nil)
		return
	}

	place, err := h.client.Reverse(r.Context(), lat, lon)
	if err != nil {
		h.log.Error("Reverse geocoding failed", zap.Error(err), zap.Float64("lat", lat), zap.Float64("lon", lon))
		utils.ResponseInternalError(w, "Geocoding service unavailable")
		return
	}

	utils.ResponseSuccess(w, "Location resolved successfully", place)
}

// Search handles GET /api/geocode/search?q=
func (h *GeocodeHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		utils.ResponseBadRequest(w, "Query is required", nil)
		return
	}

	place, err := h.client.Search(r.Context(), q)
	if err != nil {
		h.log.Error("Geocode search failed", zap.Error(err), zap.String("query", q))
		utils.ResponseInternalError(w, "Geocoding service unavailable")
		return
	}
	if place == nil {
		utils.ResponseNotFound(w, "No location found for the given query")
		return
	}

	utils.ResponseSuccess(w, "Location resolved successfully", place)
}
