package wire

import (
	"net/http"

	"elaundry/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSession(
	r chi.Router,
	sessionHandler *adaptor.SessionHandler,
	guard func(http.Handler) http.Handler,
) {
	// Any valid session may read itself and its navigation entries.
	r.With(guard).Get("/api/session", sessionHandler.Current)
	r.With(guard).Get("/api/navigation", sessionHandler.Navigation)
}
