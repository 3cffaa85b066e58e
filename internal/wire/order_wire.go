package wire

import (
	"net/http"

	"elaundry/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	guard func(http.Handler) http.Handler,
) {
	r.With(guard).Route("/api/orders", func(r chi.Router) {
		r.Get("/", orderHandler.Active)
		r.Get("/completed", orderHandler.Completed)
		r.Put("/{id}/status", orderHandler.UpdateStatus)
	})

	r.With(guard).Get("/api/sales", orderHandler.Sales)
}
