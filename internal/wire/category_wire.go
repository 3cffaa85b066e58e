package wire

import (
	"net/http"

	"elaundry/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCategory(
	r chi.Router,
	categoryHandler *adaptor.CategoryHandler,
	guard func(http.Handler) http.Handler,
) {
	r.With(guard).Route("/api/categories", func(r chi.Router) {
		r.Get("/", categoryHandler.List)
		r.Post("/", categoryHandler.Add)
		r.Put("/{name}", categoryHandler.Update)
		r.Delete("/{name}", categoryHandler.Delete)
	})
}
