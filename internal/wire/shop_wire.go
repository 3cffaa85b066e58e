package wire

import (
	"net/http"

	"elaundry/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireShop configures the superadmin surface: tenant listing and privileged
// deletion. Role enforcement comes from the guard's policy table.
func wireShop(
	r chi.Router,
	shopHandler *adaptor.ShopHandler,
	guard func(http.Handler) http.Handler,
) {
	r.With(guard).Get("/api/shops", shopHandler.List)
	r.With(guard).Post("/delete-user", shopHandler.DeleteUser)
}
