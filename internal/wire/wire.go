// internal/wire/wire.go
package wire

import (
	"net/http"

	"elaundry/internal/adaptor"
	"elaundry/internal/clients/geocode"
	"elaundry/internal/clients/identity"
	"elaundry/internal/clients/qr"
	"elaundry/internal/data/entity"
	"elaundry/internal/data/repository"
	"elaundry/internal/usecase"
	"elaundry/pkg/middleware"
	"elaundry/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired router
type App struct {
	Router *chi.Mux
}

// routePolicy is the single source of truth for role-gated routes. Routes
// behind the guard but absent from this table only require a valid session.
var routePolicy = middleware.RoutePolicy{
	{Method: http.MethodGet, Prefix: "/api/shops", Roles: []string{entity.RoleSuperAdmin}},
	{Method: http.MethodPost, Prefix: "/delete-user", Roles: []string{entity.RoleSuperAdmin}},
	{Prefix: "/api/categories", Roles: []string{entity.RoleAdmin}},
	{Prefix: "/api/orders", Roles: []string{entity.RoleAdmin}},
	{Method: http.MethodGet, Prefix: "/api/sales", Roles: []string{entity.RoleAdmin}},
	{Method: http.MethodGet, Prefix: "/api/qrcode", Roles: []string{entity.RoleAdmin}},
}

// Wiring initializes services, handlers and the router
func Wiring(
	repo *repository.Repository,
	idp identity.Provider,
	geocoder *geocode.Client,
	qrBuilder *qr.Builder,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, idp, config, logger)
	handler := adaptor.NewHandler(service, geocoder, qrBuilder, logger)

	router := setupRouter(handler, repo, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	guard := middleware.Authorize(repo.Session, routePolicy, logger)

	wireAuth(r, handler.Auth, guard)
	wireSession(r, handler.Session, guard)
	wireShop(r, handler.Shop, guard)
	wireCategory(r, handler.Category, guard)
	wireOrder(r, handler.Order, guard)
	wireGeocode(r, handler.Geocode)
	wireQRCode(r, handler.QRCode, guard)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
