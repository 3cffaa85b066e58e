package adaptor

import (
	"elaundry/internal/clients/geocode"
	"elaundry/internal/clients/qr"
	"elaundry/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	Session  *SessionHandler
	Shop     *ShopHandler
	Category *CategoryHandler
	Order    *OrderHandler
	Geocode  *GeocodeHandler
	QRCode   *QRCodeHandler
}

func NewHandler(
	service *usecase.Service,
	geocoder *geocode.Client,
	qrBuilder *qr.Builder,
	log *zap.Logger,
) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		Session:  NewSessionHandler(service.Session, log),
		Shop:     NewShopHandler(service.Shop, log),
		Category: NewCategoryHandler(service.Category, log),
		Order:    NewOrderHandler(service.Order, log),
		Geocode:  NewGeocodeHandler(geocoder, log),
		QRCode:   NewQRCodeHandler(qrBuilder, log),
	}
}
