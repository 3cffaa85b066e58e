package wire

import (
	"net/http"

	"elaundry/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireQRCode(
	r chi.Router,
	qrHandler *adaptor.QRCodeHandler,
	guard func(http.Handler) http.Handler,
) {
	r.With(guard).Get("/api/qrcode", qrHandler.Generate)
}
