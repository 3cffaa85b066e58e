package adaptor

import (
	"net/http"

	"elaundry/internal/clients/qr"
	"elaundry/internal/dto/response"
	"elaundry/pkg/utils"

	"go.uber.org/zap"
)

type QRCodeHandler struct {
	builder *qr.Builder
	log     *zap.Logger
}

func NewQRCodeHandler(builder *qr.Builder, log *zap.Logger) *QRCodeHandler {
	return &QRCodeHandler{
		builder: builder,
		log:     log,
	}
}

// Generate handles GET /api/qrcode?data=&size=
func (h *QRCodeHandler) Generate(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	data := query.Get("data")
	if data == "" {
		// Default to the shop id so an admin can hand out a scannable
		// link to their own shop.
		shopID, ok := utils.GetShopIDFromContext(r.Context())
		if !ok || shopID == "" {
			utils.ResponseBadRequest(w, "Data is required", nil)
			return
		}
		data = shopID
	}

	size := utils.ParseInt(query.Get("size"), 0)

	resp := response.QRCodeResponse{URL: h.builder.ImageURL(data, size)}
	utils.ResponseSuccess(w, "QR code URL generated successfully", resp)
}
