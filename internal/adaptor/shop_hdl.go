package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"elaundry/internal/dto/request"
	"elaundry/internal/usecase"
	"elaundry/pkg/utils"

	"go.uber.org/zap"
)

type ShopHandler struct {
	service usecase.ShopService
	log     *zap.Logger
}

func NewShopHandler(service usecase.ShopService, log *zap.Logger) *ShopHandler {
	return &ShopHandler{
		service: service,
		log:     log,
	}
}

// List handles GET /api/shops (superadmin only)
func (h *ShopHandler) List(w http.ResponseWriter, r *http.Request) {
	shops, err := h.service.ListShops(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list shops")
		return
	}

	utils.ResponseSuccess(w, "Shops retrieved successfully", shops)
}

// DeleteUser handles POST /delete-user (superadmin only)
func (h *ShopHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	var req request.DeleteUserRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.DeleteShopAdmin(r.Context(), req.UserID, req.ShopID); err != nil {
		h.handleServiceError(w, err, "delete user")
		return
	}

	utils.ResponseSuccess(w, "User and laundry shop deleted successfully", nil)
}

func (h *ShopHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrMissingIdentifiers):
		h.log.Warn(operation+" failed - incomplete request", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), err)

	// Downstream failures carry their original message so the operator
	// can see which step broke.
	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, err.Error())
	}
}
