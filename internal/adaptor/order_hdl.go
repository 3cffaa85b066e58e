package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"elaundry/internal/dto/request"
	"elaundry/internal/usecase"
	"elaundry/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log,
	}
}

// Active handles GET /api/orders
func (h *OrderHandler) Active(w http.ResponseWriter, r *http.Request) {
	shopID, ok := utils.GetShopIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	orders, err := h.service.ActiveOrders(r.Context(), shopID)
	if err != nil {
		h.handleServiceError(w, err, "list active orders")
		return
	}

	utils.ResponseSuccess(w, "Orders retrieved successfully", orders)
}

// Completed handles GET /api/orders/completed
func (h *OrderHandler) Completed(w http.ResponseWriter, r *http.Request) {
	shopID, ok := utils.GetShopIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	orders, err := h.service.CompletedOrders(r.Context(), shopID)
	if err != nil {
		h.handleServiceError(w, err, "list completed orders")
		return
	}

	utils.ResponseSuccess(w, "Orders retrieved successfully", orders)
}

// UpdateStatus handles PUT /api/orders/{id}/status
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	if orderID == "" {
		utils.ResponseBadRequest(w, "Order ID is required", nil)
		return
	}

	var req request.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), orderID, &req); err != nil {
		h.handleServiceError(w, err, "update order status")
		return
	}

	utils.ResponseSuccess(w, "Order status updated successfully", nil)
}

// Sales handles GET /api/sales?month=&year=
func (h *OrderHandler) Sales(w http.ResponseWriter, r *http.Request) {
	shopID, ok := utils.GetShopIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	now := time.Now()
	query := r.URL.Query()
	month := utils.ParseInt(query.Get("month"), int(now.Month()))
	year := utils.ParseInt(query.Get("year"), now.Year())
	if month < 1 || month > 12 {
		utils.ResponseBadRequest(w, "Month must be between 1 and 12", nil)
		return
	}

	summary, err := h.service.SalesSummary(r.Context(), shopID, month, year)
	if err != nil {
		h.handleServiceError(w, err, "summarize sales")
		return
	}

	utils.ResponseSuccess(w, "Sales summary retrieved successfully", summary)
}

func (h *OrderHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderStatus):
		h.log.Warn(operation+" failed - invalid status", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), err)

	case errors.Is(err, usecase.ErrShopNotLinked):
		h.log.Warn(operation+" failed - no shop linkage", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), err)

	case strings.Contains(err.Error(), "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), err)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, err.Error())
	}
}
