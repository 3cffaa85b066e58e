package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"elaundry/internal/dto/request"
	"elaundry/internal/usecase"
	"elaundry/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	service usecase.CategoryService
	log     *zap.Logger
}

func NewCategoryHandler(service usecase.CategoryService, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		log:     log,
	}
}

// List handles GET /api/categories
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	shopID, ok := utils.GetShopIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.service.List(r.Context(), shopID)
	if err != nil {
		h.handleServiceError(w, err, "list categories")
		return
	}

	utils.ResponseSuccess(w, "Categories retrieved successfully", resp)
}

// Add handles POST /api/categories
func (h *CategoryHandler) Add(w http.ResponseWriter, r *http.Request) {
	shopID, ok := utils.GetShopIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.AddCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.Add(r.Context(), shopID, &req)
	if err != nil {
		h.handleServiceError(w, err, "add category")
		return
	}

	utils.ResponseCreated(w, "Category added successfully", resp)
}

// Update handles PUT /api/categories/{name}
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	shopID, ok := utils.GetShopIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	name := categoryName(r)
	if name == "" {
		utils.ResponseBadRequest(w, "Category name is required", nil)
		return
	}

	var req request.UpdateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.Update(r.Context(), shopID, name, &req); err != nil {
		h.handleServiceError(w, err, "update category")
		return
	}

	utils.ResponseSuccess(w, "Category updated successfully", nil)
}

// Delete handles DELETE /api/categories/{name}
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	shopID, ok := utils.GetShopIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	name := categoryName(r)
	if name == "" {
		utils.ResponseBadRequest(w, "Category name is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), shopID, name); err != nil {
		h.handleServiceError(w, err, "delete category")
		return
	}

	utils.ResponseSuccess(w, "Category deleted successfully", nil)
}

// categoryName decodes the {name} route param; names like "Dry cleaning"
// arrive percent-escaped.
func categoryName(r *http.Request) string {
	raw := chi.URLParam(r, "name")
	name, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return name
}

func (h *CategoryHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
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
