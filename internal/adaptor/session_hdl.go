package adaptor

import (
	"errors"
	"net/http"

	"elaundry/internal/usecase"
	"elaundry/pkg/utils"

	"go.uber.org/zap"
)

type SessionHandler struct {
	service usecase.SessionService
	log     *zap.Logger
}

func NewSessionHandler(service usecase.SessionService, log *zap.Logger) *SessionHandler {
	return &SessionHandler{
		service: service,
		log:     log,
	}
}

// Current handles GET /api/session
func (h *SessionHandler) Current(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.service.Current(r.Context(), token)
	if err != nil {
		h.handleServiceError(w, err, "get session")
		return
	}

	utils.ResponseSuccess(w, "Session retrieved successfully", resp)
}

// Navigation handles GET /api/navigation
func (h *SessionHandler) Navigation(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	entries, err := h.service.Navigation(r.Context(), token)
	if err != nil {
		h.handleServiceError(w, err, "get navigation")
		return
	}

	utils.ResponseSuccess(w, "Navigation retrieved successfully", entries)
}

func (h *SessionHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound):
		h.log.Warn(operation+" failed - unknown session", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, err.Error())
	}
}
