package update_pass

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CWS-BookingService/internal/api/handlers"
	"github.com/m04kA/CWS-BookingService/internal/api/middleware"
	"github.com/m04kA/CWS-BookingService/internal/service/catalog"
)

const (
	msgUnauthorized       = "требуется аутентификация"
	msgInvalidPassID      = "некорректный ID тарифа"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgForbidden          = "доступ запрещен"
	msgNotFound           = "тариф не найден"
	msgInvalidInput       = "некорректные параметры тарифа"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/passes/{passId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	passIDStr := vars["passId"]

	passID, err := strconv.ParseInt(passIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /admin/passes/{id} - Invalid pass ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPassID)
		return
	}

	var req UpdatePassRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/passes/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	pass, err := h.service.UpdatePass(r.Context(), passID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrAccessDenied), errors.Is(err, catalog.ErrUserNotFound):
			h.logger.Warn("PUT /admin/passes/{id} - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, catalog.ErrPassNotFound):
			h.logger.Warn("PUT /admin/passes/{id} - Pass not found: pass_id=%d", passID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /admin/passes/{id} - Invalid input: pass_id=%d, error=%v", passID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /admin/passes/{id} - Failed to update pass: pass_id=%d, error=%v", passID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/passes/{id} - Pass updated: pass_id=%d, user_id=%d", passID, userID)
	handlers.RespondJSON(w, http.StatusOK, pass)
}
