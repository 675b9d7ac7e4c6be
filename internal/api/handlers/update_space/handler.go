package update_space

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
	msgInvalidSpaceID     = "некорректный ID пространства"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgForbidden          = "доступ запрещен"
	msgNotFound           = "пространство не найдено"
	msgInvalidInput       = "некорректные параметры пространства"
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

// Handle PUT /api/v1/admin/spaces/{spaceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	spaceIDStr := vars["spaceId"]

	spaceID, err := strconv.ParseInt(spaceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /admin/spaces/{id} - Invalid space ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	var req UpdateSpaceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/spaces/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	space, err := h.service.UpdateSpace(r.Context(), spaceID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrAccessDenied), errors.Is(err, catalog.ErrUserNotFound):
			h.logger.Warn("PUT /admin/spaces/{id} - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, catalog.ErrSpaceNotFound):
			h.logger.Warn("PUT /admin/spaces/{id} - Space not found: space_id=%d", spaceID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /admin/spaces/{id} - Invalid input: space_id=%d, error=%v", spaceID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /admin/spaces/{id} - Failed to update space: space_id=%d, error=%v", spaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/spaces/{id} - Space updated: space_id=%d, user_id=%d", spaceID, userID)
	handlers.RespondJSON(w, http.StatusOK, space)
}
