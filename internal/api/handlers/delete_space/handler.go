package delete_space

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
	msgUnauthorized   = "требуется аутентификация"
	msgInvalidSpaceID = "некорректный ID пространства"
	msgForbidden      = "доступ запрещен"
	msgNotFound       = "пространство не найдено"
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

// Handle DELETE /api/v1/admin/spaces/{spaceId}
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
		h.logger.Warn("DELETE /admin/spaces/{id} - Invalid space ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	err = h.service.DeleteSpace(r.Context(), spaceID, userID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrAccessDenied), errors.Is(err, catalog.ErrUserNotFound):
			h.logger.Warn("DELETE /admin/spaces/{id} - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, catalog.ErrSpaceNotFound):
			h.logger.Warn("DELETE /admin/spaces/{id} - Space not found: space_id=%d", spaceID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /admin/spaces/{id} - Failed to delete space: space_id=%d, error=%v", spaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/spaces/{id} - Space deleted: space_id=%d, user_id=%d", spaceID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
